package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"parkmobile/internal/models"
)

// Sessions lists parking sessions, optionally filtered by status and lot.
func (c *Client) Sessions(ctx context.Context, status string, parkingLotID int64) ([]models.ParkingSession, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if parkingLotID > 0 {
		query.Set("parkingLotId", strconv.FormatInt(parkingLotID, 10))
	}

	endpoint := "/parking-sessions"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	resp, err := c.Request(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var sessions []models.ParkingSession
	if err := c.decode(ctx, resp, &sessions, "Failed to fetch parking sessions"); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ActiveSessions lists sessions that are still running.
func (c *Client) ActiveSessions(ctx context.Context) ([]models.ParkingSession, error) {
	return c.Sessions(ctx, models.SessionStatusActive, 0)
}

// CompletedSessions lists finished sessions (payment history).
func (c *Client) CompletedSessions(ctx context.Context) ([]models.ParkingSession, error) {
	return c.Sessions(ctx, models.SessionStatusCompleted, 0)
}

// CurrentParking fetches the legacy single-session "current parking" shape.
// A 404 means nothing is parked, not an error.
func (c *Client) CurrentParking(ctx context.Context) (*models.CurrentParking, error) {
	resp, err := c.Request(ctx, http.MethodGet, "/parking-sessions/my/current", nil)
	if err != nil {
		return nil, err
	}
	if resp.Status == http.StatusNotFound {
		return &models.CurrentParking{HasActiveParking: false}, nil
	}

	var current models.CurrentParking
	if err := c.decode(ctx, resp, &current, "Failed to fetch current parking session"); err != nil {
		return nil, err
	}
	return &current, nil
}

// PreviewFee estimates the charge for the current session without ending it.
// A 404 maps to *NotFoundError so callers can show it as information.
func (c *Client) PreviewFee(ctx context.Context) (*models.FeePreview, error) {
	resp, err := c.Request(ctx, http.MethodGet, "/parking-sessions/my/current/preview-fee", nil)
	if err != nil {
		return nil, err
	}
	if resp.Status == http.StatusNotFound {
		return nil, &NotFoundError{Message: "no active parking session"}
	}

	var preview models.FeePreview
	if err := c.decode(ctx, resp, &preview, "Failed to preview fee"); err != nil {
		return nil, err
	}
	return &preview, nil
}

// ExitSession ends the given session and returns the fee details.
func (c *Client) ExitSession(ctx context.Context, sessionID int64) (*models.ExitResult, error) {
	resp, err := c.Request(ctx, http.MethodPost, fmt.Sprintf("/parking-sessions/%d/exit", sessionID), nil)
	if err != nil {
		return nil, err
	}

	var result models.ExitResult
	if err := c.decode(ctx, resp, &result, "Failed to exit parking"); err != nil {
		return nil, err
	}
	return &result, nil
}
