package api

import (
	"context"
	"fmt"
	"net/http"

	"parkmobile/internal/models"
)

// ParkingLot fetches a lot including its map image URL and slot coordinates.
func (c *Client) ParkingLot(ctx context.Context, lotID int64) (*models.Lot, error) {
	resp, err := c.Request(ctx, http.MethodGet, fmt.Sprintf("/parking-lots/%d", lotID), nil)
	if err != nil {
		return nil, err
	}

	var lot models.Lot
	if err := c.decode(ctx, resp, &lot, "Failed to fetch parking lot"); err != nil {
		return nil, err
	}
	return &lot, nil
}
