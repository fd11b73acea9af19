package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"parkmobile/internal/models"
	"parkmobile/internal/token"
)

// RegisterParams is the signup payload. RoleID defaults to 1 (regular user).
type RegisterParams struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int64  `json:"roleId"`
}

type authResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *models.User `json:"user"`
}

// Register creates an account and persists the returned token pair.
func (c *Client) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	if params.RoleID == 0 {
		params.RoleID = 1
	}

	resp, err := c.Request(ctx, http.MethodPost, "/auth/register", params)
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, &APIError{Status: resp.Status, Message: errorMessage(resp.Body, "Registration failed")}
	}

	var payload authResponse
	if err := resp.Decode(&payload); err != nil {
		return nil, err
	}
	c.saveAuthTokens(ctx, payload, "register")
	return payload.User, nil
}

type loginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates by credentials and persists the returned token pair. A
// 401 here is a credential failure, surfaced as *APIError, never a refresh
// trigger.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := c.Request(ctx, http.MethodPost, "/auth/login", loginParams{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &APIError{Status: resp.Status, Message: errorMessage(resp.Body, "Login failed")}
	}

	var payload authResponse
	if err := resp.Decode(&payload); err != nil {
		return nil, err
	}
	c.saveAuthTokens(ctx, payload, "login")
	return payload.User, nil
}

// Logout best-effort revokes the refresh token remotely and always clears the
// local pair. The returned error reports the remote outcome only.
func (c *Client) Logout(ctx context.Context) error {
	defer c.store.Clear(ctx)

	pair := c.store.Load(ctx)
	if pair == nil || pair.RefreshToken == "" {
		return nil
	}

	resp, err := c.Request(ctx, http.MethodPost, "/auth/logout", map[string]string{"refreshToken": pair.RefreshToken})
	if err != nil {
		return err
	}
	if !resp.OK() {
		return &APIError{Status: resp.Status, Message: errorMessage(resp.Body, "Logout failed")}
	}
	return nil
}

// Profile fetches the authenticated user including vehicles and notifications.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	resp, err := c.Request(ctx, http.MethodGet, "/auth/profile", nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := c.decode(ctx, resp, &user, "Failed to fetch profile"); err != nil {
		return nil, err
	}
	return &user, nil
}

// Refresh explicitly trades the stored refresh token for a new pair.
func (c *Client) Refresh(ctx context.Context) (*token.Pair, error) {
	pair := c.store.Load(ctx)
	if pair == nil || pair.RefreshToken == "" {
		return nil, &AuthError{}
	}

	fresh, err := c.refreshPair(ctx, pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	c.store.Save(ctx, *fresh)
	return fresh, nil
}

func (c *Client) saveAuthTokens(ctx context.Context, payload authResponse, op string) {
	if payload.AccessToken == "" || payload.RefreshToken == "" {
		c.logger.Warn("auth response missing tokens", zap.String("op", op))
		return
	}
	c.store.Save(ctx, token.Pair{AccessToken: payload.AccessToken, RefreshToken: payload.RefreshToken})
}
