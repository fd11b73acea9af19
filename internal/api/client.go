// Package api talks to the remote parking service. Every call flows through
// a single dispatcher that attaches the bearer token and performs at most one
// refresh-and-retry when a protected endpoint answers 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"parkmobile/internal/token"
)

// Endpoints that authenticate by credentials rather than by bearer token.
// A 401 from these means "bad credentials", never "expired session", so the
// dispatcher must not try to refresh on their behalf.
var credentialEndpoints = []string{
	"/auth/login",
	"/auth/register",
	"/auth/refresh-token",
}

// HTTPDoer defines the http.Client interface subset.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client dispatches authenticated requests against the parking API.
type Client struct {
	baseURL string
	http    HTTPDoer
	store   token.Store
	logger  *zap.Logger
}

// NewClient builds a client rooted at baseURL (including the /api prefix).
func NewClient(baseURL string, httpClient HTTPDoer, store token.Store, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		store:   store,
		logger:  logger,
	}
}

// NewDefaultHTTPClient returns *http.Client with timeout.
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Response carries the final status and body back to the typed wrappers,
// which interpret both.
type Response struct {
	Status int
	Body   []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

func isCredentialEndpoint(path string) bool {
	for _, e := range credentialEndpoints {
		if strings.HasPrefix(path, e) {
			return true
		}
	}
	return false
}

// Request runs the dispatch pipeline: attempt, and on a 401 from a protected
// endpoint, refresh then retry the original request exactly once. The retry's
// response is returned as-is even if it is another 401.
func (c *Client) Request(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	payload, err := marshalBody(body)
	if err != nil {
		return nil, err
	}

	resp, err := c.attempt(ctx, method, path, payload, c.store.Load(ctx))
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusUnauthorized || isCredentialEndpoint(path) {
		return resp, nil
	}

	c.logger.Debug("unauthorized, attempting token refresh", zap.String("path", path))

	pair := c.store.Load(ctx)
	if pair == nil || pair.RefreshToken == "" {
		c.store.Clear(ctx)
		return nil, &AuthError{}
	}

	fresh, err := c.refreshPair(ctx, pair.RefreshToken)
	if err != nil {
		c.logger.Warn("token refresh failed", zap.Error(err))
		c.store.Clear(ctx)
		return nil, &AuthError{}
	}
	c.store.Save(ctx, *fresh)

	return c.attempt(ctx, method, path, payload, fresh)
}

// attempt issues a single HTTP round trip with the standard headers. A
// transport failure surfaces as *NetworkError.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, pair *token.Pair) (*Response, error) {
	var reader io.Reader
	if len(payload) > 0 {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if pair != nil && pair.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	return &Response{Status: resp.StatusCode, Body: respBody}, nil
}

// refreshPair trades the refresh token for a new pair. Any non-2xx answer or
// transport failure is an error; the caller decides what to clear.
func (c *Client) refreshPair(ctx context.Context, refreshToken string) (*token.Pair, error) {
	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return nil, err
	}

	resp, err := c.attempt(ctx, http.MethodPost, "/auth/refresh-token", payload, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &APIError{Status: resp.Status, Message: errorMessage(resp.Body, "token refresh failed")}
	}

	var out struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		return nil, &APIError{Status: resp.Status, Message: "refresh response missing tokens"}
	}
	return &token.Pair{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}, nil
}

// HasSession reports whether a token pair is currently stored. The session
// manager goes through this instead of owning storage access.
func (c *Client) HasSession(ctx context.Context) bool {
	return c.store.Load(ctx) != nil
}

// SessionClaims peeks at the stored access token's claims for display
// purposes. Nothing in the request flow depends on the result.
func (c *Client) SessionClaims(ctx context.Context) (*token.Claims, error) {
	pair := c.store.Load(ctx)
	if pair == nil {
		return nil, &AuthError{}
	}
	return token.Peek(pair.AccessToken)
}

func (c *Client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func marshalBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	return json.Marshal(body)
}

// decode interprets a wrapper-level response: 401 after the pipeline means
// the session is gone for good, other non-2xx statuses carry a server
// message, and 2xx bodies unmarshal into v when v is non-nil.
func (c *Client) decode(ctx context.Context, resp *Response, v interface{}, fallback string) error {
	if resp.Status == http.StatusUnauthorized {
		c.store.Clear(ctx)
		return &AuthError{}
	}
	if !resp.OK() {
		return &APIError{Status: resp.Status, Message: errorMessage(resp.Body, fallback)}
	}
	if v == nil {
		return nil
	}
	return resp.Decode(v)
}
