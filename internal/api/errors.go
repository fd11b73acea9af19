package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AuthError means the session is invalid and local tokens have been cleared;
// the caller should send the user back to login.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "Authentication failed. Please login again."
	}
	return e.Message
}

// NetworkError wraps a transport-level failure. Tokens are left untouched and
// the caller may retry.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx response with a server-supplied message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// NotFoundError is a domain-level "nothing here" (no active session), shown
// as information rather than failure.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// errorMessage pulls a human-readable message out of an error body. The
// backend uses both "message" and "error" fields; anything unparseable falls
// back to the raw text.
func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		ErrMsg  string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.ErrMsg != "" {
			return payload.ErrMsg
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fallback
}
