package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"parkmobile/internal/api"
)

func TestDescribeMapsErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"auth", &api.AuthError{}, "Authentication failed. Please login again."},
		{"network", &api.NetworkError{Err: errors.New("dial tcp: refused")}, "Network error. Please check your connection."},
		{"not found", &api.NotFoundError{Message: "no active parking session"}, "no active parking session"},
		{"api", &api.APIError{Status: 409, Message: "Slot occupied"}, "Slot occupied"},
		{"wrapped api", fmt.Errorf("exit: %w", &api.APIError{Status: 400, Message: "Session already ended"}), "Session already ended"},
		{"plain", errors.New("usage: exit <session-id>"), "usage: exit <session-id>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Describe(tc.err))
		})
	}
}
