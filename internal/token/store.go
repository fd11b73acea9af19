// Package token persists the access/refresh token pair between runs.
//
// Persistence failures are deliberately non-fatal: a store logs and carries
// on, because a request that cannot cache its tokens is still a usable
// request. There is no cross-process locking; last writer wins.
package token

import "context"

// Storage keys shared by all backends.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// Pair is an access/refresh token pair issued by the auth endpoints.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Store is durable key-value storage for exactly one Pair.
//
// Save overwrites any prior pair and verifies the write by reading it back;
// a mismatch is logged, never returned. Load yields nil when either half is
// missing. Clear is idempotent and swallows storage errors.
type Store interface {
	Save(ctx context.Context, pair Pair)
	Load(ctx context.Context) *Pair
	Clear(ctx context.Context)
}
