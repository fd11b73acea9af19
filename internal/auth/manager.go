// Package auth owns the current-user state derived from the API client.
package auth

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"parkmobile/internal/api"
	"parkmobile/internal/models"
)

// State is the manager's lifecycle position.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Manager tracks who is logged in. It is an explicit, constructed object
// handed to consumers, not an ambient singleton. All network and storage I/O
// flows through the API client.
type Manager struct {
	mu     sync.Mutex
	api    *api.Client
	logger *zap.Logger
	state  State
	user   *models.User
}

// NewManager returns a manager in the loading state; call Init to settle it.
func NewManager(client *api.Client, logger *zap.Logger) *Manager {
	return &Manager{api: client, logger: logger, state: StateLoading}
}

// Init performs the startup check: if a token pair is stored, try to restore
// the profile. A failure here is logged and swallowed: a transient network
// error at startup must not force a logout.
func (m *Manager) Init(ctx context.Context) {
	if m.api.HasSession(ctx) {
		m.RefreshUser(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.settleLocked()
}

// Login authenticates and replaces the user state on success. On any failure
// it returns false and leaves the prior user untouched; callers must not
// assume the user was cleared.
func (m *Manager) Login(ctx context.Context, email, password string) bool {
	user, err := m.api.Login(ctx, email, password)
	if err != nil || user == nil {
		m.logger.Warn("login failed", zap.Error(err))
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	m.settleLocked()
	return true
}

// Logout best-effort revokes the session remotely and always drops local
// state. Remote errors are logged, never surfaced.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		m.logger.Warn("remote logout failed", zap.Error(err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.settleLocked()
}

// RefreshUser re-fetches the profile and overwrites the user wholesale. It is
// a no-op without a stored token, and on failure it logs and keeps whatever
// user state already exists.
func (m *Manager) RefreshUser(ctx context.Context) {
	if !m.api.HasSession(ctx) {
		return
	}

	user, err := m.api.Profile(ctx)
	if err != nil {
		m.logger.Warn("profile refresh failed", zap.Error(err))
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	m.settleLocked()
}

// User returns the current identity, or nil.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated reports whether a user identity is present.
func (m *Manager) IsAuthenticated() bool {
	return m.User() != nil
}

// CurrentState returns the lifecycle state.
func (m *Manager) CurrentState() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Close releases resources (none yet).
func (m *Manager) Close() {}

func (m *Manager) settleLocked() {
	if m.user != nil {
		m.state = StateAuthenticated
	} else {
		m.state = StateUnauthenticated
	}
}
