// Package session holds the portal-wide state of the logged-in user. The
// bearer token lives in durable storage (internal/infrastructure/storage);
// the store mirrors it in memory and keeps the two consistent in every
// mutator, so the navigation guard and the store never disagree about
// whether a session exists.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/ports"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/infrastructure/storage"
)

// loginErrorMessage is the fixed user-facing message for any login failure.
// The specific backend reason is logged, not shown.
const loginErrorMessage = "Invalid username or password"

// ErrLoginInFlight is returned when Login is called while a previous Login
// has not settled. Overlapping logins would race last-writer-wins on the
// token, so the second attempt is rejected outright.
var ErrLoginInFlight = errors.New("login already in progress")

// Store is the process-wide session state.
type Store struct {
	auth   ports.AuthService
	tokens storage.TokenStore
	logger zerolog.Logger

	mu      sync.Mutex
	user    *domain.User
	token   string
	loading bool
	errMsg  string
}

// New constructs a Store seeded from durable storage, so a token persisted
// by a previous run survives a restart.
func New(auth ports.AuthService, tokens storage.TokenStore, logger zerolog.Logger) *Store {
	s := &Store{auth: auth, tokens: tokens, logger: logger}
	if token, err := tokens.Load(); err == nil {
		s.token = token
	}
	return s
}

// User returns the current user, or nil when nobody is logged in.
func (s *Store) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the in-memory copy of the session token.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Loading reports whether a login is in flight. Advisory: views use it to
// render a spinner, Login itself enforces the no-overlap rule.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last login error message, or "" when the last login
// succeeded.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Login authenticates with the backend, persists the token, then fetches the
// full profile. The loading flag clears on every exit path.
func (s *Store) Login(ctx context.Context, username, password string) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrLoginInFlight
	}
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, err := s.auth.Login(ctx, domain.Credentials{Username: username, Password: password})
	if err != nil {
		s.mu.Lock()
		s.errMsg = loginErrorMessage
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.token = token.AccessToken
	s.mu.Unlock()

	if err := s.tokens.Save(token.AccessToken); err != nil {
		s.logger.Error().Err(err).Msg("persisting session token failed")
	}

	return s.FetchUser(ctx)
}

// FetchUser loads the current profile. A failure is treated as an invalid
// session, not a transient error: the whole session is torn down.
func (s *Store) FetchUser(ctx context.Context) error {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("fetching current user failed, ending session")
		s.Logout()
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Logout clears the user, the token, and durable storage. Synchronous, no
// network call, idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		s.logger.Error().Err(err).Msg("clearing session token failed")
	}
}
