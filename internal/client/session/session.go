// Package session holds the client's view of the current user identity.
// It is transient state, rebuilt from scratch on every program start via
// the identity probe, and mutated only through explicit actions.
package session

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/finkeeper/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated-user state shared by the CLI commands.
// All methods are safe for concurrent use.
type Session struct {
	mu            sync.RWMutex
	user          *models.User
	authenticated bool
	loading       bool
	tokenExpiry   time.Time
}

func New() *Session {
	return &Session{}
}

// SetUser installs the authenticated identity. If accessToken is non-empty
// its expiry claim is recorded so callers can report remaining validity;
// an empty token keeps a previously recorded expiry (identity probes do
// not carry a token). The token is not verified here; the server owns
// verification, the client only reads the claim.
func (s *Session) SetUser(u models.User, accessToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := u
	s.user = &user
	s.authenticated = true
	if accessToken != "" {
		s.tokenExpiry = tokenExpiry(accessToken)
	}
}

// Clear wipes the identity, e.g. on logout or terminal refresh failure.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
	s.tokenExpiry = time.Time{}
}

// SetLoading flags an identity probe in progress.
func (s *Session) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Session) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// User returns a copy of the current user, or nil when logged out.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// TokenExpiry returns the access token's expiry claim, or the zero time
// when unknown.
func (s *Session) TokenExpiry() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokenExpiry
}

// tokenExpiry extracts the exp claim from a JWT without verifying the
// signature. Malformed or claimless tokens yield the zero time.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
