package backoffice

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Storage keys for the persisted session. Both are written on login and
// removed on logout; SetUser rewrites only the user key.
const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// SessionStore owns the authenticated identity and bearer credential for one
// session, backed by durable storage so the session survives restarts.
// Authenticated is true exactly when both a user and a token are held.
//
// All mutations go through Login, Logout, SetUser, and Restore; durable state
// is written inside the same critical section, so memory and storage never
// diverge observably.
type SessionStore struct {
	mu            sync.RWMutex
	user          *Identity
	token         string
	authenticated bool

	storage Storage
	log     zerolog.Logger
}

// NewSessionStore creates an empty store over the given storage. Call Restore
// before first use to hydrate a persisted session.
func NewSessionStore(storage Storage, log zerolog.Logger) *SessionStore {
	return &SessionStore{storage: storage, log: log}
}

// Login stores the identity and credential durably and marks the session
// authenticated. The credential is treated as opaque: any non-empty string is
// accepted.
func (s *SessionStore) Login(user Identity, token string) error {
	if token == "" {
		return fmt.Errorf("session: empty credential")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := s.storage.Set(tokenKey, token); err != nil {
		return fmt.Errorf("session: persist token: %w", err)
	}
	if err := s.storage.Set(userKey, string(raw)); err != nil {
		return fmt.Errorf("session: persist user: %w", err)
	}

	s.user = &user
	s.token = token
	s.authenticated = true
	return nil
}

// Logout clears the session in memory and in durable storage. Idempotent:
// logging out an unauthenticated store is safe.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// SetUser replaces the stored identity, leaving the credential untouched.
// Used after a profile refetch; does not change the authenticated flag.
func (s *SessionStore) SetUser(user Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := s.storage.Set(userKey, string(raw)); err != nil {
		return fmt.Errorf("session: persist user: %w", err)
	}

	s.user = &user
	return nil
}

// Restore hydrates the session from durable storage. Called once at startup,
// before anything consults the store. A missing session leaves the store
// unauthenticated; an incomplete or corrupt one is discarded (storage cleared,
// corruption logged) and never surfaces an error to the caller.
func (s *SessionStore) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, tokenErr := s.storage.Get(tokenKey)
	raw, userErr := s.storage.Get(userKey)
	if tokenErr != nil && userErr != nil {
		return
	}
	if tokenErr != nil || token == "" || userErr != nil {
		// Half a session is as unusable as a corrupt one.
		s.clearLocked()
		return
	}

	var user Identity
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Error().Err(err).Msg("stored session is corrupt, discarding")
		s.clearLocked()
		return
	}

	s.user = &user
	s.token = token
	s.authenticated = true
}

// User returns a copy of the current identity, or nil when logged out.
func (s *SessionStore) User() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Token returns the current bearer credential, or "" when logged out.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether both an identity and a credential are held.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *SessionStore) clearLocked() {
	if err := s.storage.Delete(tokenKey); err != nil {
		s.log.Error().Err(err).Msg("failed to clear stored token")
	}
	if err := s.storage.Delete(userKey); err != nil {
		s.log.Error().Err(err).Msg("failed to clear stored user")
	}
	s.user = nil
	s.token = ""
	s.authenticated = false
}
