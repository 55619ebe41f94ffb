// Package session is the single source of truth for "who is logged in". It
// holds the authenticated identity and bearer token in memory, mirrors both
// to durable storage, and exposes the login/signup/logout lifecycle plus the
// route guard.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"resto/pkg/api"
)

// Storage keys, one entry each for the serialized user record and the token.
const (
	userKey  = "user"
	tokenKey = "authToken"
)

// State is the session lifecycle state.
type State int

const (
	// StateUnknown means Restore has not run yet.
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

// AuthAPI is the slice of the API client the store needs. *api.Client
// satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*api.Credentials, error)
	Signup(ctx context.Context, req api.SignupRequest) error
}

// Store holds the current session. It is safe for concurrent readers; all
// mutation goes through Login, Logout, Restore, and Invalidate.
type Store struct {
	authAPI AuthAPI
	storage Storage

	// loginMu serializes login attempts so a second submission blocks while
	// one is in flight, instead of racing it.
	loginMu sync.Mutex

	mu    sync.RWMutex
	state State
	user  *api.User
	token string
}

// New creates a Store in the Unknown state. Call Restore once at startup.
func New(authAPI AuthAPI, storage Storage) *Store {
	return &Store{
		authAPI: authAPI,
		storage: storage,
		state:   StateUnknown,
	}
}

// Restore hydrates the session from durable storage. When both the user
// record and a token are present the session becomes Authenticated without
// contacting the backend; a stale token is only detected on the first failed
// authenticated request, which Invalidate reconciles. Invalid stored data is
// cleared.
func (s *Store) Restore() error {
	userRaw, userOK, err := s.storage.GetItem(userKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	token, tokenOK, err := s.storage.GetItem(tokenKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if !userOK || !tokenOK || token == "" {
		s.setAnonymous()
		return nil
	}

	var user api.User
	if err := json.Unmarshal([]byte(userRaw), &user); err != nil {
		s.clearStorage()
		s.setAnonymous()
		return nil
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = &user
	s.token = token
	s.mu.Unlock()
	return nil
}

// Login authenticates against the backend. Failed credentials are a normal
// outcome reported through the returned error (api.IsAuthError); the session
// stays Anonymous and any partial durable state is cleared. On success the
// session becomes Authenticated and both entries are persisted.
func (s *Store) Login(ctx context.Context, username, password string) error {
	s.loginMu.Lock()
	defer s.loginMu.Unlock()

	creds, err := s.authAPI.Login(ctx, username, password)
	if err != nil {
		s.clearStorage()
		s.setAnonymous()
		return err
	}
	if creds.Token == "" {
		s.clearStorage()
		s.setAnonymous()
		return fmt.Errorf("%w: login response missing token", api.ErrConnection)
	}

	userRaw, err := json.Marshal(creds.User)
	if err != nil {
		s.clearStorage()
		s.setAnonymous()
		return fmt.Errorf("encode user record: %w", err)
	}
	if err := s.storage.SetItem(userKey, string(userRaw)); err != nil {
		s.clearStorage()
		s.setAnonymous()
		return fmt.Errorf("persist session: %w", err)
	}
	if err := s.storage.SetItem(tokenKey, creds.Token); err != nil {
		s.clearStorage()
		s.setAnonymous()
		return fmt.Errorf("persist session: %w", err)
	}

	user := creds.User
	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = &user
	s.token = creds.Token
	s.mu.Unlock()
	return nil
}

// Signup registers a new account. It never changes session state; callers
// chain Login after a successful signup.
func (s *Store) Signup(ctx context.Context, req api.SignupRequest) error {
	return s.authAPI.Signup(ctx, req)
}

// Logout clears the in-memory session and durable storage unconditionally.
// It is idempotent.
func (s *Store) Logout() {
	s.clearStorage()
	s.setAnonymous()
}

// Invalidate drops an Authenticated session after the backend rejected its
// token. Wire it to the API client via client.OnAuthError(store.Invalidate).
func (s *Store) Invalidate() {
	s.mu.Lock()
	authenticated := s.state == StateAuthenticated
	s.mu.Unlock()
	if !authenticated {
		return
	}
	s.clearStorage()
	s.setAnonymous()
}

// Token returns the current bearer token. It implements api.TokenProvider.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated || s.token == "" {
		return "", false
	}
	return s.token, true
}

// Current returns the authenticated user, or nil when Anonymous or Unknown.
func (s *Store) Current() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return nil
	}
	user := *s.user
	return &user
}

// State returns the session lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) setAnonymous() {
	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.token = ""
	s.mu.Unlock()
}

// clearStorage removes both durable entries. Storage errors are swallowed:
// logout and failure cleanup must always succeed locally.
func (s *Store) clearStorage() {
	_ = s.storage.RemoveItem(userKey)
	_ = s.storage.RemoveItem(tokenKey)
}
