package services

import (
	"context"
	"sync"

	"github.com/you/padelsvc/domain"
)

// SessionStore is the single authoritative in-memory holder of the current
// identity and its derived profile. It stays consistent with the backend's
// authentication broadcasts and notifies registered observers on change.
//
// Writer discipline: only the backend-change listener and RefreshProfile
// mutate state, and both funnel through replace().
type SessionStore struct {
	backend domain.AuthBackend

	mu          sync.RWMutex
	identity    *domain.Identity
	profile     *domain.Profile
	sessionID   string
	ready       bool
	observers   []func()
	unsubscribe func()
}

// NewSessionStore creates a store bound to backend. Call Init before use.
func NewSessionStore(backend domain.AuthBackend) *SessionStore {
	return &SessionStore{backend: backend}
}

// Init fetches the current identity and profile for sessionID (empty when
// no session is being restored), subscribes to backend auth-state changes
// and marks the store ready.
func (s *SessionStore) Init(ctx context.Context, sessionID string) error {
	identity, err := s.backend.CurrentUser(ctx, sessionID)
	if err != nil {
		return err
	}
	var profile *domain.Profile
	if identity != nil {
		profile, err = s.backend.GetProfile(ctx, identity.ID)
		if err != nil {
			return err
		}
	}
	s.replace(identity, profile, sessionID, true)
	s.unsubscribe = s.backend.OnAuthStateChange(s.handleAuthChange)
	return nil
}

// Close detaches the store from backend notifications.
func (s *SessionStore) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// handleAuthChange atomically replaces the identity on every notification
// and refetches or clears the profile accordingly.
func (s *SessionStore) handleAuthChange(event domain.AuthChangeEvent, session *domain.AuthSession) {
	if session == nil {
		s.replace(nil, nil, "", true)
		return
	}
	identity := session.Identity()
	profile, err := s.backend.GetProfile(context.Background(), identity.ID)
	if err != nil {
		profile = nil
	}
	s.replace(identity, profile, session.ID, true)
}

// RefreshProfile refetches the profile for the current identity and
// replaces the in-memory copy. Callers use it right after mutating
// backend-side profile data.
func (s *SessionStore) RefreshProfile(ctx context.Context) error {
	s.mu.RLock()
	identity := s.identity
	sessionID := s.sessionID
	s.mu.RUnlock()

	if identity == nil {
		s.replace(nil, nil, sessionID, true)
		return nil
	}
	profile, err := s.backend.GetProfile(ctx, identity.ID)
	if err != nil {
		return err
	}
	s.replace(identity, profile, sessionID, true)
	return nil
}

// SignOut requests backend sign-out, then clears identity and profile
// unconditionally.
func (s *SessionStore) SignOut(ctx context.Context) error {
	s.mu.RLock()
	sessionID := s.sessionID
	s.mu.RUnlock()

	var err error
	if sessionID != "" {
		err = s.backend.SignOut(ctx, sessionID)
	}
	s.replace(nil, nil, "", true)
	return err
}

// Identity returns the current authenticated identity, or nil.
func (s *SessionStore) Identity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Profile returns the current derived profile, or nil.
func (s *SessionStore) Profile() *domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SessionID returns the current backend session id, or "".
func (s *SessionStore) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// Ready reports whether Init has completed.
func (s *SessionStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// OnChange registers an observer invoked after every state replacement.
func (s *SessionStore) OnChange(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// replace is the single whole-record mutation point.
func (s *SessionStore) replace(identity *domain.Identity, profile *domain.Profile, sessionID string, ready bool) {
	s.mu.Lock()
	s.identity = identity
	s.profile = profile
	s.sessionID = sessionID
	s.ready = ready
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}
