package services

import (
	"context"
	"errors"
	"testing"

	"github.com/you/padelsvc/domain"
	"github.com/you/padelsvc/internal/mocks"
)

func athleteProfile(id string) *domain.Profile {
	return &domain.Profile{
		ID:       id,
		Email:    "usuario@exemplo.com",
		UserType: domain.UserTypeAthlete,
		Athlete:  &domain.AthleteProfile{FirstName: "Ana", LastName: "Souza"},
	}
}

func TestSessionStore_Init_NoSession(t *testing.T) {
	backend := mocks.NewMockAuthBackend()

	store := NewSessionStore(backend)
	if err := store.Init(context.Background(), ""); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if !store.Ready() {
		t.Error("store should be ready after Init")
	}
	if store.Identity() != nil {
		t.Error("identity should be nil when nobody is logged in")
	}
	if store.Profile() != nil {
		t.Error("profile should be nil when nobody is logged in")
	}
}

func TestSessionStore_Init_RestoresSession(t *testing.T) {
	backend := mocks.NewMockAuthBackend()
	backend.CurrentUserFunc = func(ctx context.Context, sessionID string) (*domain.Identity, error) {
		if sessionID != "session-1" {
			t.Errorf("CurrentUser got session %q, want session-1", sessionID)
		}
		return &domain.Identity{ID: "id-1", Email: "usuario@exemplo.com", UserType: domain.UserTypeAthlete}, nil
	}
	backend.GetProfileFunc = func(ctx context.Context, identityID string) (*domain.Profile, error) {
		return athleteProfile(identityID), nil
	}

	store := NewSessionStore(backend)
	if err := store.Init(context.Background(), "session-1"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if store.Identity() == nil || store.Identity().ID != "id-1" {
		t.Errorf("identity = %+v, want id-1", store.Identity())
	}
	if store.Profile() == nil || store.Profile().Athlete == nil {
		t.Errorf("profile = %+v, want athlete profile", store.Profile())
	}
	if store.SessionID() != "session-1" {
		t.Errorf("sessionID = %q, want session-1", store.SessionID())
	}
}

func TestSessionStore_AuthBroadcastUpdatesState(t *testing.T) {
	backend := mocks.NewMockAuthBackend()
	var captured domain.AuthChangeCallback
	backend.OnAuthStateChangeFunc = func(cb domain.AuthChangeCallback) func() {
		captured = cb
		return func() { captured = nil }
	}
	backend.GetProfileFunc = func(ctx context.Context, identityID string) (*domain.Profile, error) {
		return athleteProfile(identityID), nil
	}

	store := NewSessionStore(backend)
	if err := store.Init(context.Background(), ""); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if captured == nil {
		t.Fatal("store did not subscribe to auth-state changes")
	}

	var notified int
	store.OnChange(func() { notified++ })

	captured(domain.AuthSignedIn, &domain.AuthSession{
		ID: "session-1", IdentityID: "id-1", Email: "usuario@exemplo.com", UserType: domain.UserTypeAthlete,
	})

	if store.Identity() == nil || store.Identity().ID != "id-1" {
		t.Errorf("identity after sign-in broadcast = %+v", store.Identity())
	}
	if store.Profile() == nil {
		t.Error("profile should be fetched on sign-in broadcast")
	}
	if notified == 0 {
		t.Error("observers were not notified")
	}

	captured(domain.AuthSignedOut, nil)

	if store.Identity() != nil {
		t.Error("identity should clear on sign-out broadcast")
	}
	if store.Profile() != nil {
		t.Error("profile should clear on sign-out broadcast")
	}
}

func TestSessionStore_ProfileFetchFailureLeavesIdentity(t *testing.T) {
	backend := mocks.NewMockAuthBackend()
	var captured domain.AuthChangeCallback
	backend.OnAuthStateChangeFunc = func(cb domain.AuthChangeCallback) func() {
		captured = cb
		return func() {}
	}
	backend.GetProfileFunc = func(ctx context.Context, identityID string) (*domain.Profile, error) {
		return nil, errors.New("backend unavailable")
	}

	store := NewSessionStore(backend)
	if err := store.Init(context.Background(), ""); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	captured(domain.AuthSignedIn, &domain.AuthSession{ID: "session-1", IdentityID: "id-1"})

	if store.Identity() == nil {
		t.Error("identity should survive a failed profile fetch")
	}
	if store.Profile() != nil {
		t.Error("profile should be nil when the fetch failed")
	}
}

func TestSessionStore_SignOut_ClearsUnconditionally(t *testing.T) {
	backend := mocks.NewMockAuthBackend()
	backend.CurrentUserFunc = func(ctx context.Context, sessionID string) (*domain.Identity, error) {
		return &domain.Identity{ID: "id-1", UserType: domain.UserTypeAthlete}, nil
	}
	backend.GetProfileFunc = func(ctx context.Context, identityID string) (*domain.Profile, error) {
		return athleteProfile(identityID), nil
	}
	signOutErr := errors.New("network down")
	backend.SignOutFunc = func(ctx context.Context, sessionID string) error {
		return signOutErr
	}

	store := NewSessionStore(backend)
	if err := store.Init(context.Background(), "session-1"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	err := store.SignOut(context.Background())
	if !errors.Is(err, signOutErr) {
		t.Errorf("SignOut error = %v, want %v", err, signOutErr)
	}

	// Local state clears even when the backend call failed.
	if store.Identity() != nil || store.Profile() != nil || store.SessionID() != "" {
		t.Error("local session state should clear regardless of backend failure")
	}
}

func TestSessionStore_RefreshProfile(t *testing.T) {
	backend := mocks.NewMockAuthBackend()
	backend.CurrentUserFunc = func(ctx context.Context, sessionID string) (*domain.Identity, error) {
		return &domain.Identity{ID: "id-1", UserType: domain.UserTypeAthlete}, nil
	}
	fetches := 0
	backend.GetProfileFunc = func(ctx context.Context, identityID string) (*domain.Profile, error) {
		fetches++
		p := athleteProfile(identityID)
		if fetches > 1 {
			p.Athlete.Nickname = "Aninha"
		}
		return p, nil
	}

	store := NewSessionStore(backend)
	if err := store.Init(context.Background(), "session-1"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if err := store.RefreshProfile(context.Background()); err != nil {
		t.Fatalf("RefreshProfile failed: %v", err)
	}

	if got := store.Profile(); got == nil || got.Athlete.Nickname != "Aninha" {
		t.Errorf("profile not replaced by refresh: %+v", got)
	}
}

func TestSessionStore_Close_Unsubscribes(t *testing.T) {
	backend := mocks.NewMockAuthBackend()
	unsubscribed := false
	backend.OnAuthStateChangeFunc = func(cb domain.AuthChangeCallback) func() {
		return func() { unsubscribed = true }
	}

	store := NewSessionStore(backend)
	if err := store.Init(context.Background(), ""); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	store.Close()
	if !unsubscribed {
		t.Error("Close did not unsubscribe from the backend")
	}
	// Second Close is a no-op.
	store.Close()
}
