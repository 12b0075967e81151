package mocks

import (
	"context"

	"github.com/you/padelsvc/domain"
)

// MockAuthBackend implements domain.AuthBackend interface for testing
type MockAuthBackend struct {
	SignUpFunc            func(ctx context.Context, email, password string, attrs domain.SignUpAttributes) (*domain.SignUpResult, error)
	SignInFunc            func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	SignOutFunc           func(ctx context.Context, sessionID string) error
	RefreshTokenFunc      func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	ConfirmEmailFunc      func(ctx context.Context, token string) error
	CurrentUserFunc       func(ctx context.Context, sessionID string) (*domain.Identity, error)
	GetProfileFunc        func(ctx context.Context, identityID string) (*domain.Profile, error)
	UpdateProfileFunc     func(ctx context.Context, identityID string, patch *domain.ProfileUpdate) (*domain.Profile, error)
	OnAuthStateChangeFunc func(cb domain.AuthChangeCallback) func()

	// SignUpCalls and SignInCalls count backend submissions, so tests can
	// assert a local validation failure never reached the backend.
	SignUpCalls int
	SignInCalls int
}

// NewMockAuthBackend creates a new MockAuthBackend with default behaviors
func NewMockAuthBackend() *MockAuthBackend {
	return &MockAuthBackend{}
}

// SignUp registers a new account
func (m *MockAuthBackend) SignUp(ctx context.Context, email, password string, attrs domain.SignUpAttributes) (*domain.SignUpResult, error) {
	m.SignUpCalls++
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, email, password, attrs)
	}
	// Default behavior: success, confirmation pending
	return &domain.SignUpResult{
		Identity:             &domain.Identity{ID: "identity-1", Email: email, UserType: attrs.UserType},
		ConfirmationRequired: true,
	}, nil
}

// SignIn authenticates credentials
func (m *MockAuthBackend) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	m.SignInCalls++
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	// Default behavior: success
	return &domain.AuthResult{
		Identity:     &domain.Identity{ID: "identity-1", Email: email, UserType: domain.UserTypeAthlete},
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		SessionID:    "session-1",
		ExpiresIn:    900,
	}, nil
}

// SignOut terminates a session
func (m *MockAuthBackend) SignOut(ctx context.Context, sessionID string) error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx, sessionID)
	}
	return nil
}

// RefreshToken exchanges a refresh token for fresh credentials
func (m *MockAuthBackend) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	return &domain.AuthResult{AccessToken: "access-token", RefreshToken: refreshToken, ExpiresIn: 900}, nil
}

// ConfirmEmail redeems a confirmation token
func (m *MockAuthBackend) ConfirmEmail(ctx context.Context, token string) error {
	if m.ConfirmEmailFunc != nil {
		return m.ConfirmEmailFunc(ctx, token)
	}
	return nil
}

// CurrentUser resolves the identity behind a session
func (m *MockAuthBackend) CurrentUser(ctx context.Context, sessionID string) (*domain.Identity, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, sessionID)
	}
	// Default behavior: nobody logged in
	return nil, nil
}

// GetProfile fetches the profile for an identity
func (m *MockAuthBackend) GetProfile(ctx context.Context, identityID string) (*domain.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, identityID)
	}
	// Default behavior: not found
	return nil, domain.ErrProfileNotFound
}

// UpdateProfile applies a partial profile mutation
func (m *MockAuthBackend) UpdateProfile(ctx context.Context, identityID string, patch *domain.ProfileUpdate) (*domain.Profile, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, identityID, patch)
	}
	return nil, domain.ErrProfileNotFound
}

// OnAuthStateChange registers an auth-state callback
func (m *MockAuthBackend) OnAuthStateChange(cb domain.AuthChangeCallback) func() {
	if m.OnAuthStateChangeFunc != nil {
		return m.OnAuthStateChangeFunc(cb)
	}
	// Default behavior: no-op subscription
	return func() {}
}
