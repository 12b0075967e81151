package domain

import "context"

// AuthChangeCallback receives authentication-state broadcasts. The session
// is nil when the state change left no authenticated session behind.
type AuthChangeCallback func(event AuthChangeEvent, session *AuthSession)

// AuthBackend is the authentication/persistence backend contract. The rest
// of the system treats it as an opaque collaborator.
type AuthBackend interface {
	SignUp(ctx context.Context, email, password string, attrs SignUpAttributes) (*SignUpResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	SignOut(ctx context.Context, sessionID string) error
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	ConfirmEmail(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, sessionID string) (*Identity, error)
	GetProfile(ctx context.Context, identityID string) (*Profile, error)
	UpdateProfile(ctx context.Context, identityID string, patch *ProfileUpdate) (*Profile, error)
	// OnAuthStateChange registers cb for the lifetime of the returned
	// unsubscribe func. Callbacks fire on sign-in, sign-out and token
	// refresh.
	OnAuthStateChange(cb AuthChangeCallback) (unsubscribe func())
}

// AccountRepository defines account data access operations.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	ConfirmEmail(ctx context.Context, id string) error
}

// ProfileRepository defines profile data access operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	FindByID(ctx context.Context, id string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

// SessionRepository defines session data access operations.
type SessionRepository interface {
	Create(ctx context.Context, session *AuthSession) error
	FindByID(ctx context.Context, sessionID string) (*AuthSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// DraftRepository stores per-identity draft payloads with a bounded
// lifetime. Drafts are a convenience cache, never a source of truth.
type DraftRepository interface {
	Save(ctx context.Context, identityID string, kind DraftKind, payload string) error
	Load(ctx context.Context, identityID string, kind DraftKind) (string, error)
	Delete(ctx context.Context, identityID string, kind DraftKind) error
}

// ConfirmationRepository stores one-shot email confirmation tokens.
type ConfirmationRepository interface {
	Create(ctx context.Context, token, accountID string) error
	// Consume resolves and invalidates the token in one step.
	Consume(ctx context.Context, token string) (accountID string, err error)
}

// TournamentRepository defines tournament data access operations.
type TournamentRepository interface {
	Create(ctx context.Context, t *Tournament) error
	FindByID(ctx context.Context, id string) (*Tournament, error)
	ListOpen(ctx context.Context) ([]*Tournament, error)
	ListByClub(ctx context.Context, clubID string) ([]*Tournament, error)
	Update(ctx context.Context, t *Tournament) error
}

// PasswordService defines password operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations.
type TokenService interface {
	GenerateAccessToken(identityID string, userType string, sessionID string) (string, error)
	GenerateRefreshToken(identityID string, userType string, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations.
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}
