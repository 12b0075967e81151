// Package backend provides the in-process implementation of the
// domain.AuthBackend contract on top of Postgres, Redis and JWTs.
package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/you/padelsvc/domain"
	"github.com/you/padelsvc/internal/logger"
)

// accessTokenTTLSeconds is what SignIn reports as ExpiresIn.
const accessTokenTTLSeconds = 15 * 60

// Gateway implements domain.AuthBackend.
type Gateway struct {
	accounts      domain.AccountRepository
	profiles      domain.ProfileRepository
	sessions      domain.SessionRepository
	confirmations domain.ConfirmationRepository
	passwordSvc   domain.PasswordService
	tokenSvc      domain.TokenService
	notifier      domain.NotificationService
	broadcaster   *Broadcaster
	log           *logger.Logger
	sessionTTL    time.Duration
	confirmURL    string
}

// NewGateway creates the backend gateway.
func NewGateway(
	accounts domain.AccountRepository,
	profiles domain.ProfileRepository,
	sessions domain.SessionRepository,
	confirmations domain.ConfirmationRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notifier domain.NotificationService,
	log *logger.Logger,
	sessionTTL time.Duration,
	confirmURL string,
) *Gateway {
	return &Gateway{
		accounts:      accounts,
		profiles:      profiles,
		sessions:      sessions,
		confirmations: confirmations,
		passwordSvc:   passwordSvc,
		tokenSvc:      tokenSvc,
		notifier:      notifier,
		broadcaster:   NewBroadcaster(),
		log:           log,
		sessionTTL:    sessionTTL,
		confirmURL:    confirmURL,
	}
}

// SignUp implements domain.AuthBackend. The created account is not usable
// until the emailed confirmation token is redeemed.
func (g *Gateway) SignUp(ctx context.Context, email, password string, attrs domain.SignUpAttributes) (*domain.SignUpResult, error) {
	if len(password) < 6 {
		return nil, &domain.BackendError{Code: domain.BackendCodeWeakPassword, Message: "Password too short"}
	}
	if !attrs.UserType.Valid() {
		return nil, &domain.BackendError{Message: "Signup requires a profile type"}
	}

	existing, err := g.accounts.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, &domain.BackendError{Code: domain.BackendCodeUserAlreadyExists, Message: "User already registered"}
	}
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hashed, err := g.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashed,
		UserType:     attrs.UserType,
	}
	if err := g.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	profile := &domain.Profile{
		ID:       account.ID,
		Email:    email,
		UserType: attrs.UserType,
		Athlete:  attrs.Athlete,
		Club:     attrs.Club,
	}
	if err := g.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	token := uuid.NewString()
	if err := g.confirmations.Create(ctx, token, account.ID); err != nil {
		return nil, fmt.Errorf("failed to store confirmation token: %w", err)
	}
	body := fmt.Sprintf("Confirme seu cadastro: %s?token=%s", g.confirmURL, token)
	if err := g.notifier.SendEmail(email, "Confirme seu e-mail", body); err != nil {
		g.log.Error("confirmation email failed", "email", email, "error", err)
	}
	if phone := signUpPhone(attrs); phone != "" {
		if err := g.notifier.SendSMS(phone, body); err != nil {
			g.log.Error("confirmation sms failed", "phone", phone, "error", err)
		}
	}

	g.audit(domain.NewAuditEvent(domain.UserSignUpEvent, account.ID).WithEmail(email))
	return &domain.SignUpResult{
		Identity:             &domain.Identity{ID: account.ID, Email: email, UserType: attrs.UserType},
		ConfirmationRequired: true,
	}, nil
}

// SignIn implements domain.AuthBackend.
func (g *Gateway) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	account, err := g.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, &domain.BackendError{Code: domain.BackendCodeInvalidCredentials, Message: "Invalid login credentials"}
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if !account.EmailConfirmed {
		return nil, &domain.BackendError{Message: "Email not confirmed"}
	}
	if !g.passwordSvc.Verify(account.PasswordHash, password) {
		rejection := &domain.BackendError{Code: domain.BackendCodeInvalidCredentials, Message: "Invalid login credentials"}
		g.audit(domain.NewAuditEvent(domain.UserSignInFailureEvent, account.ID).WithEmail(email).WithError(rejection))
		return nil, rejection
	}

	session := &domain.AuthSession{
		ID:         uuid.NewString(),
		IdentityID: account.ID,
		Email:      account.Email,
		UserType:   account.UserType,
		ExpiresAt:  time.Now().Add(g.sessionTTL),
		CreatedAt:  time.Now(),
	}
	if err := g.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := g.tokenSvc.GenerateAccessToken(account.ID, string(account.UserType), session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := g.tokenSvc.GenerateRefreshToken(account.ID, string(account.UserType), session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	g.broadcaster.Broadcast(domain.AuthSignedIn, session)
	g.audit(domain.NewAuditEvent(domain.UserSignInEvent, account.ID).WithEmail(account.Email).WithSession(session.ID))
	return &domain.AuthResult{
		Identity:     session.Identity(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    accessTokenTTLSeconds,
	}, nil
}

// SignOut implements domain.AuthBackend.
func (g *Gateway) SignOut(ctx context.Context, sessionID string) error {
	if err := g.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	g.broadcaster.Broadcast(domain.AuthSignedOut, nil)
	g.audit(domain.NewAuditEvent(domain.UserSignOutEvent, "").WithSession(sessionID))
	return nil
}

// RefreshToken implements domain.AuthBackend.
func (g *Gateway) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := g.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	session, err := g.sessions.FindByID(ctx, claims.SessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	accessToken, err := g.tokenSvc.GenerateAccessToken(session.IdentityID, string(session.UserType), session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	g.broadcaster.Broadcast(domain.AuthTokenRefreshed, session)
	return &domain.AuthResult{
		Identity:     session.Identity(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    accessTokenTTLSeconds,
	}, nil
}

// ConfirmEmail implements domain.AuthBackend.
func (g *Gateway) ConfirmEmail(ctx context.Context, token string) error {
	accountID, err := g.confirmations.Consume(ctx, token)
	if err != nil {
		return err
	}
	if err := g.accounts.ConfirmEmail(ctx, accountID); err != nil {
		return fmt.Errorf("failed to confirm account: %w", err)
	}
	g.audit(domain.NewAuditEvent(domain.EmailConfirmedEvent, accountID))
	return nil
}

// CurrentUser implements domain.AuthBackend. A missing or expired session
// yields (nil, nil): there is simply no one logged in.
func (g *Gateway) CurrentUser(ctx context.Context, sessionID string) (*domain.Identity, error) {
	if sessionID == "" {
		return nil, nil
	}
	session, err := g.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrSessionExpired) {
			return nil, nil
		}
		return nil, err
	}
	return session.Identity(), nil
}

// GetProfile implements domain.AuthBackend.
func (g *Gateway) GetProfile(ctx context.Context, identityID string) (*domain.Profile, error) {
	return g.profiles.FindByID(ctx, identityID)
}

// UpdateProfile implements domain.AuthBackend. Only the active variant's
// fields are applied; the tag itself never changes.
func (g *Gateway) UpdateProfile(ctx context.Context, identityID string, patch *domain.ProfileUpdate) (*domain.Profile, error) {
	profile, err := g.profiles.FindByID(ctx, identityID)
	if err != nil {
		return nil, err
	}
	applyUpdate(profile, patch)
	if err := g.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return g.profiles.FindByID(ctx, identityID)
}

// OnAuthStateChange implements domain.AuthBackend.
func (g *Gateway) OnAuthStateChange(cb domain.AuthChangeCallback) func() {
	return g.broadcaster.Subscribe(cb)
}

// audit writes one structured log line per business event.
func (g *Gateway) audit(event *domain.AuditEvent) {
	g.log.Info("audit",
		"event_type", string(event.EventType),
		"identity_id", event.IdentityID,
		"session_id", event.SessionID,
		"success", event.Success,
		"error", event.ErrorMsg,
	)
}

// signUpPhone returns the phone collected for the chosen variant, if any.
func signUpPhone(attrs domain.SignUpAttributes) string {
	switch attrs.UserType {
	case domain.UserTypeClub:
		if attrs.Club != nil {
			return attrs.Club.Phone
		}
	case domain.UserTypeAthlete:
		if attrs.Athlete != nil {
			return attrs.Athlete.Phone
		}
	}
	return ""
}

func applyUpdate(p *domain.Profile, patch *domain.ProfileUpdate) {
	if patch == nil {
		return
	}
	switch p.UserType {
	case domain.UserTypeClub:
		if p.Club == nil {
			p.Club = &domain.ClubProfile{}
		}
		c := p.Club
		setString(&c.LegalName, patch.LegalName)
		setString(&c.TradeName, patch.TradeName)
		setString(&c.Description, patch.Description)
		setString(&c.Street, patch.Street)
		setString(&c.CEP, patch.CEP)
		setString(&c.Phone, patch.Phone)
		setString(&c.City, patch.City)
		setString(&c.State, patch.State)
		setBool(&c.CoveredCourts, patch.CoveredCourts)
		setBool(&c.Parking, patch.Parking)
		setBool(&c.Bar, patch.Bar)
	case domain.UserTypeAthlete:
		if p.Athlete == nil {
			p.Athlete = &domain.AthleteProfile{}
		}
		a := p.Athlete
		setString(&a.FirstName, patch.FirstName)
		setString(&a.LastName, patch.LastName)
		setString(&a.Nickname, patch.Nickname)
		setString(&a.BirthDate, patch.BirthDate)
		setString(&a.Bio, patch.Bio)
		setString(&a.Instagram, patch.Instagram)
		setString(&a.Phone, patch.Phone)
		setString(&a.City, patch.City)
		setString(&a.State, patch.State)
		if patch.Sports != nil {
			a.Sports = *patch.Sports
		}
		if patch.Rackets != nil {
			a.Rackets = *patch.Rackets
		}
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
