package services

import (
	"context"
	"strings"
	"sync"

	"github.com/you/padelsvc/domain"
	"github.com/you/padelsvc/internal/i18n"
	"github.com/you/padelsvc/internal/validation"
)

// FlowState is the submission state of an AuthFlow.
type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowSubmitting FlowState = "submitting"
)

// FlowError carries the localized message surfaced to the user. Err is nil
// for local validation failures, which never reach the backend.
type FlowError struct {
	Message string
	Err     error
}

func (e *FlowError) Error() string { return e.Message }

func (e *FlowError) Unwrap() error { return e.Err }

// Local reports whether the failure was detected before any backend call.
func (e *FlowError) Local() bool { return e.Err == nil }

func localFailure(msg string) *FlowError {
	return &FlowError{Message: msg}
}

// SignUpInput is one sign-up submission. UserType selects the variant and
// decides which of the variant fields are required.
type SignUpInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	UserType        domain.UserType

	// club variant
	ClubName  string
	CNPJ      string
	ClubPhone string

	// athlete variant
	FirstName string
	LastName  string
	Phone     string
}

// AuthFlow orchestrates one interactive submission at a time:
// validate locally, call the backend, normalize failures, refresh the
// session store. It moves idle → submitting → idle for every outcome.
type AuthFlow struct {
	backend domain.AuthBackend
	store   *SessionStore

	mu    sync.Mutex
	state FlowState
}

// NewAuthFlow creates a flow for one interactive client. store may be nil
// when no session state needs refreshing (sign-up only flows).
func NewAuthFlow(backend domain.AuthBackend, store *SessionStore) *AuthFlow {
	return &AuthFlow{backend: backend, store: store, state: FlowIdle}
}

// State returns the current submission state.
func (f *AuthFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *AuthFlow) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == FlowSubmitting {
		return domain.ErrSubmissionInFlight
	}
	f.state = FlowSubmitting
	return nil
}

func (f *AuthFlow) end() {
	f.mu.Lock()
	f.state = FlowIdle
	f.mu.Unlock()
}

// SignIn runs one sign-in submission. A malformed email or out-of-bounds
// password fails locally and never contacts the backend. On success the
// store's profile is refreshed before returning, so the caller's post-login
// decision never sees a stale profile.
func (f *AuthFlow) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	email = validation.SanitizeEmail(email)
	password = strings.TrimSpace(password)
	if msg := checkCredentials(email, password); msg != "" {
		return nil, localFailure(msg)
	}

	result, err := f.backend.SignIn(ctx, email, password)
	if err != nil {
		return nil, &FlowError{Message: i18n.Normalize(err), Err: err}
	}

	if f.store != nil {
		if err := f.store.RefreshProfile(ctx); err != nil {
			return nil, &FlowError{Message: i18n.Normalize(err), Err: err}
		}
	}
	return result, nil
}

// SignUp runs one sign-up submission. All variant-specific required fields
// are validated before any backend call. Success establishes no session:
// the account still needs out-of-band email confirmation.
func (f *AuthFlow) SignUp(ctx context.Context, in SignUpInput) (*domain.SignUpResult, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	email := validation.SanitizeEmail(in.Email)
	password := strings.TrimSpace(in.Password)
	confirm := strings.TrimSpace(in.ConfirmPassword)

	if msg := checkCredentials(email, password); msg != "" {
		return nil, localFailure(msg)
	}
	if password != confirm {
		return nil, localFailure(i18n.MsgPasswordMismatch)
	}
	if !in.UserType.Valid() {
		return nil, localFailure(i18n.MsgProfileTypeNeeded)
	}

	attrs, msg := buildAttributes(in)
	if msg != "" {
		return nil, localFailure(msg)
	}

	result, err := f.backend.SignUp(ctx, email, password, attrs)
	if err != nil {
		return nil, &FlowError{Message: i18n.Normalize(err), Err: err}
	}
	return result, nil
}

// checkCredentials applies the caller-side length policy and the email
// grammar. Returns "" when everything passes.
func checkCredentials(email, password string) string {
	if len(email) < validation.EmailMinLen || len(email) > validation.EmailMaxLen {
		return i18n.MsgInvalidEmail
	}
	if !validation.ValidateEmail(email) {
		return i18n.MsgInvalidEmail
	}
	if !validation.ValidPasswordLength(password) {
		return i18n.MsgPasswordBounds
	}
	return ""
}

// buildAttributes validates the variant-specific required fields and shapes
// the sign-up attributes. Phone and CNPJ are stored in their masked forms.
func buildAttributes(in SignUpInput) (domain.SignUpAttributes, string) {
	switch in.UserType {
	case domain.UserTypeClub:
		if strings.TrimSpace(in.ClubName) == "" {
			return domain.SignUpAttributes{}, i18n.MsgClubNameRequired
		}
		if !validation.ValidCNPJ(in.CNPJ) {
			return domain.SignUpAttributes{}, i18n.MsgInvalidCNPJ
		}
		if validation.Digits(in.ClubPhone) == "" {
			return domain.SignUpAttributes{}, i18n.MsgPhoneRequired
		}
		return domain.SignUpAttributes{
			UserType: domain.UserTypeClub,
			Club: &domain.ClubProfile{
				LegalName: strings.TrimSpace(in.ClubName),
				CNPJ:      validation.FormatCNPJ(in.CNPJ),
				Phone:     validation.FormatPhone(in.ClubPhone),
			},
		}, ""
	default:
		if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
			return domain.SignUpAttributes{}, i18n.MsgAthleteNameNeeded
		}
		if validation.Digits(in.Phone) == "" {
			return domain.SignUpAttributes{}, i18n.MsgPhoneRequired
		}
		return domain.SignUpAttributes{
			UserType: domain.UserTypeAthlete,
			Athlete: &domain.AthleteProfile{
				FirstName: strings.TrimSpace(in.FirstName),
				LastName:  strings.TrimSpace(in.LastName),
				Phone:     validation.FormatPhone(in.Phone),
			},
		}, ""
	}
}
