package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/you/padelsvc/domain"
	"github.com/you/padelsvc/internal/i18n"
	"github.com/you/padelsvc/internal/mocks"
)

func flowError(t *testing.T, err error) *FlowError {
	t.Helper()
	var fe *FlowError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FlowError, got %T: %v", err, err)
	}
	return fe
}

func TestAuthFlow_SignIn_LocalValidation(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		expectedMsg string
	}{
		{
			name:        "short password never reaches backend",
			email:       "usuario@exemplo.com",
			password:    "abc",
			expectedMsg: i18n.MsgPasswordBounds,
		},
		{
			name:        "invalid email never reaches backend",
			email:       "user@dominio",
			password:    "password123",
			expectedMsg: i18n.MsgInvalidEmail,
		},
		{
			name:        "empty email",
			email:       "",
			password:    "password123",
			expectedMsg: i18n.MsgInvalidEmail,
		},
		{
			name:        "double dot email",
			email:       "a..b@exemplo.com",
			password:    "password123",
			expectedMsg: i18n.MsgInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := mocks.NewMockAuthBackend()
			flow := NewAuthFlow(backend, nil)

			_, err := flow.SignIn(context.Background(), tt.email, tt.password)
			fe := flowError(t, err)

			if !fe.Local() {
				t.Error("expected a local validation failure")
			}
			if fe.Message != tt.expectedMsg {
				t.Errorf("message = %q, want %q", fe.Message, tt.expectedMsg)
			}
			if backend.SignInCalls != 0 {
				t.Errorf("backend was called %d times, want 0", backend.SignInCalls)
			}
			if flow.State() != FlowIdle {
				t.Errorf("flow state = %q, want %q", flow.State(), FlowIdle)
			}
		})
	}
}

func TestAuthFlow_SignIn_SanitizesBeforeSubmit(t *testing.T) {
	backend := mocks.NewMockAuthBackend()
	var submittedEmail string
	backend.SignInFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
		submittedEmail = email
		return &domain.AuthResult{Identity: &domain.Identity{ID: "id-1"}}, nil
	}

	flow := NewAuthFlow(backend, nil)
	if _, err := flow.SignIn(context.Background(), "  Usuario@Exemplo.COM ", "password123"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	if submittedEmail != "usuario@exemplo.com" {
		t.Errorf("backend saw email %q, want sanitized form", submittedEmail)
	}
}

func TestAuthFlow_SignIn_NormalizesBackendFailure(t *testing.T) {
	backend := mocks.NewMockAuthBackend()
	backend.SignInFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
		return nil, &domain.BackendError{Code: domain.BackendCodeInvalidCredentials, Message: "Invalid login credentials"}
	}

	flow := NewAuthFlow(backend, nil)
	_, err := flow.SignIn(context.Background(), "usuario@exemplo.com", "wrongpassword")
	fe := flowError(t, err)

	if fe.Local() {
		t.Error("expected a backend failure, got local")
	}
	if fe.Message != i18n.MsgInvalidCredentials {
		t.Errorf("message = %q, want %q", fe.Message, i18n.MsgInvalidCredentials)
	}
	if flow.State() != FlowIdle {
		t.Errorf("flow state = %q, want %q after failure", flow.State(), FlowIdle)
	}
}

func TestAuthFlow_SignIn_RefreshesStoreProfileBeforeReturn(t *testing.T) {
	profile := &domain.Profile{
		ID:       "id-1",
		Email:    "usuario@exemplo.com",
		UserType: domain.UserTypeAthlete,
		Athlete:  &domain.AthleteProfile{FirstName: "Ana", LastName: "Souza"},
	}

	backend := mocks.NewMockAuthBackend()
	backend.SignInFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
		return &domain.AuthResult{
			Identity:  &domain.Identity{ID: "id-1", Email: email, UserType: domain.UserTypeAthlete},
			SessionID: "session-1",
		}, nil
	}
	backend.GetProfileFunc = func(ctx context.Context, identityID string) (*domain.Profile, error) {
		return profile, nil
	}
	backend.CurrentUserFunc = func(ctx context.Context, sessionID string) (*domain.Identity, error) {
		return nil, nil
	}

	store := NewSessionStore(backend)
	if err := store.Init(context.Background(), ""); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	// The store has no identity until a sign-in broadcast or explicit
	// refresh; simulate the broadcast wiring the mock omits.
	backend.OnAuthStateChangeFunc = nil
	store.handleAuthChange(domain.AuthSignedIn, &domain.AuthSession{
		ID: "session-1", IdentityID: "id-1", Email: "usuario@exemplo.com", UserType: domain.UserTypeAthlete,
	})

	flow := NewAuthFlow(backend, store)
	if _, err := flow.SignIn(context.Background(), "usuario@exemplo.com", "password123"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	got := store.Profile()
	if got == nil || got.Athlete == nil || got.Athlete.FirstName != "Ana" {
		t.Errorf("store profile not refreshed before SignIn returned: %+v", got)
	}
}

func TestAuthFlow_SignUp_LocalValidation(t *testing.T) {
	valid := SignUpInput{
		Email:           "clube@exemplo.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		UserType:        domain.UserTypeClub,
		ClubName:        "Clube Padel Azul",
		CNPJ:            "12345678000199",
		ClubPhone:       "11999998888",
	}

	tests := []struct {
		name        string
		mutate      func(in *SignUpInput)
		expectedMsg string
	}{
		{
			name:        "password confirmation mismatch",
			mutate:      func(in *SignUpInput) { in.ConfirmPassword = "different123" },
			expectedMsg: i18n.MsgPasswordMismatch,
		},
		{
			name:        "missing profile type",
			mutate:      func(in *SignUpInput) { in.UserType = "" },
			expectedMsg: i18n.MsgProfileTypeNeeded,
		},
		{
			name:        "club without name",
			mutate:      func(in *SignUpInput) { in.ClubName = "  " },
			expectedMsg: i18n.MsgClubNameRequired,
		},
		{
			name:        "club with short cnpj",
			mutate:      func(in *SignUpInput) { in.CNPJ = "123456" },
			expectedMsg: i18n.MsgInvalidCNPJ,
		},
		{
			name:        "club without phone",
			mutate:      func(in *SignUpInput) { in.ClubPhone = "" },
			expectedMsg: i18n.MsgPhoneRequired,
		},
		{
			name:        "short password",
			mutate:      func(in *SignUpInput) { in.Password = "abc"; in.ConfirmPassword = "abc" },
			expectedMsg: i18n.MsgPasswordBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := mocks.NewMockAuthBackend()
			flow := NewAuthFlow(backend, nil)

			in := valid
			tt.mutate(&in)

			_, err := flow.SignUp(context.Background(), in)
			fe := flowError(t, err)

			if !fe.Local() {
				t.Error("expected a local validation failure")
			}
			if fe.Message != tt.expectedMsg {
				t.Errorf("message = %q, want %q", fe.Message, tt.expectedMsg)
			}
			if backend.SignUpCalls != 0 {
				t.Errorf("backend was called %d times, want 0", backend.SignUpCalls)
			}
		})
	}
}

func TestAuthFlow_SignUp_AthleteVariant(t *testing.T) {
	backend := mocks.NewMockAuthBackend()
	var submitted domain.SignUpAttributes
	backend.SignUpFunc = func(ctx context.Context, email, password string, attrs domain.SignUpAttributes) (*domain.SignUpResult, error) {
		submitted = attrs
		return &domain.SignUpResult{
			Identity:             &domain.Identity{ID: "id-1", Email: email, UserType: attrs.UserType},
			ConfirmationRequired: true,
		}, nil
	}

	flow := NewAuthFlow(backend, nil)
	result, err := flow.SignUp(context.Background(), SignUpInput{
		Email:           "atleta@exemplo.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		UserType:        domain.UserTypeAthlete,
		FirstName:       " Ana ",
		LastName:        " Souza ",
		Phone:           "11999998888",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	if !result.ConfirmationRequired {
		t.Error("expected confirmation to be required")
	}
	if submitted.Athlete == nil {
		t.Fatal("athlete attributes missing")
	}
	if submitted.Athlete.FirstName != "Ana" || submitted.Athlete.LastName != "Souza" {
		t.Errorf("names not trimmed: %+v", submitted.Athlete)
	}
	if submitted.Athlete.Phone != "(11) 9 9999-8888" {
		t.Errorf("phone = %q, want masked form", submitted.Athlete.Phone)
	}
}

func TestAuthFlow_SignUp_ClubVariantMasksFields(t *testing.T) {
	backend := mocks.NewMockAuthBackend()
	var submitted domain.SignUpAttributes
	backend.SignUpFunc = func(ctx context.Context, email, password string, attrs domain.SignUpAttributes) (*domain.SignUpResult, error) {
		submitted = attrs
		return &domain.SignUpResult{Identity: &domain.Identity{ID: "id-1"}, ConfirmationRequired: true}, nil
	}

	flow := NewAuthFlow(backend, nil)
	_, err := flow.SignUp(context.Background(), SignUpInput{
		Email:           "clube@exemplo.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		UserType:        domain.UserTypeClub,
		ClubName:        "Clube Padel Azul",
		CNPJ:            "12345678000199",
		ClubPhone:       "11999998888",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	if submitted.Club == nil {
		t.Fatal("club attributes missing")
	}
	if submitted.Club.CNPJ != "12.345.678/0001-99" {
		t.Errorf("cnpj = %q, want masked form", submitted.Club.CNPJ)
	}
	if submitted.Club.Phone != "(11) 9 9999-8888" {
		t.Errorf("phone = %q, want masked form", submitted.Club.Phone)
	}
}

func TestAuthFlow_RejectsConcurrentSubmission(t *testing.T) {
	backend := mocks.NewMockAuthBackend()
	release := make(chan struct{})
	started := make(chan struct{})
	backend.SignInFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
		close(started)
		<-release
		return &domain.AuthResult{Identity: &domain.Identity{ID: "id-1"}}, nil
	}

	flow := NewAuthFlow(backend, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = flow.SignIn(context.Background(), "usuario@exemplo.com", "password123")
	}()

	<-started
	_, err := flow.SignIn(context.Background(), "usuario@exemplo.com", "password123")
	if !errors.Is(err, domain.ErrSubmissionInFlight) {
		t.Errorf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(release)
	wg.Wait()

	if flow.State() != FlowIdle {
		t.Errorf("flow state = %q, want %q after completion", flow.State(), FlowIdle)
	}
}
