package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/you/padelsvc/domain"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "padelsvc", 15*time.Minute, 24*time.Hour)

	token, err := svc.GenerateAccessToken("id-1", "club", "session-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if claims.IdentityID != "id-1" {
		t.Errorf("IdentityID = %q, want id-1", claims.IdentityID)
	}
	if claims.UserType != "club" {
		t.Errorf("UserType = %q, want club", claims.UserType)
	}
	if claims.SessionID != "session-1" {
		t.Errorf("SessionID = %q, want session-1", claims.SessionID)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("expiry must be after issuance")
	}
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", "padelsvc", 15*time.Minute, 24*time.Hour)

	if _, err := svc.ValidateAccessToken("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "padelsvc", 15*time.Minute, 24*time.Hour)
	verifier := NewJWTService("secret-b", "padelsvc", 15*time.Minute, 24*time.Hour)

	token, err := issuer.GenerateAccessToken("id-1", "athlete", "session-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := verifier.ValidateAccessToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid across secrets, got %v", err)
	}
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", "padelsvc", -time.Minute, 24*time.Hour)

	token, err := svc.GenerateAccessToken("id-1", "athlete", "session-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Error("expected an expired token to be rejected")
	}
}
