package domain

import (
	"errors"
	"fmt"
)

// Authentication errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

// Profile errors
var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrUserTypeImmutable = errors.New("profile variant cannot change")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Confirmation errors
var (
	ErrConfirmationNotFound = errors.New("confirmation token not found")
)

// Draft errors
var (
	ErrDraftNotFound     = errors.New("draft not found")
	ErrUnknownDraftKind  = errors.New("unknown draft kind")
	ErrDraftPayloadLimit = errors.New("draft payload too large")
)

// Tournament errors
var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrNotTournamentOwner = errors.New("tournament belongs to another club")
)

// Known backend error codes, as reported on BackendError.Code.
const (
	BackendCodeEmailInvalid       = "email_address_invalid"
	BackendCodeInvalidCredentials = "invalid_credentials"
	BackendCodeUserAlreadyExists  = "user_already_exists"
	BackendCodeWeakPassword       = "weak_password"
)

// BackendError is a failure reported by the auth backend. It may carry a
// structured code, a free-text message, or both.
type BackendError struct {
	Code    string
	Message string
}

func (e *BackendError) Error() string {
	if e.Code != "" && e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Message != "" {
		return e.Message
	}
	return "backend error"
}

// AsBackendError extracts a BackendError from err's chain, if present.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
