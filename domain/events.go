package domain

import "time"

// AuthChangeEvent names an authentication-state transition.
type AuthChangeEvent string

const (
	AuthSignedIn       AuthChangeEvent = "SIGNED_IN"
	AuthSignedOut      AuthChangeEvent = "SIGNED_OUT"
	AuthTokenRefreshed AuthChangeEvent = "TOKEN_REFRESHED"
)

// AuditEventType defines the type of audit event.
type AuditEventType string

const (
	UserSignUpEvent        AuditEventType = "USER_SIGNED_UP"
	UserSignInEvent        AuditEventType = "USER_SIGNED_IN"
	UserSignInFailureEvent AuditEventType = "USER_SIGN_IN_FAILED"
	UserSignOutEvent       AuditEventType = "USER_SIGNED_OUT"
	EmailConfirmedEvent    AuditEventType = "EMAIL_CONFIRMED"
)

// AuditEvent represents a business event that occurred in the system.
type AuditEvent struct {
	EventType  AuditEventType `json:"event_type"`
	IdentityID string         `json:"identity_id,omitempty"`
	Email      string         `json:"email,omitempty"`
	SessionID  string         `json:"session_id,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	Success    bool           `json:"success"`
	ErrorMsg   string         `json:"error_msg,omitempty"`
}

// NewAuditEvent creates a new audit event with common fields populated.
func NewAuditEvent(eventType AuditEventType, identityID string) *AuditEvent {
	return &AuditEvent{
		EventType:  eventType,
		IdentityID: identityID,
		Timestamp:  time.Now().UTC(),
		Success:    true,
	}
}

// WithError marks the event failed and records the cause.
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithEmail sets the email field.
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

// WithSession sets the session field.
func (e *AuditEvent) WithSession(sessionID string) *AuditEvent {
	e.SessionID = sessionID
	return e
}
