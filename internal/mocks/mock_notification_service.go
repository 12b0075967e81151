package mocks

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendSMSFunc   func(to, message string) error
	SendEmailFunc func(to, subject, body string) error

	// SentEmails and SentSMS record every message sent through the
	// default behaviors.
	SentEmails []SentEmail
	SentSMS    []SentSMS
}

// SentEmail is one recorded SendEmail call.
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// SentSMS is one recorded SendSMS call.
type SentSMS struct {
	To      string
	Message string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS sends an SMS
func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	m.SentSMS = append(m.SentSMS, SentSMS{To: to, Message: message})
	return nil
}

// SendEmail sends an email
func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	m.SentEmails = append(m.SentEmails, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}
