package mocks

import (
	"context"

	"github.com/you/padelsvc/domain"
)

// MockConfirmationRepository implements domain.ConfirmationRepository interface for testing
type MockConfirmationRepository struct {
	CreateFunc  func(ctx context.Context, token, accountID string) error
	ConsumeFunc func(ctx context.Context, token string) (string, error)
}

// NewMockConfirmationRepository creates a new MockConfirmationRepository with default behaviors
func NewMockConfirmationRepository() *MockConfirmationRepository {
	return &MockConfirmationRepository{}
}

// Create stores a confirmation token
func (m *MockConfirmationRepository) Create(ctx context.Context, token, accountID string) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token, accountID)
	}
	return nil
}

// Consume resolves and invalidates a confirmation token
func (m *MockConfirmationRepository) Consume(ctx context.Context, token string) (string, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, token)
	}
	// Default behavior: unknown token
	return "", domain.ErrConfirmationNotFound
}
