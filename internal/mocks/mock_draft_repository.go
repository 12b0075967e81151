package mocks

import (
	"context"

	"github.com/you/padelsvc/domain"
)

// MockDraftRepository implements domain.DraftRepository interface for testing
type MockDraftRepository struct {
	SaveFunc   func(ctx context.Context, identityID string, kind domain.DraftKind, payload string) error
	LoadFunc   func(ctx context.Context, identityID string, kind domain.DraftKind) (string, error)
	DeleteFunc func(ctx context.Context, identityID string, kind domain.DraftKind) error
}

// NewMockDraftRepository creates a new MockDraftRepository with default behaviors
func NewMockDraftRepository() *MockDraftRepository {
	return &MockDraftRepository{}
}

// Save stores a draft payload
func (m *MockDraftRepository) Save(ctx context.Context, identityID string, kind domain.DraftKind, payload string) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, identityID, kind, payload)
	}
	return nil
}

// Load loads a draft payload
func (m *MockDraftRepository) Load(ctx context.Context, identityID string, kind domain.DraftKind) (string, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, identityID, kind)
	}
	// Default behavior: empty slot
	return "", domain.ErrDraftNotFound
}

// Delete drops a draft payload
func (m *MockDraftRepository) Delete(ctx context.Context, identityID string, kind domain.DraftKind) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, identityID, kind)
	}
	return nil
}
