package mocks

import (
	"context"

	"github.com/you/padelsvc/domain"
)

// MockProfileRepository implements domain.ProfileRepository interface for testing
type MockProfileRepository struct {
	CreateFunc   func(ctx context.Context, profile *domain.Profile) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Profile, error)
	UpdateFunc   func(ctx context.Context, profile *domain.Profile) error
}

// NewMockProfileRepository creates a new MockProfileRepository with default behaviors
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{}
}

// Create creates a new profile
func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return nil
}

// FindByID finds a profile by identity ID
func (m *MockProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrProfileNotFound
}

// Update updates an existing profile
func (m *MockProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, profile)
	}
	return nil
}
