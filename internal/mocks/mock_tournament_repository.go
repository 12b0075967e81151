package mocks

import (
	"context"

	"github.com/you/padelsvc/domain"
)

// MockTournamentRepository implements domain.TournamentRepository interface for testing
type MockTournamentRepository struct {
	CreateFunc     func(ctx context.Context, t *domain.Tournament) error
	FindByIDFunc   func(ctx context.Context, id string) (*domain.Tournament, error)
	ListOpenFunc   func(ctx context.Context) ([]*domain.Tournament, error)
	ListByClubFunc func(ctx context.Context, clubID string) ([]*domain.Tournament, error)
	UpdateFunc     func(ctx context.Context, t *domain.Tournament) error
}

// NewMockTournamentRepository creates a new MockTournamentRepository with default behaviors
func NewMockTournamentRepository() *MockTournamentRepository {
	return &MockTournamentRepository{}
}

// Create creates a new tournament
func (m *MockTournamentRepository) Create(ctx context.Context, t *domain.Tournament) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

// FindByID finds a tournament by ID
func (m *MockTournamentRepository) FindByID(ctx context.Context, id string) (*domain.Tournament, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrTournamentNotFound
}

// ListOpen lists tournaments accepting entries
func (m *MockTournamentRepository) ListOpen(ctx context.Context) ([]*domain.Tournament, error) {
	if m.ListOpenFunc != nil {
		return m.ListOpenFunc(ctx)
	}
	return nil, nil
}

// ListByClub lists tournaments owned by a club
func (m *MockTournamentRepository) ListByClub(ctx context.Context, clubID string) ([]*domain.Tournament, error) {
	if m.ListByClubFunc != nil {
		return m.ListByClubFunc(ctx, clubID)
	}
	return nil, nil
}

// Update updates an existing tournament
func (m *MockTournamentRepository) Update(ctx context.Context, t *domain.Tournament) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}
