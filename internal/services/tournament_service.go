package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/you/padelsvc/domain"
)

// Tournament validation errors, surfaced as-is by the HTTP layer.
var (
	ErrTournamentNameRequired  = errors.New("tournament name is required")
	ErrTournamentVenueRequired = errors.New("tournament venue is required")
	ErrTournamentDatesInvalid  = errors.New("tournament end date precedes start date")
)

// TournamentService implements tournament discovery and club-side listing
// management. Bracket generation and payments are out of scope.
type TournamentService struct {
	repo domain.TournamentRepository
}

// NewTournamentService creates a new tournament service.
func NewTournamentService(repo domain.TournamentRepository) *TournamentService {
	return &TournamentService{repo: repo}
}

// ListOpen returns tournaments currently accepting entries.
func (s *TournamentService) ListOpen(ctx context.Context) ([]*domain.Tournament, error) {
	return s.repo.ListOpen(ctx)
}

// ListByClub returns every tournament owned by clubID.
func (s *TournamentService) ListByClub(ctx context.Context, clubID string) ([]*domain.Tournament, error) {
	return s.repo.ListByClub(ctx, clubID)
}

// GetByID returns one tournament.
func (s *TournamentService) GetByID(ctx context.Context, id string) (*domain.Tournament, error) {
	return s.repo.FindByID(ctx, id)
}

// Create registers a new listing owned by clubID.
func (s *TournamentService) Create(ctx context.Context, clubID string, t *domain.Tournament) (*domain.Tournament, error) {
	if err := validateTournament(t); err != nil {
		return nil, err
	}
	t.ID = uuid.NewString()
	t.ClubID = clubID
	t.Status = domain.TournamentOpen
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return t, nil
}

// Update mutates an existing listing. Only the owning club may update it.
func (s *TournamentService) Update(ctx context.Context, clubID string, t *domain.Tournament) (*domain.Tournament, error) {
	existing, err := s.repo.FindByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	if existing.ClubID != clubID {
		return nil, domain.ErrNotTournamentOwner
	}
	if err := validateTournament(t); err != nil {
		return nil, err
	}
	t.ClubID = existing.ClubID
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now()
	if t.Status == "" {
		t.Status = existing.Status
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update tournament: %w", err)
	}
	return t, nil
}

func validateTournament(t *domain.Tournament) error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrTournamentNameRequired
	}
	if strings.TrimSpace(t.Venue) == "" {
		return ErrTournamentVenueRequired
	}
	if !t.EndDate.IsZero() && t.EndDate.Before(t.StartDate) {
		return ErrTournamentDatesInvalid
	}
	return nil
}
