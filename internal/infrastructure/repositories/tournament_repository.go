package repositories

import (
	"context"
	"time"

	"github.com/you/padelsvc/domain"
	"gorm.io/gorm"
)

// TournamentRepositoryImpl implements domain.TournamentRepository using GORM
type TournamentRepositoryImpl struct {
	db *gorm.DB
}

// DBTournament represents the database model for Tournament
type DBTournament struct {
	ID          string `gorm:"primaryKey;size:36"`
	ClubID      string `gorm:"index;size:36"`
	Name        string `gorm:"size:255"`
	Description string
	Venue       string `gorm:"size:255"`
	City        string `gorm:"index;size:128"`
	State       string `gorm:"size:64"`
	StartDate   time.Time
	EndDate     time.Time
	Categories  string `gorm:"type:text"` // JSON array
	Status      string `gorm:"index;size:16"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBTournament) TableName() string {
	return "tournaments"
}

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db *gorm.DB) domain.TournamentRepository {
	return &TournamentRepositoryImpl{db: db}
}

// Create implements domain.TournamentRepository
func (r *TournamentRepositoryImpl) Create(ctx context.Context, t *domain.Tournament) error {
	return r.db.WithContext(ctx).Create(tournamentToDB(t)).Error
}

// FindByID implements domain.TournamentRepository
func (r *TournamentRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Tournament, error) {
	var dbT DBTournament
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbT).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTournamentNotFound
		}
		return nil, err
	}
	return tournamentToDomain(&dbT), nil
}

// ListOpen implements domain.TournamentRepository
func (r *TournamentRepositoryImpl) ListOpen(ctx context.Context) ([]*domain.Tournament, error) {
	var dbTs []DBTournament
	err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.TournamentOpen)).
		Order("start_date asc").
		Find(&dbTs).Error
	if err != nil {
		return nil, err
	}
	return tournamentsToDomain(dbTs), nil
}

// ListByClub implements domain.TournamentRepository
func (r *TournamentRepositoryImpl) ListByClub(ctx context.Context, clubID string) ([]*domain.Tournament, error) {
	var dbTs []DBTournament
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("start_date desc").
		Find(&dbTs).Error
	if err != nil {
		return nil, err
	}
	return tournamentsToDomain(dbTs), nil
}

// Update implements domain.TournamentRepository
func (r *TournamentRepositoryImpl) Update(ctx context.Context, t *domain.Tournament) error {
	return r.db.WithContext(ctx).Save(tournamentToDB(t)).Error
}

func tournamentToDB(t *domain.Tournament) *DBTournament {
	return &DBTournament{
		ID:          t.ID,
		ClubID:      t.ClubID,
		Name:        t.Name,
		Description: t.Description,
		Venue:       t.Venue,
		City:        t.City,
		State:       t.State,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Categories:  marshalList(t.Categories),
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func tournamentToDomain(db *DBTournament) *domain.Tournament {
	return &domain.Tournament{
		ID:          db.ID,
		ClubID:      db.ClubID,
		Name:        db.Name,
		Description: db.Description,
		Venue:       db.Venue,
		City:        db.City,
		State:       db.State,
		StartDate:   db.StartDate,
		EndDate:     db.EndDate,
		Categories:  unmarshalList(db.Categories),
		Status:      domain.TournamentStatus(db.Status),
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}
}

func tournamentsToDomain(dbTs []DBTournament) []*domain.Tournament {
	out := make([]*domain.Tournament, 0, len(dbTs))
	for i := range dbTs {
		out = append(out, tournamentToDomain(&dbTs[i]))
	}
	return out
}
