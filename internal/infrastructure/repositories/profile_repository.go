package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/you/padelsvc/domain"
	"gorm.io/gorm"
)

// ProfileRepositoryImpl implements domain.ProfileRepository using GORM
type ProfileRepositoryImpl struct {
	db *gorm.DB
}

// DBProfile represents the database model for Profile. Both variants share
// one table; user_type decides which columns are meaningful.
type DBProfile struct {
	ID       string `gorm:"primaryKey;size:36"`
	Email    string `gorm:"index;size:255"`
	UserType string `gorm:"index;size:16"`

	// athlete columns
	FirstName string `gorm:"size:128"`
	LastName  string `gorm:"size:128"`
	Nickname  string `gorm:"size:64"`
	BirthDate string `gorm:"size:10"`
	Bio       string
	Sports    string `gorm:"type:text"` // JSON array
	Rackets   string `gorm:"type:text"` // JSON array
	Instagram string `gorm:"size:64"`

	// club columns
	LegalName     string `gorm:"size:255"`
	TradeName     string `gorm:"size:255"`
	CNPJ          string `gorm:"column:cnpj;size:18"`
	Street        string `gorm:"size:255"`
	CEP           string `gorm:"column:cep;size:9"`
	Description   string
	CoveredCourts bool
	Parking       bool
	Bar           bool

	// shared columns
	Phone string `gorm:"size:17"`
	City  string `gorm:"size:128"`
	State string `gorm:"size:64"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBProfile) TableName() string {
	return "profiles"
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) domain.ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// Create implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *domain.Profile) error {
	return r.db.WithContext(ctx).Create(profileToDB(profile)).Error
}

// FindByID implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	var dbProfile DBProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProfile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profileToDomain(&dbProfile), nil
}

// Update implements domain.ProfileRepository. The variant tag never
// changes: the stored user_type always wins.
func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *domain.Profile) error {
	var existing DBProfile
	err := r.db.WithContext(ctx).Where("id = ?", profile.ID).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.ErrProfileNotFound
		}
		return err
	}
	if existing.UserType != string(profile.UserType) {
		return domain.ErrUserTypeImmutable
	}
	dbProfile := profileToDB(profile)
	dbProfile.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(dbProfile).Error
}

func profileToDB(p *domain.Profile) *DBProfile {
	db := &DBProfile{
		ID:       p.ID,
		Email:    p.Email,
		UserType: string(p.UserType),
	}
	if p.Athlete != nil {
		db.FirstName = p.Athlete.FirstName
		db.LastName = p.Athlete.LastName
		db.Nickname = p.Athlete.Nickname
		db.BirthDate = p.Athlete.BirthDate
		db.Bio = p.Athlete.Bio
		db.Sports = marshalList(p.Athlete.Sports)
		db.Rackets = marshalList(p.Athlete.Rackets)
		db.Instagram = p.Athlete.Instagram
		db.Phone = p.Athlete.Phone
		db.City = p.Athlete.City
		db.State = p.Athlete.State
	}
	if p.Club != nil {
		db.LegalName = p.Club.LegalName
		db.TradeName = p.Club.TradeName
		db.CNPJ = p.Club.CNPJ
		db.Street = p.Club.Street
		db.CEP = p.Club.CEP
		db.Description = p.Club.Description
		db.CoveredCourts = p.Club.CoveredCourts
		db.Parking = p.Club.Parking
		db.Bar = p.Club.Bar
		db.Phone = p.Club.Phone
		db.City = p.Club.City
		db.State = p.Club.State
	}
	return db
}

func profileToDomain(db *DBProfile) *domain.Profile {
	p := &domain.Profile{
		ID:        db.ID,
		Email:     db.Email,
		UserType:  domain.UserType(db.UserType),
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}
	switch p.UserType {
	case domain.UserTypeClub:
		p.Club = &domain.ClubProfile{
			LegalName:     db.LegalName,
			TradeName:     db.TradeName,
			CNPJ:          db.CNPJ,
			Phone:         db.Phone,
			Street:        db.Street,
			City:          db.City,
			State:         db.State,
			CEP:           db.CEP,
			Description:   db.Description,
			CoveredCourts: db.CoveredCourts,
			Parking:       db.Parking,
			Bar:           db.Bar,
		}
	default:
		p.Athlete = &domain.AthleteProfile{
			FirstName: db.FirstName,
			LastName:  db.LastName,
			Nickname:  db.Nickname,
			BirthDate: db.BirthDate,
			City:      db.City,
			State:     db.State,
			Bio:       db.Bio,
			Phone:     db.Phone,
			Sports:    unmarshalList(db.Sports),
			Rackets:   unmarshalList(db.Rackets),
			Instagram: db.Instagram,
		}
	}
	return p
}

func marshalList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func unmarshalList(data string) []string {
	if data == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil
	}
	return items
}
