package repositories

import (
	"context"
	"time"

	"github.com/you/padelsvc/domain"
	"gorm.io/gorm"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID             string `gorm:"primaryKey;size:36"`
	Email          string `gorm:"uniqueIndex;size:255"`
	PasswordHash   string `gorm:"column:password"`
	UserType       string `gorm:"index;size:16"`
	EmailConfirmed bool   `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	return r.db.WithContext(ctx).Create(accountToDB(account)).Error
}

// FindByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return accountToDomain(&dbAccount), nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return accountToDomain(&dbAccount), nil
}

// ConfirmEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) ConfirmEmail(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", id).Update("email_confirmed", true).Error
}

func accountToDB(a *domain.Account) *DBAccount {
	return &DBAccount{
		ID:             a.ID,
		Email:          a.Email,
		PasswordHash:   a.PasswordHash,
		UserType:       string(a.UserType),
		EmailConfirmed: a.EmailConfirmed,
	}
}

func accountToDomain(a *DBAccount) *domain.Account {
	return &domain.Account{
		ID:             a.ID,
		Email:          a.Email,
		PasswordHash:   a.PasswordHash,
		UserType:       domain.UserType(a.UserType),
		EmailConfirmed: a.EmailConfirmed,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
