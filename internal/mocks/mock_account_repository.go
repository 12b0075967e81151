package mocks

import (
	"context"

	"github.com/you/padelsvc/domain"
)

// MockAccountRepository implements domain.AccountRepository interface for testing
type MockAccountRepository struct {
	CreateFunc       func(ctx context.Context, account *domain.Account) error
	FindByEmailFunc  func(ctx context.Context, email string) (*domain.Account, error)
	FindByIDFunc     func(ctx context.Context, id string) (*domain.Account, error)
	ConfirmEmailFunc func(ctx context.Context, id string) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// Create creates a new account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

// FindByEmail finds an account by email
func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// FindByID finds an account by ID
func (m *MockAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrAccountNotFound
}

// ConfirmEmail marks the account's email confirmed
func (m *MockAccountRepository) ConfirmEmail(ctx context.Context, id string) error {
	if m.ConfirmEmailFunc != nil {
		return m.ConfirmEmailFunc(ctx, id)
	}
	return nil
}
