package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/you/padelsvc/domain"
	"github.com/you/padelsvc/internal/mocks"
)

func TestDraftService_Save(t *testing.T) {
	tests := []struct {
		name          string
		kind          domain.DraftKind
		payload       string
		expectedError error
	}{
		{
			name:    "club registration draft",
			kind:    domain.DraftClubRegistration,
			payload: `{"club_name":"Clube Azul"}`,
		},
		{
			name:    "settings draft",
			kind:    domain.DraftSettings,
			payload: `{"theme":"dark"}`,
		},
		{
			name:          "unknown kind",
			kind:          "shopping_cart",
			payload:       "{}",
			expectedError: domain.ErrUnknownDraftKind,
		},
		{
			name:          "oversized payload",
			kind:          domain.DraftAthleteRegistration,
			payload:       strings.Repeat("x", 64*1024+1),
			expectedError: domain.ErrDraftPayloadLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockDraftRepository()
			saved := false
			repo.SaveFunc = func(ctx context.Context, identityID string, kind domain.DraftKind, payload string) error {
				saved = true
				return nil
			}

			svc := NewDraftService(repo)
			err := svc.Save(context.Background(), "id-1", tt.kind, tt.payload)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("Save error = %v, want %v", err, tt.expectedError)
				}
				if saved {
					t.Error("repository should not be reached on rejected input")
				}
				return
			}
			if err != nil {
				t.Errorf("Save failed: %v", err)
			}
			if !saved {
				t.Error("repository was not called")
			}
		})
	}
}

func TestDraftService_Load(t *testing.T) {
	repo := mocks.NewMockDraftRepository()
	repo.LoadFunc = func(ctx context.Context, identityID string, kind domain.DraftKind) (string, error) {
		if kind == domain.DraftSettings {
			return `{"theme":"dark"}`, nil
		}
		return "", domain.ErrDraftNotFound
	}
	svc := NewDraftService(repo)

	payload, err := svc.Load(context.Background(), "id-1", domain.DraftSettings)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if payload != `{"theme":"dark"}` {
		t.Errorf("payload = %q", payload)
	}

	if _, err := svc.Load(context.Background(), "id-1", domain.DraftClubRegistration); !errors.Is(err, domain.ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound, got %v", err)
	}
	if _, err := svc.Load(context.Background(), "id-1", "bogus"); !errors.Is(err, domain.ErrUnknownDraftKind) {
		t.Errorf("expected ErrUnknownDraftKind, got %v", err)
	}
}

func TestDraftService_Discard(t *testing.T) {
	repo := mocks.NewMockDraftRepository()
	deleted := false
	repo.DeleteFunc = func(ctx context.Context, identityID string, kind domain.DraftKind) error {
		deleted = true
		return nil
	}
	svc := NewDraftService(repo)

	if err := svc.Discard(context.Background(), "id-1", domain.DraftSettings); err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if !deleted {
		t.Error("repository was not called")
	}

	if err := svc.Discard(context.Background(), "id-1", "bogus"); !errors.Is(err, domain.ErrUnknownDraftKind) {
		t.Errorf("expected ErrUnknownDraftKind, got %v", err)
	}
}
