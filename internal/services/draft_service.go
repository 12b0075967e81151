package services

import (
	"context"

	"github.com/you/padelsvc/domain"
)

// draftPayloadLimit bounds a single draft payload (bytes).
const draftPayloadLimit = 64 * 1024

// DraftService fronts the draft cache. Drafts carry the repository's TTL
// staleness policy and are never treated as a source of truth.
type DraftService struct {
	repo domain.DraftRepository
}

// NewDraftService creates a new draft service.
func NewDraftService(repo domain.DraftRepository) *DraftService {
	return &DraftService{repo: repo}
}

// Save stores payload under the identity's slot for kind.
func (s *DraftService) Save(ctx context.Context, identityID string, kind domain.DraftKind, payload string) error {
	if !domain.KnownDraftKind(kind) {
		return domain.ErrUnknownDraftKind
	}
	if len(payload) > draftPayloadLimit {
		return domain.ErrDraftPayloadLimit
	}
	return s.repo.Save(ctx, identityID, kind, payload)
}

// Load returns the cached payload, or ErrDraftNotFound when the slot is
// empty or the draft aged out.
func (s *DraftService) Load(ctx context.Context, identityID string, kind domain.DraftKind) (string, error) {
	if !domain.KnownDraftKind(kind) {
		return "", domain.ErrUnknownDraftKind
	}
	return s.repo.Load(ctx, identityID, kind)
}

// Discard drops the cached payload for kind.
func (s *DraftService) Discard(ctx context.Context, identityID string, kind domain.DraftKind) error {
	if !domain.KnownDraftKind(kind) {
		return domain.ErrUnknownDraftKind
	}
	return s.repo.Delete(ctx, identityID, kind)
}
