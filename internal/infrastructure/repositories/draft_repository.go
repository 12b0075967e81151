package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/padelsvc/domain"
)

// DraftRepositoryImpl implements domain.DraftRepository using Redis. The
// TTL is the declared staleness policy: a draft older than ttl is gone and
// callers fall back to the backend record.
type DraftRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewDraftRepository creates a new draft repository
func NewDraftRepository(client *redis.Client, ttl time.Duration) domain.DraftRepository {
	return &DraftRepositoryImpl{
		client: client,
		prefix: "draft:",
		ttl:    ttl,
	}
}

func (r *DraftRepositoryImpl) key(identityID string, kind domain.DraftKind) string {
	return fmt.Sprintf("%s%s:%s", r.prefix, identityID, kind)
}

// Save implements domain.DraftRepository. Every save restarts the TTL.
func (r *DraftRepositoryImpl) Save(ctx context.Context, identityID string, kind domain.DraftKind, payload string) error {
	return r.client.Set(ctx, r.key(identityID, kind), payload, r.ttl).Err()
}

// Load implements domain.DraftRepository
func (r *DraftRepositoryImpl) Load(ctx context.Context, identityID string, kind domain.DraftKind) (string, error) {
	data, err := r.client.Get(ctx, r.key(identityID, kind)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", domain.ErrDraftNotFound
		}
		return "", err
	}
	return data, nil
}

// Delete implements domain.DraftRepository
func (r *DraftRepositoryImpl) Delete(ctx context.Context, identityID string, kind domain.DraftKind) error {
	return r.client.Del(ctx, r.key(identityID, kind)).Err()
}
