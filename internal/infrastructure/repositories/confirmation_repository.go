package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/padelsvc/domain"
)

// ConfirmationRepositoryImpl implements domain.ConfirmationRepository using
// Redis. Tokens are one-shot: Consume deletes on success.
type ConfirmationRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewConfirmationRepository creates a new confirmation repository
func NewConfirmationRepository(client *redis.Client, ttl time.Duration) domain.ConfirmationRepository {
	return &ConfirmationRepositoryImpl{
		client: client,
		prefix: "confirm:",
		ttl:    ttl,
	}
}

// Create implements domain.ConfirmationRepository
func (r *ConfirmationRepositoryImpl) Create(ctx context.Context, token, accountID string) error {
	return r.client.Set(ctx, r.prefix+token, accountID, r.ttl).Err()
}

// Consume implements domain.ConfirmationRepository
func (r *ConfirmationRepositoryImpl) Consume(ctx context.Context, token string) (string, error) {
	key := r.prefix + token
	accountID, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", domain.ErrConfirmationNotFound
		}
		return "", err
	}
	r.client.Del(ctx, key)
	return accountID, nil
}
