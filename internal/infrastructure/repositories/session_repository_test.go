package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/you/padelsvc/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() { mr.Close() })

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return client, mr
}

func testSession(id string) *domain.AuthSession {
	return &domain.AuthSession{
		ID:         id,
		IdentityID: "id-1",
		Email:      "usuario@exemplo.com",
		UserType:   domain.UserTypeAthlete,
		ExpiresAt:  time.Now().Add(time.Hour),
		CreatedAt:  time.Now(),
	}
}

func TestSessionRepository_CreateAndFind(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := testSession("session-1")
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.FindByID(ctx, "session-1")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.IdentityID != session.IdentityID {
		t.Errorf("IdentityID = %q, want %q", found.IdentityID, session.IdentityID)
	}
	if found.UserType != domain.UserTypeAthlete {
		t.Errorf("UserType = %q, want athlete", found.UserType)
	}
}

func TestSessionRepository_FindMissing(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	if _, err := repo.FindByID(context.Background(), "nope"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepository_ExpiredSessionIsDeleted(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := testSession("session-1")
	session.ExpiresAt = time.Now().Add(-time.Minute)
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, "session-1"); !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}

	// The stale record was removed, so a second lookup is a plain miss.
	if _, err := repo.FindByID(ctx, "session-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after cleanup, got %v", err)
	}
}

func TestSessionRepository_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	if err := repo.Create(ctx, testSession("session-1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Delete(ctx, "session-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, "session-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestSessionRepository_RedisTTLSet(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	if err := repo.Create(context.Background(), testSession("session-1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if ttl := mr.TTL("session:session-1"); ttl != time.Hour {
		t.Errorf("redis TTL = %v, want %v", ttl, time.Hour)
	}
}
