package app

import (
	"testing"
	"time"

	"github.com/you/padelsvc/internal/config"
	"github.com/you/padelsvc/internal/logger"
)

// The database and redis connections need live servers, so this exercises
// only the in-process wiring steps.
func TestContainer_WiresRepositoriesAndServices(t *testing.T) {
	cfg := &config.Config{
		RedisAddr:       "localhost:6379",
		JWTSecret:       "test-secret",
		JWTIssuer:       "padelsvc",
		AccessTTL:       15 * time.Minute,
		RefreshTTL:      168 * time.Hour,
		SessionTTL:      time.Hour,
		ConfirmationTTL: 24 * time.Hour,
		ConfirmationURL: "http://localhost:8080/auth/confirm",
		DraftTTL:        72 * time.Hour,
	}

	c := &Container{Config: cfg, Log: logger.New(0)}
	c.initRedis()
	c.initRepositories()
	c.initServices()

	if c.AccountRepo == nil || c.ProfileRepo == nil || c.SessionRepo == nil ||
		c.ConfirmationRepo == nil || c.DraftRepo == nil || c.TournamentRepo == nil {
		t.Fatal("repositories not wired")
	}
	if c.PasswordSvc == nil || c.TokenSvc == nil || c.NotificationSvc == nil {
		t.Fatal("infrastructure services not wired")
	}
	if c.Backend == nil || c.TournamentSvc == nil || c.DraftSvc == nil {
		t.Fatal("domain services not wired")
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
}

func TestContainer_CloseWithoutConnections(t *testing.T) {
	c := &Container{}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() on empty container: %v", err)
	}
}
