package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/padelsvc/domain"
	"github.com/you/padelsvc/internal/config"
	"github.com/you/padelsvc/internal/infrastructure/auth"
	"github.com/you/padelsvc/internal/infrastructure/backend"
	"github.com/you/padelsvc/internal/infrastructure/database"
	"github.com/you/padelsvc/internal/infrastructure/notifications"
	"github.com/you/padelsvc/internal/infrastructure/repositories"
	"github.com/you/padelsvc/internal/logger"
	"github.com/you/padelsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Log         *logger.Logger

	// Repositories
	AccountRepo      domain.AccountRepository
	ProfileRepo      domain.ProfileRepository
	SessionRepo      domain.SessionRepository
	ConfirmationRepo domain.ConfirmationRepository
	DraftRepo        domain.DraftRepository
	TournamentRepo   domain.TournamentRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	Backend         domain.AuthBackend
	TournamentSvc   *services.TournamentService
	DraftSvc        *services.DraftService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg, Log: logger.New(0)}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)
	c.ProfileRepo = repositories.NewProfileRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.SessionTTL)
	c.ConfirmationRepo = repositories.NewConfirmationRepository(c.RedisClient, c.Config.ConfirmationTTL)
	c.DraftRepo = repositories.NewDraftRepository(c.RedisClient, c.Config.DraftTTL)
	c.TournamentRepo = repositories.NewTournamentRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)

	c.Backend = backend.NewGateway(
		c.AccountRepo,
		c.ProfileRepo,
		c.SessionRepo,
		c.ConfirmationRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.NotificationSvc,
		c.Log,
		c.Config.SessionTTL,
		c.Config.ConfirmationURL,
	)
	c.TournamentSvc = services.NewTournamentService(c.TournamentRepo)
	c.DraftSvc = services.NewDraftService(c.DraftRepo)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
