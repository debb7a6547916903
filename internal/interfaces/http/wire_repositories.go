package http

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/application/identity"
	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/permission"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
	"github.com/orris-inc/helpdesk/internal/infrastructure/session"
	shareddb "github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo   *repository.UserRepository
	lookupRepo *repository.LookupRepository
	ticketRepo *repository.TicketRepository
	noteRepo   *repository.NoteRepository
	txManager  *shareddb.TransactionManager
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:   repository.NewUserRepository(db, log),
		lookupRepo: repository.NewLookupRepository(db, log),
		ticketRepo: repository.NewTicketRepository(db, log),
		noteRepo:   repository.NewNoteRepository(db, log),
		txManager:  shareddb.NewTransactionManager(db),
	}
}

func (c *Container) initInfrastructure() error {
	if c.cfg.Redis.Enabled {
		client, err := initRedis(c.cfg, c.log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	c.repos = newRepositories(c.db, c.log)
	return nil
}

func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

func (c *Container) initAuth() error {
	enforcer, err := permission.NewPersistentEnforcer(c.db, c.cfg.Auth.AdminServices, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.enforcer = enforcer

	sessions, err := session.NewManager(c.cfg.Auth.Session)
	if err != nil {
		return fmt.Errorf("failed to initialize session manager: %w", err)
	}
	c.sessions = sessions

	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.resolver = identity.NewResolver(c.repos.userRepo, c.enforcer, c.log)
	return nil
}
