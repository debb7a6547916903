package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/application/identity"
	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/permission"
	"github.com/orris-inc/helpdesk/internal/infrastructure/session"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and middlewares of the helpdesk, wired together once at startup.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Auth infrastructure
	enforcer *permission.Enforcer
	sessions *session.Manager
	hasher   *auth.BcryptPasswordHasher
	resolver *identity.Resolver

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter
}

// NewContainer builds every component in dependency order. Configuration errors
// surface here so the server never starts half wired.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Auth - casbin roles, session cookies, password hashing
	if err := c.initAuth(); err != nil {
		return nil, err
	}

	// Section 3: Use cases
	c.ucs = newUseCases(c)

	// Section 4: Handlers and middlewares
	c.hdlrs = newHandlers(c)
	c.initMiddlewares()

	return c, nil
}

// GetEngine returns the gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Shutdown releases the connections owned by the container. The database
// handle belongs to the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close Redis client", "error", err)
		}
	}
}
