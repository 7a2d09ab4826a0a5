package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/shared/events"
	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/metrics"
	"github.com/orris-inc/helpdesk/internal/infrastructure/permission"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases
// and handlers of the API and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware // nil when rate limiting is off

	dispatcher *events.Dispatcher
	metrics    *metrics.Metrics
	enforcer   *permission.Enforcer
}

// NewContainer builds every component of the API. Redis is optional and only
// connected when a host is configured.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, metrics, event dispatch, repositories
	c.initInfrastructure()

	// Section 2: Authorization - casbin role matrix
	if err := c.initPermissions(); err != nil {
		return nil, err
	}

	// Section 3: Services, use cases and event subscribers
	c.svcs = newServices(c.cfg)
	c.ucs = newUseCases(c.repos, c.svcs, c.dispatcher, c.log)
	c.initSubscribers()

	// Section 4: Handlers and middlewares
	c.hdlrs = newHandlers(c.ucs, c.cfg, c.db, c.log)
	c.initMiddlewares()

	return c, nil
}

func (c *Container) initInfrastructure() {
	if c.cfg.Redis.Host != "" {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
	}

	c.metrics = metrics.New()
	c.dispatcher = events.NewDispatcher()
	c.repos = newRepositories(c.db, c.log)
}

func (c *Container) initPermissions() error {
	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SeedPolicies(); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.enforcer = enforcer
	return nil
}

func (c *Container) initSubscribers() {
	c.metrics.Register(c.dispatcher)
	c.svcs.notifier(c.repos, c.log).Register(c.dispatcher)
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.ucs.authenticate, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)

	if c.cfg.RateLimit.Enabled {
		if limiter := c.svcs.rateLimiter(c.redis); limiter != nil {
			c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(limiter, c.metrics.RateLimited, c.log)
		} else {
			c.log.Warnw("rate limiting is enabled but redis is not configured, skipping")
		}
	}
}

// Shutdown releases connections owned by the container. The database handle
// belongs to the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
