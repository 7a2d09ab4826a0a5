package http

import (
	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/helpdesk/internal/application/notification"
	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/email"
	"github.com/orris-inc/helpdesk/internal/infrastructure/ratelimit"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/services/markdown"
)

// services holds the stateless infrastructure services shared by use cases.
type services struct {
	cfg      *config.Config
	hasher   *auth.BcryptPasswordHasher
	jwt      *auth.JWTService
	renderer markdown.Renderer
}

func newServices(cfg *config.Config) *services {
	return &services{
		cfg:      cfg,
		hasher:   auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		jwt:      auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes),
		renderer: markdown.NewRenderer(),
	}
}

// mailer returns the SMTP sender when a host is configured and a no-op
// sender otherwise.
func (s *services) mailer() notification.Mailer {
	if s.cfg.Email.Enabled() {
		return email.NewSMTPEmailService(&s.cfg.Email)
	}
	return email.NoopEmailService{}
}

func (s *services) notifier(repos *repositories, log logger.Interface) *notification.TicketNotificationHandler {
	return notification.NewTicketNotificationHandler(repos.userRepo, s.mailer(), log.Named("notification"))
}

// rateLimiter returns nil when no redis client is available.
func (s *services) rateLimiter(client *redis.Client) ratelimit.RateLimiter {
	if client == nil {
		return nil
	}
	return ratelimit.NewRedisRateLimiter(client, s.cfg.RateLimit.Limit, s.cfg.RateLimit.Window())
}
