package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/infrastructure/ratelimit"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	onLimit func(route string)
	logger  logger.Interface
}

// NewRateLimitMiddleware wraps limiter. onLimit, when set, is called for every
// rejected request.
func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, onLimit func(route string), logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		onLimit: onLimit,
		logger:  logger,
	}
}

// Limit counts requests per client IP under scope. When the limiter itself
// fails the request is let through. A nil middleware limits nothing.
func (m *RateLimitMiddleware) Limit(scope string) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		decision, err := m.limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "scope", scope)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			if m.onLimit != nil {
				m.onLimit(c.FullPath())
			}
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(decision.RetryAfter.Seconds()))))
			utils.AbortWithError(c, errors.NewTooManyRequestsError("rate limit exceeded, please try again later"))
			return
		}

		c.Next()
	}
}
