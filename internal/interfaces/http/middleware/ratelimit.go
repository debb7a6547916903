package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/infrastructure/ratelimit"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// RateLimiter throttles form posts per client IP. Counters live in the backing
// limiter so every server instance sees the same totals.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	limits  ratelimit.Limits
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, limits ratelimit.Limits, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		limits:  limits,
		logger:  logger,
	}
}

// Limit counts every attempt against scope and rejects the client with 429
// once a window is full. A successful attempt (the handler redirected) clears
// the client's counters, so only failed attempts accumulate. A nil RateLimiter
// lets every request through.
func (rl *RateLimiter) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		key := scope + ":" + c.ClientIP()
		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.limits)
		if err != nil {
			// fail open
			rl.logger.Warnw("rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			rl.logger.Warnw("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()

		if status := c.Writer.Status(); status >= 300 && status < 400 {
			if err := rl.limiter.Reset(c.Request.Context(), key); err != nil {
				rl.logger.Warnw("failed to reset rate limit", "scope", scope, "error", err)
			}
		}
	}
}
