package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils/logutil"
)

const maxLoggedFieldLen = 256

// Logger writes one access line per request after the handler chain returns.
// 5xx goes to error, 4xx to warn, everything else to debug.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"status", status,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
			"bytes", c.Writer.Size(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, "query", logutil.TruncateForLog(q, maxLoggedFieldLen))
		}
		if id := c.GetString(constants.ContextKeyRequestID); id != "" {
			fields = append(fields, "request_id", id)
		}
		if uid, ok := c.Get(constants.ContextKeyUserID); ok {
			fields = append(fields, "user_id", uid)
		}
		if loc := c.Writer.Header().Get("Location"); loc != "" {
			fields = append(fields, "location", loc)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			fields = append(fields, "user_agent", logutil.TruncateForLog(c.Request.UserAgent(), maxLoggedFieldLen))
			log.Errorw("request failed", fields...)
		case status >= 400:
			log.Warnw("request rejected", fields...)
		default:
			log.Debugw("request served", fields...)
		}
	}
}
