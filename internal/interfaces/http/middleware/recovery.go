package middleware

import (
	"errors"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// redactedHeaders never reach the log; the session cookie is a bearer credential.
var redactedHeaders = map[string]bool{
	"Cookie":        true,
	"Authorization": true,
}

// Recovery turns a handler panic into a 500 JSON response. A client that hung
// up mid-response is only logged, since nothing can be written back.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		args := []any{
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(constants.ContextKeyRequestID),
			"error", recovered,
		}

		if isBrokenConnection(recovered) {
			log.Warnw("client connection closed during request", args...)
			c.Abort()
			return
		}

		args = append(args,
			"headers", loggableHeaders(c.Request.Header),
			"stack", string(debug.Stack()))
		log.Errorw("panic recovered", args...)

		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
		c.Abort()
	})
}

func loggableHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if redactedHeaders[name] {
			out[name] = "*"
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

func isBrokenConnection(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if !errors.As(opErr.Err, &sysErr) {
		return false
	}
	msg := strings.ToLower(sysErr.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
