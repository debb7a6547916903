package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// AreaChecker decides whether users of a service may enter a board area.
type AreaChecker interface {
	Allowed(service, area string) (bool, error)
}

type PermissionMiddleware struct {
	checker AreaChecker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker AreaChecker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

// RequireArea must run after RequireAuth or RequireAdmin.
func (m *PermissionMiddleware) RequireArea(area string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.checker.Allowed(u.Service(), area)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", u.ID(), "area", area)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", u.ID(), "service", u.Service(), "area", area)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
