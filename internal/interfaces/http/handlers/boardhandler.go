package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	userdto "github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// LandingResolver picks the board a user belongs on.
type LandingResolver interface {
	LandingPage(u *user.User) string
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// BoardHandler serves the welcome page, the two board entry pages and the
// health check.
type BoardHandler struct {
	landing LandingResolver
	db      Pinger
	logger  logger.Interface
}

func NewBoardHandler(landing LandingResolver, db Pinger, logger logger.Interface) *BoardHandler {
	return &BoardHandler{
		landing: landing,
		db:      db,
		logger:  logger,
	}
}

// Index handles GET /
func (h *BoardHandler) Index(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"user": nil})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user":  userdto.ToUserDTO(u),
		"board": h.landing.LandingPage(u),
	})
}

// EmployeeBoard handles GET /board/employee
func (h *BoardHandler) EmployeeBoard(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user": userdto.ToUserDTO(middleware.CurrentUser(c)),
	})
}

// AdminBoard handles GET /board/admin
func (h *BoardHandler) AdminBoard(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"admin": userdto.ToUserDTO(middleware.CurrentUser(c)),
	})
}

// HealthCheck handles GET /healthz
func (h *BoardHandler) HealthCheck(c *gin.Context) {
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			h.logger.Errorw("database health check failed", "error", err)
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}
