package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/identity"
	userdto "github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/common"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase registerUseCase
	loginUseCase    loginUseCase
	entries         entryLister
	sessions        SessionStore
	logger          logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	entries entryLister,
	sessions SessionStore,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		entries:         entries,
		sessions:        sessions,
		logger:          logger,
	}
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"redirectTo": identity.SafeRedirect(c.Query("redirectTo"), ""),
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := common.BindForm(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.startSession(c, result.User, result.RedirectTo)
}

// RegisterPage handles GET /register and lists the services a user can pick.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	services, err := h.entries.Execute(c.Request.Context(), catalog.KindService, "")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"redirectTo": identity.SafeRedirect(c.Query("redirectTo"), ""),
		"services":   services,
	})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := common.BindForm(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.startSession(c, result.User, result.RedirectTo)
}

func (h *AuthHandler) startSession(c *gin.Context, u *user.User, redirectTo string) {
	cookie, err := h.sessions.Create(u.ID())
	if err != nil {
		h.logger.Errorw("failed to create session", "user_id", u.ID(), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetCookie(c, cookie)
	utils.SeeOther(c, redirectTo)
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := h.sessions.ReadRequest(c.Request)
	if userID, ok := sess.UserID(); ok {
		h.logger.Infow("user logged out", "user_id", userID)
	}

	utils.SetCookie(c, h.sessions.Destroy(sess))
	utils.SeeOther(c, constants.PathLogin)
}

// LogoutPage handles GET /logout. Logging out needs a POST.
func (h *AuthHandler) LogoutPage(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// Me handles GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", userdto.ToUserDTO(u))
}
