package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/identity"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/common"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

const pathAdminUserList = constants.PathAdminBoard + "/users/userlist"

// UserHandler serves the profile page of the employee board and the user
// list of the admin board.
type UserHandler struct {
	listUsersUC  listUsersUseCase
	updateUserUC updateUserUseCase
	deleteUserUC deleteUserUseCase
	entries      entryLister
	sessions     SessionStore
	logger       logger.Interface
}

func NewUserHandler(
	listUsersUC listUsersUseCase,
	updateUserUC updateUserUseCase,
	deleteUserUC deleteUserUseCase,
	entries entryLister,
	sessions SessionStore,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUC:  listUsersUC,
		updateUserUC: updateUserUC,
		deleteUserUC: deleteUserUC,
		entries:      entries,
		sessions:     sessions,
		logger:       logger,
	}
}

// ListUsers handles GET /board/admin/users/userlist
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.listUsersUC.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"users": users,
		"count": len(users),
	})
}

// GetUser handles GET /board/admin/users/userlist/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "userId", "User")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.renderUser(c, userID)
}

// GetProfile handles GET /board/employee/users/:userId
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := h.ownUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.renderUser(c, userID)
}

func (h *UserHandler) renderUser(c *gin.Context, userID uint) {
	u, err := h.listUsersUC.Get(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	services, err := h.entries.Execute(c.Request.Context(), catalog.KindService, "")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user":     u,
		"services": services,
	})
}

// UpdateUser handles POST /board/admin/users/userlist/:userId
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "userId", "User")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	intent, err := common.ParseIntent(c, constants.IntentUpdate, constants.IntentDelete)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if intent == constants.IntentDelete {
		if err := h.deleteUserUC.Execute(c.Request.Context(), userID); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		if current := middleware.CurrentUser(c); current != nil && current.ID() == userID {
			h.endSession(c)
			return
		}
		utils.SeeOther(c, pathAdminUserList)
		return
	}

	var req UserRequest
	if err := common.BindForm(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.updateUserUC.Execute(c.Request.Context(), req.ToCommand(userID)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SeeOther(c, identity.SafeRedirect(req.RedirectTo, pathAdminUserList))
}

// UpdateProfile handles POST /board/employee/users/:userId
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := h.ownUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	intent, err := common.ParseIntent(c, constants.IntentUpdate, constants.IntentDelete)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if intent == constants.IntentDelete {
		if err := h.deleteUserUC.Execute(c.Request.Context(), userID); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		h.endSession(c)
		return
	}

	var req UserRequest
	if err := common.BindForm(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.updateUserUC.Execute(c.Request.Context(), req.ToCommand(userID)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The profile changed under the current session; issue a fresh cookie.
	cookie, err := h.sessions.Create(userID)
	if err != nil {
		h.logger.Errorw("failed to renew session", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SetCookie(c, cookie)
	utils.SeeOther(c, identity.SafeRedirect(req.RedirectTo, constants.PathEmployeeBoard))
}

// ownUserID returns the :userId path parameter when it names the signed-in
// user. Employees cannot manage other accounts.
func (h *UserHandler) ownUserID(c *gin.Context) (uint, error) {
	userID, err := utils.ParseIDParam(c, "userId", "User")
	if err != nil {
		return 0, err
	}
	current := middleware.CurrentUser(c)
	if current == nil || current.ID() != userID {
		return 0, errors.NewForbiddenError("You can only manage your own account")
	}
	return userID, nil
}

// endSession expires the cookie of a user whose account is gone.
func (h *UserHandler) endSession(c *gin.Context) {
	utils.SetCookie(c, h.sessions.Destroy(middleware.CurrentSession(c)))
	utils.SeeOther(c, "/")
}
