// Package admin holds the handlers of the admin board's lookup pages:
// products, statuses, services and roles.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/catalog/usecases"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/common"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// CatalogPath is the admin board path of a lookup kind.
func CatalogPath(kind catalog.Kind) string {
	switch kind {
	case catalog.KindProduct:
		return constants.PathAdminBoard + "/products"
	case catalog.KindStatus:
		return constants.PathAdminBoard + "/status"
	case catalog.KindService:
		return constants.PathAdminBoard + "/services"
	case catalog.KindRole:
		return constants.PathAdminBoard + "/roles"
	}
	return constants.PathAdminBoard
}

type CatalogHandler struct {
	createUC createEntryUseCase
	updateUC updateEntryUseCase
	deleteUC deleteEntryUseCase
	getUC    getEntryUseCase
	listUC   listEntriesUseCase
	logger   logger.Interface
}

func NewCatalogHandler(
	createUC createEntryUseCase,
	updateUC updateEntryUseCase,
	deleteUC deleteEntryUseCase,
	getUC getEntryUseCase,
	listUC listEntriesUseCase,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// List handles GET on a lookup page, e.g. /board/admin/products?query=
func (h *CatalogHandler) List(kind catalog.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := h.listUC.Execute(c.Request.Context(), kind, c.Query("query"))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "", gin.H{
			"kind":    kind,
			"entries": entries,
			"count":   len(entries),
		})
	}
}

// Get handles GET on a lookup row, e.g. /board/admin/products/:id. The
// new-<kind> sentinel returns an empty form.
func (h *CatalogHandler) Get(kind catalog.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, isNew, err := utils.ParseIDOrSentinel(c, "id", kind.NewSentinel(), kind.Label())
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		if isNew {
			utils.SuccessResponse(c, http.StatusOK, "", gin.H{"kind": kind, "entry": nil})
			return
		}

		entry, err := h.getUC.Execute(c.Request.Context(), kind, id)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"kind": kind, "entry": entry})
	}
}

// Save handles POST on a lookup row. The new-<kind> sentinel accepts the
// create intent; a real id accepts update and delete. Every outcome returns
// to the empty creation form.
func (h *CatalogHandler) Save(kind catalog.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, isNew, err := utils.ParseIDOrSentinel(c, "id", kind.NewSentinel(), kind.Label())
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		allowed := []string{constants.IntentUpdate, constants.IntentDelete}
		if isNew {
			allowed = []string{constants.IntentCreate}
		}
		intent, err := common.ParseIntent(c, allowed...)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		ctx := c.Request.Context()
		key := c.PostForm(kind.KeyField())

		switch intent {
		case constants.IntentCreate:
			u := middleware.CurrentUser(c)
			if u == nil {
				utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
				return
			}
			_, err = h.createUC.Execute(ctx, usecases.CreateEntryCommand{Kind: kind, Key: key, AuthorID: u.ID()})
		case constants.IntentUpdate:
			_, err = h.updateUC.Execute(ctx, usecases.UpdateEntryCommand{Kind: kind, ID: id, Key: key})
		case constants.IntentDelete:
			err = h.deleteUC.Execute(ctx, usecases.DeleteEntryCommand{Kind: kind, ID: id})
		}
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SeeOther(c, CatalogPath(kind)+"/"+kind.NewSentinel())
	}
}
