package ticket

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/common"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

const (
	pathEmployeeTickets = constants.PathEmployeeBoard + "/tickets"
	pathNewTicket       = pathEmployeeTickets + "/" + constants.NewTicketSentinel
	pathAdminTicketList = constants.PathAdminBoard + "/users/ticketlist"
	pathAdminNoteList   = constants.PathAdminBoard + "/users/notelist"
)

// Handler serves the ticket and note pages of both boards.
type Handler struct {
	uc     UseCases
	logger logger.Interface
}

func NewHandler(uc UseCases, logger logger.Interface) *Handler {
	return &Handler{uc: uc, logger: logger}
}

// ListMyTickets handles GET /board/employee/tickets
func (h *Handler) ListMyTickets(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tickets, err := h.uc.ListTickets.ListUserTickets(c.Request.Context(), u.ID(), c.Query("query"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"tickets": tickets,
		"count":   len(tickets),
	})
}

// ListTickets handles GET /board/admin/users/ticketlist
func (h *Handler) ListTickets(c *gin.Context) {
	tickets, err := h.uc.ListTickets.Execute(c.Request.Context(), usecases.ListTicketsQuery{Query: c.Query("query")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"tickets": tickets,
		"count":   len(tickets),
	})
}

// GetTicket handles GET /board/employee/tickets/:ticketId. The new-ticket
// sentinel returns the empty form data.
func (h *Handler) GetTicket(c *gin.Context) {
	ticketID, isNew, err := utils.ParseIDOrSentinel(c, "ticketId", constants.NewTicketSentinel, "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.renderTicket(c, ticketID, isNew)
}

// GetAdminTicket handles GET /board/admin/users/ticketlist/:ticketId
func (h *Handler) GetAdminTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticketId", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.renderTicket(c, ticketID, false)
}

func (h *Handler) renderTicket(c *gin.Context, ticketID uint, isNew bool) {
	ctx := c.Request.Context()

	statuses, err := h.uc.Entries.Execute(ctx, catalog.KindStatus, "")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	products, err := h.uc.Entries.Execute(ctx, catalog.KindProduct, "")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data := gin.H{
		"statuses": statuses,
		"products": products,
		"ticket":   nil,
		"notes":    nil,
	}

	if !isNew {
		t, err := h.uc.GetTicket.Execute(ctx, ticketID)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		notes, err := h.uc.ListNotes.ListByTicket(ctx, ticketID)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		data["ticket"] = t
		data["notes"] = notes
	}

	utils.SuccessResponse(c, http.StatusOK, "", data)
}

// SaveTicket handles POST /board/employee/tickets/:ticketId. The new-ticket
// sentinel accepts the create intent; a real id accepts update and delete.
func (h *Handler) SaveTicket(c *gin.Context) {
	ticketID, isNew, err := utils.ParseIDOrSentinel(c, "ticketId", constants.NewTicketSentinel, "Ticket")
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

	if intent == constants.IntentDelete {
		h.deleteTicket(c, ticketID, pathNewTicket)
		return
	}

	var req TicketRequest
	if err := common.BindForm(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if intent == constants.IntentCreate {
		u := middleware.CurrentUser(c)
		if u == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if _, err := h.uc.CreateTicket.Execute(c.Request.Context(), usecases.CreateTicketCommand{
			AuthorID: u.ID(),
			Form:     req.ToForm(),
		}); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SeeOther(c, pathNewTicket)
		return
	}

	if err := h.uc.UpdateTicket.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID: ticketID,
		Form:     req.ToForm(),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SeeOther(c, pathNewTicket)
}

// SaveAdminTicket handles POST /board/admin/users/ticketlist/:ticketId
func (h *Handler) SaveAdminTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticketId", "Ticket")
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
		h.deleteTicket(c, ticketID, pathAdminTicketList)
		return
	}

	var req TicketRequest
	if err := common.BindForm(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.uc.UpdateTicket.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID: ticketID,
		Form:     req.ToForm(),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SeeOther(c, pathAdminTicketList)
}

// DeleteTicket handles POST /board/employee/tickets/:ticketId/deleteTicket
func (h *Handler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticketId", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if _, err := common.ParseIntent(c, constants.IntentDelete); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.deleteTicket(c, ticketID, pathNewTicket)
}

func (h *Handler) deleteTicket(c *gin.Context, ticketID uint, redirectTo string) {
	if err := h.uc.DeleteTicket.Execute(c.Request.Context(), ticketID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SeeOther(c, redirectTo)
}

// DeleteTicketNotes handles POST /board/employee/tickets/:ticketId/deleteNote
// and removes every note of the ticket.
func (h *Handler) DeleteTicketNotes(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticketId", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if _, err := common.ParseIntent(c, constants.IntentDelete); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.uc.GetTicket.Execute(c.Request.Context(), ticketID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if _, err := h.uc.DeleteNote.DeleteAll(c.Request.Context(), ticketID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SeeOther(c, ticketPath(ticketID))
}

func ticketPath(ticketID uint) string {
	return fmt.Sprintf("%s/%d", pathEmployeeTickets, ticketID)
}

func adminTicketPath(ticketID uint) string {
	return fmt.Sprintf("%s/%d", pathAdminTicketList, ticketID)
}

// notFoundUnlessOnTicket hides notes addressed through a ticket they do not
// belong to.
func notFoundUnlessOnTicket(noteTicketID, ticketID uint) error {
	if noteTicketID != ticketID {
		return errors.NewNotFoundError("Note not found")
	}
	return nil
}
