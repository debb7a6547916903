package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/common"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// AddNote handles POST /board/employee/tickets/:ticketId/notes
func (h *Handler) AddNote(c *gin.Context) {
	h.addNote(c, ticketPath)
}

// AddAdminNote handles POST /board/admin/users/ticketlist/:ticketId/add
func (h *Handler) AddAdminNote(c *gin.Context) {
	h.addNote(c, adminTicketPath)
}

func (h *Handler) addNote(c *gin.Context, redirect func(uint) string) {
	ticketID, err := utils.ParseIDParam(c, "ticketId", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	u := middleware.CurrentUser(c)
	if u == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req NoteRequest
	if err := common.BindForm(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.uc.AddNote.Execute(c.Request.Context(), usecases.AddNoteCommand{
		TicketID: ticketID,
		UserID:   u.ID(),
		Text:     req.Text,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SeeOther(c, redirect(ticketID))
}

// ListNotes handles GET /board/admin/users/notelist
func (h *Handler) ListNotes(c *gin.Context) {
	notes, err := h.uc.ListNotes.Execute(c.Request.Context(), usecases.ListNotesQuery{Query: c.Query("query")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"notes": notes,
		"count": len(notes),
	})
}

// GetNote handles GET /board/employee/tickets/:ticketId/notes/:noteId
func (h *Handler) GetNote(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticketId", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	noteID, err := utils.ParseIDParam(c, "noteId", "Note")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	note, err := h.uc.ListNotes.Get(c.Request.Context(), noteID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := notFoundUnlessOnTicket(note.TicketID, ticketID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"note": note})
}

// GetAdminNote handles GET /board/admin/users/notelist/:noteId
func (h *Handler) GetAdminNote(c *gin.Context) {
	noteID, err := utils.ParseIDParam(c, "noteId", "Note")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	note, err := h.uc.ListNotes.Get(c.Request.Context(), noteID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"note": note})
}

// SaveNote handles POST /board/employee/tickets/:ticketId/notes/:noteId
func (h *Handler) SaveNote(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "ticketId", "Ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	noteID, err := utils.ParseIDParam(c, "noteId", "Note")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	note, err := h.uc.ListNotes.Get(c.Request.Context(), noteID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := notFoundUnlessOnTicket(note.TicketID, ticketID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if h.saveNote(c, noteID) {
		utils.SeeOther(c, ticketPath(ticketID))
	}
}

// SaveAdminNote handles POST /board/admin/users/notelist/:noteId
func (h *Handler) SaveAdminNote(c *gin.Context) {
	noteID, err := utils.ParseIDParam(c, "noteId", "Note")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if h.saveNote(c, noteID) {
		utils.SeeOther(c, pathAdminNoteList)
	}
}

// saveNote applies the update or delete intent and reports whether it
// succeeded. On failure the error response has been written.
func (h *Handler) saveNote(c *gin.Context, noteID uint) bool {
	intent, err := common.ParseIntent(c, constants.IntentUpdate, constants.IntentDelete)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}

	if intent == constants.IntentDelete {
		if _, err := h.uc.DeleteNote.Execute(c.Request.Context(), noteID); err != nil {
			utils.ErrorResponseWithError(c, err)
			return false
		}
		return true
	}

	var req NoteRequest
	if err := common.BindForm(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}

	if _, err := h.uc.UpdateNote.Execute(c.Request.Context(), usecases.UpdateNoteCommand{
		NoteID: noteID,
		Text:   req.Text,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}
	return true
}
