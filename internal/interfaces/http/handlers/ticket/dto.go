package ticket

import (
	"github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
)

type TicketRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Product     string `form:"product"`
	Status      string `form:"status"`
}

func (r *TicketRequest) Fields() map[string]string {
	return map[string]string{
		"title":       r.Title,
		"description": r.Description,
		"product":     r.Product,
		"status":      r.Status,
	}
}

func (r *TicketRequest) ToForm() usecases.TicketForm {
	return usecases.TicketForm{
		Title:       r.Title,
		Description: r.Description,
		Product:     r.Product,
		Status:      r.Status,
	}
}

type NoteRequest struct {
	Text string `form:"text"`
}

func (r *NoteRequest) Fields() map[string]string {
	return map[string]string{"text": r.Text}
}
