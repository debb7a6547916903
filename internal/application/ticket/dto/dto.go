package dto

import (
	"time"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
)

// HTMLRenderer turns markdown into sanitized HTML.
type HTMLRenderer interface {
	Render(markdown string) string
}

type TicketDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html"`
	AuthorID        uint      `json:"author_id"`
	AuthorUsername  string    `json:"author_username"`
	AuthorEmail     string    `json:"author_email"`
	ProductID       uint      `json:"product_id"`
	Product         string    `json:"product"`
	StatusID        uint      `json:"status_id"`
	Status          string    `json:"status"`
	NoteCount       int64     `json:"note_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type NoteDTO struct {
	ID             uint      `json:"id"`
	TicketID       uint      `json:"ticket_id"`
	TicketTitle    string    `json:"ticket_title"`
	Product        string    `json:"product"`
	UserID         uint      `json:"user_id"`
	AuthorUsername string    `json:"author_username"`
	AuthorEmail    string    `json:"author_email"`
	Text           string    `json:"text"`
	TextHTML       string    `json:"text_html"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToTicketDTO(d *ticket.Details, r HTMLRenderer) *TicketDTO {
	if d == nil || d.Ticket == nil {
		return nil
	}
	t := d.Ticket
	return &TicketDTO{
		ID:              t.ID(),
		Title:           t.Title(),
		Description:     t.Description(),
		DescriptionHTML: r.Render(t.Description()),
		AuthorID:        t.AuthorID(),
		AuthorUsername:  d.AuthorUsername,
		AuthorEmail:     d.AuthorEmail,
		ProductID:       t.ProductID(),
		Product:         d.ProductDevice,
		StatusID:        t.StatusID(),
		Status:          d.StatusType,
		NoteCount:       d.NoteCount,
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func ToTicketDTOList(details []*ticket.Details, r HTMLRenderer) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(details))
	for _, d := range details {
		if dto := ToTicketDTO(d, r); dto != nil {
			result = append(result, dto)
		}
	}
	return result
}

func ToNoteDTO(d *ticket.NoteDetails, r HTMLRenderer) *NoteDTO {
	if d == nil || d.Note == nil {
		return nil
	}
	n := d.Note
	return &NoteDTO{
		ID:             n.ID(),
		TicketID:       n.TicketID(),
		TicketTitle:    d.TicketTitle,
		Product:        d.ProductDevice,
		UserID:         n.UserID(),
		AuthorUsername: d.AuthorUsername,
		AuthorEmail:    d.AuthorEmail,
		Text:           n.Text(),
		TextHTML:       r.Render(n.Text()),
		CreatedAt:      n.CreatedAt(),
		UpdatedAt:      n.UpdatedAt(),
	}
}

func ToNoteDTOList(details []*ticket.NoteDetails, r HTMLRenderer) []*NoteDTO {
	result := make([]*NoteDTO, 0, len(details))
	for _, d := range details {
		if dto := ToNoteDTO(d, r); dto != nil {
			result = append(result, dto)
		}
	}
	return result
}
