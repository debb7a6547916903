package mappers

import (
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

// TicketMapper converts tickets and notes between domain and persistence.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	NoteToModel(n *ticket.Note) *models.NoteModel
	NoteToDomain(model *models.NoteModel) (*ticket.Note, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		AuthorID:    t.AuthorID(),
		ProductID:   t.ProductID(),
		StatusID:    t.StatusID(),
		Title:       t.Title(),
		Description: t.Description(),
		CreatedAt:   biztime.ToUnixMilli(t.CreatedAt()),
		UpdatedAt:   biztime.ToUnixMilli(t.UpdatedAt()),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.AuthorID,
		model.ProductID,
		model.StatusID,
		model.Title,
		model.Description,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) NoteToModel(n *ticket.Note) *models.NoteModel {
	return &models.NoteModel{
		ID:        n.ID(),
		TicketID:  n.TicketID(),
		UserID:    n.UserID(),
		Text:      n.Text(),
		CreatedAt: biztime.ToUnixMilli(n.CreatedAt()),
		UpdatedAt: biztime.ToUnixMilli(n.UpdatedAt()),
	}
}

func (m *TicketMapperImpl) NoteToDomain(model *models.NoteModel) (*ticket.Note, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructNote(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Text,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}
