package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type noteDetailsRow struct {
	models.NoteModel `gorm:"embedded"`
	AuthorUsername   string
	AuthorEmail      string
	TicketTitle      string
	ProductDevice    string
}

const noteDetailsSelect = `notes.*,
	COALESCE(users.username, '') AS author_username,
	COALESCE(users.email, '') AS author_email,
	COALESCE(tickets.title, '') AS ticket_title,
	COALESCE(products.device, '') AS product_device`

type NoteRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewNoteRepository(db *gorm.DB, logger logger.Interface) *NoteRepository {
	return &NoteRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *NoteRepository) Create(ctx context.Context, n *ticket.Note) error {
	model := r.mapper.NoteToModel(n)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create note", "ticket_id", model.TicketID, "error", err)
		return fmt.Errorf("failed to create note: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NoteRepository) Update(ctx context.Context, n *ticket.Note) error {
	model := r.mapper.NoteToModel(n)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NoteModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"text":       model.Text,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update note", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("note %d not found", model.ID)
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, noteID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.NoteModel{}, noteID).Error; err != nil {
		r.logger.Errorw("failed to delete note", "id", noteID, "error", err)
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func (r *NoteRepository) deleteWhere(ctx context.Context, cond string, arg any) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Where(cond, arg).Delete(&models.NoteModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete notes: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *NoteRepository) DeleteByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	return r.deleteWhere(ctx, "ticket_id = ?", ticketID)
}

func (r *NoteRepository) DeleteByTicketIDs(ctx context.Context, ticketIDs []uint) (int64, error) {
	if len(ticketIDs) == 0 {
		return 0, nil
	}
	return r.deleteWhere(ctx, "ticket_id IN ?", ticketIDs)
}

func (r *NoteRepository) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	return r.deleteWhere(ctx, "user_id = ?", userID)
}

func (r *NoteRepository) GetByID(ctx context.Context, noteID uint) (*ticket.Note, error) {
	var model models.NoteModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get note", "id", noteID, "error", err)
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return r.mapper.NoteToDomain(&model)
}

func (r *NoteRepository) detailsQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("notes").
		Select(noteDetailsSelect).
		Joins("LEFT JOIN users ON users.id = notes.user_id").
		Joins("LEFT JOIN tickets ON tickets.id = notes.ticket_id").
		Joins("LEFT JOIN products ON products.id = tickets.product_id")
}

func (r *NoteRepository) GetDetails(ctx context.Context, noteID uint) (*ticket.NoteDetails, error) {
	var rows []*noteDetailsRow
	if err := r.detailsQuery(ctx).Where("notes.id = ?", noteID).Limit(1).Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to get note details", "id", noteID, "error", err)
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return r.toDetails(rows[0])
}

func (r *NoteRepository) List(ctx context.Context, filter ticket.NoteFilter) ([]*ticket.NoteDetails, error) {
	tx := r.detailsQuery(ctx)
	if filter.TicketID != nil {
		tx = tx.Where("notes.ticket_id = ?", *filter.TicketID)
	}
	tx = whereContainsAny(tx, filter.Query, "notes.text", "users.username", "tickets.title", "products.device")

	var rows []*noteDetailsRow
	if err := tx.Order("notes.updated_at DESC").Order("notes.id DESC").Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list notes", "error", err)
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	result := make([]*ticket.NoteDetails, 0, len(rows))
	for _, row := range rows {
		d, err := r.toDetails(row)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

func (r *NoteRepository) toDetails(row *noteDetailsRow) (*ticket.NoteDetails, error) {
	n, err := r.mapper.NoteToDomain(&row.NoteModel)
	if err != nil {
		return nil, fmt.Errorf("failed to map note %d: %w", row.ID, err)
	}
	return &ticket.NoteDetails{
		Note:           n,
		AuthorUsername: row.AuthorUsername,
		AuthorEmail:    row.AuthorEmail,
		TicketTitle:    row.TicketTitle,
		ProductDevice:  row.ProductDevice,
	}, nil
}
