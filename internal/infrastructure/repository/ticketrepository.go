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

// ticketDetailsRow is a ticket joined with the names shown on the boards.
type ticketDetailsRow struct {
	models.TicketModel `gorm:"embedded"`
	AuthorUsername     string
	AuthorEmail        string
	ProductDevice      string
	StatusType         string
	NoteCount          int64
}

const ticketDetailsSelect = `tickets.*,
	COALESCE(users.username, '') AS author_username,
	COALESCE(users.email, '') AS author_email,
	COALESCE(products.device, '') AS product_device,
	COALESCE(statuses.type, '') AS status_type,
	(SELECT COUNT(*) FROM notes WHERE notes.ticket_id = tickets.id) AS note_count`

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"product_id":  model.ProductID,
			"status_id":   model.StatusID,
			"title":       model.Title,
			"description": model.Description,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket %d not found", model.ID)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.TicketModel{}, ticketID).Error; err != nil {
		r.logger.Errorw("failed to delete ticket", "id", ticketID, "error", err)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) DeleteByAuthorID(ctx context.Context, authorID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Where("author_id = ?", authorID).Delete(&models.TicketModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete tickets of author: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket", "id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) detailsQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("tickets").
		Select(ticketDetailsSelect).
		Joins("LEFT JOIN users ON users.id = tickets.author_id").
		Joins("LEFT JOIN products ON products.id = tickets.product_id").
		Joins("LEFT JOIN statuses ON statuses.id = tickets.status_id")
}

func (r *TicketRepository) GetDetails(ctx context.Context, ticketID uint) (*ticket.Details, error) {
	var rows []*ticketDetailsRow
	if err := r.detailsQuery(ctx).Where("tickets.id = ?", ticketID).Limit(1).Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to get ticket details", "id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return r.toDetails(rows[0])
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Details, error) {
	tx := r.detailsQuery(ctx)
	if filter.AuthorID != nil {
		tx = tx.Where("tickets.author_id = ?", *filter.AuthorID)
	}
	tx = whereContainsAny(tx, filter.Query, "tickets.title", "users.username", "statuses.type", "products.device")

	var rows []*ticketDetailsRow
	if err := tx.Order("tickets.updated_at DESC").Order("tickets.id DESC").Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	result := make([]*ticket.Details, 0, len(rows))
	for _, row := range rows {
		d, err := r.toDetails(row)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

func (r *TicketRepository) toDetails(row *ticketDetailsRow) (*ticket.Details, error) {
	t, err := r.mapper.ToDomain(&row.TicketModel)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket %d: %w", row.ID, err)
	}
	return &ticket.Details{
		Ticket:         t,
		AuthorUsername: row.AuthorUsername,
		AuthorEmail:    row.AuthorEmail,
		ProductDevice:  row.ProductDevice,
		StatusType:     row.StatusType,
		NoteCount:      row.NoteCount,
	}, nil
}

func (r *TicketRepository) ListIDsByAuthorID(ctx context.Context, authorID uint) ([]uint, error) {
	var ids []uint
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{}).Where("author_id = ?", authorID).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket ids of author: %w", err)
	}
	return ids, nil
}

func (r *TicketRepository) CountByProductID(ctx context.Context, productID uint) (int64, error) {
	return r.countWhere(ctx, "product_id = ?", productID)
}

func (r *TicketRepository) CountByStatusID(ctx context.Context, statusID uint) (int64, error) {
	return r.countWhere(ctx, "status_id = ?", statusID)
}

func (r *TicketRepository) countWhere(ctx context.Context, cond string, arg any) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{}).Where(cond, arg).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}
