package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// LookupRepository implements catalog.Repository over the four lookup tables.
type LookupRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewLookupRepository(db *gorm.DB, logger logger.Interface) *LookupRepository {
	return &LookupRepository{db: db, logger: logger}
}

func (r *LookupRepository) scope(ctx context.Context, kind catalog.Kind) (*gorm.DB, mappers.LookupTable, error) {
	table, err := mappers.LookupTableFor(kind)
	if err != nil {
		return nil, table, err
	}
	tx := db.GetTxFromContext(ctx, r.db).
		Table(table.Table).
		Select("id, " + table.KeyColumn + " AS natural_key, author_id, created_at, updated_at")
	return tx, table, nil
}

func (r *LookupRepository) Create(ctx context.Context, entry *catalog.Entry) error {
	model, base, err := mappers.LookupToModel(entry)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create lookup", "kind", entry.Kind(), "error", err)
		return fmt.Errorf("failed to create %s: %w", entry.Kind(), err)
	}

	return entry.SetID(base.ID)
}

func (r *LookupRepository) Update(ctx context.Context, entry *catalog.Entry) error {
	table, err := mappers.LookupTableFor(entry.Kind())
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Table(table.Table).
		Where("id = ?", entry.ID()).
		Updates(map[string]any{
			table.KeyColumn: entry.Key(),
			"updated_at":    entry.UpdatedAt().UnixMilli(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update lookup", "kind", entry.Kind(), "id", entry.ID(), "error", result.Error)
		return fmt.Errorf("failed to update %s: %w", entry.Kind(), result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %d not found", entry.Kind(), entry.ID())
	}
	return nil
}

func (r *LookupRepository) Delete(ctx context.Context, kind catalog.Kind, id uint) error {
	model, err := mappers.EmptyLookupModel(kind)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Delete(model, id).Error; err != nil {
		r.logger.Errorw("failed to delete lookup", "kind", kind, "id", id, "error", err)
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	return nil
}

func (r *LookupRepository) GetByID(ctx context.Context, kind catalog.Kind, id uint) (*catalog.Entry, error) {
	tx, _, err := r.scope(ctx, kind)
	if err != nil {
		return nil, err
	}
	return r.first(kind, tx.Where("id = ?", id))
}

// GetByKey matches the key exactly under the column collation.
func (r *LookupRepository) GetByKey(ctx context.Context, kind catalog.Kind, key string) (*catalog.Entry, error) {
	tx, table, err := r.scope(ctx, kind)
	if err != nil {
		return nil, err
	}
	return r.first(kind, tx.Where(table.KeyColumn+" = ?", key))
}

func (r *LookupRepository) first(kind catalog.Kind, tx *gorm.DB) (*catalog.Entry, error) {
	var row models.LookupRow
	if err := tx.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	return mappers.LookupRowToDomain(kind, &row)
}

func (r *LookupRepository) List(ctx context.Context, kind catalog.Kind, query string) ([]*catalog.Entry, error) {
	tx, table, err := r.scope(ctx, kind)
	if err != nil {
		return nil, err
	}

	var rows []*models.LookupRow
	tx = whereContainsAny(tx, query, table.KeyColumn)
	if err := tx.Order(table.KeyColumn + " ASC").Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list lookups", "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}

	entries := make([]*catalog.Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := mappers.LookupRowToDomain(kind, row)
		if err != nil {
			return nil, fmt.Errorf("failed to map %s %d: %w", kind, row.ID, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
