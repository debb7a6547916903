package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/application/catalog/dto"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type GetEntryUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewGetEntryUseCase(repo catalog.Repository, logger logger.Interface) *GetEntryUseCase {
	return &GetEntryUseCase{repo: repo, logger: logger}
}

func (uc *GetEntryUseCase) Execute(ctx context.Context, kind catalog.Kind, id uint) (*dto.EntryDTO, error) {
	if !kind.IsValid() {
		return nil, errors.NewBadRequestError(fmt.Sprintf("unknown lookup kind %q", kind))
	}

	entry, err := uc.repo.GetByID(ctx, kind, id)
	if err != nil {
		uc.logger.Errorw("failed to get lookup", "kind", kind, "id", id, "error", err)
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	if entry == nil {
		return nil, notFoundError(kind)
	}

	return dto.ToEntryDTO(entry), nil
}

// GetByKey resolves a natural key; it returns nil when nothing matches.
func (uc *GetEntryUseCase) GetByKey(ctx context.Context, kind catalog.Kind, key string) (*dto.EntryDTO, error) {
	entry, err := uc.repo.GetByKey(ctx, kind, key)
	if err != nil {
		uc.logger.Errorw("failed to look up lookup key", "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to look up %s: %w", kind, err)
	}
	return dto.ToEntryDTO(entry), nil
}
