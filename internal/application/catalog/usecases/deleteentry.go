package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// ReferenceCounter reports how many rows still point at a lookup.
type ReferenceCounter interface {
	CountByProductID(ctx context.Context, productID uint) (int64, error)
	CountByStatusID(ctx context.Context, statusID uint) (int64, error)
}

// ServiceCounter reports how many users are assigned to a service.
type ServiceCounter interface {
	CountByService(ctx context.Context, service string) (int64, error)
}

type DeleteEntryCommand struct {
	Kind catalog.Kind
	ID   uint
}

type DeleteEntryUseCase struct {
	repo     catalog.Repository
	tickets  ReferenceCounter
	services ServiceCounter
	logger   logger.Interface
}

func NewDeleteEntryUseCase(
	repo catalog.Repository,
	tickets ReferenceCounter,
	services ServiceCounter,
	logger logger.Interface,
) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		repo:     repo,
		tickets:  tickets,
		services: services,
		logger:   logger,
	}
}

func (uc *DeleteEntryUseCase) Execute(ctx context.Context, cmd DeleteEntryCommand) error {
	entry, err := uc.repo.GetByID(ctx, cmd.Kind, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get lookup", "kind", cmd.Kind, "id", cmd.ID, "error", err)
		return fmt.Errorf("failed to get %s: %w", cmd.Kind, err)
	}
	if entry == nil {
		return notFoundError(cmd.Kind)
	}

	inUse, err := uc.references(ctx, entry)
	if err != nil {
		uc.logger.Errorw("failed to count lookup references", "kind", cmd.Kind, "id", cmd.ID, "error", err)
		return fmt.Errorf("failed to count %s references: %w", cmd.Kind, err)
	}
	if inUse > 0 {
		return errors.NewFormError(
			errors.NewConflictError(fmt.Sprintf("%s '%s' is still in use", cmd.Kind.Label(), entry.Key())),
			map[string]string{cmd.Kind.KeyField(): entry.Key()},
		)
	}

	if err := uc.repo.Delete(ctx, cmd.Kind, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete lookup", "kind", cmd.Kind, "id", cmd.ID, "error", err)
		return fmt.Errorf("failed to delete %s: %w", cmd.Kind, err)
	}

	uc.logger.Infow("lookup deleted", "kind", cmd.Kind, "id", cmd.ID)
	return nil
}

func (uc *DeleteEntryUseCase) references(ctx context.Context, entry *catalog.Entry) (int64, error) {
	switch entry.Kind() {
	case catalog.KindProduct:
		return uc.tickets.CountByProductID(ctx, entry.ID())
	case catalog.KindStatus:
		return uc.tickets.CountByStatusID(ctx, entry.ID())
	case catalog.KindService:
		return uc.services.CountByService(ctx, entry.Key())
	}
	return 0, nil
}
