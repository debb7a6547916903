package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/orris-inc/helpdesk/internal/application/catalog/dto"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type UpdateEntryCommand struct {
	Kind catalog.Kind
	ID   uint
	Key  string
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ServiceRenamer moves every user assigned to one service name to another.
type ServiceRenamer interface {
	RenameService(ctx context.Context, from, to string) (int64, error)
}

// AdminChecker reports whether a service grants admin access.
type AdminChecker interface {
	IsAdmin(service string) (bool, error)
}

// UpdateEntryUseCase renames a lookup. Tickets point at products and statuses by
// id, so those renames are visible everywhere at once. Users store their service
// by name: a service rename rewrites them in the same transaction, and services
// that grant admin access cannot be renamed because the mapping is configured by name.
type UpdateEntryUseCase struct {
	repo      catalog.Repository
	users     ServiceRenamer
	admins    AdminChecker
	txManager TransactionManager
	logger    logger.Interface
}

func NewUpdateEntryUseCase(
	repo catalog.Repository,
	users ServiceRenamer,
	admins AdminChecker,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		repo:      repo,
		users:     users,
		admins:    admins,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *UpdateEntryUseCase) Execute(ctx context.Context, cmd UpdateEntryCommand) (*dto.EntryDTO, error) {
	if err := validateKey(cmd.Kind, cmd.Key); err != nil {
		return nil, err
	}
	key := strings.TrimSpace(cmd.Key)

	entry, err := uc.repo.GetByID(ctx, cmd.Kind, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get lookup", "kind", cmd.Kind, "id", cmd.ID, "error", err)
		return nil, fmt.Errorf("failed to get %s: %w", cmd.Kind, err)
	}
	if entry == nil {
		return nil, notFoundError(cmd.Kind)
	}

	owner, err := uc.repo.GetByKey(ctx, cmd.Kind, key)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", cmd.Kind, err)
	}
	if owner != nil && owner.ID() != entry.ID() {
		return nil, duplicateKeyError(cmd.Kind, key)
	}

	oldKey := entry.Key()
	renamed := oldKey != key
	fields := map[string]string{cmd.Kind.KeyField(): cmd.Key}

	if renamed && cmd.Kind == catalog.KindService {
		isAdmin, err := uc.admins.IsAdmin(oldKey)
		if err != nil {
			return nil, fmt.Errorf("failed to check admin services: %w", err)
		}
		if isAdmin {
			return nil, errors.NewFormError(
				errors.NewConflictError(fmt.Sprintf("Service '%s' grants admin access and cannot be renamed", oldKey)),
				fields,
			)
		}
	}

	if err := entry.Rename(key); err != nil {
		return nil, errors.NewFormError(errors.NewValidationError(err.Error()), fields)
	}

	var moved int64
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.repo.Update(txCtx, entry); err != nil {
			return err
		}
		if renamed && cmd.Kind == catalog.KindService {
			n, err := uc.users.RenameService(txCtx, oldKey, key)
			if err != nil {
				return err
			}
			moved = n
		}
		return nil
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			return nil, duplicateKeyError(cmd.Kind, key)
		}
		uc.logger.Errorw("failed to update lookup", "kind", cmd.Kind, "id", cmd.ID, "error", err)
		return nil, fmt.Errorf("failed to update %s: %w", cmd.Kind, err)
	}

	uc.logger.Infow("lookup updated", "kind", cmd.Kind, "id", entry.ID(), "key", entry.Key(), "users_moved", moved)
	return dto.ToEntryDTO(entry), nil
}
