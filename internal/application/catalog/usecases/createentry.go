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

type CreateEntryCommand struct {
	Kind     catalog.Kind
	Key      string
	AuthorID uint
}

type CreateEntryUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewCreateEntryUseCase(repo catalog.Repository, logger logger.Interface) *CreateEntryUseCase {
	return &CreateEntryUseCase{repo: repo, logger: logger}
}

func (uc *CreateEntryUseCase) Execute(ctx context.Context, cmd CreateEntryCommand) (*dto.EntryDTO, error) {
	if err := validateKey(cmd.Kind, cmd.Key); err != nil {
		return nil, err
	}
	key := strings.TrimSpace(cmd.Key)

	existing, err := uc.repo.GetByKey(ctx, cmd.Kind, key)
	if err != nil {
		uc.logger.Errorw("failed to look up key", "kind", cmd.Kind, "error", err)
		return nil, fmt.Errorf("failed to look up %s: %w", cmd.Kind, err)
	}
	if existing != nil {
		return nil, duplicateKeyError(cmd.Kind, key)
	}

	entry, err := catalog.NewEntry(cmd.Kind, key, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewFormError(errors.NewValidationError(err.Error()), map[string]string{cmd.Kind.KeyField(): cmd.Key})
	}

	if err := uc.repo.Create(ctx, entry); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, duplicateKeyError(cmd.Kind, key)
		}
		uc.logger.Errorw("failed to create lookup", "kind", cmd.Kind, "error", err)
		return nil, fmt.Errorf("failed to create %s: %w", cmd.Kind, err)
	}

	uc.logger.Infow("lookup created", "kind", cmd.Kind, "id", entry.ID(), "key", entry.Key())
	return dto.ToEntryDTO(entry), nil
}
