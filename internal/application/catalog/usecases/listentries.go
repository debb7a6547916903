package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/orris-inc/helpdesk/internal/application/catalog/dto"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type ListEntriesUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewListEntriesUseCase(repo catalog.Repository, logger logger.Interface) *ListEntriesUseCase {
	return &ListEntriesUseCase{repo: repo, logger: logger}
}

// Execute lists one kind ascending by key. An empty or blank query lists all.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, kind catalog.Kind, query string) ([]*dto.EntryDTO, error) {
	entries, err := uc.repo.List(ctx, kind, strings.TrimSpace(query))
	if err != nil {
		uc.logger.Errorw("failed to list lookups", "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	return dto.ToEntryDTOList(entries), nil
}
