package admin

import (
	"context"

	catalogdto "github.com/orris-inc/helpdesk/internal/application/catalog/dto"
	"github.com/orris-inc/helpdesk/internal/application/catalog/usecases"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
)

// Use case interfaces for CatalogHandler - enables unit testing with mocks.

type createEntryUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateEntryCommand) (*catalogdto.EntryDTO, error)
}

type updateEntryUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateEntryCommand) (*catalogdto.EntryDTO, error)
}

type deleteEntryUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteEntryCommand) error
}

type getEntryUseCase interface {
	Execute(ctx context.Context, kind catalog.Kind, id uint) (*catalogdto.EntryDTO, error)
}

type listEntriesUseCase interface {
	Execute(ctx context.Context, kind catalog.Kind, query string) ([]*catalogdto.EntryDTO, error)
}
