package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/application/catalog/usecases"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type noAdmins struct{}

func (noAdmins) IsAdmin(string) (bool, error) { return false, nil }

func TestUserRepository_RenameService(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()
	f.createUser(t, "ann", "ann@example.com", "Sales")
	f.createUser(t, "bob", "bob@example.com", "Sales")
	f.createUser(t, "cid", "cid@example.com", "IT")

	n, err := f.users.RenameService(ctx, "Sales", "Sales Team")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	count, err := f.users.CountByService(ctx, "Sales Team")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = f.users.CountByService(ctx, "Sales")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestServiceRename_KeepsUsersAndBlocksDelete(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()
	log := logger.NewNopLogger()
	sales := f.createEntry(t, catalog.KindService, "Sales")
	ann := f.createUser(t, "ann", "ann@example.com", "Sales")

	update := usecases.NewUpdateEntryUseCase(f.lookups, f.users, noAdmins{}, db.NewTransactionManager(f.db), log)
	del := usecases.NewDeleteEntryUseCase(f.lookups, f.tickets, f.users, log)

	_, err := update.Execute(ctx, usecases.UpdateEntryCommand{Kind: catalog.KindService, ID: sales.ID(), Key: "Sales Team"})
	require.NoError(t, err)

	got, err := f.users.GetByID(ctx, ann.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Sales Team", got.Service())

	err = del.Execute(ctx, usecases.DeleteEntryCommand{Kind: catalog.KindService, ID: sales.ID()})
	assert.True(t, errors.IsConflictError(err))

	entry, err := f.lookups.GetByID(ctx, catalog.KindService, sales.ID())
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Sales Team", entry.Key())
}
