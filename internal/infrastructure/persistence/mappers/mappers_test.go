package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
)

func TestUserMapper_RoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(3, "alice", "alice@example.com", "hash", "Sales", created, created)
	require.NoError(t, err)

	m := NewUserMapper()
	back, err := m.ToEntity(m.ToModel(u))
	require.NoError(t, err)

	assert.Equal(t, u.Email(), back.Email())
	assert.Equal(t, u.Service(), back.Service())
	assert.True(t, u.CreatedAt().Equal(back.CreatedAt()))

	none, err := m.ToEntity(nil)
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestUserMapper_ToEntitiesReportsBadRow(t *testing.T) {
	_, err := NewUserMapper().ToEntities([]*models.UserModel{{ID: 0, Email: "x@y"}})
	assert.ErrorContains(t, err, "failed to map item ID 0")
}

func TestTicketMapper_NoteToDomain(t *testing.T) {
	n, err := NewTicketMapper().NoteToDomain(&models.NoteModel{ID: 5, TicketID: 2, UserID: 9, Text: "hello", CreatedAt: 1700000000000})
	require.NoError(t, err)

	assert.Equal(t, uint(9), n.UserID())
	assert.Equal(t, int64(1700000000000), n.CreatedAt().UnixMilli())
}

func TestTicketMapper_ToModel(t *testing.T) {
	tk, err := ticket.NewTicket(1, 2, 3, "Printer jams", "Paper jams on every page")
	require.NoError(t, err)

	model := NewTicketMapper().ToModel(tk)
	assert.Equal(t, uint(2), model.ProductID)
	assert.Equal(t, tk.CreatedAt().UnixMilli(), model.CreatedAt)
}

func TestLookupToModel(t *testing.T) {
	tests := []struct {
		kind  catalog.Kind
		model any
	}{
		{catalog.KindProduct, &models.ProductModel{}},
		{catalog.KindStatus, &models.StatusModel{}},
		{catalog.KindService, &models.ServiceModel{}},
		{catalog.KindRole, &models.RoleModel{}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e, err := catalog.NewEntry(tt.kind, "Key-1", 4)
			require.NoError(t, err)

			model, base, err := LookupToModel(e)
			require.NoError(t, err)
			assert.IsType(t, tt.model, model)
			assert.Equal(t, uint(4), base.AuthorID)

			table, err := LookupTableFor(tt.kind)
			require.NoError(t, err)
			assert.NotEmpty(t, table.KeyColumn)
		})
	}
}
