package mappers

import (
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
)

// LookupTable names the table and key column that store one lookup kind.
type LookupTable struct {
	Table     string
	KeyColumn string
}

var lookupTables = map[catalog.Kind]LookupTable{
	catalog.KindProduct: {Table: constants.TableProducts, KeyColumn: "device"},
	catalog.KindStatus:  {Table: constants.TableStatuses, KeyColumn: "type"},
	catalog.KindService: {Table: constants.TableServices, KeyColumn: "name"},
	catalog.KindRole:    {Table: constants.TableRoles, KeyColumn: "role_type"},
}

func LookupTableFor(kind catalog.Kind) (LookupTable, error) {
	t, ok := lookupTables[kind]
	if !ok {
		return LookupTable{}, fmt.Errorf("no table for lookup kind %q", kind)
	}
	return t, nil
}

// LookupToModel returns the kind specific model to insert. The returned base
// pointer aliases the model's own LookupBase so the generated id can be read back.
func LookupToModel(e *catalog.Entry) (any, *models.LookupBase, error) {
	base := models.LookupBase{
		ID:        e.ID(),
		AuthorID:  e.AuthorID(),
		CreatedAt: biztime.ToUnixMilli(e.CreatedAt()),
		UpdatedAt: biztime.ToUnixMilli(e.UpdatedAt()),
	}

	switch e.Kind() {
	case catalog.KindProduct:
		m := &models.ProductModel{LookupBase: base, Device: e.Key()}
		return m, &m.LookupBase, nil
	case catalog.KindStatus:
		m := &models.StatusModel{LookupBase: base, Type: e.Key()}
		return m, &m.LookupBase, nil
	case catalog.KindService:
		m := &models.ServiceModel{LookupBase: base, Name: e.Key()}
		return m, &m.LookupBase, nil
	case catalog.KindRole:
		m := &models.RoleModel{LookupBase: base, RoleType: e.Key()}
		return m, &m.LookupBase, nil
	}
	return nil, nil, fmt.Errorf("no model for lookup kind %q", e.Kind())
}

func EmptyLookupModel(kind catalog.Kind) (any, error) {
	switch kind {
	case catalog.KindProduct:
		return &models.ProductModel{}, nil
	case catalog.KindStatus:
		return &models.StatusModel{}, nil
	case catalog.KindService:
		return &models.ServiceModel{}, nil
	case catalog.KindRole:
		return &models.RoleModel{}, nil
	}
	return nil, fmt.Errorf("no model for lookup kind %q", kind)
}

func LookupRowToDomain(kind catalog.Kind, row *models.LookupRow) (*catalog.Entry, error) {
	if row == nil {
		return nil, nil
	}
	return catalog.ReconstructEntry(
		row.ID,
		kind,
		row.NaturalKey,
		row.AuthorID,
		biztime.FromUnixMilli(row.CreatedAt),
		biztime.FromUnixMilli(row.UpdatedAt),
	)
}
