package admin

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdto "github.com/orris-inc/helpdesk/internal/application/catalog/dto"
	"github.com/orris-inc/helpdesk/internal/application/catalog/usecases"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/testutil"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateEntryUC struct {
	err error
	cmd *usecases.CreateEntryCommand
}

func (m *mockCreateEntryUC) Execute(_ context.Context, cmd usecases.CreateEntryCommand) (*catalogdto.EntryDTO, error) {
	m.cmd = &cmd
	if m.err != nil {
		return nil, m.err
	}
	return &catalogdto.EntryDTO{ID: 1, Kind: cmd.Kind, Key: cmd.Key}, nil
}

type mockUpdateEntryUC struct {
	err error
	cmd *usecases.UpdateEntryCommand
}

func (m *mockUpdateEntryUC) Execute(_ context.Context, cmd usecases.UpdateEntryCommand) (*catalogdto.EntryDTO, error) {
	m.cmd = &cmd
	if m.err != nil {
		return nil, m.err
	}
	return &catalogdto.EntryDTO{ID: cmd.ID, Kind: cmd.Kind, Key: cmd.Key}, nil
}

type mockDeleteEntryUC struct {
	err error
	cmd *usecases.DeleteEntryCommand
}

func (m *mockDeleteEntryUC) Execute(_ context.Context, cmd usecases.DeleteEntryCommand) error {
	m.cmd = &cmd
	return m.err
}

type mockGetEntryUC struct {
	result *catalogdto.EntryDTO
	err    error
}

func (m *mockGetEntryUC) Execute(_ context.Context, _ catalog.Kind, _ uint) (*catalogdto.EntryDTO, error) {
	return m.result, m.err
}

type mockListEntriesUC struct {
	result []*catalogdto.EntryDTO
	kind   catalog.Kind
	query  string
}

func (m *mockListEntriesUC) Execute(_ context.Context, kind catalog.Kind, query string) ([]*catalogdto.EntryDTO, error) {
	m.kind = kind
	m.query = query
	return m.result, nil
}

type catalogMocks struct {
	create *mockCreateEntryUC
	update *mockUpdateEntryUC
	delete *mockDeleteEntryUC
	get    *mockGetEntryUC
	list   *mockListEntriesUC
}

func newTestCatalogHandler() (*CatalogHandler, *catalogMocks) {
	m := &catalogMocks{
		create: &mockCreateEntryUC{},
		update: &mockUpdateEntryUC{},
		delete: &mockDeleteEntryUC{},
		get:    &mockGetEntryUC{},
		list:   &mockListEntriesUC{},
	}
	return NewCatalogHandler(m.create, m.update, m.delete, m.get, m.list, testutil.NewMockLogger()), m
}

func TestCatalogPath(t *testing.T) {
	assert.Equal(t, "/board/admin/products", CatalogPath(catalog.KindProduct))
	assert.Equal(t, "/board/admin/status", CatalogPath(catalog.KindStatus))
	assert.Equal(t, "/board/admin/services", CatalogPath(catalog.KindService))
	assert.Equal(t, "/board/admin/roles", CatalogPath(catalog.KindRole))
}

func TestCatalogHandler_List(t *testing.T) {
	h, m := newTestCatalogHandler()
	m.list.result = []*catalogdto.EntryDTO{{ID: 1, Kind: catalog.KindProduct, Key: "Laptop-X"}}

	c, w := testutil.NewTestContext(http.MethodGet, "/board/admin/products", nil)
	testutil.SetQueryParams(c, map[string]string{"query": "lap"})

	h.List(catalog.KindProduct)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, catalog.KindProduct, m.list.kind)
	assert.Equal(t, "lap", m.list.query)
	assert.Contains(t, w.Body.String(), `"device":"Laptop-X"`)
}

func TestCatalogHandler_Get_Sentinel(t *testing.T) {
	h, _ := newTestCatalogHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/board/admin/status/new-status", nil)
	testutil.SetURLParam(c, "id", "new-status")

	h.Get(catalog.KindStatus)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"entry":null`)
}

func TestCatalogHandler_Get_WrongSentinel(t *testing.T) {
	h, _ := newTestCatalogHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/board/admin/status/new-product", nil)
	testutil.SetURLParam(c, "id", "new-product")

	h.Get(catalog.KindStatus)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_Save_Create(t *testing.T) {
	h, m := newTestCatalogHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/board/admin/products/new-product", url.Values{
		"intent": {"create"},
		"device": {"Laptop-X"},
	})
	testutil.SetURLParam(c, "id", "new-product")
	testutil.SetAuthContext(c, testutil.NewTestUser(1, "admin@example.com", "IT"))

	h.Save(catalog.KindProduct)(c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/board/admin/products/new-product", w.Header().Get("Location"))
	require.NotNil(t, m.create.cmd)
	assert.Equal(t, "Laptop-X", m.create.cmd.Key)
	assert.Equal(t, uint(1), m.create.cmd.AuthorID)
}

func TestCatalogHandler_Save_CreateDuplicate(t *testing.T) {
	h, m := newTestCatalogHandler()
	m.create.err = errors.NewFieldErrors(
		map[string]string{"device": "A product with this device already exists"},
		map[string]string{"device": "Laptop-X"},
	)

	c, w := testutil.NewTestContext(http.MethodPost, "/board/admin/products/new-product", url.Values{
		"intent": {"create"},
		"device": {"Laptop-X"},
	})
	testutil.SetURLParam(c, "id", "new-product")
	testutil.SetAuthContext(c, testutil.NewTestUser(1, "admin@example.com", "IT"))

	h.Save(catalog.KindProduct)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "A product with this device already exists", resp.Error.FieldErrors["device"])
}

func TestCatalogHandler_Save_UpdateUsesKindField(t *testing.T) {
	h, m := newTestCatalogHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/board/admin/roles/3", url.Values{
		"intent":   {"update"},
		"roleType": {"Supervisor"},
	})
	testutil.SetURLParam(c, "id", "3")

	h.Save(catalog.KindRole)(c)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/board/admin/roles/new-role", w.Header().Get("Location"))
	require.NotNil(t, m.update.cmd)
	assert.Equal(t, uint(3), m.update.cmd.ID)
	assert.Equal(t, "Supervisor", m.update.cmd.Key)
}

func TestCatalogHandler_Save_DeleteReferenced(t *testing.T) {
	h, m := newTestCatalogHandler()
	m.delete.err = errors.NewConflictError("Status is used by 2 tickets")

	c, w := testutil.NewTestContext(http.MethodPost, "/board/admin/status/2", url.Values{"intent": {"delete"}})
	testutil.SetURLParam(c, "id", "2")

	h.Save(catalog.KindStatus)(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCatalogHandler_Save_CreateOnExistingRow(t *testing.T) {
	h, m := newTestCatalogHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/board/admin/services/2", url.Values{
		"intent": {"create"},
		"name":   {"IT"},
	})
	testutil.SetURLParam(c, "id", "2")

	h.Save(catalog.KindService)(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Nil(t, m.create.cmd)
}
