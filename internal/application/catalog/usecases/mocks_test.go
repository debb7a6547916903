package usecases

import (
	"context"
	"sort"
	"strings"

	"github.com/orris-inc/helpdesk/internal/domain/catalog"
)

// memoryCatalog is a map backed catalog.Repository.
type memoryCatalog struct {
	nextID  uint
	entries map[catalog.Kind]map[uint]*catalog.Entry
}

func newMemoryCatalog() *memoryCatalog {
	return &memoryCatalog{entries: make(map[catalog.Kind]map[uint]*catalog.Entry)}
}

func (m *memoryCatalog) add(kind catalog.Kind, key string) *catalog.Entry {
	e, err := catalog.NewEntry(kind, key, 1)
	if err != nil {
		panic(err)
	}
	if err := m.Create(context.Background(), e); err != nil {
		panic(err)
	}
	return e
}

func (m *memoryCatalog) Create(ctx context.Context, e *catalog.Entry) error {
	m.nextID++
	if err := e.SetID(m.nextID); err != nil {
		return err
	}
	if m.entries[e.Kind()] == nil {
		m.entries[e.Kind()] = make(map[uint]*catalog.Entry)
	}
	m.entries[e.Kind()][e.ID()] = e
	return nil
}

func (m *memoryCatalog) Update(ctx context.Context, e *catalog.Entry) error {
	m.entries[e.Kind()][e.ID()] = e
	return nil
}

func (m *memoryCatalog) Delete(ctx context.Context, kind catalog.Kind, id uint) error {
	delete(m.entries[kind], id)
	return nil
}

func (m *memoryCatalog) GetByID(ctx context.Context, kind catalog.Kind, id uint) (*catalog.Entry, error) {
	return m.entries[kind][id], nil
}

func (m *memoryCatalog) GetByKey(ctx context.Context, kind catalog.Kind, key string) (*catalog.Entry, error) {
	for _, e := range m.entries[kind] {
		if e.Key() == key {
			return e, nil
		}
	}
	return nil, nil
}

func (m *memoryCatalog) List(ctx context.Context, kind catalog.Kind, query string) ([]*catalog.Entry, error) {
	var result []*catalog.Entry
	for _, e := range m.entries[kind] {
		if query == "" || strings.Contains(strings.ToLower(e.Key()), strings.ToLower(query)) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key() < result[j].Key() })
	return result, nil
}

type mockReferenceCounter struct {
	byProduct map[uint]int64
	byStatus  map[uint]int64
}

func (m *mockReferenceCounter) CountByProductID(ctx context.Context, productID uint) (int64, error) {
	return m.byProduct[productID], nil
}

func (m *mockReferenceCounter) CountByStatusID(ctx context.Context, statusID uint) (int64, error) {
	return m.byStatus[statusID], nil
}

type mockServiceCounter map[string]int64

func (m mockServiceCounter) CountByService(ctx context.Context, service string) (int64, error) {
	return m[service], nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memoryUsers maps user id to service name.
type memoryUsers map[uint]string

func (m memoryUsers) RenameService(ctx context.Context, from, to string) (int64, error) {
	var n int64
	for id, s := range m {
		if s == from {
			m[id] = to
			n++
		}
	}
	return n, nil
}

func (m memoryUsers) CountByService(ctx context.Context, service string) (int64, error) {
	var n int64
	for _, s := range m {
		if s == service {
			n++
		}
	}
	return n, nil
}

type staticAdmins []string

func (a staticAdmins) IsAdmin(service string) (bool, error) {
	for _, s := range a {
		if s == service {
			return true, nil
		}
	}
	return false, nil
}
