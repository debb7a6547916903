package catalog

import "context"

// Repository stores every lookup kind. Key comparison is exact and case
// sensitive. Lookups return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, kind Kind, id uint) error
	GetByID(ctx context.Context, kind Kind, id uint) (*Entry, error)
	GetByKey(ctx context.Context, kind Kind, key string) (*Entry, error)
	// List returns entries ascending by key; a non-empty query keeps keys that
	// contain it, ignoring case.
	List(ctx context.Context, kind Kind, query string) ([]*Entry, error)
}
