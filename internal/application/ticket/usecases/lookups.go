package usecases

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

type lookupCacheKey struct{}

type lookupCache struct {
	mu      sync.Mutex
	entries map[catalog.Kind]map[string]*catalog.Entry
}

// WithLookupCache scopes product and status name resolution to ctx. Names
// resolved through the returned context hit the database once.
func WithLookupCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, lookupCacheKey{}, &lookupCache{
		entries: make(map[catalog.Kind]map[string]*catalog.Entry),
	})
}

// resolveLookup maps a submitted name to its lookup row. A missing row is a
// form error naming the field.
func resolveLookup(ctx context.Context, repo catalog.Repository, kind catalog.Kind, name string) (*catalog.Entry, error) {
	name = strings.TrimSpace(name)
	cache, _ := ctx.Value(lookupCacheKey{}).(*lookupCache)
	if cache != nil {
		cache.mu.Lock()
		entry, ok := cache.entries[kind][name]
		cache.mu.Unlock()
		if ok {
			return entry, nil
		}
	}

	entry, err := repo.GetByKey(ctx, kind, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", kind, err)
	}
	if entry == nil {
		return nil, errors.NewValidationError(fmt.Sprintf("%s not found", kind.Label()))
	}

	if cache != nil {
		cache.mu.Lock()
		if cache.entries[kind] == nil {
			cache.entries[kind] = make(map[string]*catalog.Entry)
		}
		cache.entries[kind][name] = entry
		cache.mu.Unlock()
	}
	return entry, nil
}

// verifyLookups re-reads both references inside the write transaction so a
// concurrent delete is caught before the ticket points at it.
func verifyLookups(ctx context.Context, repo catalog.Repository, productID, statusID uint) error {
	product, err := repo.GetByID(ctx, catalog.KindProduct, productID)
	if err != nil {
		return fmt.Errorf("failed to verify product: %w", err)
	}
	if product == nil {
		return errors.NewValidationError("Product not found")
	}

	status, err := repo.GetByID(ctx, catalog.KindStatus, statusID)
	if err != nil {
		return fmt.Errorf("failed to verify status: %w", err)
	}
	if status == nil {
		return errors.NewValidationError("Status not found")
	}
	return nil
}
