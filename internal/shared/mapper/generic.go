// Package mapper converts listings between layers: user rows into domain users,
// and catalog entries or users into the DTOs the board loaders return.
package mapper

import "fmt"

// MapSlicePtrSkipNil maps every non-nil item and drops nil results. A nil input
// stays nil so callers can tell "not loaded" from an empty listing.
func MapSlicePtrSkipNil[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	if items == nil {
		return nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item != nil {
			if mapped := mapFunc(item); mapped != nil {
				result = append(result, mapped)
			}
		}
	}
	return result
}

// MapSlicePtrWithID is MapSlicePtrSkipNil for mappers that can fail, such as a
// stored user row whose email no longer passes the domain checks. The first
// error names the id of the offending row.
func MapSlicePtrWithID[T any, R any, ID any](
	items []*T,
	mapFunc func(*T) (*R, error),
	getID func(*T) ID,
) ([]*R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item ID %v: %w", getID(item), err)
		}
		if mapped != nil {
			result = append(result, mapped)
		}
	}
	return result, nil
}
