package dto

import (
	"encoding/json"
	"time"

	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/shared/mapper"
)

// EntryDTO renders a lookup with its natural key under the kind's own field
// name, e.g. {"id":1,"device":"Laptop-X",...} for a product.
type EntryDTO struct {
	ID        uint
	Kind      catalog.Kind
	Key       string
	AuthorID  uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d EntryDTO) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"id":              d.ID,
		d.Kind.KeyField(): d.Key,
		"author_id":       d.AuthorID,
		"created_at":      d.CreatedAt,
		"updated_at":      d.UpdatedAt,
	})
}

func ToEntryDTO(e *catalog.Entry) *EntryDTO {
	if e == nil {
		return nil
	}
	return &EntryDTO{
		ID:        e.ID(),
		Kind:      e.Kind(),
		Key:       e.Key(),
		AuthorID:  e.AuthorID(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}

func ToEntryDTOList(entries []*catalog.Entry) []*EntryDTO {
	result := mapper.MapSlicePtrSkipNil(entries, ToEntryDTO)
	if result == nil {
		return []*EntryDTO{}
	}
	return result
}
