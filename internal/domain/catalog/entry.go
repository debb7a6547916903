// Package catalog holds the lookup entities an administrator maintains: products,
// statuses, services and roles. Each has a unique, human readable natural key.
package catalog

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

type Kind string

const (
	KindProduct Kind = "product"
	KindStatus  Kind = "status"
	KindService Kind = "service"
	KindRole    Kind = "role"
)

// Kinds lists every lookup kind in a stable order.
var Kinds = []Kind{KindProduct, KindStatus, KindService, KindRole}

func (k Kind) IsValid() bool {
	switch k {
	case KindProduct, KindStatus, KindService, KindRole:
		return true
	}
	return false
}

// KeyField is the form field that carries the natural key.
func (k Kind) KeyField() string {
	switch k {
	case KindProduct:
		return "device"
	case KindStatus:
		return "type"
	case KindService:
		return "name"
	case KindRole:
		return "roleType"
	}
	return ""
}

// Label is the capitalised name used in messages.
func (k Kind) Label() string {
	switch k {
	case KindProduct:
		return "Product"
	case KindStatus:
		return "Status"
	case KindService:
		return "Service"
	case KindRole:
		return "Role"
	}
	return string(k)
}

// NewSentinel is the path segment that selects creation instead of update.
func (k Kind) NewSentinel() string {
	return "new-" + string(k)
}

func (k Kind) String() string {
	return string(k)
}

const MaxKeyLength = 100

// Entry is one lookup row.
type Entry struct {
	id        uint
	kind      Kind
	key       string
	authorID  uint
	createdAt time.Time
	updatedAt time.Time
}

func NewEntry(kind Kind, key string, authorID uint) (*Entry, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid lookup kind %q", kind)
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	e := &Entry{kind: kind, authorID: authorID}
	if err := e.setKey(key); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	e.createdAt = now
	e.updatedAt = now
	return e, nil
}

func ReconstructEntry(id uint, kind Kind, key string, authorID uint, createdAt, updatedAt time.Time) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("%s ID cannot be zero", kind)
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid lookup kind %q", kind)
	}

	return &Entry{
		id:        id,
		kind:      kind,
		key:       key,
		authorID:  authorID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) Kind() Kind           { return e.kind }
func (e *Entry) Key() string          { return e.key }
func (e *Entry) AuthorID() uint       { return e.authorID }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time { return e.updatedAt }

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("%s ID is already set", e.kind)
	}
	if id == 0 {
		return fmt.Errorf("%s ID cannot be zero", e.kind)
	}
	e.id = id
	return nil
}

// Rename changes the natural key. The id, and with it every reference, is kept.
func (e *Entry) Rename(key string) error {
	if err := e.setKey(key); err != nil {
		return err
	}
	e.updatedAt = biztime.NowUTC()
	return nil
}

func (e *Entry) setKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%s is required", e.kind.KeyField())
	}
	if utf8.RuneCountInString(key) > MaxKeyLength {
		return fmt.Errorf("%s exceeds maximum length of %d characters", e.kind.KeyField(), MaxKeyLength)
	}
	e.key = key
	return nil
}
