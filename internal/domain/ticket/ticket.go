package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
)

// Ticket is a support request raised by a user against a product. Product and
// status are referenced by id; names are resolved before a ticket is written.
type Ticket struct {
	id          uint
	authorID    uint
	productID   uint
	statusID    uint
	title       string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(authorID, productID, statusID uint, title, description string) (*Ticket, error) {
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	t := &Ticket{authorID: authorID}
	if err := t.apply(productID, statusID, title, description); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	t.createdAt = now
	t.updatedAt = now
	return t, nil
}

func ReconstructTicket(
	id, authorID, productID, statusID uint,
	title, description string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Ticket{
		id:          id,
		authorID:    authorID,
		productID:   productID,
		statusID:    statusID,
		title:       title,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint             { return t.id }
func (t *Ticket) AuthorID() uint       { return t.authorID }
func (t *Ticket) ProductID() uint      { return t.productID }
func (t *Ticket) StatusID() uint       { return t.statusID }
func (t *Ticket) Title() string        { return t.title }
func (t *Ticket) Description() string  { return t.description }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Revise replaces the editable fields. The author never changes.
func (t *Ticket) Revise(productID, statusID uint, title, description string) error {
	if err := t.apply(productID, statusID, title, description); err != nil {
		return err
	}
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) apply(productID, statusID uint, title, description string) error {
	title = strings.TrimSpace(title)
	if productID == 0 {
		return fmt.Errorf("product ID is required")
	}
	if statusID == 0 {
		return fmt.Errorf("status ID is required")
	}
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}

	t.productID = productID
	t.statusID = statusID
	t.title = title
	t.description = description
	return nil
}

// Details is a ticket joined with the names the boards display.
type Details struct {
	Ticket         *Ticket
	AuthorUsername string
	AuthorEmail    string
	ProductDevice  string
	StatusType     string
	NoteCount      int64
}
