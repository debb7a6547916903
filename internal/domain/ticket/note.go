package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

const MaxNoteLength = 5000

// Note is a follow-up message written by a user on a ticket.
type Note struct {
	id        uint
	ticketID  uint
	userID    uint
	text      string
	createdAt time.Time
	updatedAt time.Time
}

func NewNote(ticketID, userID uint, text string) (*Note, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if err := validateNoteText(text); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Note{
		ticketID:  ticketID,
		userID:    userID,
		text:      text,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructNote(id, ticketID, userID uint, text string, createdAt, updatedAt time.Time) (*Note, error) {
	if id == 0 {
		return nil, fmt.Errorf("note ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Note{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		text:      text,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (n *Note) ID() uint             { return n.id }
func (n *Note) TicketID() uint       { return n.ticketID }
func (n *Note) UserID() uint         { return n.userID }
func (n *Note) Text() string         { return n.text }
func (n *Note) CreatedAt() time.Time { return n.createdAt }
func (n *Note) UpdatedAt() time.Time { return n.updatedAt }

func (n *Note) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("note ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("note ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Note) UpdateText(text string) error {
	if err := validateNoteText(text); err != nil {
		return err
	}
	n.text = text
	n.updatedAt = biztime.NowUTC()
	return nil
}

func validateNoteText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}
	if utf8.RuneCountInString(text) > MaxNoteLength {
		return fmt.Errorf("text exceeds maximum length of %d characters", MaxNoteLength)
	}
	return nil
}

// NoteDetails is a note joined with its author and the ticket it belongs to.
type NoteDetails struct {
	Note           *Note
	AuthorUsername string
	AuthorEmail    string
	TicketTitle    string
	ProductDevice  string
}
