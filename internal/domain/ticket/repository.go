package ticket

import "context"

// Repository persists tickets. Lookups return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	DeleteByAuthorID(ctx context.Context, authorID uint) (int64, error)
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetDetails(ctx context.Context, ticketID uint) (*Details, error)
	List(ctx context.Context, filter Filter) ([]*Details, error)
	ListIDsByAuthorID(ctx context.Context, authorID uint) ([]uint, error)
	CountByProductID(ctx context.Context, productID uint) (int64, error)
	CountByStatusID(ctx context.Context, statusID uint) (int64, error)
}

// Filter narrows a ticket listing. Query matches title, author username, status
// type or product device, ignoring case (ASCII letters only on SQLite). Results
// are newest update first.
type Filter struct {
	Query    string
	AuthorID *uint
}

// NoteRepository persists notes. Lookups return (nil, nil) when no row matches.
type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	Update(ctx context.Context, note *Note) error
	Delete(ctx context.Context, noteID uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) (int64, error)
	DeleteByTicketIDs(ctx context.Context, ticketIDs []uint) (int64, error)
	DeleteByUserID(ctx context.Context, userID uint) (int64, error)
	GetByID(ctx context.Context, noteID uint) (*Note, error)
	GetDetails(ctx context.Context, noteID uint) (*NoteDetails, error)
	List(ctx context.Context, filter NoteFilter) ([]*NoteDetails, error)
}

// NoteFilter narrows a note listing. Query matches note text, author username,
// ticket title or ticket product device, ignoring case. Newest update first.
type NoteFilter struct {
	Query    string
	TicketID *uint
}
