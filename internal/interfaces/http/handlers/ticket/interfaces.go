package ticket

import (
	"context"

	catalogdto "github.com/orris-inc/helpdesk/internal/application/catalog/dto"
	ticketdto "github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
)

// Use case interfaces for Handler - enables unit testing with mocks.

type createTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*ticketdto.TicketDTO, error)
}

type updateTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) error
}

type deleteTicketUseCase interface {
	Execute(ctx context.Context, ticketID uint) error
}

type getTicketUseCase interface {
	Execute(ctx context.Context, ticketID uint) (*ticketdto.TicketDTO, error)
}

type listTicketsUseCase interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) ([]*ticketdto.TicketDTO, error)
	ListUserTickets(ctx context.Context, userID uint, query string) ([]*ticketdto.TicketDTO, error)
}

type addNoteUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddNoteCommand) (uint, error)
}

type updateNoteUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateNoteCommand) (uint, error)
}

type deleteNoteUseCase interface {
	Execute(ctx context.Context, noteID uint) (uint, error)
	DeleteAll(ctx context.Context, ticketID uint) (int64, error)
}

type listNotesUseCase interface {
	Execute(ctx context.Context, query usecases.ListNotesQuery) ([]*ticketdto.NoteDTO, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*ticketdto.NoteDTO, error)
	Get(ctx context.Context, noteID uint) (*ticketdto.NoteDTO, error)
}

type entryLister interface {
	Execute(ctx context.Context, kind catalog.Kind, query string) ([]*catalogdto.EntryDTO, error)
}

// UseCases groups the use cases the ticket and note pages need.
type UseCases struct {
	CreateTicket createTicketUseCase
	UpdateTicket updateTicketUseCase
	DeleteTicket deleteTicketUseCase
	GetTicket    getTicketUseCase
	ListTickets  listTicketsUseCase
	AddNote      addNoteUseCase
	UpdateNote   updateNoteUseCase
	DeleteNote   deleteNoteUseCase
	ListNotes    listNotesUseCase
	Entries      entryLister
}
