package http

import (
	authUsecases "github.com/orris-inc/helpdesk/internal/application/auth/usecases"
	catalogUsecases "github.com/orris-inc/helpdesk/internal/application/catalog/usecases"
	ticketUsecases "github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	userUsecases "github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/shared/services/markdown"
)

// allUseCases holds every use case instance, grouped by domain.
type allUseCases struct {
	// Auth
	registerUC *authUsecases.RegisterUseCase
	loginUC    *authUsecases.LoginUseCase

	// Catalog
	createEntryUC *catalogUsecases.CreateEntryUseCase
	updateEntryUC *catalogUsecases.UpdateEntryUseCase
	deleteEntryUC *catalogUsecases.DeleteEntryUseCase
	getEntryUC    *catalogUsecases.GetEntryUseCase
	listEntriesUC *catalogUsecases.ListEntriesUseCase

	// Ticket
	createTicketUC   *ticketUsecases.CreateTicketUseCase
	updateTicketUC   *ticketUsecases.UpdateTicketUseCase
	deleteTicketUC   *ticketUsecases.DeleteTicketUseCase
	getTicketUC      *ticketUsecases.GetTicketUseCase
	listTicketsUC    *ticketUsecases.ListTicketsUseCase
	addNoteUC        *ticketUsecases.AddNoteUseCase
	updateNoteUC     *ticketUsecases.UpdateNoteUseCase
	deleteNoteUC     *ticketUsecases.DeleteNoteUseCase
	listNotesUC      *ticketUsecases.ListNotesUseCase
	deleteUserTktsUC *ticketUsecases.DeleteAllTicketsByUserUseCase

	// User
	listUsersUC  *userUsecases.ListUsersUseCase
	updateUserUC *userUsecases.UpdateUserUseCase
	deleteUserUC *userUsecases.DeleteUserUseCase
}

func newUseCases(c *Container) *allUseCases {
	log := c.log
	repos := c.repos
	renderer := markdown.NewRenderer()

	ucs := &allUseCases{
		registerUC: authUsecases.NewRegisterUseCase(repos.userRepo, c.hasher, c.resolver, log),
		loginUC:    authUsecases.NewLoginUseCase(repos.userRepo, c.hasher, c.resolver, log),

		createEntryUC: catalogUsecases.NewCreateEntryUseCase(repos.lookupRepo, log),
		updateEntryUC: catalogUsecases.NewUpdateEntryUseCase(repos.lookupRepo, repos.userRepo, c.enforcer, repos.txManager, log),
		deleteEntryUC: catalogUsecases.NewDeleteEntryUseCase(repos.lookupRepo, repos.ticketRepo, repos.userRepo, log),
		getEntryUC:    catalogUsecases.NewGetEntryUseCase(repos.lookupRepo, log),
		listEntriesUC: catalogUsecases.NewListEntriesUseCase(repos.lookupRepo, log),

		createTicketUC:   ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, repos.lookupRepo, repos.txManager, renderer, log),
		updateTicketUC:   ticketUsecases.NewUpdateTicketUseCase(repos.ticketRepo, repos.lookupRepo, repos.txManager, log),
		deleteTicketUC:   ticketUsecases.NewDeleteTicketUseCase(repos.ticketRepo, repos.noteRepo, repos.txManager, log),
		getTicketUC:      ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, renderer, log),
		listTicketsUC:    ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, renderer, log),
		addNoteUC:        ticketUsecases.NewAddNoteUseCase(repos.ticketRepo, repos.noteRepo, log),
		updateNoteUC:     ticketUsecases.NewUpdateNoteUseCase(repos.noteRepo, log),
		deleteNoteUC:     ticketUsecases.NewDeleteNoteUseCase(repos.noteRepo, log),
		listNotesUC:      ticketUsecases.NewListNotesUseCase(repos.noteRepo, renderer, log),
		deleteUserTktsUC: ticketUsecases.NewDeleteAllTicketsByUserUseCase(repos.ticketRepo, repos.noteRepo, repos.txManager, log),

		listUsersUC:  userUsecases.NewListUsersUseCase(repos.userRepo, log),
		updateUserUC: userUsecases.NewUpdateUserUseCase(repos.userRepo, c.hasher, log),
	}

	ucs.deleteUserUC = userUsecases.NewDeleteUserUseCase(repos.userRepo, repos.noteRepo, ucs.deleteUserTktsUC, repos.txManager, log)

	return ucs
}
