package http

import (
	"github.com/orris-inc/helpdesk/internal/infrastructure/ratelimit"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers"
	adminHandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/admin"
	ticketHandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
)

// allHandlers holds every HTTP handler instance.
type allHandlers struct {
	authHandler    *handlers.AuthHandler
	boardHandler   *handlers.BoardHandler
	userHandler    *handlers.UserHandler
	ticketHandler  *ticketHandlers.Handler
	catalogHandler *adminHandlers.CatalogHandler
}

func newHandlers(c *Container) *allHandlers {
	log := c.log
	ucs := c.ucs

	h := &allHandlers{
		authHandler: handlers.NewAuthHandler(ucs.registerUC, ucs.loginUC, ucs.listEntriesUC, c.sessions, log),
		userHandler: handlers.NewUserHandler(ucs.listUsersUC, ucs.updateUserUC, ucs.deleteUserUC, ucs.listEntriesUC, c.sessions, log),
		catalogHandler: adminHandlers.NewCatalogHandler(
			ucs.createEntryUC,
			ucs.updateEntryUC,
			ucs.deleteEntryUC,
			ucs.getEntryUC,
			ucs.listEntriesUC,
			log,
		),
		ticketHandler: ticketHandlers.NewHandler(ticketHandlers.UseCases{
			CreateTicket: ucs.createTicketUC,
			UpdateTicket: ucs.updateTicketUC,
			DeleteTicket: ucs.deleteTicketUC,
			GetTicket:    ucs.getTicketUC,
			ListTickets:  ucs.listTicketsUC,
			AddNote:      ucs.addNoteUC,
			UpdateNote:   ucs.updateNoteUC,
			DeleteNote:   ucs.deleteNoteUC,
			ListNotes:    ucs.listNotesUC,
			Entries:      ucs.listEntriesUC,
		}, log),
	}

	// boardHandler pings the database for the health check
	if sqlDB, err := c.db.DB(); err == nil {
		h.boardHandler = handlers.NewBoardHandler(c.resolver, sqlDB, log)
	} else {
		log.Warnw("failed to get underlying sql.DB, health check disabled", "error", err)
		h.boardHandler = handlers.NewBoardHandler(c.resolver, nil, log)
	}

	return h
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.sessions, c.resolver, c.cfg.Auth.LogoutOnForbidden, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)

	if c.redis != nil {
		c.rateLimiter = middleware.NewRateLimiter(
			ratelimit.NewRedisRateLimiter(c.redis),
			ratelimit.Limits{
				RequestsPerMinute: c.cfg.RateLimit.AuthRequestsPerMinute,
				RequestsPerHour:   c.cfg.RateLimit.AuthRequestsPerHour,
			},
			c.log,
		)
	}
}
