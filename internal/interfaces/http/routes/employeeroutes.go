package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/infrastructure/permission"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers"
	tickethandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
)

type EmployeeRouteConfig struct {
	BoardHandler         *handlers.BoardHandler
	TicketHandler        *tickethandlers.Handler
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupEmployeeRoutes configures /board/employee for every signed-in user.
func SetupEmployeeRoutes(engine *gin.Engine, cfg *EmployeeRouteConfig) {
	board := engine.Group("/board/employee")
	board.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequireArea(permission.AreaEmployeeBoard),
		middleware.LookupCache(),
	)
	{
		board.GET("", cfg.BoardHandler.EmployeeBoard)

		tickets := board.Group("/tickets")
		{
			tickets.GET("", cfg.TicketHandler.ListMyTickets)
			tickets.GET("/:ticketId", cfg.TicketHandler.GetTicket)
			tickets.POST("/:ticketId", cfg.TicketHandler.SaveTicket)
			tickets.POST("/:ticketId/deleteTicket", cfg.TicketHandler.DeleteTicket)
			tickets.POST("/:ticketId/deleteNote", cfg.TicketHandler.DeleteTicketNotes)
			tickets.POST("/:ticketId/notes", cfg.TicketHandler.AddNote)
			tickets.GET("/:ticketId/notes/:noteId", cfg.TicketHandler.GetNote)
			tickets.POST("/:ticketId/notes/:noteId", cfg.TicketHandler.SaveNote)
		}

		board.GET("/users/:userId", cfg.UserHandler.GetProfile)
		board.POST("/users/:userId", cfg.UserHandler.UpdateProfile)
	}
}
