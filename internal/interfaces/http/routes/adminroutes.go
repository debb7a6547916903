package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers"
	adminhandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/admin"
	tickethandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
)

type AdminRouteConfig struct {
	BoardHandler   *handlers.BoardHandler
	CatalogHandler *adminhandlers.CatalogHandler
	TicketHandler  *tickethandlers.Handler
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes configures /board/admin for users of an admin service.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group(constants.PathAdminBoard)
	admin.Use(cfg.AuthMiddleware.RequireAdmin(), middleware.LookupCache())
	{
		admin.GET("", cfg.BoardHandler.AdminBoard)

		for _, kind := range catalog.Kinds {
			base := adminhandlers.CatalogPath(kind)[len(constants.PathAdminBoard):]
			admin.GET(base, cfg.CatalogHandler.List(kind))
			admin.GET(base+"/:id", cfg.CatalogHandler.Get(kind))
			admin.POST(base+"/:id", cfg.CatalogHandler.Save(kind))
		}

		users := admin.Group("/users")
		{
			users.GET("/userlist", cfg.UserHandler.ListUsers)
			users.GET("/userlist/:userId", cfg.UserHandler.GetUser)
			users.POST("/userlist/:userId", cfg.UserHandler.UpdateUser)

			users.GET("/ticketlist", cfg.TicketHandler.ListTickets)
			users.GET("/ticketlist/:ticketId", cfg.TicketHandler.GetAdminTicket)
			users.POST("/ticketlist/:ticketId", cfg.TicketHandler.SaveAdminTicket)
			users.POST("/ticketlist/:ticketId/add", cfg.TicketHandler.AddAdminNote)

			users.GET("/notelist", cfg.TicketHandler.ListNotes)
			users.GET("/notelist/:noteId", cfg.TicketHandler.GetAdminNote)
			users.POST("/notelist/:noteId", cfg.TicketHandler.SaveAdminNote)
		}
	}
}
