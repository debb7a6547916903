package middleware

import (
	"github.com/gin-gonic/gin"

	ticketUsecases "github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
)

// LookupCache scopes product and status name resolution to the request, so
// each name is read from the database at most once per request.
func LookupCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(ticketUsecases.WithLookupCache(c.Request.Context()))
		c.Next()
	}
}
