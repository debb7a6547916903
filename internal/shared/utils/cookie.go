package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetCookie appends cookie to the response. Attributes such as SameSite are
// taken from cookie as built by the session manager.
func SetCookie(c *gin.Context, cookie *http.Cookie) {
	if cookie == nil {
		return
	}
	http.SetCookie(c.Writer, cookie)
}
