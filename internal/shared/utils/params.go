package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

// ParseIDParam parses a positive numeric id from a URL path parameter.
// entityName is used in error messages (e.g., "ticket", "note").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewNotFoundError(entityName + " not found")
	}
	return uint(id), nil
}

// ParseIDOrSentinel returns (0, true) when the parameter equals sentinel, the
// literal used in creation URLs, and the parsed id otherwise.
func ParseIDOrSentinel(c *gin.Context, paramName, sentinel, entityName string) (uint, bool, error) {
	if c.Param(paramName) == sentinel {
		return 0, true, nil
	}
	id, err := ParseIDParam(c, paramName, entityName)
	return id, false, err
}
