// Package common holds the form plumbing shared by the board handlers.
package common

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// FormRequest is a decoded form that can report what the user submitted.
type FormRequest interface {
	Fields() map[string]string
}

// BindForm decodes the submitted form into req and enforces its validate tags.
// A body that cannot be decoded is a bad request.
func BindForm(c *gin.Context, req FormRequest) error {
	if err := c.ShouldBind(req); err != nil {
		return errors.NewBadRequestError("Form not submitted correctly.", err.Error())
	}
	return utils.ValidateStruct(req, req.Fields())
}

// ParseIntent returns the submitted intent when it is one of allowed.
func ParseIntent(c *gin.Context, allowed ...string) (string, error) {
	intent := c.PostForm("intent")
	for _, a := range allowed {
		if intent == a {
			return intent, nil
		}
	}
	return "", errors.NewUnsupportedIntentError(intent)
}
