package usecases

import (
	"fmt"

	"github.com/orris-inc/helpdesk/internal/application/validation"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

var keyValidators = map[catalog.Kind]validation.Validator{
	catalog.KindProduct: validation.Product,
	catalog.KindStatus:  validation.Status,
	catalog.KindService: validation.ServiceName,
	catalog.KindRole:    validation.Role,
}

func validateKey(kind catalog.Kind, key string) error {
	if !kind.IsValid() {
		return errors.NewBadRequestError(fmt.Sprintf("unknown lookup kind %q", kind))
	}

	fields := map[string]string{kind.KeyField(): key}
	if fieldErrors := validation.Collect(map[string]validation.Rule{
		kind.KeyField(): {Value: key, Check: keyValidators[kind]},
	}); fieldErrors != nil {
		return errors.NewFieldErrors(fieldErrors, fields)
	}
	return nil
}

func duplicateKeyError(kind catalog.Kind, key string) error {
	return errors.NewFormError(
		errors.NewConflictError(fmt.Sprintf("%s '%s' already exists", kind.Label(), key)),
		map[string]string{kind.KeyField(): key},
	)
}

func notFoundError(kind catalog.Kind) error {
	return errors.NewNotFoundError(fmt.Sprintf("%s not found", kind.Label()))
}
