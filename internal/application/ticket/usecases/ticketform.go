package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/validation"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

// TicketForm is the submitted ticket form. Product and Status carry the
// selected names.
type TicketForm struct {
	Title       string
	Description string
	Product     string
	Status      string
}

func (f TicketForm) fields() map[string]string {
	return map[string]string{
		"title":       f.Title,
		"description": f.Description,
		"product":     f.Product,
		"status":      f.Status,
	}
}

func (f TicketForm) validate() error {
	if fieldErrors := validation.Collect(map[string]validation.Rule{
		"title":       {Value: f.Title, Check: validation.NotOnlyDigits("Title", validation.Title)},
		"description": {Value: f.Description, Check: validation.NotOnlyDigits("Description", validation.Description)},
		"product":     {Value: f.Product, Check: validation.SelectedProduct},
		"status":      {Value: f.Status, Check: validation.SelectedStatus},
	}); fieldErrors != nil {
		return errors.NewFieldErrors(fieldErrors, f.fields())
	}
	return nil
}

// resolve validates the form and maps the selected names to ids.
func (f TicketForm) resolve(ctx context.Context, lookups catalog.Repository) (productID, statusID uint, err error) {
	if err := f.validate(); err != nil {
		return 0, 0, err
	}

	product, err := resolveLookup(ctx, lookups, catalog.KindProduct, f.Product)
	if err != nil {
		return 0, 0, errors.WithFields(err, f.fields())
	}
	status, err := resolveLookup(ctx, lookups, catalog.KindStatus, f.Status)
	if err != nil {
		return 0, 0, errors.WithFields(err, f.fields())
	}
	return product.ID(), status.ID(), nil
}
