package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	AuthorID uint
	Form     TicketForm
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	lookups    catalog.Repository
	txManager  TransactionManager
	renderer   dto.HTMLRenderer
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	lookups catalog.Repository,
	txManager TransactionManager,
	renderer dto.HTMLRenderer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		lookups:    lookups,
		txManager:  txManager,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "author_id", cmd.AuthorID)

	productID, statusID, err := cmd.Form.resolve(ctx, uc.lookups)
	if err != nil {
		return nil, err
	}

	newTicket, err := ticket.NewTicket(cmd.AuthorID, productID, statusID, cmd.Form.Title, cmd.Form.Description)
	if err != nil {
		return nil, errors.NewFormError(errors.NewValidationError(err.Error()), cmd.Form.fields())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := verifyLookups(txCtx, uc.lookups, productID, statusID); err != nil {
			return err
		}
		return uc.ticketRepo.Create(txCtx, newTicket)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, errors.WithFields(err, cmd.Form.fields())
		}
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return dto.ToTicketDTO(&ticket.Details{
		Ticket:        newTicket,
		ProductDevice: cmd.Form.Product,
		StatusType:    cmd.Form.Status,
	}, uc.renderer), nil
}
