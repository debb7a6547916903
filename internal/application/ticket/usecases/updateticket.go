package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID uint
	Form     TicketForm
}

// UpdateTicketUseCase revises a ticket. The original author is kept whoever
// submits the change.
type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	lookups    catalog.Repository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	lookups catalog.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		lookups:    lookups,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) error {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	productID, statusID, err := cmd.Form.resolve(ctx, uc.lookups)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return fmt.Errorf("failed to get ticket: %w", err)
		}
		if t == nil {
			return errors.NewNotFoundError("Ticket not found")
		}

		if err := verifyLookups(txCtx, uc.lookups, productID, statusID); err != nil {
			return err
		}

		if err := t.Revise(productID, statusID, cmd.Form.Title, cmd.Form.Description); err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return errors.WithFields(err, cmd.Form.fields())
		}
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID)
	return nil
}
