package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// DeleteTicketUseCase removes a ticket together with its notes.
type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	noteRepo   ticket.NoteRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	noteRepo ticket.NoteRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		noteRepo:   noteRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, ticketID uint) error {
	var removedNotes int64
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, ticketID)
		if err != nil {
			return fmt.Errorf("failed to get ticket: %w", err)
		}
		if t == nil {
			return errors.NewNotFoundError("Ticket not found")
		}

		removedNotes, err = uc.noteRepo.DeleteByTicketID(txCtx, ticketID)
		if err != nil {
			return fmt.Errorf("failed to delete ticket notes: %w", err)
		}
		return uc.ticketRepo.Delete(txCtx, ticketID)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to delete ticket", "ticket_id", ticketID, "error", err)
		}
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", ticketID, "notes_deleted", removedNotes)
	return nil
}
