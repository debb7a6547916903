package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// DeleteAllTicketsByUserUseCase removes every ticket a user authored together
// with the notes on those tickets. It joins the caller's transaction if any.
type DeleteAllTicketsByUserUseCase struct {
	ticketRepo ticket.Repository
	noteRepo   ticket.NoteRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeleteAllTicketsByUserUseCase(
	ticketRepo ticket.Repository,
	noteRepo ticket.NoteRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteAllTicketsByUserUseCase {
	return &DeleteAllTicketsByUserUseCase{
		ticketRepo: ticketRepo,
		noteRepo:   noteRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteAllTicketsByUserUseCase) Execute(ctx context.Context, userID uint) (int64, error) {
	var removed int64
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		ticketIDs, err := uc.ticketRepo.ListIDsByAuthorID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to list user tickets: %w", err)
		}
		if len(ticketIDs) == 0 {
			return nil
		}

		if _, err := uc.noteRepo.DeleteByTicketIDs(txCtx, ticketIDs); err != nil {
			return fmt.Errorf("failed to delete notes of user tickets: %w", err)
		}

		removed, err = uc.ticketRepo.DeleteByAuthorID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to delete user tickets: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete tickets of user", "user_id", userID, "error", err)
		return 0, err
	}

	uc.logger.Infow("deleted tickets of user", "user_id", userID, "count", removed)
	return removed, nil
}
