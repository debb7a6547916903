package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// DeleteUserUseCase removes a user and everything that refers to them in one
// transaction: notes on their tickets, notes they wrote, their tickets, then
// the user row.
type DeleteUserUseCase struct {
	userRepo  user.Repository
	notes     NoteRemover
	tickets   TicketCascade
	txManager TransactionManager
	logger    logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	notes NoteRemover,
	tickets TicketCascade,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:  userRepo,
		notes:     notes,
		tickets:   tickets,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, userID uint) error {
	var ticketsRemoved, notesRemoved int64
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if u == nil {
			return errors.NewNotFoundError("User not found")
		}

		if ticketsRemoved, err = uc.tickets.Execute(txCtx, userID); err != nil {
			return err
		}
		if notesRemoved, err = uc.notes.DeleteByUserID(txCtx, userID); err != nil {
			return fmt.Errorf("failed to delete user notes: %w", err)
		}
		if err := uc.userRepo.Delete(txCtx, userID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to delete user", "user_id", userID, "error", err)
		}
		return err
	}

	uc.logger.Infow("user deleted", "user_id", userID, "tickets_deleted", ticketsRemoved, "notes_deleted", notesRemoved)
	return nil
}
