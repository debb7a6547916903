package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type DeleteNoteUseCase struct {
	noteRepo ticket.NoteRepository
	logger   logger.Interface
}

func NewDeleteNoteUseCase(noteRepo ticket.NoteRepository, logger logger.Interface) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{noteRepo: noteRepo, logger: logger}
}

// Execute deletes one note and returns the id of the ticket it belonged to.
func (uc *DeleteNoteUseCase) Execute(ctx context.Context, noteID uint) (uint, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		uc.logger.Errorw("failed to get note", "note_id", noteID, "error", err)
		return 0, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return 0, errors.NewNotFoundError("Note not found")
	}

	if err := uc.noteRepo.Delete(ctx, noteID); err != nil {
		uc.logger.Errorw("failed to delete note", "note_id", noteID, "error", err)
		return 0, fmt.Errorf("failed to delete note: %w", err)
	}

	uc.logger.Infow("note deleted", "note_id", noteID, "ticket_id", note.TicketID())
	return note.TicketID(), nil
}

// DeleteAll removes every note of a ticket and reports how many went.
func (uc *DeleteNoteUseCase) DeleteAll(ctx context.Context, ticketID uint) (int64, error) {
	removed, err := uc.noteRepo.DeleteByTicketID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to delete ticket notes", "ticket_id", ticketID, "error", err)
		return 0, fmt.Errorf("failed to delete ticket notes: %w", err)
	}

	uc.logger.Infow("ticket notes deleted", "ticket_id", ticketID, "count", removed)
	return removed, nil
}
