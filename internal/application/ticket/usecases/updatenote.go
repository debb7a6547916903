package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/application/validation"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type UpdateNoteCommand struct {
	NoteID uint
	Text   string
}

type UpdateNoteUseCase struct {
	noteRepo ticket.NoteRepository
	logger   logger.Interface
}

func NewUpdateNoteUseCase(noteRepo ticket.NoteRepository, logger logger.Interface) *UpdateNoteUseCase {
	return &UpdateNoteUseCase{noteRepo: noteRepo, logger: logger}
}

// Execute rewrites the note text and returns the note's ticket id.
func (uc *UpdateNoteUseCase) Execute(ctx context.Context, cmd UpdateNoteCommand) (uint, error) {
	fields := map[string]string{"text": cmd.Text}
	if fieldErrors := validation.Collect(map[string]validation.Rule{
		"text": {Value: cmd.Text, Check: validation.Text},
	}); fieldErrors != nil {
		return 0, errors.NewFieldErrors(fieldErrors, fields)
	}

	note, err := uc.noteRepo.GetByID(ctx, cmd.NoteID)
	if err != nil {
		uc.logger.Errorw("failed to get note", "note_id", cmd.NoteID, "error", err)
		return 0, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return 0, errors.NewNotFoundError("Note not found")
	}

	if err := note.UpdateText(cmd.Text); err != nil {
		return 0, errors.NewFormError(errors.NewValidationError(err.Error()), fields)
	}

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		uc.logger.Errorw("failed to update note", "note_id", cmd.NoteID, "error", err)
		return 0, fmt.Errorf("failed to update note: %w", err)
	}

	uc.logger.Infow("note updated", "note_id", note.ID())
	return note.TicketID(), nil
}
