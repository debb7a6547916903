package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/application/validation"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type AddNoteCommand struct {
	TicketID uint
	// UserID is the signed-in user writing the note.
	UserID uint
	Text   string
}

type AddNoteUseCase struct {
	ticketRepo ticket.Repository
	noteRepo   ticket.NoteRepository
	logger     logger.Interface
}

func NewAddNoteUseCase(ticketRepo ticket.Repository, noteRepo ticket.NoteRepository, logger logger.Interface) *AddNoteUseCase {
	return &AddNoteUseCase{
		ticketRepo: ticketRepo,
		noteRepo:   noteRepo,
		logger:     logger,
	}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (uint, error) {
	fields := map[string]string{"text": cmd.Text}
	if fieldErrors := validation.Collect(map[string]validation.Rule{
		"text": {Value: cmd.Text, Check: validation.Text},
	}); fieldErrors != nil {
		return 0, errors.NewFieldErrors(fieldErrors, fields)
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return 0, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return 0, errors.NewNotFoundError("Ticket not found")
	}

	note, err := ticket.NewNote(t.ID(), cmd.UserID, cmd.Text)
	if err != nil {
		return 0, errors.NewFormError(errors.NewValidationError(err.Error()), fields)
	}

	if err := uc.noteRepo.Create(ctx, note); err != nil {
		uc.logger.Errorw("failed to create note", "ticket_id", cmd.TicketID, "error", err)
		return 0, fmt.Errorf("failed to create note: %w", err)
	}

	uc.logger.Infow("note added", "note_id", note.ID(), "ticket_id", t.ID(), "user_id", cmd.UserID)
	return note.ID(), nil
}
