package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type ListNotesQuery struct {
	Query    string
	TicketID *uint
}

type ListNotesUseCase struct {
	noteRepo ticket.NoteRepository
	renderer dto.HTMLRenderer
	logger   logger.Interface
}

func NewListNotesUseCase(noteRepo ticket.NoteRepository, renderer dto.HTMLRenderer, logger logger.Interface) *ListNotesUseCase {
	return &ListNotesUseCase{
		noteRepo: noteRepo,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute lists notes most recently updated first.
func (uc *ListNotesUseCase) Execute(ctx context.Context, query ListNotesQuery) ([]*dto.NoteDTO, error) {
	details, err := uc.noteRepo.List(ctx, ticket.NoteFilter{
		Query:    strings.TrimSpace(query.Query),
		TicketID: query.TicketID,
	})
	if err != nil {
		uc.logger.Errorw("failed to list notes", "error", err)
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return dto.ToNoteDTOList(details, uc.renderer), nil
}

// ListByTicket lists the notes of one ticket.
func (uc *ListNotesUseCase) ListByTicket(ctx context.Context, ticketID uint) ([]*dto.NoteDTO, error) {
	return uc.Execute(ctx, ListNotesQuery{TicketID: &ticketID})
}

func (uc *ListNotesUseCase) Get(ctx context.Context, noteID uint) (*dto.NoteDTO, error) {
	details, err := uc.noteRepo.GetDetails(ctx, noteID)
	if err != nil {
		uc.logger.Errorw("failed to get note", "note_id", noteID, "error", err)
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if details == nil {
		return nil, errors.NewNotFoundError("Note not found")
	}
	return dto.ToNoteDTO(details, uc.renderer), nil
}
