package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Query string
	// AuthorID restricts the listing to one user's tickets.
	AuthorID *uint
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	renderer   dto.HTMLRenderer
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, renderer dto.HTMLRenderer, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

// Execute lists tickets most recently updated first. A blank query is the
// same as no query.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	details, err := uc.ticketRepo.List(ctx, ticket.Filter{
		Query:    strings.TrimSpace(query.Query),
		AuthorID: query.AuthorID,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return dto.ToTicketDTOList(details, uc.renderer), nil
}

// ListUserTickets lists the tickets authored by userID.
func (uc *ListTicketsUseCase) ListUserTickets(ctx context.Context, userID uint, query string) ([]*dto.TicketDTO, error) {
	return uc.Execute(ctx, ListTicketsQuery{Query: query, AuthorID: &userID})
}
