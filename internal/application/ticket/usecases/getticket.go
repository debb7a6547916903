package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	renderer   dto.HTMLRenderer
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, renderer dto.HTMLRenderer, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, ticketID uint) (*dto.TicketDTO, error) {
	details, err := uc.ticketRepo.GetDetails(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if details == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}
	return dto.ToTicketDTO(details, uc.renderer), nil
}
