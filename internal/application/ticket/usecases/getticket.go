package usecases

import (
	"context"
	"fmt"

	"atende/internal/application/ticket/dto"
	"atende/internal/domain/ticket"
	"atende/internal/shared/authorization"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type GetTicketCommand struct {
	TicketID    uint
	RequesterID uint
	IsAdmin     bool
}

type GetTicketResult struct {
	Ticket dto.TicketDTO `json:"ticket"`
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.RequesterID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if !authorization.CanAccessOwnedResource(cmd.RequesterID, cmd.IsAdmin, t.OwnerID()) {
		uc.logger.Warnw("ticket access denied",
			"ticket_id", cmd.TicketID, "requester_id", cmd.RequesterID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	return &GetTicketResult{Ticket: toTicketDTO(t)}, nil
}
