package usecases

import (
	"context"

	"atende/internal/application/ticket/dto"
	"atende/internal/domain/ticket"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type ListMyTicketsCommand struct {
	OwnerID  uint
	Page     int
	PageSize int
}

type ListMyTicketsResult struct {
	Tickets []dto.TicketDTO `json:"tickets"`
	Total   int64           `json:"total"`
}

type ListMyTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListMyTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListMyTicketsUseCase {
	return &ListMyTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListMyTicketsUseCase) Execute(ctx context.Context, cmd ListMyTicketsCommand) (*ListMyTicketsResult, error) {
	if cmd.OwnerID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	filter := ticket.TicketFilter{
		OwnerID:  &cmd.OwnerID,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "owner_id", cmd.OwnerID, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	dtos := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, toTicketDTO(t))
	}

	return &ListMyTicketsResult{Tickets: dtos, Total: total}, nil
}
