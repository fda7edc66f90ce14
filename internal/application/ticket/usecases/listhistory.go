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

type ListHistoryCommand struct {
	TicketID    uint
	RequesterID uint
	IsAdmin     bool
}

type ListHistoryResult struct {
	History []dto.StatusHistoryDTO `json:"history"`
}

type ListHistoryUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.StatusHistoryRepository
	logger      logger.Interface
}

func NewListHistoryUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.StatusHistoryRepository,
	logger logger.Interface,
) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *ListHistoryUseCase) Execute(ctx context.Context, cmd ListHistoryCommand) (*ListHistoryResult, error) {
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
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	entries, err := uc.historyRepo.ListByTicketID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list status history", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list status history")
	}

	dtos := make([]dto.StatusHistoryDTO, 0, len(entries))
	for _, h := range entries {
		dtos = append(dtos, toStatusHistoryDTO(h))
	}

	return &ListHistoryResult{History: dtos}, nil
}
