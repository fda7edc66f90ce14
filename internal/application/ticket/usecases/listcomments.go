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

type ListCommentsCommand struct {
	TicketID    uint
	RequesterID uint
	IsAdmin     bool
}

type ListCommentsResult struct {
	Comments []dto.CommentDTO `json:"comments"`
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, cmd ListCommentsCommand) (*ListCommentsResult, error) {
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

	comments, err := uc.commentRepo.ListByTicketID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list comments")
	}

	dtos := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toCommentDTO(c))
	}

	return &ListCommentsResult{Comments: dtos}, nil
}
