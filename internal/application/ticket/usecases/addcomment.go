package usecases

import (
	"context"
	"fmt"
	"strings"

	"atende/internal/application/ticket/dto"
	"atende/internal/domain/ticket"
	vo "atende/internal/domain/ticket/value_objects"
	"atende/internal/shared/authorization"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
	"atende/internal/shared/services/sanitize"
)

type AddCommentCommand struct {
	TicketID uint
	AuthorID uint
	IsAdmin  bool
	Comment  string
}

type AddCommentResult struct {
	Comment dto.CommentDTO `json:"comment"`
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	sanitizer   sanitize.Sanitizer
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	sanitizer sanitize.Sanitizer,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AuthorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if strings.TrimSpace(cmd.Comment) == "" {
		return nil, errors.NewValidationError("comment is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if !authorization.CanAccessOwnedResource(cmd.AuthorID, cmd.IsAdmin, t.OwnerID()) {
		uc.logger.Warnw("comment access denied",
			"ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	// The lock applies to owner and staff alike.
	if !t.AcceptsComments() {
		return nil, errors.NewConflictError(
			fmt.Sprintf("ticket is %s and no longer accepts comments", t.Status()))
	}

	role := vo.AuthorRoleStaff
	if t.IsOwnedBy(cmd.AuthorID) {
		role = vo.AuthorRoleUser
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, role, uc.sanitizer.Plain(cmd.Comment))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to save comment")
	}

	uc.logger.Infow("comment added",
		"ticket_id", cmd.TicketID, "comment_id", comment.ID(), "author_role", role)

	return &AddCommentResult{Comment: toCommentDTO(comment)}, nil
}
