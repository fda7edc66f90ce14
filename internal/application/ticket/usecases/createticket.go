package usecases

import (
	"context"
	"strings"
	"time"

	"atende/internal/domain/ticket"
	vo "atende/internal/domain/ticket/value_objects"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
	"atende/internal/shared/services/sanitize"
)

type CreateTicketCommand struct {
	OwnerID    uint
	Titulo     string
	Descricao  string
	Categoria  string
	Prioridade string
}

type CreateTicketResult struct {
	TicketID  uint      `json:"ticket_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	sanitizer  sanitize.Sanitizer
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	sanitizer sanitize.Sanitizer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "owner_id", cmd.OwnerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority := vo.Priority(strings.TrimSpace(cmd.Prioridade))

	newTicket, err := ticket.NewTicket(
		cmd.OwnerID,
		uc.sanitizer.Plain(cmd.Titulo),
		uc.sanitizer.Plain(cmd.Descricao),
		uc.sanitizer.Plain(cmd.Categoria),
		priority,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "owner_id", cmd.OwnerID)

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}
	if strings.TrimSpace(cmd.Titulo) == "" {
		return errors.NewValidationError("titulo is required")
	}
	if strings.TrimSpace(cmd.Descricao) == "" {
		return errors.NewValidationError("descricao is required")
	}
	if strings.TrimSpace(cmd.Categoria) == "" {
		return errors.NewValidationError("categoria is required")
	}
	if p := strings.TrimSpace(cmd.Prioridade); p != "" && !vo.Priority(p).IsValid() {
		return errors.NewValidationError("invalid prioridade")
	}
	return nil
}
