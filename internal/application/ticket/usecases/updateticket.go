package usecases

import (
	"context"
	"fmt"
	"time"

	"atende/internal/domain/ticket"
	vo "atende/internal/domain/ticket/value_objects"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

// UpdateTicketCommand is an admin-only partial update. Nil fields are left
// untouched; a status change appends exactly one history row in the same
// transaction.
type UpdateTicketCommand struct {
	TicketID   uint
	Status     *string
	Prioridade *string
	ChangedBy  uint
}

type UpdateTicketResult struct {
	TicketID   uint      `json:"ticket_id"`
	Status     string    `json:"status"`
	Prioridade string    `json:"prioridade"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StatusChangeNotifier is pinged after a committed status transition. A nil
// notifier disables notification entirely.
type StatusChangeNotifier interface {
	NotifyStatusChange(ctx context.Context, t *ticket.Ticket, oldStatus vo.TicketStatus) error
}

type UpdateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.StatusHistoryRepository
	txMgr       Transactor
	notifier    StatusChangeNotifier
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.StatusHistoryRepository,
	txMgr Transactor,
	notifier StatusChangeNotifier,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txMgr:       txMgr,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid update ticket command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	oldStatus := t.Status()
	statusChanged := false

	if cmd.Status != nil {
		newStatus := vo.TicketStatus(*cmd.Status)
		if err := t.ChangeStatus(newStatus); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		statusChanged = oldStatus != t.Status()
	}

	if cmd.Prioridade != nil {
		if err := t.ChangePriority(vo.Priority(*cmd.Prioridade)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		if statusChanged {
			entry, err := ticket.NewStatusHistory(t.ID(), oldStatus, t.Status(), cmd.ChangedBy)
			if err != nil {
				return fmt.Errorf("failed to create history entry: %w", err)
			}
			if err := uc.historyRepo.Save(txCtx, entry); err != nil {
				return fmt.Errorf("failed to save history entry: %w", err)
			}
		}

		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to persist ticket update", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	if statusChanged {
		uc.logger.Infow("ticket status changed",
			"ticket_id", t.ID(), "old_status", oldStatus, "new_status", t.Status(), "changed_by", cmd.ChangedBy)

		if uc.notifier != nil {
			if err := uc.notifier.NotifyStatusChange(ctx, t, oldStatus); err != nil {
				// Notification is best effort; the update already committed.
				uc.logger.Warnw("status change notification failed", "ticket_id", t.ID(), "error", err)
			}
		}
	}

	return &UpdateTicketResult{
		TicketID:   t.ID(),
		Status:     t.Status().String(),
		Prioridade: t.Priority().String(),
		UpdatedAt:  t.UpdatedAt(),
	}, nil
}

func (uc *UpdateTicketUseCase) validateCommand(cmd UpdateTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.ChangedBy == 0 {
		return errors.NewValidationError("changed by user ID is required")
	}
	if cmd.Status == nil && cmd.Prioridade == nil {
		return errors.NewValidationError("nothing to update")
	}
	if cmd.Status != nil && !vo.TicketStatus(*cmd.Status).IsValid() {
		return errors.NewValidationError("invalid status")
	}
	if cmd.Prioridade != nil && !vo.Priority(*cmd.Prioridade).IsValid() {
		return errors.NewValidationError("invalid prioridade")
	}
	return nil
}
