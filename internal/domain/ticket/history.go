package ticket

import (
	"fmt"
	"time"

	vo "atende/internal/domain/ticket/value_objects"
	"atende/internal/shared/biztime"
)

// StatusHistory is the append-only audit trail of a ticket's status
// transitions. One row is written per actual status change, never for
// priority-only updates.
type StatusHistory struct {
	id        uint
	ticketID  uint
	oldStatus vo.TicketStatus
	newStatus vo.TicketStatus
	changedBy uint
	createdAt time.Time
}

func NewStatusHistory(
	ticketID uint,
	oldStatus, newStatus vo.TicketStatus,
	changedBy uint,
) (*StatusHistory, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !oldStatus.IsValid() || !newStatus.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if oldStatus == newStatus {
		return nil, fmt.Errorf("status did not change")
	}
	if changedBy == 0 {
		return nil, fmt.Errorf("changed by user ID is required")
	}

	return &StatusHistory{
		ticketID:  ticketID,
		oldStatus: oldStatus,
		newStatus: newStatus,
		changedBy: changedBy,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructStatusHistory(
	id uint,
	ticketID uint,
	oldStatus, newStatus vo.TicketStatus,
	changedBy uint,
	createdAt time.Time,
) (*StatusHistory, error) {
	if id == 0 {
		return nil, fmt.Errorf("history ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &StatusHistory{
		id:        id,
		ticketID:  ticketID,
		oldStatus: oldStatus,
		newStatus: newStatus,
		changedBy: changedBy,
		createdAt: createdAt,
	}, nil
}

func (h *StatusHistory) ID() uint {
	return h.id
}

func (h *StatusHistory) TicketID() uint {
	return h.ticketID
}

func (h *StatusHistory) OldStatus() vo.TicketStatus {
	return h.oldStatus
}

func (h *StatusHistory) NewStatus() vo.TicketStatus {
	return h.newStatus
}

func (h *StatusHistory) ChangedBy() uint {
	return h.changedBy
}

func (h *StatusHistory) CreatedAt() time.Time {
	return h.createdAt
}

func (h *StatusHistory) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history ID cannot be zero")
	}
	h.id = id
	return nil
}
