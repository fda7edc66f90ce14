package ticket

import (
	"context"
	"time"

	vo "atende/internal/domain/ticket/value_objects"
)

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	// List returns tickets newest-created-first. An OwnerID filter scopes
	// the result to a single user's tickets.
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

// TicketFilter narrows List results. CreatedFrom/CreatedTo are UTC instants;
// callers derive them from business-timezone day bounds.
type TicketFilter struct {
	Status      *vo.TicketStatus
	Priority    *vo.Priority
	OwnerID     *uint
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	// ListByTicketID returns comments oldest-first.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	CountByTicketID(ctx context.Context, ticketID uint) (int64, error)
}

type StatusHistoryRepository interface {
	Save(ctx context.Context, h *StatusHistory) error
	// ListByTicketID returns history rows oldest-first.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*StatusHistory, error)
}
