package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "atende/internal/domain/ticket/value_objects"
	"atende/internal/shared/biztime"
)

// Comment is an append-only chat entry on a ticket. Comments are immutable
// once created; there is no edit or delete operation.
type Comment struct {
	id         uint
	ticketID   uint
	userID     uint
	authorRole vo.AuthorRole
	body       string
	createdAt  time.Time
}

func NewComment(
	ticketID uint,
	userID uint,
	authorRole vo.AuthorRole,
	body string,
) (*Comment, error) {
	body = strings.TrimSpace(body)

	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role")
	}
	if body == "" {
		return nil, fmt.Errorf("comment cannot be empty")
	}
	if len(body) > 5000 {
		return nil, fmt.Errorf("comment exceeds maximum length of 5000 characters")
	}

	return &Comment{
		ticketID:   ticketID,
		userID:     userID,
		authorRole: authorRole,
		body:       body,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	userID uint,
	authorRole vo.AuthorRole,
	body string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role")
	}

	return &Comment{
		id:         id,
		ticketID:   ticketID,
		userID:     userID,
		authorRole: authorRole,
		body:       body,
		createdAt:  createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) UserID() uint {
	return c.userID
}

func (c *Comment) AuthorRole() vo.AuthorRole {
	return c.authorRole
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
