package dto

import "time"

// TicketDTO is the read model handed to the HTTP layer. OwnerName and
// OwnerEmail are filled on admin listings so triage screens can display the
// requester without extra lookups.
type TicketDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Titulo      string    `json:"titulo"`
	Descricao   string    `json:"descricao"`
	Categoria   string    `json:"categoria"`
	Prioridade  string    `json:"prioridade"`
	Status      string    `json:"status"`
	OwnerName   string    `json:"owner_name,omitempty"`
	OwnerEmail  string    `json:"owner_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	UserID     uint      `json:"user_id"`
	AuthorRole string    `json:"author_role"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type StatusHistoryDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy uint      `json:"changed_by"`
	CreatedAt time.Time `json:"created_at"`
}
