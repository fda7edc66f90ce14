package usecases

import (
	"atende/internal/application/ticket/dto"
	"atende/internal/domain/ticket"
	"atende/internal/domain/user"
)

func toTicketDTO(t *ticket.Ticket) dto.TicketDTO {
	return dto.TicketDTO{
		ID:         t.ID(),
		UserID:     t.OwnerID(),
		Titulo:     t.Title(),
		Descricao:  t.Description(),
		Categoria:  t.Category(),
		Prioridade: t.Priority().String(),
		Status:     t.Status().String(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
	}
}

func toTicketDTOWithOwner(t *ticket.Ticket, owner *user.User) dto.TicketDTO {
	d := toTicketDTO(t)
	if owner != nil {
		d.OwnerName = owner.Name()
		d.OwnerEmail = owner.Email()
	}
	return d
}

func toCommentDTO(c *ticket.Comment) dto.CommentDTO {
	return dto.CommentDTO{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		UserID:     c.UserID(),
		AuthorRole: c.AuthorRole().String(),
		Comment:    c.Body(),
		CreatedAt:  c.CreatedAt(),
	}
}

func toStatusHistoryDTO(h *ticket.StatusHistory) dto.StatusHistoryDTO {
	return dto.StatusHistoryDTO{
		ID:        h.ID(),
		TicketID:  h.TicketID(),
		OldStatus: h.OldStatus().String(),
		NewStatus: h.NewStatus().String(),
		ChangedBy: h.ChangedBy(),
		CreatedAt: h.CreatedAt(),
	}
}
