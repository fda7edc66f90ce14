package mappers

import (
	"fmt"

	"atende/internal/domain/ticket"
	vo "atende/internal/domain/ticket/value_objects"
	"atende/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket aggregates and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	HistoryToModel(h *ticket.StatusHistory) *models.StatusHistoryModel
	HistoryToDomain(model *models.StatusHistoryModel) (*ticket.StatusHistory, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		UserID:      t.OwnerID(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.Title,
		model.Description,
		model.Category,
		priority,
		status,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		UserID:     c.UserID(),
		AuthorRole: c.AuthorRole().String(),
		Comment:    c.Body(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	role, err := vo.NewAuthorRole(model.AuthorRole)
	if err != nil {
		return nil, fmt.Errorf("failed to map comment (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		role,
		model.Comment,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) HistoryToModel(h *ticket.StatusHistory) *models.StatusHistoryModel {
	return &models.StatusHistoryModel{
		ID:        h.ID(),
		TicketID:  h.TicketID(),
		OldStatus: h.OldStatus().String(),
		NewStatus: h.NewStatus().String(),
		ChangedBy: h.ChangedBy(),
		CreatedAt: h.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.StatusHistoryModel) (*ticket.StatusHistory, error) {
	oldStatus, err := vo.NewTicketStatus(model.OldStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to map history (id=%d): %w", model.ID, err)
	}
	newStatus, err := vo.NewTicketStatus(model.NewStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to map history (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructStatusHistory(
		model.ID,
		model.TicketID,
		oldStatus,
		newStatus,
		model.ChangedBy,
		millisToTime(model.CreatedAt),
	)
}
