package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"atende/internal/domain/ticket"
	"atende/internal/infrastructure/persistence/mappers"
	"atende/internal/infrastructure/persistence/models"
	"atende/internal/shared/db"
)

type StatusHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewStatusHistoryRepository(db *gorm.DB) *StatusHistoryRepository {
	return &StatusHistoryRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *StatusHistoryRepository) Save(ctx context.Context, h *ticket.StatusHistory) error {
	model := r.mapper.HistoryToModel(h)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save status history: %w", err)
	}

	if err := h.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *StatusHistoryRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.StatusHistory, error) {
	var historyModels []models.StatusHistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}

	entries := make([]*ticket.StatusHistory, len(historyModels))
	for i, model := range historyModels {
		h, err := r.mapper.HistoryToDomain(&model)
		if err != nil {
			return nil, err
		}
		entries[i] = h
	}

	return entries, nil
}
