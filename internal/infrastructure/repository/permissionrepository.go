package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"atende/internal/infrastructure/persistence/models"
	"atende/internal/shared/db"
)

// WorkspacePermissionRepository persists explicit workspace grants. Rows for
// the default workspace are never written; that grant is implicit.
type WorkspacePermissionRepository struct {
	db *gorm.DB
}

func NewWorkspacePermissionRepository(db *gorm.DB) *WorkspacePermissionRepository {
	return &WorkspacePermissionRepository{db: db}
}

func (r *WorkspacePermissionRepository) GetWorkspaceIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.WorkspacePermissionModel{}).
		Where("user_id = ?", userID).
		Order("workspace_id ASC").
		Pluck("workspace_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load workspace permissions: %w", err)
	}

	return ids, nil
}

func (r *WorkspacePermissionRepository) ReplaceForUser(ctx context.Context, userID uint, ids []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ?", userID).
			Delete(&models.WorkspacePermissionModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear workspace permissions: %w", err)
		}

		if len(ids) == 0 {
			return nil
		}

		rows := make([]models.WorkspacePermissionModel, len(ids))
		for i, id := range ids {
			rows[i] = models.WorkspacePermissionModel{UserID: userID, WorkspaceID: id}
		}

		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save workspace permissions: %w", err)
		}

		return nil
	})
}

func (r *WorkspacePermissionRepository) DeleteByWorkspaceID(ctx context.Context, workspaceID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("workspace_id = ?", workspaceID).
		Delete(&models.WorkspacePermissionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete workspace permissions: %w", err)
	}

	return nil
}
