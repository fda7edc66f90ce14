package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"atende/internal/domain/workspace"
	"atende/internal/infrastructure/persistence/mappers"
	"atende/internal/infrastructure/persistence/models"
	"atende/internal/shared/db"
)

type WorkspaceRepository struct {
	db     *gorm.DB
	mapper mappers.WorkspaceMapper
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{
		db:     db,
		mapper: mappers.NewWorkspaceMapper(),
	}
}

func (r *WorkspaceRepository) Save(ctx context.Context, w *workspace.Workspace) error {
	model := r.mapper.ToModel(w)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save workspace: %w", err)
	}

	if err := w.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *WorkspaceRepository) Update(ctx context.Context, w *workspace.Workspace) error {
	model := r.mapper.ToModel(w)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.WorkspaceModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":        model.Name,
			"slug":        model.Slug,
			"description": model.Description,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update workspace: %w", result.Error)
	}

	return nil
}

func (r *WorkspaceRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.WorkspaceModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete workspace: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("workspace not found")
	}

	return nil
}

func (r *WorkspaceRepository) FindByID(ctx context.Context, id uint) (*workspace.Workspace, error) {
	var model models.WorkspaceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("workspace not found")
		}
		return nil, fmt.Errorf("failed to find workspace: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkspaceRepository) FindBySlug(ctx context.Context, slug string) (*workspace.Workspace, error) {
	var model models.WorkspaceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("workspace not found")
		}
		return nil, fmt.Errorf("failed to find workspace: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkspaceRepository) FindDefault(ctx context.Context) (*workspace.Workspace, error) {
	var model models.WorkspaceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("is_default = ?", true).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("default workspace not found")
		}
		return nil, fmt.Errorf("failed to find default workspace: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkspaceRepository) List(ctx context.Context) ([]*workspace.Workspace, error) {
	var workspaceModels []models.WorkspaceModel
	tx := db.GetTxFromContext(ctx, r.db)

	// The default workspace first, then the rest oldest-first.
	if err := tx.
		Order("is_default DESC, created_at ASC").
		Find(&workspaceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	return r.toDomainList(workspaceModels)
}

func (r *WorkspaceRepository) FindByIDs(ctx context.Context, ids []uint) ([]*workspace.Workspace, error) {
	if len(ids) == 0 {
		return []*workspace.Workspace{}, nil
	}

	var workspaceModels []models.WorkspaceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&workspaceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find workspaces: %w", err)
	}

	return r.toDomainList(workspaceModels)
}

func (r *WorkspaceRepository) toDomainList(workspaceModels []models.WorkspaceModel) ([]*workspace.Workspace, error) {
	workspaces := make([]*workspace.Workspace, len(workspaceModels))
	for i, model := range workspaceModels {
		w, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		workspaces[i] = w
	}
	return workspaces, nil
}
