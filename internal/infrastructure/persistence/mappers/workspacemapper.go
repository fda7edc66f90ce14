package mappers

import (
	"fmt"

	"atende/internal/domain/workspace"
	vo "atende/internal/domain/workspace/value_objects"
	"atende/internal/infrastructure/persistence/models"
)

type WorkspaceMapper interface {
	ToModel(w *workspace.Workspace) *models.WorkspaceModel
	ToDomain(model *models.WorkspaceModel) (*workspace.Workspace, error)
}

type WorkspaceMapperImpl struct{}

func NewWorkspaceMapper() WorkspaceMapper {
	return &WorkspaceMapperImpl{}
}

func (m *WorkspaceMapperImpl) ToModel(w *workspace.Workspace) *models.WorkspaceModel {
	return &models.WorkspaceModel{
		ID:          w.ID(),
		Name:        w.Name(),
		Slug:        w.Slug().String(),
		Description: w.Description(),
		IsDefault:   w.IsDefault(),
		CreatedAt:   w.CreatedAt().UnixMilli(),
		UpdatedAt:   w.UpdatedAt().UnixMilli(),
	}
}

func (m *WorkspaceMapperImpl) ToDomain(model *models.WorkspaceModel) (*workspace.Workspace, error) {
	slug := vo.Slug(model.Slug)
	if !slug.IsValid() {
		return nil, fmt.Errorf("failed to map workspace (id=%d): invalid slug %q", model.ID, model.Slug)
	}

	return workspace.ReconstructWorkspace(
		model.ID,
		model.Name,
		slug,
		model.Description,
		model.IsDefault,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
