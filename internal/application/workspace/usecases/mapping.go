package usecases

import (
	"atende/internal/application/workspace/dto"
	"atende/internal/domain/workspace"
)

func toWorkspaceDTO(w *workspace.Workspace) dto.WorkspaceDTO {
	return dto.WorkspaceDTO{
		ID:          w.ID(),
		Name:        w.Name(),
		Slug:        w.Slug().String(),
		Description: w.Description(),
		IsDefault:   w.IsDefault(),
		CreatedAt:   w.CreatedAt(),
		UpdatedAt:   w.UpdatedAt(),
	}
}

func toWorkspaceDTOs(list []*workspace.Workspace) []dto.WorkspaceDTO {
	dtos := make([]dto.WorkspaceDTO, 0, len(list))
	for _, w := range list {
		dtos = append(dtos, toWorkspaceDTO(w))
	}
	return dtos
}
