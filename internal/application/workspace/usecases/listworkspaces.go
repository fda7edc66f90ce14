package usecases

import (
	"context"

	"atende/internal/application/workspace/dto"
	"atende/internal/domain/workspace"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type ListWorkspacesResult struct {
	Workspaces []dto.WorkspaceDTO `json:"workspaces"`
}

// ListWorkspacesUseCase is the admin directory listing.
type ListWorkspacesUseCase struct {
	workspaceRepo workspace.Repository
	logger        logger.Interface
}

func NewListWorkspacesUseCase(workspaceRepo workspace.Repository, logger logger.Interface) *ListWorkspacesUseCase {
	return &ListWorkspacesUseCase{
		workspaceRepo: workspaceRepo,
		logger:        logger,
	}
}

func (uc *ListWorkspacesUseCase) Execute(ctx context.Context) (*ListWorkspacesResult, error) {
	workspaces, err := uc.workspaceRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list workspaces", "error", err)
		return nil, errors.NewInternalError("failed to list workspaces")
	}

	return &ListWorkspacesResult{Workspaces: toWorkspaceDTOs(workspaces)}, nil
}
