package usecases

import (
	"context"
	"strings"

	"atende/internal/application/workspace/dto"
	"atende/internal/domain/workspace"
	vo "atende/internal/domain/workspace/value_objects"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

// CreateWorkspaceCommand creates a non-default workspace. The single default
// workspace is installed by the seed step, never through this use case.
type CreateWorkspaceCommand struct {
	Name        string
	Slug        string
	Description string
}

type CreateWorkspaceResult struct {
	Workspace dto.WorkspaceDTO `json:"workspace"`
}

type CreateWorkspaceUseCase struct {
	workspaceRepo workspace.Repository
	logger        logger.Interface
}

func NewCreateWorkspaceUseCase(workspaceRepo workspace.Repository, logger logger.Interface) *CreateWorkspaceUseCase {
	return &CreateWorkspaceUseCase{
		workspaceRepo: workspaceRepo,
		logger:        logger,
	}
}

func (uc *CreateWorkspaceUseCase) Execute(ctx context.Context, cmd CreateWorkspaceCommand) (*CreateWorkspaceResult, error) {
	uc.logger.Infow("executing create workspace use case", "name", cmd.Name)

	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.NewValidationError("name is required")
	}

	// Slug defaults to the normalized name when omitted.
	slugSource := cmd.Slug
	if strings.TrimSpace(slugSource) == "" {
		slugSource = cmd.Name
	}

	slug, err := vo.NewSlug(slugSource)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if existing, err := uc.workspaceRepo.FindBySlug(ctx, slug.String()); err == nil && existing != nil {
		return nil, errors.NewConflictError("a workspace with this slug already exists")
	}

	ws, err := workspace.NewWorkspace(cmd.Name, slug, cmd.Description, false)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.workspaceRepo.Save(ctx, ws); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a workspace with this slug already exists")
		}
		uc.logger.Errorw("failed to save workspace", "slug", slug, "error", err)
		return nil, errors.NewInternalError("failed to save workspace")
	}

	uc.logger.Infow("workspace created", "workspace_id", ws.ID(), "slug", slug)

	return &CreateWorkspaceResult{Workspace: toWorkspaceDTO(ws)}, nil
}
