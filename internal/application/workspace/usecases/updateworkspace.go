package usecases

import (
	"context"
	"fmt"
	"strings"

	"atende/internal/application/workspace/dto"
	"atende/internal/domain/workspace"
	vo "atende/internal/domain/workspace/value_objects"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

// UpdateWorkspaceCommand changes name, slug and description. The is_default
// flag is immutable and silently ignored when sent.
type UpdateWorkspaceCommand struct {
	WorkspaceID uint
	Name        string
	Slug        string
	Description string
}

type UpdateWorkspaceResult struct {
	Workspace dto.WorkspaceDTO `json:"workspace"`
}

type UpdateWorkspaceUseCase struct {
	workspaceRepo workspace.Repository
	logger        logger.Interface
}

func NewUpdateWorkspaceUseCase(workspaceRepo workspace.Repository, logger logger.Interface) *UpdateWorkspaceUseCase {
	return &UpdateWorkspaceUseCase{
		workspaceRepo: workspaceRepo,
		logger:        logger,
	}
}

func (uc *UpdateWorkspaceUseCase) Execute(ctx context.Context, cmd UpdateWorkspaceCommand) (*UpdateWorkspaceResult, error) {
	if cmd.WorkspaceID == 0 {
		return nil, errors.NewValidationError("workspace ID is required")
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.NewValidationError("name is required")
	}

	ws, err := uc.workspaceRepo.FindByID(ctx, cmd.WorkspaceID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("workspace %d not found", cmd.WorkspaceID))
	}

	slugSource := cmd.Slug
	if strings.TrimSpace(slugSource) == "" {
		slugSource = cmd.Name
	}

	slug, err := vo.NewSlug(slugSource)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if other, err := uc.workspaceRepo.FindBySlug(ctx, slug.String()); err == nil && other != nil && other.ID() != ws.ID() {
		return nil, errors.NewConflictError("a workspace with this slug already exists")
	}

	if err := ws.Update(cmd.Name, slug, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.workspaceRepo.Update(ctx, ws); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a workspace with this slug already exists")
		}
		uc.logger.Errorw("failed to update workspace", "workspace_id", cmd.WorkspaceID, "error", err)
		return nil, errors.NewInternalError("failed to update workspace")
	}

	uc.logger.Infow("workspace updated", "workspace_id", ws.ID(), "slug", slug)

	return &UpdateWorkspaceResult{Workspace: toWorkspaceDTO(ws)}, nil
}
