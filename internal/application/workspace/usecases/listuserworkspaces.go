package usecases

import (
	"context"

	"atende/internal/application/workspace/dto"
	"atende/internal/domain/workspace"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type ListUserWorkspacesCommand struct {
	UserID uint
}

type ListUserWorkspacesResult struct {
	Workspaces []dto.WorkspaceDTO `json:"workspaces"`
}

// ListUserWorkspacesUseCase returns the workspaces visible to a user: the
// default workspace plus every explicit grant.
type ListUserWorkspacesUseCase struct {
	workspaceRepo  workspace.Repository
	permissionRepo workspace.PermissionRepository
	logger         logger.Interface
}

func NewListUserWorkspacesUseCase(
	workspaceRepo workspace.Repository,
	permissionRepo workspace.PermissionRepository,
	logger logger.Interface,
) *ListUserWorkspacesUseCase {
	return &ListUserWorkspacesUseCase{
		workspaceRepo:  workspaceRepo,
		permissionRepo: permissionRepo,
		logger:         logger,
	}
}

func (uc *ListUserWorkspacesUseCase) Execute(ctx context.Context, cmd ListUserWorkspacesCommand) (*ListUserWorkspacesResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	def, err := uc.workspaceRepo.FindDefault(ctx)
	if err != nil {
		uc.logger.Errorw("default workspace missing", "error", err)
		return nil, errors.NewInternalError("failed to list workspaces")
	}

	grantedIDs, err := uc.permissionRepo.GetWorkspaceIDsForUser(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load workspace grants", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list workspaces")
	}

	// Grant rows never reference the default workspace, but tolerate a stray
	// row rather than returning it twice.
	ids := make([]uint, 0, len(grantedIDs))
	for _, id := range grantedIDs {
		if id != def.ID() {
			ids = append(ids, id)
		}
	}

	granted, err := uc.workspaceRepo.FindByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load granted workspaces", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list workspaces")
	}

	visible := append([]*workspace.Workspace{def}, granted...)

	return &ListUserWorkspacesResult{Workspaces: toWorkspaceDTOs(visible)}, nil
}
