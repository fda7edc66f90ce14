package usecases

import (
	"context"
	"fmt"

	"atende/internal/application/workspace/dto"
	"atende/internal/domain/user"
	"atende/internal/domain/workspace"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type GetUserPermissionsCommand struct {
	UserID uint
}

type GetUserPermissionsResult struct {
	Permissions dto.UserPermissionsDTO `json:"permissions"`
}

type GetUserPermissionsUseCase struct {
	workspaceRepo  workspace.Repository
	permissionRepo workspace.PermissionRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewGetUserPermissionsUseCase(
	workspaceRepo workspace.Repository,
	permissionRepo workspace.PermissionRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetUserPermissionsUseCase {
	return &GetUserPermissionsUseCase{
		workspaceRepo:  workspaceRepo,
		permissionRepo: permissionRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *GetUserPermissionsUseCase) Execute(ctx context.Context, cmd GetUserPermissionsCommand) (*GetUserPermissionsResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	if _, err := uc.userRepo.FindByID(ctx, cmd.UserID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	def, err := uc.workspaceRepo.FindDefault(ctx)
	if err != nil {
		uc.logger.Errorw("default workspace missing", "error", err)
		return nil, errors.NewInternalError("failed to load permissions")
	}

	grantedIDs, err := uc.permissionRepo.GetWorkspaceIDsForUser(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load workspace grants", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load permissions")
	}

	// The implicit default grant is surfaced first, then the stored rows.
	ids := make([]uint, 0, len(grantedIDs)+1)
	ids = append(ids, def.ID())
	for _, id := range grantedIDs {
		if id != def.ID() {
			ids = append(ids, id)
		}
	}

	return &GetUserPermissionsResult{
		Permissions: dto.UserPermissionsDTO{UserID: cmd.UserID, WorkspaceIDs: ids},
	}, nil
}
