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

// SetUserPermissionsCommand replaces a user's explicit workspace grants in
// full. The default workspace id may be sent or omitted; either way it is
// never stored and never revocable.
type SetUserPermissionsCommand struct {
	UserID       uint
	WorkspaceIDs []uint
}

type SetUserPermissionsResult struct {
	Permissions dto.UserPermissionsDTO `json:"permissions"`
}

type SetUserPermissionsUseCase struct {
	workspaceRepo  workspace.Repository
	permissionRepo workspace.PermissionRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewSetUserPermissionsUseCase(
	workspaceRepo workspace.Repository,
	permissionRepo workspace.PermissionRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *SetUserPermissionsUseCase {
	return &SetUserPermissionsUseCase{
		workspaceRepo:  workspaceRepo,
		permissionRepo: permissionRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *SetUserPermissionsUseCase) Execute(ctx context.Context, cmd SetUserPermissionsCommand) (*SetUserPermissionsResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	if _, err := uc.userRepo.FindByID(ctx, cmd.UserID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	def, err := uc.workspaceRepo.FindDefault(ctx)
	if err != nil {
		uc.logger.Errorw("default workspace missing", "error", err)
		return nil, errors.NewInternalError("failed to set permissions")
	}

	// Strip the default id and duplicates before storing.
	seen := make(map[uint]bool, len(cmd.WorkspaceIDs))
	storeIDs := make([]uint, 0, len(cmd.WorkspaceIDs))
	for _, id := range cmd.WorkspaceIDs {
		if id == 0 {
			return nil, errors.NewValidationError("workspace ID cannot be zero")
		}
		if id == def.ID() || seen[id] {
			continue
		}
		seen[id] = true
		storeIDs = append(storeIDs, id)
	}

	// Every referenced workspace must exist.
	found, err := uc.workspaceRepo.FindByIDs(ctx, storeIDs)
	if err != nil {
		uc.logger.Errorw("failed to resolve workspaces", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to set permissions")
	}
	if len(found) != len(storeIDs) {
		return nil, errors.NewValidationError("one or more workspace IDs do not exist")
	}

	if err := uc.permissionRepo.ReplaceForUser(ctx, cmd.UserID, storeIDs); err != nil {
		uc.logger.Errorw("failed to replace workspace grants", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to set permissions")
	}

	uc.logger.Infow("workspace permissions replaced",
		"user_id", cmd.UserID, "granted", len(storeIDs))

	ids := append([]uint{def.ID()}, storeIDs...)
	return &SetUserPermissionsResult{
		Permissions: dto.UserPermissionsDTO{UserID: cmd.UserID, WorkspaceIDs: ids},
	}, nil
}
