package usecases

import (
	"context"
	"fmt"

	"atende/internal/domain/workspace"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type DeleteWorkspaceCommand struct {
	WorkspaceID uint
}

type DeleteWorkspaceResult struct {
	WorkspaceID uint `json:"workspace_id"`
}

type DeleteWorkspaceUseCase struct {
	workspaceRepo  workspace.Repository
	permissionRepo workspace.PermissionRepository
	txMgr          Transactor
	logger         logger.Interface
}

func NewDeleteWorkspaceUseCase(
	workspaceRepo workspace.Repository,
	permissionRepo workspace.PermissionRepository,
	txMgr Transactor,
	logger logger.Interface,
) *DeleteWorkspaceUseCase {
	return &DeleteWorkspaceUseCase{
		workspaceRepo:  workspaceRepo,
		permissionRepo: permissionRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *DeleteWorkspaceUseCase) Execute(ctx context.Context, cmd DeleteWorkspaceCommand) (*DeleteWorkspaceResult, error) {
	if cmd.WorkspaceID == 0 {
		return nil, errors.NewValidationError("workspace ID is required")
	}

	ws, err := uc.workspaceRepo.FindByID(ctx, cmd.WorkspaceID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("workspace %d not found", cmd.WorkspaceID))
	}

	if err := ws.EnsureDeletable(); err != nil {
		uc.logger.Warnw("refused to delete default workspace", "workspace_id", cmd.WorkspaceID)
		return nil, err
	}

	// Permission rows go in the same transaction so no grant ever points at
	// a missing workspace.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.permissionRepo.DeleteByWorkspaceID(txCtx, cmd.WorkspaceID); err != nil {
			return fmt.Errorf("failed to delete workspace permissions: %w", err)
		}
		if err := uc.workspaceRepo.Delete(txCtx, cmd.WorkspaceID); err != nil {
			return fmt.Errorf("failed to delete workspace: %w", err)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to delete workspace", "workspace_id", cmd.WorkspaceID, "error", txErr)
		return nil, errors.NewInternalError("failed to delete workspace")
	}

	uc.logger.Infow("workspace deleted", "workspace_id", cmd.WorkspaceID)

	return &DeleteWorkspaceResult{WorkspaceID: cmd.WorkspaceID}, nil
}
