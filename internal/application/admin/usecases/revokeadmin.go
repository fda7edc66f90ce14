package usecases

import (
	"context"
	"fmt"

	"atende/internal/domain/admin"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type RevokeAdminCommand struct {
	TargetUserID uint
	RevokedBy    uint
}

type RevokeAdminResult struct {
	UserID uint `json:"user_id"`
}

type RevokeAdminUseCase struct {
	adminRepo admin.Repository
	cache     AdminFlagsCache
	logger    logger.Interface
}

func NewRevokeAdminUseCase(adminRepo admin.Repository, cache AdminFlagsCache, logger logger.Interface) *RevokeAdminUseCase {
	return &RevokeAdminUseCase{
		adminRepo: adminRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (uc *RevokeAdminUseCase) Execute(ctx context.Context, cmd RevokeAdminCommand) (*RevokeAdminResult, error) {
	uc.logger.Infow("executing revoke admin use case",
		"target_user_id", cmd.TargetUserID, "revoked_by", cmd.RevokedBy)

	if cmd.TargetUserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.RevokedBy == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	target, err := uc.adminRepo.FindByUserID(ctx, cmd.TargetUserID)
	if err != nil || target == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d is not an admin", cmd.TargetUserID))
	}

	actor, err := uc.adminRepo.FindByUserID(ctx, cmd.RevokedBy)
	if err != nil {
		actor = nil
	}

	if err := target.CanBeRemovedBy(actor); err != nil {
		uc.logger.Warnw("admin revocation refused",
			"target_user_id", cmd.TargetUserID, "revoked_by", cmd.RevokedBy, "error", err)
		return nil, err
	}

	if err := uc.adminRepo.DeleteByUserID(ctx, cmd.TargetUserID); err != nil {
		uc.logger.Errorw("failed to delete admin", "target_user_id", cmd.TargetUserID, "error", err)
		return nil, errors.NewInternalError("failed to revoke admin access")
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, cmd.TargetUserID); err != nil {
			uc.logger.Warnw("failed to invalidate admin flags cache",
				"user_id", cmd.TargetUserID, "error", err)
		}
	}

	uc.logger.Infow("admin access revoked",
		"target_user_id", cmd.TargetUserID, "revoked_by", cmd.RevokedBy)

	return &RevokeAdminResult{UserID: cmd.TargetUserID}, nil
}
