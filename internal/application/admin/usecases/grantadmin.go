package usecases

import (
	"context"
	"fmt"

	"atende/internal/application/admin/dto"
	"atende/internal/domain/admin"
	"atende/internal/domain/user"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type GrantAdminCommand struct {
	TargetUserID uint
	GrantedBy    uint
}

type GrantAdminResult struct {
	Admin dto.AdminDTO `json:"admin"`
}

type GrantAdminUseCase struct {
	adminRepo admin.Repository
	userRepo  user.Repository
	cache     AdminFlagsCache
	logger    logger.Interface
}

func NewGrantAdminUseCase(
	adminRepo admin.Repository,
	userRepo user.Repository,
	cache AdminFlagsCache,
	logger logger.Interface,
) *GrantAdminUseCase {
	return &GrantAdminUseCase{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (uc *GrantAdminUseCase) Execute(ctx context.Context, cmd GrantAdminCommand) (*GrantAdminResult, error) {
	uc.logger.Infow("executing grant admin use case",
		"target_user_id", cmd.TargetUserID, "granted_by", cmd.GrantedBy)

	if cmd.TargetUserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.GrantedBy == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	target, err := uc.userRepo.FindByID(ctx, cmd.TargetUserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.TargetUserID))
	}

	if existing, err := uc.adminRepo.FindByUserID(ctx, cmd.TargetUserID); err == nil && existing != nil {
		return nil, errors.NewConflictError("user is already an admin")
	}

	grantedBy := cmd.GrantedBy
	newAdmin, err := admin.NewAdmin(cmd.TargetUserID, false, &grantedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.adminRepo.Save(ctx, newAdmin); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("user is already an admin")
		}
		uc.logger.Errorw("failed to save admin", "target_user_id", cmd.TargetUserID, "error", err)
		return nil, errors.NewInternalError("failed to grant admin access")
	}

	uc.invalidateFlags(ctx, cmd.TargetUserID)

	uc.logger.Infow("admin access granted",
		"target_user_id", cmd.TargetUserID, "granted_by", cmd.GrantedBy)

	return &GrantAdminResult{Admin: dto.AdminDTO{
		ID:        newAdmin.ID(),
		UserID:    newAdmin.UserID(),
		Email:     target.Email(),
		Name:      target.Name(),
		IsOwner:   false,
		CreatedBy: newAdmin.CreatedBy(),
		CreatedAt: newAdmin.CreatedAt(),
	}}, nil
}

func (uc *GrantAdminUseCase) invalidateFlags(ctx context.Context, userID uint) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, userID); err != nil {
		uc.logger.Warnw("failed to invalidate admin flags cache", "user_id", userID, "error", err)
	}
}
