package usecases

import (
	"context"
	stderrors "errors"

	"atende/internal/application/admin/dto"
	"atende/internal/domain/admin"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type CheckAccessCommand struct {
	UserID uint
}

type CheckAccessResult struct {
	Access dto.AccessCheckDTO `json:"access"`
}

// CheckAccessUseCase answers "is this user an admin right now". The cache is
// advisory only: a miss or a cache failure always falls through to the
// repository, and a missing admin row is a negative answer, never an error.
type CheckAccessUseCase struct {
	adminRepo admin.Repository
	cache     AdminFlagsCache
	logger    logger.Interface
}

func NewCheckAccessUseCase(adminRepo admin.Repository, cache AdminFlagsCache, logger logger.Interface) *CheckAccessUseCase {
	return &CheckAccessUseCase{
		adminRepo: adminRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (uc *CheckAccessUseCase) Execute(ctx context.Context, cmd CheckAccessCommand) (*CheckAccessResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	if uc.cache != nil {
		if flags, err := uc.cache.Get(ctx, cmd.UserID); err == nil && flags != nil {
			return &CheckAccessResult{Access: dto.AccessCheckDTO{
				Authenticated: true,
				IsAdmin:       flags.IsAdmin,
				IsOwner:       flags.IsOwner,
			}}, nil
		}
	}

	a, err := uc.adminRepo.FindByUserID(ctx, cmd.UserID)
	if err != nil && !stderrors.Is(err, admin.ErrNotFound) {
		// A storage failure must never come back as an authoritative
		// "not admin"; clients would demote the user and cache it.
		uc.logger.Errorw("admin lookup failed", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to check admin access")
	}

	flags := AdminFlags{}
	if err == nil && a != nil {
		flags.IsAdmin = true
		flags.IsOwner = a.IsOwner()
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cmd.UserID, flags); err != nil {
			uc.logger.Warnw("failed to cache admin flags", "user_id", cmd.UserID, "error", err)
		}
	}

	return &CheckAccessResult{Access: dto.AccessCheckDTO{
		Authenticated: true,
		IsAdmin:       flags.IsAdmin,
		IsOwner:       flags.IsOwner,
	}}, nil
}
