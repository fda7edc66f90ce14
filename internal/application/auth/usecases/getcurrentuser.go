package usecases

import (
	"context"

	"atende/internal/application/auth/dto"
	"atende/internal/domain/user"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type GetCurrentUserCommand struct {
	UserID uint
}

type GetCurrentUserResult struct {
	User dto.UserDTO `json:"user"`
}

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, cmd GetCurrentUserCommand) (*GetCurrentUserResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	// The token outliving its user is a stale session, not a missing record.
	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil || u == nil {
		return nil, errors.NewUnauthorizedError("session is no longer valid")
	}

	return &GetCurrentUserResult{User: toUserDTO(u)}, nil
}
