package usecases

import (
	"context"

	"atende/internal/application/admin/dto"
	"atende/internal/domain/admin"
	"atende/internal/domain/user"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type ListUsersResult struct {
	Users []dto.UserDTO `json:"users"`
}

// ListUsersUseCase backs the admin user directory, the screen admins pick
// grant targets from. Each row is annotated with the user's admin flag.
type ListUsersUseCase struct {
	userRepo  user.Repository
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, adminRepo admin.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) (*ListUsersResult, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	admins, err := uc.adminRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list admins", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	adminUserIDs := make(map[uint]bool, len(admins))
	for _, a := range admins {
		adminUserIDs[a.UserID()] = true
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, dto.UserDTO{
			ID:            u.ID(),
			Email:         u.Email(),
			Name:          u.Name(),
			EmailVerified: u.EmailVerified(),
			IsAdmin:       adminUserIDs[u.ID()],
			CreatedAt:     u.CreatedAt(),
		})
	}

	return &ListUsersResult{Users: dtos}, nil
}
