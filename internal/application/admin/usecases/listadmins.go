package usecases

import (
	"context"

	"atende/internal/application/admin/dto"
	"atende/internal/domain/admin"
	"atende/internal/domain/user"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type ListAdminsResult struct {
	Admins []dto.AdminDTO `json:"admins"`
}

type ListAdminsUseCase struct {
	adminRepo admin.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewListAdminsUseCase(adminRepo admin.Repository, userRepo user.Repository, logger logger.Interface) *ListAdminsUseCase {
	return &ListAdminsUseCase{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *ListAdminsUseCase) Execute(ctx context.Context) (*ListAdminsResult, error) {
	admins, err := uc.adminRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list admins", "error", err)
		return nil, errors.NewInternalError("failed to list admins")
	}

	ids := make([]uint, 0, len(admins))
	for _, a := range admins {
		ids = append(ids, a.UserID())
	}

	users, err := uc.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load admin users", "error", err)
		return nil, errors.NewInternalError("failed to list admins")
	}

	usersByID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		usersByID[u.ID()] = u
	}

	dtos := make([]dto.AdminDTO, 0, len(admins))
	for _, a := range admins {
		d := dto.AdminDTO{
			ID:        a.ID(),
			UserID:    a.UserID(),
			IsOwner:   a.IsOwner(),
			CreatedBy: a.CreatedBy(),
			CreatedAt: a.CreatedAt(),
		}
		if u := usersByID[a.UserID()]; u != nil {
			d.Email = u.Email()
			d.Name = u.Name()
		}
		dtos = append(dtos, d)
	}

	return &ListAdminsResult{Admins: dtos}, nil
}
