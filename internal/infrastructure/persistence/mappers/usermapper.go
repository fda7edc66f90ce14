package mappers

import (
	"atende/internal/domain/user"
	"atende/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:            u.ID(),
		Email:         u.Email(),
		Name:          u.Name(),
		PasswordHash:  u.PasswordHash(),
		EmailVerified: u.EmailVerified(),
		CreatedAt:     u.CreatedAt().UnixMilli(),
		UpdatedAt:     u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		model.EmailVerified,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
