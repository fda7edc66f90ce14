package mappers

import (
	"atende/internal/domain/admin"
	"atende/internal/infrastructure/persistence/models"
)

type AdminMapper interface {
	ToModel(a *admin.Admin) *models.AdminModel
	ToDomain(model *models.AdminModel) (*admin.Admin, error)
}

type AdminMapperImpl struct{}

func NewAdminMapper() AdminMapper {
	return &AdminMapperImpl{}
}

func (m *AdminMapperImpl) ToModel(a *admin.Admin) *models.AdminModel {
	return &models.AdminModel{
		ID:        a.ID(),
		UserID:    a.UserID(),
		IsOwner:   a.IsOwner(),
		CreatedBy: a.CreatedBy(),
		CreatedAt: a.CreatedAt().UnixMilli(),
		UpdatedAt: a.UpdatedAt().UnixMilli(),
	}
}

func (m *AdminMapperImpl) ToDomain(model *models.AdminModel) (*admin.Admin, error) {
	return admin.ReconstructAdmin(
		model.ID,
		model.UserID,
		model.IsOwner,
		model.CreatedBy,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
