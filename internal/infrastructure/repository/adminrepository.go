package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"atende/internal/domain/admin"
	"atende/internal/infrastructure/persistence/mappers"
	"atende/internal/infrastructure/persistence/models"
	"atende/internal/shared/db"
)

type AdminRepository struct {
	db     *gorm.DB
	mapper mappers.AdminMapper
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{
		db:     db,
		mapper: mappers.NewAdminMapper(),
	}
}

func (r *AdminRepository) Save(ctx context.Context, a *admin.Admin) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save admin: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *AdminRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("user_id = ?", userID).Delete(&models.AdminModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return admin.ErrNotFound
	}

	return nil
}

func (r *AdminRepository) FindByUserID(ctx context.Context, userID uint) (*admin.Admin, error) {
	var model models.AdminModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, admin.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AdminRepository) List(ctx context.Context) ([]*admin.Admin, error) {
	var adminModels []models.AdminModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("created_at ASC").Find(&adminModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	admins := make([]*admin.Admin, len(adminModels))
	for i, model := range adminModels {
		a, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		admins[i] = a
	}

	return admins, nil
}
