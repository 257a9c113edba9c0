package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
)

// RoleRepository provides access to the static role reference data.
type RoleRepository interface {
	List(ctx context.Context) ([]models.Role, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, roles []models.Role) error
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository constructs a role repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) List(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&roles).Error; err != nil {
		return nil, storeError(err)
	}
	return roles, nil
}

func (r *roleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Role{}).Count(&total).Error; err != nil {
		return 0, storeError(err)
	}
	return total, nil
}

func (r *roleRepository) CreateBatch(ctx context.Context, roles []models.Role) error {
	if len(roles) == 0 {
		return nil
	}
	return storeError(r.db.WithContext(ctx).Create(&roles).Error)
}
