package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
)

// UserRepository provides access to user records for authentication, signup
// and the responsible-user picker.
type UserRepository interface {
	FindByCredentials(ctx context.Context, username, password string) (models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	ExternalIDExists(ctx context.Context, externalID string) (bool, error)
	MaxID(ctx context.Context) (int, error)
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository constructs a user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByCredentials matches username and password by exact string equality,
// mirroring the legacy dataset's plaintext storage. No match is ErrNotFound.
func (r *userRepository) FindByCredentials(ctx context.Context, username, password string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, storeError(err)
	}
	return user, nil
}

func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Count(&total).Error
	if err != nil {
		return false, storeError(err)
	}
	return total > 0, nil
}

func (r *userRepository) ExternalIDExists(ctx context.Context, externalID string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("external_id = ?", externalID).
		Count(&total).Error
	if err != nil {
		return false, storeError(err)
	}
	return total > 0, nil
}

// MaxID returns the highest assigned user id, zero when the table is empty.
// Freed ids are never reused.
func (r *userRepository) MaxID(ctx context.Context) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("MAX(user_id)").
		Scan(&max).Error
	if err != nil {
		return 0, storeError(err)
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return storeError(err)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&users).Error; err != nil {
		return nil, storeError(err)
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, storeError(err)
	}
	return total, nil
}
