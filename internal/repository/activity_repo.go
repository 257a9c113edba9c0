package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
)

// ActivityRepository owns every activity mutation. Each operation runs the row
// change and its audit entry inside one transaction, so partial application is
// impossible even with another client on the same store. Nothing else in the
// codebase writes the activities table.
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	Update(ctx context.Context, id string, updated models.Activity) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (models.Activity, error)
	ListDetails(ctx context.Context) ([]models.ActivityDetail, error)
	Count(ctx context.Context) (int64, error)
}

type activityRepository struct {
	db       *gorm.DB
	recorder AuditRecorder
}

// NewActivityRepository constructs the activity repository.
func NewActivityRepository(db *gorm.DB, recorder AuditRecorder) ActivityRepository {
	return &activityRepository{db: db, recorder: recorder}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Activity{}).
			Where("activity_id = ?", activity.ID).
			Count(&existing).Error; err != nil {
			return storeError(err)
		}
		if existing > 0 {
			return ErrDuplicateKey
		}

		if err := tx.Create(activity).Error; err != nil {
			return storeError(err)
		}

		state := activity.AuditState()
		return r.recorder.Record(tx, models.AuditActionInsert, activity.ID, nil, &state)
	})
}

// Update replaces the full row. An entry is recorded only when the serialized
// old and new states differ; a no-op update leaves the audit trail untouched.
func (r *activityRepository) Update(ctx context.Context, id string, updated models.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Activity
		if err := tx.Where("activity_id = ?", id).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return storeError(err)
		}

		updated.ID = id
		oldState := current.AuditState()
		newState := updated.AuditState()

		if err := tx.Model(&models.Activity{}).
			Where("activity_id = ?", id).
			Updates(map[string]interface{}{
				"name":             updated.Name,
				"date":             updated.Date,
				"location":         updated.Location,
				"category":         updated.Category,
				"responsible_user": updated.ResponsibleID,
			}).Error; err != nil {
			return storeError(err)
		}

		if oldState == newState {
			return nil
		}
		return r.recorder.Record(tx, models.AuditActionUpdate, id, &oldState, &newState)
	})
}

// Delete captures the pre-delete state for the audit entry before the row is
// removed.
func (r *activityRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Activity
		if err := tx.Where("activity_id = ?", id).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return storeError(err)
		}

		oldState := current.AuditState()
		if err := r.recorder.Record(tx, models.AuditActionDelete, id, &oldState, nil); err != nil {
			return err
		}

		return storeError(tx.Where("activity_id = ?", id).Delete(&models.Activity{}).Error)
	})
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (models.Activity, error) {
	var activity models.Activity
	err := r.db.WithContext(ctx).Where("activity_id = ?", id).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Activity{}, ErrNotFound
		}
		return models.Activity{}, storeError(err)
	}
	return activity, nil
}

// ListDetails reads the denormalised join view. Ordering is the caller's
// concern since the date column is legacy text.
func (r *activityRepository) ListDetails(ctx context.Context) ([]models.ActivityDetail, error) {
	var details []models.ActivityDetail
	if err := r.db.WithContext(ctx).Find(&details).Error; err != nil {
		return nil, storeError(err)
	}
	return details, nil
}

func (r *activityRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Activity{}).Count(&total).Error; err != nil {
		return 0, storeError(err)
	}
	return total, nil
}
