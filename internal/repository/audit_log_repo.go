package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
	"github.com/dtei-informatika/kegiatan-app/internal/observability"
)

// AuditRecorder appends one audit entry on the caller's transaction handle, so
// the entry commits or rolls back together with the activity mutation it
// describes. A mutation must never commit without its entry, and vice versa.
type AuditRecorder interface {
	Record(tx *gorm.DB, action, activityID string, oldState, newState *string) error
}

// AuditLogRepository reads and appends the append-only audit trail.
type AuditLogRepository interface {
	AuditRecorder
	List(ctx context.Context) ([]models.AuditLog, error)
	CountByActivity(ctx context.Context, activityID string) (int64, error)
}

type auditLogRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAuditLogRepository constructs the audit log repository.
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db, now: time.Now}
}

func (r *auditLogRepository) Record(tx *gorm.DB, action, activityID string, oldState, newState *string) error {
	entry := models.AuditLog{
		ActivityID: activityID,
		Action:     action,
		Timestamp:  r.now(),
		OldState:   oldState,
		NewState:   newState,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return storeError(err)
	}
	observability.AuditEntries().Inc()
	return nil
}

// List returns all entries, newest first. log_id breaks ties within the
// one-second timestamp granularity.
func (r *auditLogRepository) List(ctx context.Context) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("log_id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, storeError(err)
	}
	return entries, nil
}

func (r *auditLogRepository) CountByActivity(ctx context.Context, activityID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.AuditLog{}).
		Where("activity_id_ref = ?", activityID).
		Count(&total).Error
	if err != nil {
		return 0, storeError(err)
	}
	return total, nil
}
