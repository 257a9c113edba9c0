package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
)

func TestAuditLogRepositoryListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditLogRepository(db)

	older := models.AuditLog{ActivityID: "K001", Action: models.AuditActionInsert, Timestamp: time.Now().Add(-2 * time.Hour)}
	newer := models.AuditLog{ActivityID: "K002", Action: models.AuditActionDelete, Timestamp: time.Now().Add(-1 * time.Hour)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "K002", entries[0].ActivityID, "expected newest entry first")
	require.Equal(t, "K001", entries[1].ActivityID)
}

func TestAuditLogRepositoryListBreaksTimestampTiesByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditLogRepository(db)

	when := time.Now().Truncate(time.Second)
	first := models.AuditLog{ActivityID: "K001", Action: models.AuditActionInsert, Timestamp: when}
	second := models.AuditLog{ActivityID: "K001", Action: models.AuditActionUpdate, Timestamp: when}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, models.AuditActionUpdate, entries[0].Action)
}

func TestAuditLogRepositoryCountByActivity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditLogRepository(db)

	require.NoError(t, db.Create(&models.AuditLog{ActivityID: "K001", Action: models.AuditActionInsert, Timestamp: time.Now()}).Error)
	require.NoError(t, db.Create(&models.AuditLog{ActivityID: "K002", Action: models.AuditActionInsert, Timestamp: time.Now()}).Error)

	total, err := repo.CountByActivity(context.Background(), "K001")
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
}
