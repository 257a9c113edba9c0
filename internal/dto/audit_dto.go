package dto

import (
	"time"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
)

// AuditLogResponse is one immutable audit trail entry for display.
type AuditLogResponse struct {
	ID         uint      `json:"id"`
	ActivityID string    `json:"activity_id"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
	OldState   *string   `json:"old_state,omitempty"`
	NewState   *string   `json:"new_state,omitempty"`
}

// NewAuditLogResponse maps a stored entry to its response form.
func NewAuditLogResponse(entry models.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:         entry.ID,
		ActivityID: entry.ActivityID,
		Action:     entry.Action,
		Timestamp:  entry.Timestamp,
		OldState:   entry.OldState,
		NewState:   entry.NewState,
	}
}
