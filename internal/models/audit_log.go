package models

import "time"

// AuditAction constants represent the activity mutations that get logged.
const (
	AuditActionInsert = "INSERT"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// AuditLog is one immutable record of an activity mutation. ActivityID is a
// weak reference: it is deliberately not a foreign key so entries survive
// deletion of the activity they name. Rows are append-only; nothing in the
// codebase updates or deletes them.
type AuditLog struct {
	ID         uint      `gorm:"column:log_id;primaryKey;autoIncrement" json:"id"`
	ActivityID string    `gorm:"column:activity_id_ref;size:10" json:"activity_id"`
	Action     string    `gorm:"column:action;size:50;not null" json:"action"`
	Timestamp  time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
	OldState   *string   `gorm:"column:old_state;type:text" json:"old_state,omitempty"`
	NewState   *string   `gorm:"column:new_state;type:text" json:"new_state,omitempty"`
}

// TableName overrides the default pluralisation.
func (AuditLog) TableName() string {
	return "activity_audit_log"
}
