package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
)

const detailViewSelect = `SELECT
	a.activity_id,
	a.name,
	a.date,
	a.location,
	a.category,
	u.name AS responsible_name,
	r.name AS responsible_role_name,
	a.responsible_user AS responsible_user_id
FROM activities a
LEFT JOIN users u ON a.responsible_user = u.user_id
LEFT JOIN roles r ON u.role_id = r.role_id`

// Initialize creates the tables and the read-only detail view. Running it
// against an already initialised store is not an error; both the migration
// and the view DDL are idempotent.
func Initialize(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Activity{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	var ddl string
	switch db.Dialector.Name() {
	case "postgres":
		ddl = "CREATE OR REPLACE VIEW activity_detail_view AS " + detailViewSelect
	default:
		ddl = "CREATE VIEW IF NOT EXISTS activity_detail_view AS " + detailViewSelect
	}
	if err := db.Exec(ddl).Error; err != nil {
		return fmt.Errorf("failed to create activity detail view: %w", err)
	}

	return nil
}
