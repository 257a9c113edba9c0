package database

import (
	"strings"

	"gorm.io/gorm"
)

// Connect picks the driver from the DSN: postgres URLs go to the shared
// department store, anything else is treated as a local SQLite path.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return ConnectPostgres(dsn)
	}
	return ConnectSQLite(dsn)
}
