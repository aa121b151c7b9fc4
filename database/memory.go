// File: database/memory.go
package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"xtrnia/config"
)

// OpenInMemory returns a migrated, private in-memory SQLite database. Each
// call gets its own named database so tests do not share rows.
func OpenInMemory() (*gorm.DB, error) {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	return Open(config.Database{Driver: config.DriverSQLite, URL: dsn})
}
