// file: services/helpers_test.go
package services

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"xtrnia/database"
	"xtrnia/logger"
)

func init() {
	logger.SetOutput(io.Discard)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}
