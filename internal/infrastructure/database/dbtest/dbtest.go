// Package dbtest opens throwaway in-memory SQLite databases with the
// hospital schema, for tests that need a real gorm store.
package dbtest

import (
	"fmt"
	"testing"

	"hospital-management-api/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated database that lives until the test ends. It holds a
// single connection, so the base handle must not be used while a transaction
// is open.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.Department{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.Appointment{},
	))

	return db
}
