// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"testing"

	"back_office/internal/config"
	"back_office/internal/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a migrated in-memory SQLite database private to t. The pool is
// limited to one connection, so every query inside a transaction must go
// through the transaction handle.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(&config.Config{DBDriver: config.DriverSQLite, DBPath: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}
