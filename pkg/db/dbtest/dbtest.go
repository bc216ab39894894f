// Package dbtest opens a migrated sqlite database for package tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/config"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/migrate"
)

// New returns a client over a fresh sqlite file in t.TempDir() with the
// catalogue schema applied. The pool holds one connection, so code running
// inside a transaction must use the tx handle it was given.
func New(t testing.TB) *db.Client {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalogue.db")
	conn, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if _, err := migrate.Apply(context.Background(), sqlDB, config.DBDriverSQLite); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db.NewFromConn(conn)
}
