package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"

	"github.com/pressly/goose/v3"

	"github.com/angelmondragon/furniture-catalogue-backend/pkg/config"
)

const migrationsRoot = "pkg/migrate/migrations"

// DefaultDir is the on-disk Postgres migration directory.
var DefaultDir = DirFor(config.DBDriverPostgres)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedded embed.FS

// DirFor returns the on-disk migration directory for a driver.
func DirFor(driver string) string {
	return path.Join(migrationsRoot, driverDir(driver))
}

func driverDir(driver string) string {
	if driver == config.DBDriverSQLite {
		return config.DBDriverSQLite
	}
	return config.DBDriverPostgres
}

func gooseDialect(driver string) string {
	if driver == config.DBDriverSQLite {
		return "sqlite3"
	}
	return "postgres"
}

// Run executes a standard goose command against an on-disk directory.
func Run(ctx context.Context, db *sql.DB, driver, dir string, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if dir == "" {
		return fmt.Errorf("dir is required")
	}

	goose.SetBaseFS(nil)
	if err := goose.SetDialect(gooseDialect(driver)); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	// RunContext prints status output to stdout (goose internal)
	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// Apply runs every embedded migration for the driver. It does not depend on
// the working directory, so binaries and tests can call it anywhere.
func Apply(ctx context.Context, db *sql.DB, driver string) ([]*goose.MigrationResult, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	fsys, err := fs.Sub(embedded, path.Join("migrations", driverDir(driver)))
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	dialect := goose.DialectPostgres
	if driver == config.DBDriverSQLite {
		dialect = goose.DialectSQLite3
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("goose up: %w", err)
	}
	return results, nil
}

// MigrateToVersion migrates up/down to the requested version by comparing current DB version.
func MigrateToVersion(ctx context.Context, db *sql.DB, driver, dir string, targetVersion string) error {
	if targetVersion == "" {
		return fmt.Errorf("targetVersion is required")
	}

	goose.SetBaseFS(nil)
	if err := goose.SetDialect(gooseDialect(driver)); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}

	current, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	switch {
	case current == target:
		return nil

	case current < target:
		if err := goose.UpToContext(ctx, db, dir, target); err != nil {
			return fmt.Errorf("goose up-to %d: %w", target, err)
		}
		return nil

	default:
		if err := goose.DownToContext(ctx, db, dir, target); err != nil {
			return fmt.Errorf("goose down-to %d: %w", target, err)
		}
		return nil
	}
}
