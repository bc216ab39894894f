package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var nameSanitizeRe = regexp.MustCompile(`[^a-z0-9_]+`)

// CreateSQLMigration writes an empty goose migration with one shared version
// into each dialect directory, so the postgres and sqlite trees stay in step:
//
//	<dir>/<YYYYMMDDHHMMSS>_<name>.sql
//
// Nothing is written when any target already exists.
func CreateSQLMigration(name string, dirs ...string) ([]string, error) {
	if len(dirs) == 0 {
		return nil, fmt.Errorf("at least one dir is required")
	}
	safe := sanitizeName(name)
	if safe == "" {
		return nil, fmt.Errorf("name %q results in empty sanitized filename", name)
	}

	filename := fmt.Sprintf("%s_%s.sql", time.Now().UTC().Format("20060102150405"), safe)
	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if dir == "" {
			return nil, fmt.Errorf("dir is required")
		}
		full := filepath.Join(dir, filename)
		if _, err := os.Stat(full); err == nil {
			return nil, fmt.Errorf("migration already exists: %s", full)
		}
		paths = append(paths, full)
	}

	for i, full := range paths {
		if err := os.MkdirAll(dirs[i], 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %q: %w", dirs[i], err)
		}
		body := migrationTemplate(safe, filepath.Base(dirs[i]))
		if err := os.WriteFile(full, []byte(body), 0o644); err != nil {
			return nil, fmt.Errorf("write migration %q: %w", full, err)
		}
	}
	return paths, nil
}

func sanitizeName(name string) string {
	safe := strings.ToLower(strings.TrimSpace(name))
	safe = nameSanitizeRe.ReplaceAllString(safe, "_")
	return strings.Trim(safe, "_")
}

func migrationTemplate(name, dialect string) string {
	return fmt.Sprintf(`-- +goose Up
-- +goose StatementBegin
-- %[1]s (%[2]s)
-- +goose StatementEnd

-- +goose Down
-- +goose StatementBegin
-- rollback %[1]s (%[2]s)
-- +goose StatementEnd
`, name, dialect)
}
