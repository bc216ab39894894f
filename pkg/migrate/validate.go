package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var sqlFileRe = regexp.MustCompile(`^(\d{14})_([a-z0-9_]+)\.sql$`)

// File is one goose SQL migration on disk.
type File struct {
	Version string
	Name    string
	Path    string
}

// ScanDir lists the SQL migrations in dir ordered by version. Non-SQL files
// and subdirectories are ignored.
func ScanDir(dir string) ([]File, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is required")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", dir, err)
	}

	var files []File
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		m := sqlFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			return nil, fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", e.Name())
		}
		files = append(files, File{Version: m[1], Name: m[2], Path: filepath.Join(dir, e.Name())})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Version < files[j].Version })
	return files, nil
}

// ValidateDir checks filenames, unique versions, goose section markers and
// balanced statement blocks for every migration in dir.
func ValidateDir(dir string) error {
	files, err := ScanDir(dir)
	if err != nil {
		return err
	}
	for i, f := range files {
		if i > 0 && files[i-1].Version == f.Version {
			return fmt.Errorf("duplicate migration version %s in %q and %q", f.Version, files[i-1].Path, f.Path)
		}
		b, err := os.ReadFile(f.Path)
		if err != nil {
			return fmt.Errorf("read file %q: %w", f.Path, err)
		}
		if err := checkSections(string(b)); err != nil {
			return fmt.Errorf("migration %q: %w", filepath.Base(f.Path), err)
		}
	}
	return nil
}

// ValidateDirs runs ValidateDir over each dialect directory.
func ValidateDirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := ValidateDir(dir); err != nil {
			return err
		}
	}
	return nil
}

func checkSections(txt string) error {
	up := strings.Index(txt, "-- +goose Up")
	down := strings.Index(txt, "-- +goose Down")
	switch {
	case up < 0:
		return fmt.Errorf("missing \"-- +goose Up\"")
	case down < 0:
		return fmt.Errorf("missing \"-- +goose Down\"")
	case down < up:
		return fmt.Errorf("\"-- +goose Down\" precedes \"-- +goose Up\"")
	}
	begins := strings.Count(txt, "-- +goose StatementBegin")
	ends := strings.Count(txt, "-- +goose StatementEnd")
	if begins != ends {
		return fmt.Errorf("unbalanced statement blocks: %d begin, %d end", begins, ends)
	}
	return nil
}
