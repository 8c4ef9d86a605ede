package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jwebster45206/mythic-editor/pkg/mob"
)

// ErrUnsafeName is returned for a mob whose name would not stay a single
// file inside the export directory.
var ErrUnsafeName = errors.New("mob name is not a safe file name")

// Exporter writes rendered mobs as <name>.yml files into a directory the
// plugin loads from.
type Exporter struct {
	dir    string
	logger *slog.Logger
}

// NewExporter creates an exporter for dir, defaulting to the working
// directory.
func NewExporter(dir string, logger *slog.Logger) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{dir: dir, logger: logger}
}

// Dir returns the export directory.
func (e *Exporter) Dir() string { return e.dir }

// Export renders m, checks the result parses as one YAML mapping, and
// writes it. It returns the written path.
func (e *Exporter) Export(m *mob.Mob) (string, error) {
	name := mob.NormalizeName(m.Name, m.Kind)
	if err := checkFileName(name); err != nil {
		return "", fmt.Errorf("refusing to export %q: %w", name, err)
	}
	text := mob.Render(m)
	if err := mob.CheckYAML(text, name); err != nil {
		return "", fmt.Errorf("refusing to export %s: %w", name, err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(e.dir, name+".yml")
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		e.logger.Error("Failed to write export", "path", path, "error", err)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	e.logger.Info("Exported mob", "name", name, "path", path)
	return path, nil
}

// checkFileName rejects names with a path separator or a parent reference.
func checkFileName(name string) error {
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") ||
		filepath.Base(name) != name || !filepath.IsLocal(name+".yml") {
		return ErrUnsafeName
	}
	return nil
}

// List returns the names of exported files, without the .yml extension.
func (e *Exporter) List() ([]string, error) {
	entries, err := os.ReadDir(e.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read export directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".yml" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".yml"))
		}
	}
	sort.Strings(names)
	return names, nil
}
