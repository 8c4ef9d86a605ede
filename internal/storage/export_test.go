package storage

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
	"github.com/jwebster45206/mythic-editor/pkg/mob"
)

func TestExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Mobs")
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	e := NewExporter(dir, logger)

	names, err := e.List()
	if err != nil || len(names) != 0 {
		t.Fatalf("Expected empty list for missing dir, got %v, %v", names, err)
	}

	m := mob.New()
	m.Name = "Skeleton King"
	m.SetKind("Skeleton")
	m.Health = 200
	m.AddSkill().Mechanic = &mechanic.ArmAnimation{}

	path, err := e.Export(m)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if filepath.Base(path) != "Skeleton_King.yml" {
		t.Errorf("Unexpected path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != mob.Render(m)+"\n" {
		t.Errorf("Unexpected file content:\n%s", data)
	}

	names, err = e.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "Skeleton_King" {
		t.Errorf("Expected [Skeleton_King], got %v", names)
	}
}

func TestExporter_RefusesMalformed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	e := NewExporter(t.TempDir(), logger)

	m := mob.New()
	m.Name = "Sequel"
	m.Display = "Boss: The Return"

	_, err := e.Export(m)
	if !errors.Is(err, mob.ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

func TestExporter_RefusesUnsafeNames(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	root := t.TempDir()
	e := NewExporter(filepath.Join(root, "exports"), logger)

	tests := []string{"../escaped", "a/b", `..\\escaped`, "..", "/etc/passwd", "up..here"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			m := mob.New()
			m.Name = name

			path, err := e.Export(m)
			if !errors.Is(err, ErrUnsafeName) {
				t.Fatalf("Expected ErrUnsafeName, got path=%q err=%v", path, err)
			}
			if path != "" {
				t.Errorf("Expected no path, got %s", path)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(root, "escaped.yml")); !os.IsNotExist(err) {
		t.Errorf("Expected nothing written outside the export directory, stat err=%v", err)
	}
}
