package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jwebster45206/mythic-editor/internal/config"
	"github.com/jwebster45206/mythic-editor/internal/logger"
	backend "github.com/jwebster45206/mythic-editor/internal/storage"
	"github.com/jwebster45206/mythic-editor/pkg/draft"
	"github.com/jwebster45206/mythic-editor/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, logFile, err := logger.SetupFile(cfg, cfg.EditorLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()

	log.Info("Starting Mythic Editor", "export_dir", cfg.ExportDir, "drafts", cfg.RedisURL != "")

	store, err := openStore(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not connect to Redis: %v\nUnset REDIS_URL to edit without drafts.\n", err)
		os.Exit(1)
	}
	if store != nil {
		defer func() {
			_ = store.Close()
		}()
	}

	doc, err := openInitial(store, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	exporter := backend.NewExporter(cfg.ExportDir, log)
	p := tea.NewProgram(NewEditorUI(log, store, exporter, doc), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("Editor exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}
	log.Info("Editor exited")
}

// openStore connects to Redis when REDIS_URL is set. Without it drafts are
// disabled and the returned store is nil.
func openStore(cfg *config.Config, log *slog.Logger) (storage.Storage, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	rs, err := backend.NewRedisStorage(cfg.RedisURL, cfg.DraftTTL, log)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := rs.WaitForConnection(ctx, 5, time.Second); err != nil {
		_ = rs.Close()
		return nil, err
	}
	return rs, nil
}

// openInitial loads the draft whose id is given on the command line, or
// starts a new one.
func openInitial(store storage.Storage, args []string) (*draft.Draft, error) {
	if len(args) == 0 {
		return draft.New(nil), nil
	}
	if store == nil {
		return nil, fmt.Errorf("opening draft %s needs REDIS_URL", args[0])
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid draft id %q: %w", args[0], err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	d, err := storage.Require(ctx, store, id)
	if err != nil {
		return nil, err
	}
	d.Mob.SelectFirst()
	return d, nil
}
