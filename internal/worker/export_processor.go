package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	backend "github.com/jwebster45206/mythic-editor/internal/storage"
	"github.com/jwebster45206/mythic-editor/internal/logger"
	"github.com/jwebster45206/mythic-editor/pkg/mob"
	"github.com/jwebster45206/mythic-editor/pkg/queue"
	"github.com/jwebster45206/mythic-editor/pkg/storage"
)

const loadTimeout = 10 * time.Second

// ExportProcessor runs one job against the draft store and the export
// directory. It is shared by the worker and its tests.
type ExportProcessor struct {
	storage  storage.Storage
	exporter *backend.Exporter
	logger   *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(storage storage.Storage, exporter *backend.Exporter, logger *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		storage:  storage,
		exporter: exporter,
		logger:   logger,
	}
}

// Process runs job and returns its final status. A failing draft is
// reported as a failed status, never as a Go error, so the worker keeps going.
func (p *ExportProcessor) Process(ctx context.Context, job *queue.Job) *queue.Status {
	log := logger.WithDraftID(p.logger, job.DraftID).With("request_id", job.RequestID, "type", job.Type)

	fail := func(err error) *queue.Status {
		logger.WithError(log, err).Warn("Job failed")
		status := queue.StatusFor(job, queue.StateFailed)
		status.Error = err.Error()
		return status
	}

	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()
	d, err := storage.Require(loadCtx, p.storage, job.DraftID)
	if err != nil {
		return fail(err)
	}

	status := queue.StatusFor(job, queue.StateDone)
	status.Name = mob.NormalizeName(d.Mob.Name, d.Mob.Kind)

	switch job.Type {
	case queue.JobTypeExport:
		path, err := p.exporter.Export(d.Mob)
		if err != nil {
			return fail(err)
		}
		status.Path = path
	case queue.JobTypeCheck:
		if err := mob.Check(d.Mob); err != nil {
			return fail(err)
		}
	default:
		return fail(fmt.Errorf("unknown job type: %s", job.Type))
	}

	log.Info("Job completed", "name", status.Name, "path", status.Path)
	return status
}
