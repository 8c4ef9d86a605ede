package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/mythic-editor/internal/queue"
	queuePkg "github.com/jwebster45206/mythic-editor/pkg/queue"
)

const (
	// pollTimeout bounds each blocking dequeue so the worker notices shutdown
	pollTimeout = 5 * time.Second
	lockTTL     = 30 * time.Second
	errorPause  = time.Second
	// lockedPause is how long a job for a locked draft waits before it goes
	// back on the queue
	lockedPause = 500 * time.Millisecond
)

// releaseScript deletes the lock only if this worker still owns it
var releaseScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`)

// Worker processes jobs from the export queue
type Worker struct {
	id          string
	queue       *queue.ExportQueue
	processor   *ExportProcessor
	redisClient *redis.Client
	log         *slog.Logger
	pollTimeout time.Duration
	lockedPause time.Duration
	ctx         context.Context
	cancel      context.CancelFunc
}

// New creates a new worker instance
func New(exportQueue *queue.ExportQueue, processor *ExportProcessor, redisClient *redis.Client, log *slog.Logger, workerID string) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	if workerID == "" {
		workerID = fmt.Sprintf("worker-%s", uuid.New().String()[:8])
	}

	return &Worker{
		id:          workerID,
		queue:       exportQueue,
		processor:   processor,
		redisClient: redisClient,
		log:         log.With("worker_id", workerID),
		pollTimeout: pollTimeout,
		lockedPause: lockedPause,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// ID returns the worker id used as the lock owner
func (w *Worker) ID() string { return w.id }

// Start processes jobs until Stop is called
func (w *Worker) Start() error {
	w.log.Info("Worker starting")

	for {
		select {
		case <-w.ctx.Done():
			w.log.Info("Worker shutting down")
			return nil
		default:
			if err := w.processNextRequest(); err != nil {
				w.log.Error("Error processing request", "error", err)
				// Continue processing even on error
				select {
				case <-w.ctx.Done():
				case <-time.After(errorPause):
				}
			}
		}
	}
}

// Stop gracefully shuts down the worker
func (w *Worker) Stop() {
	w.log.Info("Worker stop requested")
	w.cancel()
}

// processNextRequest pulls the next job from the queue and processes it
func (w *Worker) processNextRequest() error {
	job, err := w.queue.BlockingDequeue(w.ctx, w.pollTimeout)
	if err != nil {
		if w.ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to dequeue request: %w", err)
	}
	if job == nil {
		// timeout with an empty queue
		return nil
	}

	w.log.Info("Received job from queue",
		"request_id", job.RequestID,
		"type", job.Type,
		"draft_id", job.DraftID.String(),
	)

	locked, err := w.acquireDraftLock(job.DraftID)
	if err != nil {
		return fmt.Errorf("failed to acquire draft lock: %w", err)
	}
	if !locked {
		// Another worker is writing this draft; try again later
		w.log.Info("Draft already locked, re-queueing job",
			"request_id", job.RequestID,
			"draft_id", job.DraftID.String(),
		)
		select {
		case <-w.ctx.Done():
		case <-time.After(w.lockedPause):
		}
		// the job must survive a shutdown during the pause
		if err := w.queue.Requeue(context.WithoutCancel(w.ctx), job); err != nil {
			return fmt.Errorf("failed to re-queue job: %w", err)
		}
		return nil
	}
	defer w.releaseDraftLock(job.DraftID)

	return w.processJob(job)
}

func lockKey(draftID uuid.UUID) string {
	return "draft-lock:" + draftID.String()
}

// acquireDraftLock reports false if another worker holds the lock
func (w *Worker) acquireDraftLock(draftID uuid.UUID) (bool, error) {
	return w.redisClient.SetNX(w.ctx, lockKey(draftID), w.id, lockTTL).Result()
}

func (w *Worker) releaseDraftLock(draftID uuid.UUID) {
	// the worker context may already be cancelled during shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, w.redisClient, []string{lockKey(draftID)}, w.id).Err(); err != nil {
		w.log.Error("Failed to release draft lock", "error", err, "draft_id", draftID.String())
	}
}

// processJob records progress around a processor run
func (w *Worker) processJob(job *queuePkg.Job) error {
	start := time.Now()

	if err := w.queue.SetStatus(w.ctx, queuePkg.StatusFor(job, queuePkg.StateProcessing)); err != nil {
		w.log.Error("Failed to publish processing status", "error", err)
		// Don't fail the job just because the status write failed
	}

	status := w.processor.Process(w.ctx, job)

	if err := w.queue.SetStatus(w.ctx, status); err != nil {
		return fmt.Errorf("failed to save final status: %w", err)
	}

	w.log.Info("Job processed",
		"request_id", job.RequestID,
		"state", status.State,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
