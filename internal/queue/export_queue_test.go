package queue

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/jwebster45206/mythic-editor/pkg/queue"
)

func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client, err := NewClient(context.Background(), "redis://"+mr.Addr(), logger)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create queue client: %v", err)
	}
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func TestNewClient_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	addr := mr.Addr()
	mr.Close()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	if _, err := NewClient(context.Background(), addr, logger); err == nil {
		t.Fatal("Expected an error connecting to a closed server")
	}
}

func TestExportQueue_EnqueueAndDequeue(t *testing.T) {
	client, _ := setupTestRedis(t)
	q := NewExportQueue(client)
	ctx := context.Background()

	jobs := []*queue.Job{
		queue.NewJob(queue.JobTypeExport, uuid.New()),
		queue.NewJob(queue.JobTypeCheck, uuid.New()),
	}
	for _, job := range jobs {
		if err := q.Enqueue(ctx, job); err != nil {
			t.Fatalf("Failed to enqueue job: %v", err)
		}
	}

	depth, err := q.Depth(ctx)
	if err != nil {
		t.Fatalf("Failed to get depth: %v", err)
	}
	if depth != len(jobs) {
		t.Errorf("Expected depth %d, got %d", len(jobs), depth)
	}

	for _, want := range jobs {
		status, err := q.GetStatus(ctx, want.RequestID)
		if err != nil {
			t.Fatalf("Failed to get status: %v", err)
		}
		if status == nil || status.State != queue.StateQueued {
			t.Errorf("Expected queued status for %s, got %+v", want.RequestID, status)
		}

		got, err := q.Dequeue(ctx)
		if err != nil {
			t.Fatalf("Failed to dequeue: %v", err)
		}
		if got == nil {
			t.Fatal("Expected a job, got nil")
		}
		if got.RequestID != want.RequestID || got.Type != want.Type || got.DraftID != want.DraftID {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	}

	got, err := q.Dequeue(ctx)
	if err != nil {
		t.Fatalf("Failed to dequeue from empty queue: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil from empty queue, got %+v", got)
	}
}

func TestExportQueue_BlockingDequeue(t *testing.T) {
	client, _ := setupTestRedis(t)
	q := NewExportQueue(client)
	ctx := context.Background()

	job := queue.NewJob(queue.JobTypeExport, uuid.New())
	if err := q.Enqueue(ctx, job); err != nil {
		t.Fatalf("Failed to enqueue job: %v", err)
	}

	got, err := q.BlockingDequeue(ctx, time.Second)
	if err != nil {
		t.Fatalf("BlockingDequeue failed: %v", err)
	}
	if got == nil || got.RequestID != job.RequestID {
		t.Fatalf("Expected job %s, got %+v", job.RequestID, got)
	}

	got, err = q.BlockingDequeue(ctx, time.Second)
	if err != nil {
		t.Fatalf("BlockingDequeue on empty queue failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil after timeout, got %+v", got)
	}
}

func TestExportQueue_Requeue(t *testing.T) {
	client, _ := setupTestRedis(t)
	q := NewExportQueue(client)
	ctx := context.Background()

	first := queue.NewJob(queue.JobTypeExport, uuid.New())
	second := queue.NewJob(queue.JobTypeExport, uuid.New())
	_ = q.Enqueue(ctx, first)
	_ = q.Enqueue(ctx, second)

	job, _ := q.Dequeue(ctx)
	if err := q.Requeue(ctx, job); err != nil {
		t.Fatalf("Requeue failed: %v", err)
	}

	next, _ := q.Dequeue(ctx)
	if next.RequestID != second.RequestID {
		t.Errorf("Expected the second job to run next, got %s", next.RequestID)
	}
	last, _ := q.Dequeue(ctx)
	if last.RequestID != first.RequestID {
		t.Errorf("Expected the requeued job last, got %s", last.RequestID)
	}
}

func TestExportQueue_Status(t *testing.T) {
	client, mr := setupTestRedis(t)
	q := NewExportQueue(client)
	ctx := context.Background()

	status, err := q.GetStatus(ctx, "missing")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if status != nil {
		t.Errorf("Expected nil for unknown request, got %+v", status)
	}

	job := queue.NewJob(queue.JobTypeExport, uuid.New())
	done := queue.StatusFor(job, queue.StateDone)
	done.Name = "Fire_Imp"
	done.Path = "mobs/Fire_Imp.yml"
	if err := q.SetStatus(ctx, done); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	got, err := q.GetStatus(ctx, job.RequestID)
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if got.State != queue.StateDone || got.Path != "mobs/Fire_Imp.yml" || got.DraftID != job.DraftID {
		t.Errorf("Unexpected status %+v", got)
	}

	if ttl := mr.TTL(statusKey(job.RequestID)); ttl != StatusTTL {
		t.Errorf("Expected TTL %v, got %v", StatusTTL, ttl)
	}

	mr.FastForward(StatusTTL + time.Second)
	got, err = q.GetStatus(ctx, job.RequestID)
	if err != nil {
		t.Fatalf("GetStatus after expiry failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected status to expire, got %+v", got)
	}
}

func TestExportQueue_BadPayload(t *testing.T) {
	client, mr := setupTestRedis(t)
	q := NewExportQueue(client)

	if _, err := mr.Push(requestsKey, `{"request_id":"x","type":"shred"}`); err != nil {
		t.Fatalf("Failed to push raw payload: %v", err)
	}
	if _, err := q.Dequeue(context.Background()); err == nil {
		t.Error("Expected an error for an unknown job type")
	}
}
