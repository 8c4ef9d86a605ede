package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/mythic-editor/pkg/queue"
)

const (
	requestsKey     = "export-requests"
	statusKeyPrefix = "export-status:"

	// StatusTTL is how long a job's status stays readable after its last update
	StatusTTL = 24 * time.Hour
)

// ExportQueue is the shared list of export jobs plus the status record of
// each job
type ExportQueue struct {
	client *Client
}

func NewExportQueue(client *Client) *ExportQueue {
	return &ExportQueue{
		client: client,
	}
}

func statusKey(requestID string) string {
	return statusKeyPrefix + requestID
}

// Enqueue records the job as queued and appends it to the queue
func (q *ExportQueue) Enqueue(ctx context.Context, job *queue.Job) error {
	data, err := job.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize job: %w", err)
	}
	status, err := json.Marshal(queue.StatusFor(job, queue.StateQueued))
	if err != nil {
		return fmt.Errorf("failed to serialize job status: %w", err)
	}

	_, err = q.client.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, statusKey(job.RequestID), status, StatusTTL)
		pipe.RPush(ctx, requestsKey, data)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}
	return nil
}

// Requeue puts a job back at the end of the queue without touching its status
func (q *ExportQueue) Requeue(ctx context.Context, job *queue.Job) error {
	data, err := job.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize job: %w", err)
	}
	if err := q.client.rdb.RPush(ctx, requestsKey, data).Err(); err != nil {
		return fmt.Errorf("failed to requeue job: %w", err)
	}
	return nil
}

// Dequeue removes and returns the next job.
// Returns nil if queue is empty
func (q *ExportQueue) Dequeue(ctx context.Context) (*queue.Job, error) {
	result, err := q.client.rdb.LPop(ctx, requestsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Queue is empty
		}
		return nil, fmt.Errorf("failed to dequeue job: %w", err)
	}
	return parseJob(result)
}

// BlockingDequeue waits up to timeout for a job. It returns nil when the
// timeout passes with the queue still empty.
func (q *ExportQueue) BlockingDequeue(ctx context.Context, timeout time.Duration) (*queue.Job, error) {
	result, err := q.client.rdb.BLPop(ctx, timeout, requestsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to dequeue job: %w", err)
	}

	// BLPop returns [key, value]
	if len(result) != 2 {
		return nil, fmt.Errorf("unexpected BLPop result: %v", result)
	}
	return parseJob(result[1])
}

func parseJob(data string) (*queue.Job, error) {
	job, err := queue.FromJSON([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}
	return job, nil
}

// Depth returns the number of queued jobs
func (q *ExportQueue) Depth(ctx context.Context) (int, error) {
	count, err := q.client.rdb.LLen(ctx, requestsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get queue depth: %w", err)
	}
	return int(count), nil
}

// SetStatus stores the status of a job, refreshing its TTL
func (q *ExportQueue) SetStatus(ctx context.Context, status *queue.Status) error {
	status.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to serialize job status: %w", err)
	}
	if err := q.client.rdb.Set(ctx, statusKey(status.RequestID), data, StatusTTL).Err(); err != nil {
		return fmt.Errorf("failed to save job status: %w", err)
	}
	return nil
}

// GetStatus returns the status of a job, or nil if it is unknown or expired
func (q *ExportQueue) GetStatus(ctx context.Context, requestID string) (*queue.Status, error) {
	data, err := q.client.rdb.Get(ctx, statusKey(requestID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load job status: %w", err)
	}
	var status queue.Status
	if err := json.Unmarshal([]byte(data), &status); err != nil {
		return nil, fmt.Errorf("failed to parse job status: %w", err)
	}
	return &status, nil
}
