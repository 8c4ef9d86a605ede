package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobType identifies what the worker does with a draft
type JobType string

const (
	// JobTypeExport renders the draft and writes it into the export directory
	JobTypeExport JobType = "export"

	// JobTypeCheck renders the draft and checks it would load, writing nothing
	JobTypeCheck JobType = "check"
)

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool {
	return t == JobTypeExport || t == JobTypeCheck
}

// Job is one unit of work in the export queue
type Job struct {
	RequestID  string    `json:"request_id"`
	Type       JobType   `json:"type"`
	DraftID    uuid.UUID `json:"draft_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// NewJob creates a job with a fresh request id
func NewJob(t JobType, draftID uuid.UUID) *Job {
	return &Job{
		RequestID:  uuid.New().String(),
		Type:       t,
		DraftID:    draftID,
		EnqueuedAt: time.Now().UTC(),
	}
}

// State is the progress of a job
type State string

const (
	StateQueued     State = "queued"
	StateProcessing State = "processing"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// Status is the last known state of a job, kept so clients can poll it
type Status struct {
	RequestID string    `json:"request_id"`
	Type      JobType   `json:"type"`
	DraftID   uuid.UUID `json:"draft_id"`
	State     State     `json:"state"`
	Name      string    `json:"name,omitempty"`
	Path      string    `json:"path,omitempty"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusFor returns the status of job in the given state
func StatusFor(job *Job, state State) *Status {
	return &Status{
		RequestID: job.RequestID,
		Type:      job.Type,
		DraftID:   job.DraftID,
		State:     state,
		UpdatedAt: time.Now().UTC(),
	}
}

// ToJSON converts the job to JSON bytes for Redis
func (j *Job) ToJSON() ([]byte, error) {
	return json.Marshal(j)
}

// FromJSON parses a job from JSON bytes
func FromJSON(data []byte) (*Job, error) {
	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, err
	}
	if !job.Type.Valid() {
		return nil, fmt.Errorf("unknown job type %q", job.Type)
	}
	return &job, nil
}
