package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/mythic-editor/internal/logger"
	"github.com/jwebster45206/mythic-editor/pkg/queue"
	"github.com/jwebster45206/mythic-editor/pkg/storage"
)

// JobQueue is the part of the export queue the API uses
type JobQueue interface {
	Enqueue(ctx context.Context, job *queue.Job) error
	GetStatus(ctx context.Context, requestID string) (*queue.Status, error)
	Depth(ctx context.Context) (int, error)
}

// ExportRequest asks the worker to export or check a stored draft
type ExportRequest struct {
	DraftID uuid.UUID     `json:"draft_id"`
	Type    queue.JobType `json:"type,omitempty"`
}

type QueueResponse struct {
	Depth int `json:"depth"`
}

type ExportHandler struct {
	queue   JobQueue
	storage storage.Storage
	logger  *slog.Logger
}

func NewExportHandler(queue JobQueue, storage storage.Storage, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		queue:   queue,
		storage: storage,
		logger:  logger,
	}
}

// ServeHTTP handles HTTP requests for export jobs
// Routes:
// POST /v1/exports               - Queue a job for a stored draft
// GET /v1/exports                - Queue depth
// GET /v1/exports/{request_id}   - Job status
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	requestID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/exports"), "/")

	switch r.Method {
	case http.MethodPost:
		if requestID != "" {
			writeError(w, h.logger, http.StatusMethodNotAllowed, "POST is only supported on /v1/exports")
			return
		}
		h.handleEnqueue(w, r)

	case http.MethodGet:
		if requestID == "" {
			h.handleDepth(w, r)
			return
		}
		h.handleStatus(w, r, requestID)

	default:
		h.logger.Warn("Method not allowed for export endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET")
	}
}

func (h *ExportHandler) handleEnqueue(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.logger.Warn("Invalid export request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Type == "" {
		req.Type = queue.JobTypeExport
	}
	if !req.Type.Valid() {
		writeError(w, h.logger, http.StatusBadRequest, "Unknown job type: "+string(req.Type))
		return
	}
	if req.DraftID == uuid.Nil {
		writeError(w, h.logger, http.StatusBadRequest, "draft_id is required")
		return
	}

	log := logger.WithDraftID(h.logger, req.DraftID)
	d, err := h.storage.LoadDraft(r.Context(), req.DraftID)
	if err != nil {
		log.Error("Failed to load draft", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load draft")
		return
	}
	if d == nil {
		writeError(w, h.logger, http.StatusNotFound, "Draft not found")
		return
	}

	job := queue.NewJob(req.Type, req.DraftID)
	if err := h.queue.Enqueue(r.Context(), job); err != nil {
		log.Error("Failed to enqueue job", "error", err)
		writeError(w, h.logger, http.StatusServiceUnavailable, "Failed to queue job")
		return
	}
	log.Info("Job queued", "request_id", job.RequestID, "type", job.Type)

	w.Header().Set("Location", "/v1/exports/"+job.RequestID)
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(queue.StatusFor(job, queue.StateQueued)); err != nil {
		log.Error("Failed to encode job status", "error", err)
	}
}

func (h *ExportHandler) handleDepth(w http.ResponseWriter, r *http.Request) {
	depth, err := h.queue.Depth(r.Context())
	if err != nil {
		h.logger.Error("Failed to read queue depth", "error", err)
		writeError(w, h.logger, http.StatusServiceUnavailable, "Failed to read queue depth")
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(QueueResponse{Depth: depth}); err != nil {
		h.logger.Error("Failed to encode queue depth", "error", err)
	}
}

func (h *ExportHandler) handleStatus(w http.ResponseWriter, r *http.Request, requestID string) {
	status, err := h.queue.GetStatus(r.Context(), requestID)
	if err != nil {
		h.logger.Error("Failed to load job status", "error", err, "request_id", requestID)
		writeError(w, h.logger, http.StatusServiceUnavailable, "Failed to load job status")
		return
	}
	if status == nil {
		writeError(w, h.logger, http.StatusNotFound, "Unknown or expired request")
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		h.logger.Error("Failed to encode job status", "error", err)
	}
}
