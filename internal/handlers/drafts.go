package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/mythic-editor/internal/logger"
	"github.com/jwebster45206/mythic-editor/pkg/draft"
	"github.com/jwebster45206/mythic-editor/pkg/mob"
	"github.com/jwebster45206/mythic-editor/pkg/storage"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, log *slog.Logger, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		log.Error("Failed to encode error response", "error", err)
	}
}

// maxBodyBytes bounds request bodies carrying a mob.
const maxBodyBytes = 1 << 20

type DraftHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewDraftHandler(storage storage.Storage, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{
		storage: storage,
		logger:  logger,
	}
}

// ServeHTTP handles HTTP requests for draft operations
// Routes:
// POST /v1/drafts               - Create a draft, optionally from a mob body
// GET /v1/drafts                - List draft summaries
// GET /v1/drafts/{id}           - Read a draft
// GET /v1/drafts/{id}/render    - Rendered configuration block as text
// PUT /v1/drafts/{id}           - Replace the draft's mob
// DELETE /v1/drafts/{id}        - Delete a draft
func (h *DraftHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/drafts"), "/")
	idStr, sub, _ := strings.Cut(path, "/")

	var id uuid.UUID
	if idStr != "" {
		var err error
		id, err = uuid.Parse(idStr)
		if err != nil {
			h.logger.Warn("Invalid draft ID", "id", idStr, "error", err)
			writeError(w, h.logger, http.StatusBadRequest, "Invalid draft ID format")
			return
		}
	}
	if sub != "" && sub != "render" {
		writeError(w, h.logger, http.StatusNotFound, "Unknown draft resource")
		return
	}

	switch r.Method {
	case http.MethodPost:
		if id != uuid.Nil {
			writeError(w, h.logger, http.StatusMethodNotAllowed, "POST is only supported on /v1/drafts")
			return
		}
		h.handleCreate(w, r)

	case http.MethodGet:
		switch {
		case id == uuid.Nil:
			h.handleList(w, r)
		case sub == "render":
			h.handleRender(w, r, id)
		default:
			h.handleRead(w, r, id)
		}

	case http.MethodPut:
		if id == uuid.Nil {
			writeError(w, h.logger, http.StatusBadRequest, "Draft ID is required for PUT requests")
			return
		}
		h.handleUpdate(w, r, id)

	case http.MethodDelete:
		if id == uuid.Nil {
			h.logger.Warn("DELETE request without draft ID")
			writeError(w, h.logger, http.StatusBadRequest, "Draft ID is required for DELETE requests")
			return
		}
		h.handleDelete(w, r, id)

	default:
		h.logger.Warn("Method not allowed for draft endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET, PUT, DELETE")
	}
}

// readMob decodes the request body as a mob. An empty body yields nil.
func readMob(r *http.Request) (*mob.Mob, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	return draft.DecodeMob(data)
}

func (h *DraftHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Creating new draft")

	m, err := readMob(r)
	if err != nil {
		h.logger.Warn("Invalid mob in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid mob: "+err.Error())
		return
	}

	d := draft.New(m)
	log := logger.WithDraftID(h.logger, d.ID)
	if err := h.storage.SaveDraft(r.Context(), d); err != nil {
		log.Error("Failed to save new draft", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save draft")
		return
	}
	log.Info("Draft created", "name", d.Summary().Name)

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(d); err != nil {
		log.Error("Failed to encode draft", "error", err)
	}
}

func (h *DraftHandler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.storage.ListDrafts(r.Context())
	if err != nil {
		h.logger.Error("Failed to list drafts", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to list drafts")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(list); err != nil {
		h.logger.Error("Failed to encode draft list", "error", err)
	}
}

// load fetches a draft and writes the error response itself when there is
// none to return.
func (h *DraftHandler) load(w http.ResponseWriter, r *http.Request, id uuid.UUID) *draft.Draft {
	log := logger.WithDraftID(h.logger, id)
	d, err := h.storage.LoadDraft(r.Context(), id)
	if err != nil {
		log.Error("Failed to load draft", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load draft")
		return nil
	}
	if d == nil {
		log.Debug("Draft not found")
		writeError(w, h.logger, http.StatusNotFound, "Draft not found")
		return nil
	}
	return d
}

func (h *DraftHandler) handleRead(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	d := h.load(w, r, id)
	if d == nil {
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(d); err != nil {
		h.logger.Error("Failed to encode draft", "error", err)
	}
}

func (h *DraftHandler) handleRender(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	d := h.load(w, r, id)
	if d == nil {
		return
	}
	writeText(w, h.logger, d.Render())
}

func (h *DraftHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	log := logger.WithDraftID(h.logger, id)

	m, err := readMob(r)
	if err != nil || m == nil {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		log.Warn("Invalid mob in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid mob: "+err.Error())
		return
	}

	d := h.load(w, r, id)
	if d == nil {
		return
	}
	d.Mob = m
	if err := h.storage.SaveDraft(r.Context(), d); err != nil {
		log.Error("Failed to save draft", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save draft")
		return
	}
	log.Debug("Draft updated")

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(d); err != nil {
		log.Error("Failed to encode draft", "error", err)
	}
}

func (h *DraftHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	log := logger.WithDraftID(h.logger, id)
	if err := h.storage.DeleteDraft(r.Context(), id); err != nil {
		log.Error("Failed to delete draft", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete draft")
		return
	}
	log.Info("Draft deleted")
	w.WriteHeader(http.StatusNoContent)
}
