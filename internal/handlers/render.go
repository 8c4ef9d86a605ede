package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/mythic-editor/pkg/draft"
	"github.com/jwebster45206/mythic-editor/pkg/mob"
)

// RenderHandler turns a posted mob, or a whole draft, into its
// configuration block.
// Routes:
// POST /v1/render            - text/plain render of the body
// POST /v1/render?check=true - also reject output the YAML loader would not read
type RenderHandler struct {
	logger *slog.Logger
}

func NewRenderHandler(logger *slog.Logger) *RenderHandler {
	return &RenderHandler{logger: logger}
}

func (h *RenderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for render endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Warn("Failed to read render request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Failed to read request body")
		return
	}

	m, err := decodeRenderBody(data)
	if err != nil {
		h.logger.Warn("Invalid render request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid mob: "+err.Error())
		return
	}

	if r.URL.Query().Get("check") == "true" {
		if err := mob.Check(m); err != nil {
			h.logger.Warn("Rendered block failed YAML check", "error", err)
			writeError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	h.logger.Debug("Rendering mob", "name", mob.NormalizeName(m.Name, m.Kind), "skills", len(m.Skills))
	writeText(w, h.logger, mob.Render(m))
}

// decodeRenderBody accepts either a draft, recognised by its "mob" key, or
// a bare mob.
func decodeRenderBody(data []byte) (*mob.Mob, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, err
	}
	if _, ok := keys["mob"]; ok {
		d, err := draft.Decode(data)
		if err != nil {
			return nil, err
		}
		return d.Mob, nil
	}
	return draft.DecodeMob(data)
}

func writeText(w http.ResponseWriter, log *slog.Logger, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
