package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
	"github.com/jwebster45206/mythic-editor/pkg/mob"
	"github.com/jwebster45206/mythic-editor/pkg/targeter"
	"github.com/jwebster45206/mythic-editor/pkg/trigger"
)

// MechanicInfo is the catalogue entry of one mechanic.
type MechanicInfo struct {
	Name        string           `json:"name"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
	Template    string           `json:"template"`
	Default     string           `json:"default"`
	Fields      []mechanic.Field `json:"fields"`
}

// ChoiceInfo describes one selectable token: a targeter or a trigger.
type ChoiceInfo struct {
	Token       string `json:"token"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Family      string `json:"family,omitempty"`
}

func NewMechanicInfo(m mechanic.Mechanic) MechanicInfo {
	fields := mechanic.Fields(m)
	if fields == nil {
		fields = []mechanic.Field{}
	}
	return MechanicInfo{
		Name:        mechanic.Name(m),
		Label:       mechanic.Label(m),
		Description: mechanic.Description(m),
		Template:    mechanic.Template(m),
		Default:     mechanic.Render(m),
		Fields:      fields,
	}
}

// CatalogueHandler serves the read-only catalogues the editor picks from.
// Routes:
// GET /v1/mechanics?q=  - Mechanics, optionally filtered by a search query
// GET /v1/kinds         - Mob kinds, MetaSkill first
// GET /v1/targeters     - Every targeter token
// GET /v1/triggers      - Every trigger token, None first
type CatalogueHandler struct {
	logger *slog.Logger
}

func NewCatalogueHandler(logger *slog.Logger) *CatalogueHandler {
	return &CatalogueHandler{logger: logger}
}

func (h *CatalogueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		h.logger.Warn("Method not allowed for catalogue endpoint", "method", r.Method, "path", r.URL.Path)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET")
		return
	}

	var body any
	switch r.URL.Path {
	case "/v1/mechanics":
		q := r.URL.Query().Get("q")
		h.logger.Debug("Listing mechanics", "query", q)
		found := mechanic.Search(q)
		out := make([]MechanicInfo, len(found))
		for i, m := range found {
			out[i] = NewMechanicInfo(m)
		}
		body = out

	case "/v1/kinds":
		body = mob.Kinds()

	case "/v1/targeters":
		all := targeter.All()
		out := make([]ChoiceInfo, len(all))
		for i, t := range all {
			out[i] = ChoiceInfo{
				Token:       t.Render(),
				Label:       t.Label(),
				Description: t.Description(),
				Family:      t.Family().Label(),
			}
		}
		body = out

	case "/v1/triggers":
		all := trigger.All()
		out := make([]ChoiceInfo, len(all))
		for i, t := range all {
			out[i] = ChoiceInfo{
				Token:       t.Render(),
				Label:       t.Label(),
				Description: t.Description(),
			}
		}
		body = out

	default:
		h.logger.Warn("Unknown catalogue", "path", r.URL.Path)
		writeError(w, h.logger, http.StatusNotFound, "Unknown catalogue")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode catalogue", "error", err, "path", r.URL.Path)
	}
}
