// ABOUTME: HTTP handlers for the migration analysis API
// ABOUTME: Shared handler state and JSON response helpers

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/scttfrdmn/aws-research-wizard-sub000/cache"
	"github.com/scttfrdmn/aws-research-wizard-sub000/catalog"
	"github.com/scttfrdmn/aws-research-wizard-sub000/config"
	"github.com/scttfrdmn/aws-research-wizard-sub000/services"
)

// ErrorResponse is the JSON error body for every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// Handler carries the shared state for all API endpoints. The engine and
// catalog are read-only; the snapshot cache is safe for concurrent use.
type Handler struct {
	cfg      *config.Config
	cat      *catalog.Catalog
	engine   *services.Engine
	capturer services.Capturer
	cache    *cache.SnapshotCache
}

// NewHandler wires the API handler. capturer may be nil when serve mode
// runs without a local spack installation; the capture endpoint then
// reports 503.
func NewHandler(cfg *config.Config, cat *catalog.Catalog, engine *services.Engine, capturer services.Capturer, c *cache.SnapshotCache) *Handler {
	return &Handler{
		cfg:      cfg,
		cat:      cat,
		engine:   engine,
		capturer: capturer,
		cache:    c,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, ErrorResponse{Error: message, Code: code})
}
