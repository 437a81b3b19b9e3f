// ABOUTME: Capture endpoint invoking the local spack capturer
// ABOUTME: Caches snapshots per environment name; analysis runs on the result

package handlers

import (
	"net/http"

	srvcache "github.com/scttfrdmn/aws-research-wizard-sub000/cache"
)

// HandleCapture captures the named environment, runs the pipeline, and
// returns the report. Snapshots are cached for CACHE_TTL so repeated calls
// do not re-invoke spack.
func (h *Handler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.capturer == nil {
		h.writeError(w, "Capture is not available on this server", http.StatusServiceUnavailable)
		return
	}

	envName := r.URL.Query().Get("env")
	if envName == "" {
		h.writeError(w, "Query parameter 'env' is required", http.StatusBadRequest)
		return
	}

	snapshot, found := h.cache.Get(envName)
	if !found {
		spec, warnings, err := h.capturer.Capture(r.Context(), envName)
		if err != nil {
			// Only context cancellation reaches here; capture
			// failures degrade to warnings.
			h.writeJSON(w, http.StatusGatewayTimeout, ErrorResponse{
				Error:   "Capture canceled",
				Details: err.Error(),
				Code:    http.StatusGatewayTimeout,
			})
			return
		}
		snapshot = srvcache.Snapshot{Spec: spec, Warnings: warnings}
		h.cache.Set(envName, snapshot)
	}

	report := h.engine.Report(snapshot.Spec, snapshot.Warnings)
	h.writeJSON(w, http.StatusOK, report)
}
