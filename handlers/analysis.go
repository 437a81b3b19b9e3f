// ABOUTME: Analysis endpoint running the full pipeline over a posted snapshot
// ABOUTME: Accepts an EnvironmentSpec, returns the AnalysisReport

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/scttfrdmn/aws-research-wizard-sub000/models"
)

// maxSnapshotBytes bounds the posted snapshot size.
const maxSnapshotBytes = 4 << 20

// HandleAnalyze runs the pipeline over a posted environment snapshot.
// The pipeline itself cannot fail; only malformed input is rejected.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var env models.EnvironmentSpec
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSnapshotBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid environment snapshot",
			Details: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}
	if env.Name == "" {
		h.writeError(w, "Snapshot is missing the environment name", http.StatusBadRequest)
		return
	}

	report := h.engine.Report(env, nil)
	h.writeJSON(w, http.StatusOK, report)
}
