// ABOUTME: Health endpoint for the migration analysis API
// ABOUTME: Reports catalog size and whether local capture is available

package handlers

import "net/http"

// Health reports service readiness. The engine has no external
// dependencies, so this is always ok; capture availability is advisory.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := map[string]interface{}{
		"status":            "ok",
		"catalog_instances": len(h.cat.Instances),
		"capture_available": h.capturer != nil,
		"pricing_region":    h.cfg.PricingRegion,
	}
	h.writeJSON(w, http.StatusOK, resp)
}
