// ABOUTME: Catalog endpoint exposing the loaded instance table
// ABOUTME: Lets clients inspect the pricing data behind recommendations

package handlers

import "net/http"

// HandleCatalog returns the instance catalog the engine was built with.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"pricing_region": h.cfg.PricingRegion,
		"instances":      h.cat.Instances,
	})
}
