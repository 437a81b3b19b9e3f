// ABOUTME: Declarative route table for the analysis API
// ABOUTME: Defines all routes for registration in serve mode

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/api/health", Handler: h.Health},
		{Method: http.MethodGet, Path: "/api/catalog", Handler: h.HandleCatalog},
		{Method: http.MethodPost, Path: "/api/analyze", Handler: h.HandleAnalyze},
		{Method: http.MethodGet, Path: "/api/capture", Handler: h.HandleCapture},
	}
}
