// ABOUTME: Panic recovery middleware for the analysis API
// ABOUTME: Converts panics into 500 JSON responses instead of killing the process

package middleware

import (
	"log/slog"
	"net/http"
)

// Recover turns handler panics into a JSON 500 response. The analysis
// output is advisory; no request is allowed to take the process down.
func Recover(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("Handler panicked", "path", r.URL.Path, "panic", rec)
				writeJSONError(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next(w, r)
	}
}
