package middleware

import (
	"net/http"
	"strings"
)

// CORS allows browser calls from a single configured origin.
type CORS struct {
	allowedOrigin string
}

// NewCORS creates a new CORS middleware. An empty origin disables CORS headers.
func NewCORS(allowedOrigin string) *CORS {
	return &CORS{allowedOrigin: strings.TrimRight(allowedOrigin, "/")}
}

// Handle wraps next. Preflight requests from the allowed origin are answered
// directly with 204.
func (c *CORS) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowed := c.allowedOrigin != "" && origin == c.allowedOrigin

		if allowed {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			if allowed {
				h := w.Header()
				h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
				h.Set("Access-Control-Max-Age", "600")
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
