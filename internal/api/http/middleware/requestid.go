package middleware

import (
	"net/http"

	"github.com/dtroode/crypto-onboard-server/internal/model"
	"github.com/dtroode/crypto-onboard-server/internal/requestctx"
)

// RequestID attaches a request ID to the request context and echoes it in
// the response. A well-formed client supplied X-Request-ID is reused.
type RequestID struct {
	contextManager model.ContextManager
}

// NewRequestID creates a new RequestID middleware.
func NewRequestID(contextManager model.ContextManager) *RequestID {
	return &RequestID{contextManager: contextManager}
}

// Handle wraps next.
func (m *RequestID) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestctx.HeaderName)
		if !requestctx.Valid(id) {
			id = requestctx.NewRequestID()
		}

		w.Header().Set(requestctx.HeaderName, id)
		ctx := m.contextManager.SetRequestIDToContext(r.Context(), id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
