package middleware

import (
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"

	"github.com/dtroode/crypto-onboard-server/internal/logger"
	"github.com/dtroode/crypto-onboard-server/internal/model"
)

// Logging logs every HTTP request with its status and duration.
type Logging struct {
	logger         *logger.Logger
	contextManager model.ContextManager
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger, contextManager model.ContextManager) *Logging {
	return &Logging{logger: logger, contextManager: contextManager}
}

// Handle wraps next.
func (l *Logging) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := l.contextManager.GetRequestIDFromContext(r.Context())

		l.logger.Info("HTTP request started",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
			"start_time", time.Now().Format(time.RFC3339))

		m := httpsnoop.CaptureMetrics(next, w, r)

		args := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
			"status", m.Code,
			"duration_ms", m.Duration.Milliseconds(),
			"bytes", m.Written,
		}
		if m.Code >= http.StatusInternalServerError {
			l.logger.Error("HTTP request failed", args...)
			return
		}
		l.logger.Info("HTTP request completed", args...)
	})
}
