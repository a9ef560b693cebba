package middleware

import (
	"net/http"

	"github.com/dtroode/crypto-onboard-server/internal/api/http/handler"
	"github.com/dtroode/crypto-onboard-server/internal/apierror"
	"github.com/dtroode/crypto-onboard-server/internal/logger"
)

// Recover turns a panicking handler into a 500 JSON response.
type Recover struct {
	logger *logger.Logger
}

// NewRecover creates a new Recover middleware.
func NewRecover(logger *logger.Logger) *Recover {
	return &Recover{logger: logger}
}

// Handle wraps next.
func (m *Recover) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}

			m.logger.Error("HTTP handler panicked",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", p)
			handler.WriteError(w, apierror.NewErrInternalServerError(nil))
		}()

		next.ServeHTTP(w, r)
	})
}
