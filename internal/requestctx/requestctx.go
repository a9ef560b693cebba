// Package requestctx carries a per-request ID through HTTP and gRPC calls.
package requestctx

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

const (
	// HeaderName is the HTTP header a request ID is read from and echoed in.
	HeaderName = "X-Request-ID"
	// MetadataKey is the gRPC metadata key a request ID is read from and echoed in.
	MetadataKey = "x-request-id"

	maxRequestIDLen = 128
)

type requestIDKey struct{}

// Manager stores request IDs in contexts.
type Manager struct{}

// NewManager creates a new request context manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetRequestIDToContext returns a copy of ctx carrying requestID.
func (m *Manager) SetRequestIDToContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestIDFromContext returns the request ID stored in ctx.
func (m *Manager) GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// RequestIDFromMetadata returns the request ID sent by a gRPC client.
func (m *Manager) RequestIDFromMetadata(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}

	ids := md.Get(MetadataKey)
	if len(ids) == 0 || !Valid(ids[0]) {
		return "", false
	}

	return ids[0], true
}

// NewRequestID generates a fresh request ID.
func NewRequestID() string {
	return uuid.NewString()
}

// Valid reports whether a client supplied request ID can be trusted as a log
// field: non-empty, bounded, printable ASCII.
func Valid(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
