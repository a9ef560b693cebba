package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/crypto-onboard-server/internal/requestctx"
)

// RequestID is a unary interceptor that puts a request ID into the context
// and returns it to the client in the response header.
type RequestID struct {
	contextManager *requestctx.Manager
}

// NewRequestID creates a new RequestID middleware.
func NewRequestID(contextManager *requestctx.Manager) *RequestID {
	return &RequestID{contextManager: contextManager}
}

// HandleGRPC reuses a valid x-request-id from incoming metadata or generates one.
func (m *RequestID) HandleGRPC(ctx context.Context, req interface{}, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	id, ok := m.contextManager.RequestIDFromMetadata(ctx)
	if !ok {
		id = requestctx.NewRequestID()
	}

	// Fails only outside a real server transport, e.g. in direct unit calls.
	_ = grpc.SetHeader(ctx, metadata.Pairs(requestctx.MetadataKey, id))

	return handler(m.contextManager.SetRequestIDToContext(ctx, id), req)
}
