package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/crypto-onboard-server/internal/logger"
	"github.com/dtroode/crypto-onboard-server/internal/model"
)

// Logging is a unary interceptor that logs gRPC requests and results.
type Logging struct {
	logger         *logger.Logger
	contextManager model.ContextManager
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger, contextManager model.ContextManager) *Logging {
	return &Logging{logger: logger, contextManager: contextManager}
}

// HandleGRPC logs method name, request ID, duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	requestID, _ := l.contextManager.GetRequestIDFromContext(ctx)

	l.logger.Info("gRPC request started",
		"method", info.FullMethod,
		"request_id", requestID,
		"start_time", start.Format(time.RFC3339))

	resp, err := handler(ctx, req)

	duration := time.Since(start)

	statusCode := codes.OK
	if err != nil {
		if st, ok := status.FromError(err); ok {
			statusCode = st.Code()
		} else {
			statusCode = codes.Internal
		}
	}

	l.logger.Info("gRPC request completed",
		"method", info.FullMethod,
		"request_id", requestID,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode.String())

	if err != nil {
		l.logger.Error("gRPC request failed",
			"method", info.FullMethod,
			"request_id", requestID,
			"error", err.Error(),
			"status", statusCode.String())
	}

	return resp, err
}
