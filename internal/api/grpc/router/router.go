package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/dtroode/crypto-onboard-server/internal/api/grpc/handler"
	"github.com/dtroode/crypto-onboard-server/internal/api/grpc/middleware"
	"github.com/dtroode/crypto-onboard-server/internal/api/grpc/proto"
	"github.com/dtroode/crypto-onboard-server/internal/logger"
	"github.com/dtroode/crypto-onboard-server/internal/requestctx"
)

// Router represents a gRPC router for onboarding operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	walletService  handler.WalletService
	contextManager *requestctx.Manager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	walletService handler.WalletService,
	contextManager *requestctx.Manager,
	logger *logger.Logger,
) *Router {
	return &Router{
		walletService:  walletService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds a gRPC server with request ID, logging and panic recovery
// interceptors, and registers the wallet and health services on it.
func (r *Router) Register() *grpc.Server {
	requestID := middleware.NewRequestID(r.contextManager)
	logging := middleware.NewLogging(r.logger, r.contextManager)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			requestID.HandleGRPC,
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(
				recovery.WithRecoveryHandlerContext(r.recoverPanic),
			),
		),
	)
	r.registerWalletRoutes(s)
	r.registerHealth(s)

	return s
}

func (r *Router) recoverPanic(ctx context.Context, p any) error {
	requestID, _ := r.contextManager.GetRequestIDFromContext(ctx)
	r.logger.Error("gRPC handler panicked",
		"request_id", requestID,
		"panic", p)
	return status.Error(codes.Internal, "internal server error")
}

func (r *Router) registerWalletRoutes(server *grpc.Server) {
	walletHandler := handler.NewWallet(r.walletService, r.logger)
	proto.RegisterWalletServer(server, walletHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(proto.WalletServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, hs)
}
