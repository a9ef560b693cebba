package router

import (
	"net/http"

	"github.com/dtroode/crypto-onboard-server/internal/api/http/handler"
	"github.com/dtroode/crypto-onboard-server/internal/api/http/middleware"
	"github.com/dtroode/crypto-onboard-server/internal/logger"
	"github.com/dtroode/crypto-onboard-server/internal/model"
)

// Router builds the HTTP handler tree for the onboarding API.
type Router struct {
	walletService  handler.WalletService
	contextManager model.ContextManager
	allowedOrigin  string
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	walletService handler.WalletService,
	contextManager model.ContextManager,
	allowedOrigin string,
	logger *logger.Logger,
) *Router {
	return &Router{
		walletService:  walletService,
		contextManager: contextManager,
		allowedOrigin:  allowedOrigin,
		logger:         logger,
	}
}

// Register registers all routes and wraps them with request ID, logging,
// panic recovery and CORS middleware, outermost first.
func (r *Router) Register() http.Handler {
	mux := http.NewServeMux()

	walletHandler := handler.NewWallet(r.walletService, r.logger)
	mux.HandleFunc("POST /api/createWallet", walletHandler.CreateWallet)
	mux.HandleFunc("GET /healthz", handler.Health)

	var h http.Handler = mux
	h = middleware.NewCORS(r.allowedOrigin).Handle(h)
	h = middleware.NewRecover(r.logger).Handle(h)
	h = middleware.NewLogging(r.logger, r.contextManager).Handle(h)
	h = middleware.NewRequestID(r.contextManager).Handle(h)

	return h
}
