package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	grpcRouter "github.com/dtroode/crypto-onboard-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/crypto-onboard-server/internal/api/grpc/server"
	httpRouter "github.com/dtroode/crypto-onboard-server/internal/api/http/router"
	httpServer "github.com/dtroode/crypto-onboard-server/internal/api/http/server"
	"github.com/dtroode/crypto-onboard-server/internal/config"
	"github.com/dtroode/crypto-onboard-server/internal/identity/twitter"
	"github.com/dtroode/crypto-onboard-server/internal/logger"
	"github.com/dtroode/crypto-onboard-server/internal/model"
	"github.com/dtroode/crypto-onboard-server/internal/requestctx"
	"github.com/dtroode/crypto-onboard-server/internal/server"
	"github.com/dtroode/crypto-onboard-server/internal/service"
	"github.com/dtroode/crypto-onboard-server/internal/wallet"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	deriver, err := wallet.NewDeriver([]byte(cfg.Wallet.Salt))
	if err != nil {
		logger.Fatal("failed to initialize wallet deriver", "error", err)
	}

	twitterClient := twitter.NewClient(
		&http.Client{Timeout: cfg.Twitter.Timeout},
		cfg.Twitter.BaseURL,
		cfg.Twitter.BearerToken,
		cfg.Twitter.Timeout,
		logger,
	)

	walletService := service.NewWallet(twitterClient, deriver, logger)
	ctxMgr := requestctx.NewManager()

	servers := []serverWithSecurity{
		{
			server: httpServer.NewHTTPServer(
				httpRouter.New(walletService, ctxMgr, cfg.HTTP.AllowedOrigin, logger).Register(),
				fmt.Sprintf(":%s", cfg.HTTP.Port),
			),
			security: server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName),
		},
	}

	if cfg.GRPC.Enabled {
		servers = append(servers, serverWithSecurity{
			server: grpcServer.NewGRPCServer(
				grpcRouter.New(walletService, ctxMgr, logger).Register(),
				fmt.Sprintf(":%s", cfg.GRPC.Port),
			),
			security: server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName),
		})
	}

	logAppVersion()

	if err := run(ctx, logger, servers); err != nil {
		logger.Fatal("server failed", "error", err)
	}
	logger.Info("shutdown complete")
}

type serverWithSecurity struct {
	server   model.Server
	security model.SecurityLayer
}

// run starts every server and blocks until ctx is cancelled or one of them
// fails, then stops them all.
func run(ctx context.Context, logger *logger.Logger, servers []serverWithSecurity) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, s := range servers {
		s := s
		g.Go(func() error {
			logger.Info("Starting server on", "address", s.server.Address())
			if err := s.server.Start(s.security); err != nil {
				return fmt.Errorf("server %s: %w", s.server.Address(), err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		for _, s := range servers {
			if err := s.server.Stop(shutdownCtx); err != nil {
				logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
			}
		}
		return nil
	})

	return g.Wait()
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
