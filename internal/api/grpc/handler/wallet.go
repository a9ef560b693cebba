package handler

import (
	"context"

	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/crypto-onboard-server/internal/api/grpc/proto"
	"github.com/dtroode/crypto-onboard-server/internal/logger"
	"github.com/dtroode/crypto-onboard-server/internal/model"
)

// WalletService defines the onboarding operation.
type WalletService interface {
	Create(ctx context.Context, handle string) (model.Wallet, error)
}

// Wallet handles gRPC endpoints for wallet creation.
type Wallet struct {
	walletService WalletService
	logger        *logger.Logger
}

var _ proto.WalletServer = (*Wallet)(nil)

// NewWallet creates a new Wallet handler.
func NewWallet(walletService WalletService, logger *logger.Logger) *Wallet {
	return &Wallet{
		walletService: walletService,
		logger:        logger,
	}
}

// CreateWallet verifies the handle in req and returns its derived address.
func (h *Wallet) CreateWallet(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	handle := req.GetValue()

	h.logger.Debug("Wallet handler: processing create wallet request",
		"handle", handle)

	wallet, err := h.walletService.Create(ctx, handle)
	if err != nil {
		h.logger.Error("Wallet handler: create wallet failed",
			"handle", handle,
			"error", err.Error())
		return nil, handleError(err)
	}

	return wrapperspb.String(wallet.Address), nil
}
