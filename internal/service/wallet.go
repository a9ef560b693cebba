package service

import (
	"context"
	"errors"

	"github.com/dtroode/crypto-onboard-server/internal/apierror"
	"github.com/dtroode/crypto-onboard-server/internal/logger"
	"github.com/dtroode/crypto-onboard-server/internal/model"
)

// Wallet onboards handles: it verifies the handle and derives its address.
type Wallet struct {
	verifier model.HandleVerifier
	deriver  model.WalletDeriver
	logger   *logger.Logger
}

// NewWallet creates a new Wallet service.
func NewWallet(verifier model.HandleVerifier, deriver model.WalletDeriver, logger *logger.Logger) *Wallet {
	return &Wallet{
		verifier: verifier,
		deriver:  deriver,
		logger:   logger,
	}
}

// Create returns the wallet for rawHandle. The handle is normalized first and
// must be verified by the identity provider before any derivation happens.
// Errors are *apierror.APIError values.
func (w *Wallet) Create(ctx context.Context, rawHandle string) (model.Wallet, error) {
	handle := model.NormalizeHandle(rawHandle)
	if handle == "" {
		w.logger.Debug("Wallet service: empty handle rejected")
		return model.Wallet{}, apierror.NewErrHandleRequired(model.ErrInvalidHandle)
	}

	w.logger.Debug("Wallet service: verifying handle",
		"handle", handle)

	identity, err := w.verifier.LookupHandle(ctx, handle)
	if errors.Is(err, model.ErrHandleNotFound) {
		w.logger.Info("Wallet service: handle not found",
			"handle", handle)
		return model.Wallet{}, apierror.NewErrHandleNotFound(err)
	}
	if err != nil {
		w.logger.Error("Wallet service: handle verification failed",
			"handle", handle,
			"error", err.Error())
		return model.Wallet{}, apierror.NewErrUpstreamFailure(err)
	}

	w.logger.Debug("Wallet service: handle verified",
		"handle", handle,
		"account_id", identity.ID)

	address, err := w.deriver.Derive(handle)
	if errors.Is(err, model.ErrInvalidHandle) {
		return model.Wallet{}, apierror.NewErrHandleRequired(err)
	}
	if err != nil {
		w.logger.Error("Wallet service: address derivation failed",
			"handle", handle,
			"error", err.Error())
		return model.Wallet{}, apierror.NewErrInternalServerError(err)
	}

	w.logger.Info("Wallet service: wallet created",
		"handle", handle,
		"address", address)

	return model.Wallet{
		Handle:  handle,
		Address: address,
	}, nil
}
