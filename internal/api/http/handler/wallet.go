package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dtroode/crypto-onboard-server/internal/apierror"
	"github.com/dtroode/crypto-onboard-server/internal/logger"
	"github.com/dtroode/crypto-onboard-server/internal/model"
)

const maxRequestBodyBytes = 4 << 10

// WalletService defines the onboarding operation.
type WalletService interface {
	Create(ctx context.Context, handle string) (model.Wallet, error)
}

// Wallet handles HTTP endpoints for wallet creation.
type Wallet struct {
	walletService WalletService
	logger        *logger.Logger
}

// NewWallet creates a new Wallet handler.
func NewWallet(walletService WalletService, logger *logger.Logger) *Wallet {
	return &Wallet{
		walletService: walletService,
		logger:        logger,
	}
}

// CreateWalletRequest is the body of POST /api/createWallet.
// TwitterHandle is the field the web client sends; Handle is accepted as an alias.
type CreateWalletRequest struct {
	TwitterHandle string `json:"twitterHandle"`
	Handle        string `json:"handle,omitempty"`
}

// CreateWalletResponse is returned on success.
type CreateWalletResponse struct {
	Address string `json:"address"`
}

// ErrorResponse is returned on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateWallet verifies the handle and returns its derived address.
func (h *Wallet) CreateWallet(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Wallet handler: failed to decode request",
			"error", err.Error())
		h.handleError(w, apierror.NewErrInvalidRequestBody(err))
		return
	}

	handle := req.TwitterHandle
	if handle == "" {
		handle = req.Handle
	}

	h.logger.Debug("Wallet handler: processing create wallet request",
		"handle", handle)

	wallet, err := h.walletService.Create(r.Context(), handle)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CreateWalletResponse{Address: wallet.Address})
}

// Health reports that the process is up.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Wallet) handleError(w http.ResponseWriter, err error) {
	apiErr, ok := apierror.As(err)
	if !ok {
		apiErr = apierror.NewErrInternalServerError(err)
	}

	if apiErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("Wallet handler: request failed",
			"status", apiErr.HTTPStatus,
			"error", err.Error())
	}

	WriteError(w, apiErr)
}

// WriteError writes apiErr as a JSON error body.
func WriteError(w http.ResponseWriter, apiErr *apierror.APIError) {
	writeJSON(w, apiErr.HTTPStatus, ErrorResponse{Error: apiErr.Message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
