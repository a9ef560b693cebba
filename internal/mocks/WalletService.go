package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/crypto-onboard-server/internal/model"
)

// WalletService is a mock type for the transport-facing wallet service.
type WalletService struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, handle.
func (m *WalletService) Create(ctx context.Context, handle string) (model.Wallet, error) {
	args := m.Called(ctx, handle)
	return args.Get(0).(model.Wallet), args.Error(1)
}

// NewWalletService creates a new instance of WalletService and registers
// expectation assertions on test cleanup.
func NewWalletService(t interface {
	mock.TestingT
	Cleanup(func())
}) *WalletService {
	m := &WalletService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
