package mocks

import "github.com/stretchr/testify/mock"

// WalletDeriver is a mock type for the model.WalletDeriver type.
type WalletDeriver struct {
	mock.Mock
}

// Derive provides a mock function with given fields: handle.
func (m *WalletDeriver) Derive(handle string) (string, error) {
	args := m.Called(handle)
	return args.String(0), args.Error(1)
}

// NewWalletDeriver creates a new instance of WalletDeriver and registers
// expectation assertions on test cleanup.
func NewWalletDeriver(t interface {
	mock.TestingT
	Cleanup(func())
}) *WalletDeriver {
	m := &WalletDeriver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
