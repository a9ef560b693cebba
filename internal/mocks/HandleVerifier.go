package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/crypto-onboard-server/internal/model"
)

// HandleVerifier is a mock type for the model.HandleVerifier type.
type HandleVerifier struct {
	mock.Mock
}

// LookupHandle provides a mock function with given fields: ctx, handle.
func (m *HandleVerifier) LookupHandle(ctx context.Context, handle string) (model.Identity, error) {
	args := m.Called(ctx, handle)
	return args.Get(0).(model.Identity), args.Error(1)
}

// NewHandleVerifier creates a new instance of HandleVerifier and registers
// expectation assertions on test cleanup.
func NewHandleVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *HandleVerifier {
	m := &HandleVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
