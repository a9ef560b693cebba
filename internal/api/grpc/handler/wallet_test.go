package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/crypto-onboard-server/internal/apierror"
	"github.com/dtroode/crypto-onboard-server/internal/mocks"
	"github.com/dtroode/crypto-onboard-server/internal/model"
	"github.com/dtroode/crypto-onboard-server/internal/testutil"
)

func TestWallet_CreateWallet_Success(t *testing.T) {
	svc := mocks.NewWalletService(t)
	svc.On("Create", mock.Anything, "@alice").Return(model.Wallet{Handle: "alice", Address: "0xabc"}, nil)

	h := NewWallet(svc, testutil.MakeNoopLogger())

	resp, err := h.CreateWallet(context.Background(), wrapperspb.String("@alice"))
	require.NoError(t, err)
	assert.Equal(t, "0xabc", resp.GetValue())
}

func TestWallet_CreateWallet_NilRequest(t *testing.T) {
	svc := mocks.NewWalletService(t)
	svc.On("Create", mock.Anything, "").Return(model.Wallet{}, apierror.NewErrHandleRequired(model.ErrInvalidHandle))

	h := NewWallet(svc, testutil.MakeNoopLogger())

	_, err := h.CreateWallet(context.Background(), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestWallet_CreateWallet_NotFound(t *testing.T) {
	svc := mocks.NewWalletService(t)
	svc.On("Create", mock.Anything, "ghost").Return(model.Wallet{}, apierror.NewErrHandleNotFound(model.ErrHandleNotFound))

	h := NewWallet(svc, testutil.MakeNoopLogger())

	resp, err := h.CreateWallet(context.Background(), wrapperspb.String("ghost"))
	assert.Nil(t, resp)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "Twitter user not found.", st.Message())
}
