// Package proto declares the onboard.Wallet gRPC service.
//
// The service uses the well-known google.protobuf.StringValue message for
// both request (handle) and response (address), so no generated message
// types are needed; the service descriptor and client follow the layout
// protoc-gen-go-grpc produces.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// WalletServiceName is the fully qualified gRPC service name.
	WalletServiceName = "onboard.Wallet"
	// WalletCreateWalletFullMethodName is the full method name of CreateWallet.
	WalletCreateWalletFullMethodName = "/onboard.Wallet/CreateWallet"
)

// WalletServer is the server API for the Wallet service.
type WalletServer interface {
	// CreateWallet verifies a handle and returns its derived address.
	CreateWallet(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// RegisterWalletServer registers srv on s.
func RegisterWalletServer(s grpc.ServiceRegistrar, srv WalletServer) {
	s.RegisterService(&WalletServiceDesc, srv)
}

func walletCreateWalletHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WalletServer).CreateWallet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WalletCreateWalletFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WalletServer).CreateWallet(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// WalletServiceDesc is the grpc.ServiceDesc for the Wallet service.
var WalletServiceDesc = grpc.ServiceDesc{
	ServiceName: WalletServiceName,
	HandlerType: (*WalletServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateWallet",
			Handler:    walletCreateWalletHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "onboard/wallet.proto",
}

// WalletClient is the client API for the Wallet service.
type WalletClient interface {
	CreateWallet(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type walletClient struct {
	cc grpc.ClientConnInterface
}

// NewWalletClient creates a Wallet client on cc.
func NewWalletClient(cc grpc.ClientConnInterface) WalletClient {
	return &walletClient{cc: cc}
}

func (c *walletClient) CreateWallet(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, WalletCreateWalletFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
