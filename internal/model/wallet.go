package model

import "context"

// HandleVerifier checks that a handle belongs to an existing account.
type HandleVerifier interface {
	LookupHandle(ctx context.Context, handle string) (Identity, error)
}

// WalletDeriver turns a verified handle into a public wallet address.
type WalletDeriver interface {
	Derive(handle string) (string, error)
}

// Identity is the account metadata returned by the identity provider.
type Identity struct {
	ID       string
	Username string
	Name     string
}

// Wallet is the result of onboarding a handle.
type Wallet struct {
	Handle  string
	Address string
}
