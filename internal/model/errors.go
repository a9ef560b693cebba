package model

import "errors"

var (
	// ErrInvalidHandle is returned when a handle is empty after normalization.
	ErrInvalidHandle = errors.New("invalid handle")
	// ErrHandleNotFound is returned when the identity provider has no such account.
	ErrHandleNotFound = errors.New("handle not found")
	// ErrUpstream is returned when the identity provider could not be reached
	// or answered with something other than found/not found.
	ErrUpstream = errors.New("identity provider failure")
	// ErrMissingSecret is returned when the derivation secret is not configured.
	ErrMissingSecret = errors.New("derivation secret is not configured")
	// ErrInvalidScalar is returned when a digest is not a usable secp256k1 private key.
	ErrInvalidScalar = errors.New("digest is not a valid private key scalar")
)
