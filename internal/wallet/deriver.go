// Package wallet derives deterministic Ethereum addresses from social handles.
//
// The private key is HMAC-SHA256(secret, handle) read as a secp256k1 scalar.
// It only lives for the duration of a single Derive call and is wiped before
// Derive returns; callers only ever see the public address.
package wallet

import (
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/dtroode/crypto-onboard-server/internal/model"
)

// Deriver derives addresses for handles under a fixed secret.
// It holds no mutable state and is safe for concurrent use.
type Deriver struct {
	secret []byte
}

// NewDeriver returns a Deriver keyed by secret. The secret is copied.
func NewDeriver(secret []byte) (*Deriver, error) {
	if len(secret) == 0 {
		return nil, model.ErrMissingSecret
	}

	s := make([]byte, len(secret))
	copy(s, secret)

	return &Deriver{secret: s}, nil
}

// Derive returns the EIP-55 checksummed address for handle.
// The handle must already be normalized; an empty handle is rejected before
// any hashing happens.
func (d *Deriver) Derive(handle string) (string, error) {
	if handle == "" {
		return "", model.ErrInvalidHandle
	}

	var address common.Address
	err := d.withPrivateKey(handle, func(key *ecdsa.PrivateKey) error {
		address = crypto.PubkeyToAddress(key.PublicKey)
		return nil
	})
	if err != nil {
		return "", err
	}

	return address.Hex(), nil
}

// withPrivateKey hands the key for handle to fn and wipes the key material
// once fn returns. fn must not retain the key.
func (d *Deriver) withPrivateKey(handle string, fn func(*ecdsa.PrivateKey) error) error {
	digest := d.digest(handle)
	defer zeroBytes(digest)

	key, err := keyFromDigest(digest)
	if err != nil {
		return err
	}
	defer zeroKey(key)

	return fn(key)
}

func (d *Deriver) digest(handle string) []byte {
	mac := hmac.New(sha256.New, d.secret)
	mac.Write([]byte(handle))
	return mac.Sum(nil)
}

// keyFromDigest rejects digests outside [1, n-1] for secp256k1.
func keyFromDigest(digest []byte) (*ecdsa.PrivateKey, error) {
	key, err := crypto.ToECDSA(digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidScalar, err)
	}
	return key, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func zeroKey(key *ecdsa.PrivateKey) {
	words := key.D.Bits()
	for i := range words {
		words[i] = 0
	}
	key.D.SetInt64(0)
}
