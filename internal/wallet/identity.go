package wallet

import (
	"context"

	"github.com/chronos-capsule/chronos/internal/crypto"
)

// Chain is what the wallet service needs from a blockchain integration.
type Chain interface {
	Name() string
	Symbol() string
	// GenerateKey returns a hex private key and the address it controls.
	GenerateKey() (privateKeyHex, address string, err error)
	AddressFromPrivateKey(privateKeyHex string) (string, error)
	Balance(ctx context.Context, address string) (string, error)
}

// VerifyDerivedIdentity checks that a decrypted private key controls the
// expected address. For password envelopes this is the password check: a key
// from the wrong password fails here and is reported as an
// AuthenticationFailure, exactly like a tag mismatch.
func VerifyDerivedIdentity(chain Chain, privateKeyHex, expectedAddress string) error {
	derived, err := chain.AddressFromPrivateKey(privateKeyHex)
	if err != nil {
		return &crypto.AuthenticationFailure{}
	}
	if derived != expectedAddress {
		return &crypto.AuthenticationFailure{}
	}
	return nil
}
