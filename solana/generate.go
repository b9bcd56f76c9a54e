package solana

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

const (
	// Name is the chain identifier stored on wallet records.
	Name = "solana"

	seedSize = ed25519.SeedSize
	// legacy wallets stored the full 64-byte keypair
	keypairSize = ed25519.PrivateKeySize
)

// GenerateKey creates a new Solana keypair. The private key is returned as the
// hex-encoded 32-byte ed25519 seed; the address is the base58 public key.
func (c *Chain) GenerateKey() (privateKeyHex, address string, err error) {
	wallet, err := solana.NewRandomPrivateKey()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate Solana keypair: %w", err)
	}
	defer clear(wallet)

	seed := ed25519.PrivateKey(wallet).Seed()
	defer clear(seed)

	return hex.EncodeToString(seed), wallet.PublicKey().String(), nil
}

// AddressFromPrivateKey derives the base58 address from a hex-encoded seed
// (or a full 64-byte keypair).
func (c *Chain) AddressFromPrivateKey(privateKeyHex string) (string, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return "", fmt.Errorf("private key must be hex-encoded: %w", err)
	}
	defer clear(raw)

	var wallet solana.PrivateKey
	switch len(raw) {
	case seedSize:
		wallet = solana.PrivateKey(ed25519.NewKeyFromSeed(raw))
	case keypairSize:
		wallet = solana.PrivateKey(raw)
	default:
		return "", fmt.Errorf("invalid private key length")
	}

	return wallet.PublicKey().String(), nil
}
