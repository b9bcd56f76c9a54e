package ethereum

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/chronos-capsule/chronos/internal/client"
	"github.com/chronos-capsule/chronos/internal/common"
)

// Name is the chain identifier stored on wallet records.
const Name = "ethereum"

// Chain implements wallet operations for Ethereum-compatible networks.
type Chain struct {
	client *client.EthereumClient
}

// New creates an Ethereum chain backed by the given RPC endpoint.
func New(rpcURL string) *Chain {
	return &Chain{client: client.NewEthereumClient(rpcURL)}
}

// Name returns the chain identifier
func (c *Chain) Name() string {
	return Name
}

// Symbol returns the native currency symbol
func (c *Chain) Symbol() string {
	return "ETH"
}

// GenerateKey creates a new secp256k1 key. The private key is returned as 64
// hex characters without a 0x prefix; the address is EIP-55 checksummed.
func (c *Chain) GenerateKey() (privateKeyHex, address string, err error) {
	key, err := gethcrypto.GenerateKey()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate Ethereum key: %w", err)
	}

	raw := gethcrypto.FromECDSA(key)
	defer clear(raw)

	return hex.EncodeToString(raw), gethcrypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

// AddressFromPrivateKey derives the checksummed address of a hex private key.
func (c *Chain) AddressFromPrivateKey(privateKeyHex string) (string, error) {
	key, err := gethcrypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return "", fmt.Errorf("invalid private key: %w", err)
	}
	return gethcrypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

// Balance gets the ETH balance of address as a decimal string
func (c *Chain) Balance(ctx context.Context, address string) (string, error) {
	wei, err := c.client.GetBalanceWei(ctx, address)
	if err != nil {
		return "", fmt.Errorf("failed to get balance: %w", err)
	}
	return common.WeiToETH(wei), nil
}
