package client

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthereumClient is a client for an Ethereum-compatible JSON-RPC endpoint.
// A connection is dialed per call; balance lookups are rare.
type EthereumClient struct {
	rpcURL string
}

// NewEthereumClient creates a new Ethereum client for the given RPC endpoint.
func NewEthereumClient(rpcURL string) *EthereumClient {
	return &EthereumClient{rpcURL: rpcURL}
}

// GetBalanceWei gets the latest balance in wei for the given address
func (c *EthereumClient) GetBalanceWei(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid Ethereum address: %s", address)
	}

	rpcClient, err := ethclient.DialContext(ctx, c.rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}
	defer rpcClient.Close()

	balance, err := rpcClient.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get ETH balance: %w", err)
	}
	return balance, nil
}
