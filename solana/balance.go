package solana

import (
	"context"
	"fmt"

	"github.com/chronos-capsule/chronos/internal/client"
	"github.com/chronos-capsule/chronos/internal/common"
)

// Chain implements wallet operations for Solana.
type Chain struct {
	client *client.SolanaClient
}

// New creates a Solana chain backed by the given RPC endpoint.
func New(rpcURL string) *Chain {
	return &Chain{client: client.NewSolanaClient(rpcURL)}
}

// Name returns the chain identifier
func (c *Chain) Name() string {
	return Name
}

// Symbol returns the native currency symbol
func (c *Chain) Symbol() string {
	return "SOL"
}

// Balance gets the SOL balance of address as a decimal string
func (c *Chain) Balance(ctx context.Context, address string) (string, error) {
	lamports, err := c.client.GetBalanceLamports(ctx, address)
	if err != nil {
		return "", fmt.Errorf("failed to get balance: %w", err)
	}
	return common.LamportsToSOL(lamports), nil
}
