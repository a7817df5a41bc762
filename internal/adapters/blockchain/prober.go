package blockchain

import (
	"context"

	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// Prober reports the chain ID an RPC endpoint serves
type Prober struct{}

// NewProber creates a new RPC prober
func NewProber() *Prober {
	return &Prober{}
}

// ProbeChainID dials rpcURL and returns its chain ID
func (p *Prober) ProbeChainID(ctx context.Context, rpcURL string) (uint64, error) {
	client, chainID, err := Dial(ctx, rpcURL, 0)
	if err != nil {
		return 0, err
	}
	client.Close()
	return chainID, nil
}

var _ usecase.NetworkProber = (*Prober)(nil)
