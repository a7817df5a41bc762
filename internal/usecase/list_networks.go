package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/trebuchet-org/nounsgov/internal/config"
	"golang.org/x/sync/errgroup"
)

// probeTimeout bounds how long a single RPC endpoint may take to answer
const probeTimeout = 5 * time.Second

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Probe dials each RPC endpoint and reports its chain ID
	Probe bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus `json:"networks" yaml:"networks"`
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Network config.Network `json:"network" yaml:"network"`
	Current bool           `json:"current" yaml:"current"`
	// RemoteChainID is what the RPC reported, zero when not probed
	RemoteChainID uint64 `json:"remoteChainId,omitempty" yaml:"remoteChainId,omitempty"`
	Error         error  `json:"-" yaml:"-"`
}

// ErrorMessage returns the probe error text, if any
func (s NetworkStatus) ErrorMessage() string {
	if s.Error == nil {
		return ""
	}
	return s.Error.Error()
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	cfg    *config.RuntimeConfig
	prober NetworkProber
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, prober NetworkProber) *ListNetworks {
	return &ListNetworks{
		cfg:    cfg,
		prober: prober,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	names := uc.cfg.NetworkNames()
	networks := make([]NetworkStatus, len(names))
	for i, name := range names {
		networks[i] = NetworkStatus{
			Network: uc.cfg.Networks[name],
			Current: uc.cfg.Network != nil && uc.cfg.Network.Name == name,
		}
		networks[i].Network.Name = name
		if networks[i].Current {
			// flags such as --rpc-url only apply to the selected network
			networks[i].Network = *uc.cfg.Network
		}
	}

	if params.Probe {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(4)
		for i := range networks {
			status := &networks[i]
			g.Go(func() error {
				status.RemoteChainID, status.Error = uc.probe(gctx, status.Network)
				return nil
			})
		}
		_ = g.Wait()
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}

func (uc *ListNetworks) probe(ctx context.Context, n config.Network) (uint64, error) {
	if n.RPCURL == "" {
		return 0, fmt.Errorf("no rpc_url configured")
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	chainID, err := uc.prober.ProbeChainID(ctx, n.RPCURL)
	if err != nil {
		return 0, err
	}
	if n.ChainID != 0 && chainID != n.ChainID {
		return chainID, fmt.Errorf("chain ID mismatch: expected %d, got %d", n.ChainID, chainID)
	}
	return chainID, nil
}
