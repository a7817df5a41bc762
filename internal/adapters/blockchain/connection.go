package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/nounsgov/internal/config"
)

// Backend is the part of ethclient.Client the governance adapters use
type Backend interface {
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

var _ Backend = (*ethclient.Client)(nil)

// Dial connects to an RPC endpoint and verifies its chain ID. A zero
// expected chain ID accepts whatever the node reports.
func Dial(ctx context.Context, rpcURL string, expected uint64) (*ethclient.Client, uint64, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	networkChainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, 0, fmt.Errorf("failed to get chain ID: %w", err)
	}

	if expected != 0 && networkChainID.Uint64() != expected {
		client.Close()
		return nil, 0, fmt.Errorf("chain ID mismatch: expected %d, got %d", expected, networkChainID.Uint64())
	}
	return client, networkChainID.Uint64(), nil
}

// Connection dials the configured network on first use so commands that
// never touch the chain do not need a reachable RPC. A failed dial is not
// remembered; the next call dials again.
type Connection struct {
	rpcURL string
	log    *slog.Logger

	mu      sync.Mutex
	chainID uint64
	backend Backend
}

// NewConnection creates a lazy connection to the selected network
func NewConnection(cfg *config.RuntimeConfig, log *slog.Logger) *Connection {
	return &Connection{
		rpcURL:  cfg.Network.RPCURL,
		chainID: cfg.Network.ChainID,
		log:     log.With("component", "blockchain"),
	}
}

// NewConnectionWithBackend wraps an already connected backend
func NewConnectionWithBackend(backend Backend, chainID uint64) *Connection {
	return &Connection{backend: backend, chainID: chainID, log: slog.New(slog.DiscardHandler)}
}

// Backend returns the connected backend, dialing if no dial has succeeded yet
func (c *Connection) Backend(ctx context.Context) (Backend, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.backend != nil {
		return c.backend, nil
	}

	c.log.Debug("dialing RPC", "url", c.rpcURL, "chainId", c.chainID)
	client, chainID, err := Dial(ctx, c.rpcURL, c.chainID)
	if err != nil {
		c.log.Debug("dial failed", "error", err)
		return nil, err
	}
	c.backend = client
	c.chainID = chainID
	return c.backend, nil
}

// ChainID returns the verified chain ID once connected
func (c *Connection) ChainID() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chainID
}
