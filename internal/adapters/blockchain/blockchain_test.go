package blockchain

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/nounsgov/internal/config"
	"github.com/trebuchet-org/nounsgov/internal/domain/bindings"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"go.uber.org/goleak"
)

const (
	testKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	daoAddress  = "0x00000000000000000000000000000000000000da"
	tokenAddr   = "0x00000000000000000000000000000000000000cc"
	streamAddr  = "0x00000000000000000000000000000000000000d4"
	testChainID = 31337
)

type receiptResult struct {
	receipt *types.Receipt
	err     error
}

// fakeBackend records calls and replays canned results
type fakeBackend struct {
	mu sync.Mutex

	callResult  []byte
	callErr     error
	calls       []ethereum.CallMsg
	estimate    uint64
	estimateErr error
	sendErr     error
	sent        []*types.Transaction
	receipts    []receiptResult
}

func (f *fakeBackend) BlockNumber(context.Context) (uint64, error) { return 1234, nil }

func (f *fakeBackend) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(testChainID), nil
}

func (f *fakeBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, msg)
	return f.callResult, f.callErr
}

func (f *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{BaseFee: big.NewInt(10)}, nil
}

func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) { return 7, nil }

func (f *fakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) { return big.NewInt(2), nil }

func (f *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return f.estimate, f.estimateErr
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, tx)
	return nil
}

// TransactionReceipt pops the next canned receipt; the last one repeats
func (f *fakeBackend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.receipts) == 0 {
		return nil, ethereum.NotFound
	}
	next := f.receipts[0]
	if len(f.receipts) > 1 {
		f.receipts = f.receipts[1:]
	}
	return next.receipt, next.err
}

func testConfig(key string) *config.RuntimeConfig {
	return &config.RuntimeConfig{
		Network: &config.Network{
			Name:         "local",
			ChainID:      testChainID,
			DAOAddress:   daoAddress,
			TokenAddress: tokenAddr,
		},
		Account: config.Account{Address: testAddress, PrivateKey: key},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestWriter(backend *fakeBackend, key string) *Writer {
	w := NewWriter(NewConnectionWithBackend(backend, testChainID), testConfig(key), discardLogger())
	w.PollInterval = time.Millisecond
	return w
}

func drain(updates <-chan models.TransactionStatus) []models.TransactionStatus {
	var out []models.TransactionStatus
	for s := range updates {
		out = append(out, s)
	}
	return out
}

func word(v int64) []byte {
	return common.LeftPadBytes(big.NewInt(v).Bytes(), 32)
}

func TestReader(t *testing.T) {
	ctx := context.Background()

	t.Run("proposal state", func(t *testing.T) {
		backend := &fakeBackend{callResult: word(5)}
		r := NewReader(NewConnectionWithBackend(backend, testChainID), testConfig(""))

		state, err := r.ProposalState(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, models.ProposalStateQueued, state)

		require.Len(t, backend.calls, 1)
		assert.Equal(t, common.HexToAddress(daoAddress), *backend.calls[0].To)
		assert.Equal(t, bindings.NewNounsDAO().PackState(big.NewInt(42)), backend.calls[0].Data)
	})

	t.Run("quorum votes", func(t *testing.T) {
		backend := &fakeBackend{callResult: word(71)}
		r := NewReader(NewConnectionWithBackend(backend, testChainID), testConfig(""))

		quorum, err := r.QuorumVotes(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, uint64(71), quorum)
	})

	t.Run("prior votes go to the token", func(t *testing.T) {
		backend := &fakeBackend{callResult: word(3)}
		r := NewReader(NewConnectionWithBackend(backend, testChainID), testConfig(""))

		votes, err := r.PriorVotes(ctx, testAddress, 900)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), votes)
		assert.Equal(t, common.HexToAddress(tokenAddr), *backend.calls[0].To)
	})

	t.Run("stream balance", func(t *testing.T) {
		backend := &fakeBackend{callResult: word(1_000_000)}
		r := NewReader(NewConnectionWithBackend(backend, testChainID), testConfig(""))

		balance, err := r.StreamBalance(ctx, streamAddr, testAddress)
		require.NoError(t, err)
		assert.Equal(t, int64(1_000_000), balance.Int64())
		assert.Equal(t, common.HexToAddress(streamAddr), *backend.calls[0].To)
	})

	t.Run("block number", func(t *testing.T) {
		r := NewReader(NewConnectionWithBackend(&fakeBackend{}, testChainID), testConfig(""))
		n, err := r.BlockNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1234), n)
	})

	t.Run("errors", func(t *testing.T) {
		backend := &fakeBackend{callErr: errors.New("execution reverted")}
		r := NewReader(NewConnectionWithBackend(backend, testChainID), testConfig(""))

		_, err := r.ProposalState(ctx, "42")
		assert.ErrorContains(t, err, "state(42): execution reverted")

		_, err = r.ProposalState(ctx, "abc")
		assert.Error(t, err)

		_, err = r.PriorVotes(ctx, "nope", 1)
		assert.ErrorContains(t, err, "invalid account address")

		_, err = r.StreamBalance(ctx, "nope", testAddress)
		assert.ErrorContains(t, err, "invalid stream address")
	})
}

func TestWriter(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()

	t.Run("mined successfully", func(t *testing.T) {
		backend := &fakeBackend{
			estimate: 100_000,
			receipts: []receiptResult{
				{err: ethereum.NotFound},
				{receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(100)}},
			},
		}
		w := newTestWriter(backend, testKey)

		statuses := drain(w.Queue(ctx, "42"))
		require.Len(t, statuses, 2)
		assert.Equal(t, models.TxStateMining, statuses[0].Status)
		assert.Equal(t, models.TxStateSuccess, statuses[1].Status)
		assert.Equal(t, uint64(100), statuses[1].BlockNumber)
		assert.Equal(t, statuses[0].TxHash, statuses[1].TxHash)

		require.Len(t, backend.sent, 1)
		tx := backend.sent[0]
		sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(testChainID)), tx)
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress(testAddress), sender)
		assert.Equal(t, common.HexToAddress(daoAddress), *tx.To())
		assert.Equal(t, uint64(7), tx.Nonce())
		assert.Equal(t, uint64(120_000), tx.Gas())
		assert.Equal(t, int64(22), tx.GasFeeCap().Int64())
		assert.Equal(t, bindings.NewNounsDAO().PackQueue(big.NewInt(42)), tx.Data())
	})

	t.Run("reverted", func(t *testing.T) {
		backend := &fakeBackend{
			estimate: 21_000,
			receipts: []receiptResult{{receipt: &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(9)}}},
		}
		w := newTestWriter(backend, testKey)

		statuses := drain(w.Execute(ctx, "42"))
		require.Len(t, statuses, 2)
		assert.Equal(t, models.TxStateFail, statuses[1].Status)
		assert.Equal(t, "transaction reverted", statuses[1].ErrorMessage)
	})

	t.Run("estimate failure is an exception", func(t *testing.T) {
		backend := &fakeBackend{estimateErr: errors.New("execution reverted: NounsDAO::cancel: proposer above threshold")}
		w := newTestWriter(backend, testKey)

		statuses := drain(w.Cancel(ctx, "42"))
		require.Len(t, statuses, 1)
		assert.Equal(t, models.TxStateException, statuses[0].Status)
		assert.Equal(t, "execution reverted: NounsDAO::cancel: proposer above threshold", statuses[0].ErrorMessage)
		assert.Empty(t, backend.sent)
	})

	t.Run("send failure is an exception", func(t *testing.T) {
		backend := &fakeBackend{estimate: 21_000, sendErr: errors.New("nonce too low")}
		w := newTestWriter(backend, testKey)

		statuses := drain(w.CastVote(ctx, "42", models.SupportFor, ""))
		require.Len(t, statuses, 1)
		assert.Equal(t, "nonce too low", statuses[0].ErrorMessage)
	})

	t.Run("vote with reason", func(t *testing.T) {
		backend := &fakeBackend{
			estimate: 50_000,
			receipts: []receiptResult{{receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(3)}}},
		}
		w := newTestWriter(backend, testKey)

		statuses := drain(w.CastVote(ctx, "42", models.SupportAbstain, "meh"))
		require.Len(t, statuses, 2)
		want := bindings.NewNounsDAO().PackCastVoteWithReason(big.NewInt(42), 2, "meh")
		assert.Equal(t, want, backend.sent[0].Data())
	})

	t.Run("stream withdraw", func(t *testing.T) {
		backend := &fakeBackend{
			estimate: 50_000,
			receipts: []receiptResult{{receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(3)}}},
		}
		w := newTestWriter(backend, testKey)

		statuses := drain(w.WithdrawFromStream(ctx, streamAddr, big.NewInt(500)))
		require.Len(t, statuses, 2)
		assert.Equal(t, common.HexToAddress(streamAddr), *backend.sent[0].To())

		statuses = drain(w.WithdrawFromStream(ctx, streamAddr, big.NewInt(0)))
		require.Len(t, statuses, 1)
		assert.Equal(t, models.TxStateException, statuses[0].Status)
	})

	t.Run("address without key", func(t *testing.T) {
		w := newTestWriter(&fakeBackend{}, "")
		assert.Equal(t, testAddress, w.Account())

		statuses := drain(w.Queue(ctx, "42"))
		require.Len(t, statuses, 1)
		assert.Contains(t, statuses[0].ErrorMessage, "has no private key")
	})

	t.Run("invalid proposal id", func(t *testing.T) {
		w := newTestWriter(&fakeBackend{}, testKey)
		statuses := drain(w.Queue(ctx, "0x2a"))
		require.Len(t, statuses, 1)
		assert.Equal(t, models.TxStateException, statuses[0].Status)
	})

	t.Run("canceled while mining", func(t *testing.T) {
		backend := &fakeBackend{estimate: 21_000}
		w := newTestWriter(backend, testKey)

		ctx, cancel := context.WithCancel(context.Background())
		updates := w.Queue(ctx, "42")

		first := <-updates
		assert.Equal(t, models.TxStateMining, first.Status)
		cancel()

		rest := drain(updates)
		require.Len(t, rest, 1)
		assert.Equal(t, models.TxStateException, rest[0].Status)
		assert.Equal(t, context.Canceled.Error(), rest[0].ErrorMessage)
	})

	t.Run("abandoned watcher still exits", func(t *testing.T) {
		backend := &fakeBackend{
			estimate: 21_000,
			receipts: []receiptResult{{receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}}},
		}
		w := newTestWriter(backend, testKey)
		_ = w.Queue(ctx, "42")

		assert.Eventually(t, func() bool {
			backend.mu.Lock()
			defer backend.mu.Unlock()
			return len(backend.sent) == 1
		}, time.Second, time.Millisecond)
	})
}

func TestConnectionWithBackend(t *testing.T) {
	backend := &fakeBackend{}
	conn := NewConnectionWithBackend(backend, testChainID)

	got, err := conn.Backend(context.Background())
	require.NoError(t, err)
	assert.Same(t, backend, got)
	assert.Equal(t, uint64(testChainID), conn.ChainID())
}

// newChainIDNode serves eth_chainId over JSON-RPC
func newChainIDNode(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  "0x7a69",
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestConnectionRedialsAfterFailure(t *testing.T) {
	srv := newChainIDNode(t)
	cfg := &config.RuntimeConfig{Network: &config.Network{RPCURL: srv.URL, ChainID: testChainID}}
	conn := NewConnection(cfg, discardLogger())

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := conn.Backend(cancelled)
	require.Error(t, err)

	backend, err := conn.Backend(context.Background())
	require.NoError(t, err)
	require.NotNil(t, backend)
	t.Cleanup(backend.(*ethclient.Client).Close)
	assert.Equal(t, uint64(testChainID), conn.ChainID())

	again, err := conn.Backend(context.Background())
	require.NoError(t, err)
	assert.Same(t, backend, again)
}
