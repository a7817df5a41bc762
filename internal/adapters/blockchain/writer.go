package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/nounsgov/internal/config"
	"github.com/trebuchet-org/nounsgov/internal/domain/bindings"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// DefaultPollInterval is how often a pending transaction's receipt is polled
const DefaultPollInterval = 2 * time.Second

// gasLimitBuffer is added to estimates, in percent
const gasLimitBuffer = 20

// Writer signs and submits governance transactions with the configured key
type Writer struct {
	conn    *Connection
	dao     common.Address
	account string
	key     *ecdsa.PrivateKey
	keyErr  error
	log     *slog.Logger

	daoABI    *bindings.NounsDAO
	streamABI *bindings.Stream

	PollInterval time.Duration
}

// NewWriter creates a transaction writer for the configured account
func NewWriter(conn *Connection, cfg *config.RuntimeConfig, log *slog.Logger) *Writer {
	w := &Writer{
		conn:         conn,
		dao:          common.HexToAddress(cfg.Network.DAOAddress),
		account:      cfg.Account.Address,
		log:          log.With("component", "writer"),
		daoABI:       bindings.NewNounsDAO(),
		streamABI:    bindings.NewStream(),
		PollInterval: DefaultPollInterval,
	}
	if cfg.Account.CanSign() {
		w.key, w.keyErr = crypto.HexToECDSA(strings.TrimPrefix(cfg.Account.PrivateKey, "0x"))
	} else if w.account != "" {
		w.keyErr = fmt.Errorf("account %s has no private key configured", w.account)
	}
	return w
}

var _ usecase.GovernanceWriter = (*Writer)(nil)

// Account returns the configured wallet address
func (w *Writer) Account() string {
	return w.account
}

// Queue submits DAO.queue(proposalId)
func (w *Writer) Queue(ctx context.Context, id string) <-chan models.TransactionStatus {
	return w.daoCall(ctx, id, w.daoABI.PackQueue)
}

// Execute submits DAO.execute(proposalId)
func (w *Writer) Execute(ctx context.Context, id string) <-chan models.TransactionStatus {
	return w.daoCall(ctx, id, w.daoABI.PackExecute)
}

// Cancel submits DAO.cancel(proposalId)
func (w *Writer) Cancel(ctx context.Context, id string) <-chan models.TransactionStatus {
	return w.daoCall(ctx, id, w.daoABI.PackCancel)
}

// CastVote submits castVote, or castVoteWithReason when a reason is given
func (w *Writer) CastVote(ctx context.Context, id string, support models.Support, reason string) <-chan models.TransactionStatus {
	pid, err := bindings.ProposalID(id)
	if err != nil {
		return failed(err)
	}
	var data []byte
	if reason == "" {
		data = w.daoABI.PackCastVote(pid, uint8(support))
	} else {
		data = w.daoABI.PackCastVoteWithReason(pid, uint8(support), reason)
	}
	return w.submit(ctx, w.dao, data)
}

// WithdrawFromStream submits Stream.withdraw(amount)
func (w *Writer) WithdrawFromStream(ctx context.Context, stream string, amount *big.Int) <-chan models.TransactionStatus {
	if !common.IsHexAddress(stream) {
		return failed(fmt.Errorf("invalid stream address %q", stream))
	}
	if amount == nil || amount.Sign() <= 0 {
		return failed(errors.New("withdraw amount must be positive"))
	}
	return w.submit(ctx, common.HexToAddress(stream), w.streamABI.PackWithdraw(amount))
}

func (w *Writer) daoCall(ctx context.Context, id string, pack func(*big.Int) []byte) <-chan models.TransactionStatus {
	pid, err := bindings.ProposalID(id)
	if err != nil {
		return failed(err)
	}
	return w.submit(ctx, w.dao, pack(pid))
}

// submit sends the transaction and watches it until it is mined. The
// channel is buffered for every status a single attempt can produce, so
// the watcher never blocks on a reader that has gone away.
func (w *Writer) submit(ctx context.Context, to common.Address, data []byte) <-chan models.TransactionStatus {
	updates := make(chan models.TransactionStatus, 2)
	go func() {
		defer close(updates)

		tx, err := w.send(ctx, to, data)
		if err != nil {
			w.log.Debug("transaction not sent", "to", to.Hex(), "error", err)
			updates <- models.TransactionStatus{Status: models.TxStateException, ErrorMessage: err.Error()}
			return
		}

		hash := tx.Hash().Hex()
		w.log.Info("transaction sent", "hash", hash, "to", to.Hex())
		updates <- models.TransactionStatus{Status: models.TxStateMining, TxHash: hash}

		receipt, err := w.waitMined(ctx, tx.Hash())
		if err != nil {
			updates <- models.TransactionStatus{Status: models.TxStateException, TxHash: hash, ErrorMessage: err.Error()}
			return
		}

		status := models.TransactionStatus{Status: models.TxStateSuccess, TxHash: hash}
		if receipt.BlockNumber != nil {
			status.BlockNumber = receipt.BlockNumber.Uint64()
		}
		if receipt.Status == types.ReceiptStatusFailed {
			status.Status = models.TxStateFail
			status.ErrorMessage = "transaction reverted"
		}
		w.log.Info("transaction mined", "hash", hash, "status", status.Status, "block", status.BlockNumber)
		updates <- status
	}()
	return updates
}

// send builds, signs and broadcasts an EIP-1559 transaction
func (w *Writer) send(ctx context.Context, to common.Address, data []byte) (*types.Transaction, error) {
	if w.account == "" {
		return nil, errors.New("no account configured")
	}
	if w.keyErr != nil {
		return nil, w.keyErr
	}

	backend, err := w.conn.Backend(ctx)
	if err != nil {
		return nil, err
	}
	from := crypto.PubkeyToAddress(w.key.PublicKey)

	nonce, err := backend.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}
	tip, err := backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas tip: %w", err)
	}
	head, err := backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(baseFee(head), big.NewInt(2)))

	gas, err := backend.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        &to,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Data:      data,
	})
	if err != nil {
		return nil, err
	}
	gas += gas * gasLimitBuffer / 100

	chainID := new(big.Int).SetUint64(w.conn.ChainID())
	tx, err := types.SignTx(types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Data:      data,
	}), types.LatestSignerForChainID(chainID), w.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := backend.SendTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// waitMined polls for the receipt until it is available or ctx ends
func (w *Writer) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	backend, err := w.conn.Backend(ctx)
	if err != nil {
		return nil, err
	}

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		receipt, err := backend.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("failed to get transaction receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func baseFee(head *types.Header) *big.Int {
	if head == nil || head.BaseFee == nil {
		return new(big.Int)
	}
	return head.BaseFee
}

// failed returns a closed channel carrying a single exception
func failed(err error) <-chan models.TransactionStatus {
	updates := make(chan models.TransactionStatus, 1)
	updates <- models.TransactionStatus{Status: models.TxStateException, ErrorMessage: err.Error()}
	close(updates)
	return updates
}
