package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/nounsgov/internal/domain"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

// WithdrawStreamParams contains parameters for withdrawing from a stream
type WithdrawStreamParams struct {
	StreamAddress string
	// Amount defaults to the full withdrawable balance when nil
	Amount      *big.Int
	SkipConfirm bool
}

// WithdrawStream withdraws the configured account's balance from a payment
// stream created by an executed proposal
type WithdrawStream struct {
	reader     GovernanceReader
	writer     GovernanceWriter
	reconciler *TxReconciler
	confirmer  Confirmer
	sink       ProgressSink
	log        *slog.Logger
}

// NewWithdrawStream creates a new WithdrawStream use case
func NewWithdrawStream(
	reader GovernanceReader,
	writer GovernanceWriter,
	reconciler *TxReconciler,
	confirmer Confirmer,
	sink ProgressSink,
	log *slog.Logger,
) *WithdrawStream {
	return &WithdrawStream{
		reader:     reader,
		writer:     writer,
		reconciler: reconciler,
		confirmer:  confirmer,
		sink:       sink,
		log:        log.With("component", "WithdrawStream"),
	}
}

// Run checks the withdrawable balance and submits the withdrawal
func (uc *WithdrawStream) Run(ctx context.Context, params WithdrawStreamParams) (*TransactionResult, error) {
	if !common.IsHexAddress(params.StreamAddress) {
		return nil, fmt.Errorf("invalid stream address %q", params.StreamAddress)
	}
	account := uc.writer.Account()
	if account == "" {
		return nil, domain.ErrNoAccount
	}

	unavailable := func(reason string) error {
		return domain.ActionUnavailableErr{Action: domain.ActionWithdraw, Subject: "stream " + params.StreamAddress, Reason: reason}
	}

	balance, err := uc.reader.StreamBalance(ctx, params.StreamAddress, account)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream balance: %w", err)
	}
	amount := params.Amount
	if amount == nil {
		amount = balance
	}
	switch {
	case balance.Sign() == 0:
		return nil, unavailable("nothing to withdraw")
	case amount.Sign() <= 0:
		return nil, unavailable("amount must be positive")
	case amount.Cmp(balance) > 0:
		return nil, unavailable(fmt.Sprintf("amount %s exceeds balance %s", amount, balance))
	}

	result := &TransactionResult{Action: domain.ActionWithdraw, Amount: amount}
	if !params.SkipConfirm {
		ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Withdraw %s from stream %s", amount, params.StreamAddress))
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Aborted = true
			result.Status = models.TransactionStatus{Status: models.TxStateNone}
			return result, nil
		}
	}

	uc.reconciler.Track(domain.ActionWithdraw, TrackOptions{
		ErrorMessage: WalletErrorMessage,
		OnPending:    pendingProgress(ctx, uc.sink, "Waiting for withdrawal transaction"),
	})
	updates := uc.writer.WithdrawFromStream(ctx, params.StreamAddress, amount)
	result.Status = uc.reconciler.Await(ctx, domain.ActionWithdraw, updates)
	if err := ctx.Err(); err != nil && !result.Status.Status.IsFinal() {
		return result, err
	}
	return result, nil
}
