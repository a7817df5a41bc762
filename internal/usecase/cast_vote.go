package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/trebuchet-org/nounsgov/internal/domain"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

// CastVoteParams contains parameters for voting on a proposal
type CastVoteParams struct {
	ProposalID  string
	Support     models.Support
	Reason      string
	SkipConfirm bool
}

// CastVote submits a vote with the configured account
type CastVote struct {
	repo       ProposalRepository
	reader     GovernanceReader
	writer     GovernanceWriter
	reconciler *TxReconciler
	confirmer  Confirmer
	sink       ProgressSink
	log        *slog.Logger
}

// NewCastVote creates a new CastVote use case
func NewCastVote(
	repo ProposalRepository,
	reader GovernanceReader,
	writer GovernanceWriter,
	reconciler *TxReconciler,
	confirmer Confirmer,
	sink ProgressSink,
	log *slog.Logger,
) *CastVote {
	return &CastVote{
		repo:       repo,
		reader:     reader,
		writer:     writer,
		reconciler: reconciler,
		confirmer:  confirmer,
		sink:       sink,
		log:        log.With("component", "CastVote"),
	}
}

// Run votes on an active proposal. The voting power shown in the prompt is
// the account's votes as of the proposal's creation block.
func (uc *CastVote) Run(ctx context.Context, params CastVoteParams) (*TransactionResult, error) {
	if err := domain.ValidateProposalID(params.ProposalID); err != nil {
		return nil, err
	}
	account := uc.writer.Account()
	if account == "" {
		return nil, domain.ErrNoAccount
	}

	p, err := loadProposal(ctx, uc.repo, uc.reader, uc.log, params.ProposalID)
	if err != nil {
		return nil, err
	}
	if !domain.IsActiveForVoting(p) {
		return nil, domain.ActionUnavailableErr{
			Action:     domain.ActionVote,
			ProposalID: p.ID,
			Reason:     fmt.Sprintf("proposal is %s", p.Status),
		}
	}

	votes, err := uc.reader.PriorVotes(ctx, account, p.CreatedBlock)
	if err != nil {
		return nil, fmt.Errorf("failed to read voting power: %w", err)
	}
	if votes == 0 {
		return nil, domain.ActionUnavailableErr{
			Action:     domain.ActionVote,
			ProposalID: p.ID,
			Reason:     fmt.Sprintf("%s had no votes at block %d", account, p.CreatedBlock),
		}
	}

	result := &TransactionResult{Action: domain.ActionVote, Proposal: p}
	if !params.SkipConfirm {
		prompt := fmt.Sprintf("Cast %d vote(s) %s proposal %s", votes, supportPhrase(params.Support), p.ID)
		ok, err := uc.confirmer.Confirm(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Aborted = true
			result.Status = models.TransactionStatus{Status: models.TxStateNone}
			return result, nil
		}
	}

	uc.reconciler.Track(domain.ActionVote, TrackOptions{
		ErrorMessage: WalletErrorMessage,
		OnPending:    pendingProgress(ctx, uc.sink, "Waiting for vote transaction"),
	})
	updates := uc.writer.CastVote(ctx, p.ID, params.Support, strings.TrimSpace(params.Reason))
	result.Status = uc.reconciler.Await(ctx, domain.ActionVote, updates)
	if err := ctx.Err(); err != nil && !result.Status.Status.IsFinal() {
		return result, err
	}
	return result, nil
}

func supportPhrase(s models.Support) string {
	switch s {
	case models.SupportFor:
		return "for"
	case models.SupportAgainst:
		return "against"
	default:
		return "to abstain on"
	}
}

// walletErrorPrefixes are stripped from RPC errors before they are shown
var walletErrorPrefixes = []string{
	"execution reverted: ",
	"VM Exception while processing transaction: revert ",
}

// WalletErrorMessage extracts the revert reason or wallet message from an
// exception. Unrecognized errors return "" so the generic copy is used.
func WalletErrorMessage(errorMessage string) string {
	msg := strings.TrimSpace(errorMessage)
	for _, prefix := range walletErrorPrefixes {
		if i := strings.Index(msg, prefix); i >= 0 {
			return strings.TrimSpace(msg[i+len(prefix):])
		}
	}
	switch {
	case strings.Contains(msg, "insufficient funds"):
		return "Insufficient funds for gas."
	case strings.Contains(msg, "nonce too low"), strings.Contains(msg, "replacement transaction underpriced"):
		return "A pending transaction from this account conflicts. Please wait and retry."
	default:
		return ""
	}
}
