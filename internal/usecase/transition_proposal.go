package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/trebuchet-org/nounsgov/internal/domain"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

// TransitionProposalParams contains parameters for queueing, executing or
// canceling a proposal
type TransitionProposalParams struct {
	ProposalID  string
	Action      domain.Action
	SkipConfirm bool
	Now         time.Time
}

// TransactionResult is the outcome of a submitted wallet transaction
type TransactionResult struct {
	Action   domain.Action            `json:"action" yaml:"action"`
	Proposal *models.Proposal         `json:"proposal,omitempty" yaml:"proposal,omitempty"`
	Amount   *big.Int                 `json:"amount,omitempty" yaml:"amount,omitempty"`
	Status   models.TransactionStatus `json:"status" yaml:"status"`
	Aborted  bool                     `json:"aborted,omitempty" yaml:"aborted,omitempty"`
}

// Succeeded reports whether the transaction was mined successfully
func (r *TransactionResult) Succeeded() bool {
	return r != nil && r.Status.Status == models.TxStateSuccess
}

// TransitionProposal moves a proposal forward (queue, execute) or cancels it
type TransitionProposal struct {
	repo       ProposalRepository
	reader     GovernanceReader
	writer     GovernanceWriter
	reconciler *TxReconciler
	confirmer  Confirmer
	sink       ProgressSink
	log        *slog.Logger
}

// NewTransitionProposal creates a new TransitionProposal use case
func NewTransitionProposal(
	repo ProposalRepository,
	reader GovernanceReader,
	writer GovernanceWriter,
	reconciler *TxReconciler,
	confirmer Confirmer,
	sink ProgressSink,
	log *slog.Logger,
) *TransitionProposal {
	return &TransitionProposal{
		repo:       repo,
		reader:     reader,
		writer:     writer,
		reconciler: reconciler,
		confirmer:  confirmer,
		sink:       sink,
		log:        log.With("component", "TransitionProposal"),
	}
}

// Run checks that the action is available for the proposal and the
// configured account, then submits it and waits for a final status.
func (uc *TransitionProposal) Run(ctx context.Context, params TransitionProposalParams) (*TransactionResult, error) {
	if err := domain.ValidateProposalID(params.ProposalID); err != nil {
		return nil, err
	}
	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	p, err := loadProposal(ctx, uc.repo, uc.reader, uc.log, params.ProposalID)
	if err != nil {
		return nil, err
	}

	account := uc.writer.Account()
	if account == "" {
		return nil, domain.ErrNoAccount
	}
	if err := checkTransition(p, params.Action, account, now); err != nil {
		return nil, err
	}

	result := &TransactionResult{Action: params.Action, Proposal: p}
	if !params.SkipConfirm {
		ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("%s proposal %s: %s?", params.Action.Label(), p.ID, p.Title))
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Aborted = true
			result.Status = models.TransactionStatus{Status: models.TxStateNone}
			return result, nil
		}
	}

	uc.reconciler.Track(params.Action, TrackOptions{
		OnPending: pendingProgress(ctx, uc.sink, fmt.Sprintf("Waiting for %s transaction", params.Action.Verb())),
	})

	var updates <-chan models.TransactionStatus
	switch params.Action {
	case domain.ActionQueue:
		updates = uc.writer.Queue(ctx, p.ID)
	case domain.ActionExecute:
		updates = uc.writer.Execute(ctx, p.ID)
	case domain.ActionCancel:
		updates = uc.writer.Cancel(ctx, p.ID)
	}

	result.Status = uc.reconciler.Await(ctx, params.Action, updates)
	uc.log.Debug("transition settled", "proposal", p.ID, "action", params.Action, "status", result.Status.Status, "tx", result.Status.TxHash)
	if err := ctx.Err(); err != nil && !result.Status.Status.IsFinal() {
		return result, err
	}
	return result, nil
}

// checkTransition returns an ActionUnavailableErr when account may not take
// action on p at now.
func checkTransition(p *models.Proposal, action domain.Action, account string, now time.Time) error {
	unavailable := func(reason string) error {
		return domain.ActionUnavailableErr{Action: action, ProposalID: p.ID, Reason: reason}
	}

	switch action {
	case domain.ActionQueue, domain.ActionExecute:
		if !domain.IsAwaitingStateChange(p, now) {
			if p.Status == models.ProposalStateQueued {
				return unavailable("eta has not been reached")
			}
			return unavailable(fmt.Sprintf("proposal is %s", p.Status))
		}
		next, ok := domain.MoveStateAction(p)
		if !ok || next != action {
			return unavailable(fmt.Sprintf("proposal is %s, the next step is %s", p.Status, next.Verb()))
		}
		return nil
	case domain.ActionCancel:
		if !domain.IsProposer(p, account) {
			return unavailable("only the proposer can cancel")
		}
		if _, ok := domain.DestructiveStateAction(p, account); !ok {
			return unavailable(fmt.Sprintf("proposal is %s", p.Status))
		}
		return nil
	default:
		return unavailable("not a proposal transition")
	}
}

// pendingProgress maps the reconciler's pending flag onto the spinner
func pendingProgress(ctx context.Context, sink ProgressSink, message string) func(bool) {
	return func(pending bool) {
		if pending {
			sink.OnProgress(ctx, ProgressEvent{Stage: "mining", Message: message, Spinner: true})
			return
		}
		sink.OnProgress(ctx, ProgressEvent{Stage: "settled"})
	}
}
