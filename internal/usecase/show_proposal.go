package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/trebuchet-org/nounsgov/internal/domain"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// ShowProposalParams contains parameters for loading the vote page
type ShowProposalParams struct {
	ProposalID string
	Account    string
	Now        time.Time
}

// ProposalView is everything the vote page renders for one proposal
type ProposalView struct {
	Proposal         *models.Proposal            `json:"proposal" yaml:"proposal"`
	Versions         []models.ProposalVersion    `json:"versions" yaml:"versions"`
	DynamicQuorum    *models.DynamicQuorumInfo   `json:"dynamicQuorum,omitempty" yaml:"dynamicQuorum,omitempty"`
	UsesStaticQuorum bool                        `json:"usesStaticQuorum" yaml:"usesStaticQuorum"`
	IsV2Prop         bool                        `json:"isV2Prop" yaml:"isV2Prop"`
	CurrentQuorum    *uint64                     `json:"currentQuorum,omitempty" yaml:"currentQuorum,omitempty"`
	CurrentBlock     *uint64                     `json:"currentBlock,omitempty" yaml:"currentBlock,omitempty"`
	Account          string                      `json:"account,omitempty" yaml:"account,omitempty"`
	AvailableVotes   uint64                      `json:"availableVotes" yaml:"availableVotes"`
	Votes            []models.Vote               `json:"votes" yaml:"votes"`
	DelegateVotes    []models.DelegateVote       `json:"delegateVotes" yaml:"delegateVotes"`
	ForNouns         []string                    `json:"forNouns" yaml:"forNouns"`
	AgainstNouns     []string                    `json:"againstNouns" yaml:"againstNouns"`
	AbstainNouns     []string                    `json:"abstainNouns" yaml:"abstainNouns"`
	Tally            domain.VoteTally            `json:"tally" yaml:"tally"`
	Actions          domain.ProposalActions      `json:"actions" yaml:"actions"`
	Window           domain.VotingWindow         `json:"window" yaml:"window"`
	StreamOffers     []models.StreamWithdrawInfo `json:"streamOffers,omitempty" yaml:"streamOffers,omitempty"`
	FetchedAt        time.Time                   `json:"fetchedAt" yaml:"fetchedAt"`
}

// Threshold is the quorum shown on the page: the live dynamic quorum for V2
// proposals, the proposal's static quorum otherwise.
func (v *ProposalView) Threshold() uint64 {
	if v.IsV2Prop && v.CurrentQuorum != nil {
		return *v.CurrentQuorum
	}
	if v.Proposal == nil {
		return 0
	}
	return v.Proposal.QuorumVotes
}

// NounsFor returns the token ids attributed to support
func (v *ProposalView) NounsFor(support models.Support) []string {
	switch support {
	case models.SupportFor:
		return v.ForNouns
	case models.SupportAgainst:
		return v.AgainstNouns
	default:
		return v.AbstainNouns
	}
}

// ShowProposal loads and derives the vote page for one proposal
type ShowProposal struct {
	repo   ProposalRepository
	reader GovernanceReader
	sink   ProgressSink
	log    *slog.Logger
}

// NewShowProposal creates a new ShowProposal use case
func NewShowProposal(repo ProposalRepository, reader GovernanceReader, sink ProgressSink, log *slog.Logger) *ShowProposal {
	return &ShowProposal{
		repo:   repo,
		reader: reader,
		sink:   sink,
		log:    log.With("component", "ShowProposal"),
	}
}

// Run fetches the proposal and everything derived from it. Any subgraph
// failure aborts with domain.ErrFetchFailed; on-chain reads degrade to
// missing values.
func (uc *ShowProposal) Run(ctx context.Context, params ShowProposalParams) (*ProposalView, error) {
	if err := domain.ValidateProposalID(params.ProposalID); err != nil {
		return nil, err
	}
	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: fmt.Sprintf("Loading proposal %s", params.ProposalID),
		Spinner: true,
	})
	defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "loaded"})

	view := &ProposalView{Account: params.Account, FetchedAt: now}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := loadProposal(gctx, uc.repo, uc.reader, uc.log, params.ProposalID)
		view.Proposal = p
		return err
	})
	g.Go(func() error {
		versions, err := uc.repo.GetProposalVersions(gctx, params.ProposalID)
		if err != nil {
			return fmt.Errorf("%w: proposal versions: %w", domain.ErrFetchFailed, err)
		}
		view.Versions = versions
		return nil
	})
	g.Go(func() error {
		dq, err := uc.repo.GetDynamicQuorumInfo(gctx, params.ProposalID)
		if err != nil {
			return fmt.Errorf("%w: dynamic quorum: %w", domain.ErrFetchFailed, err)
		}
		view.DynamicQuorum = dq
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	view.UsesStaticQuorum = view.DynamicQuorum.UsesStaticQuorum()
	view.IsV2Prop = view.DynamicQuorum.IsV2Prop()

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "votes", Message: "Loading votes", Spinner: true})
	votes, err := uc.repo.GetVotes(ctx, params.ProposalID)
	if err != nil {
		return nil, fmt.Errorf("%w: votes: %w", domain.ErrFetchFailed, err)
	}
	view.Votes = votes

	var delegates []models.Delegate
	if len(votes) > 0 {
		delegates, err = uc.repo.GetDelegateSnapshot(ctx, domain.VoterIDs(votes), view.Proposal.CreatedBlock)
		if err != nil {
			return nil, fmt.Errorf("%w: delegate snapshot: %w", domain.ErrFetchFailed, err)
		}
	}
	view.DelegateVotes = domain.GroupVotesByDelegate(votes, delegates)
	view.ForNouns = domain.NounVotes(view.DelegateVotes, models.SupportFor)
	view.AgainstNouns = domain.NounVotes(view.DelegateVotes, models.SupportAgainst)
	view.AbstainNouns = domain.NounVotes(view.DelegateVotes, models.SupportAbstain)

	uc.readChainState(ctx, view, params.Account)

	view.Tally = domain.TallyVotes(view.Proposal)
	view.Actions = domain.ResolveActions(view.Proposal, params.Account, now)
	view.Window = domain.EstimateVotingWindow(view.Proposal, view.CurrentBlock, now)
	view.StreamOffers = domain.StreamWithdrawOffers(view.Proposal, params.Account)

	return view, nil
}

// readChainState loads the block number, live quorum and voting power in
// parallel. Failures leave the corresponding field unset.
func (uc *ShowProposal) readChainState(ctx context.Context, view *ProposalView, account string) {
	var g errgroup.Group

	g.Go(func() error {
		block, err := uc.reader.BlockNumber(ctx)
		if err != nil {
			uc.log.Warn("failed to read current block", "error", err)
			return nil
		}
		view.CurrentBlock = &block
		return nil
	})

	if !view.UsesStaticQuorum {
		g.Go(func() error {
			quorum, err := uc.reader.QuorumVotes(ctx, view.Proposal.ID)
			if err != nil {
				uc.log.Warn("failed to read current quorum", "proposal", view.Proposal.ID, "error", err)
				return nil
			}
			view.CurrentQuorum = &quorum
			return nil
		})
	}

	if account != "" {
		g.Go(func() error {
			votes, err := uc.reader.PriorVotes(ctx, account, view.Proposal.CreatedBlock)
			if err != nil {
				uc.log.Warn("failed to read voting power", "account", account, "error", err)
				return nil
			}
			view.AvailableVotes = votes
			return nil
		})
	}

	_ = g.Wait()
}

// loadProposal fetches the indexed proposal and overlays the authoritative
// on-chain state. A failed state read keeps the indexed status.
func loadProposal(ctx context.Context, repo ProposalRepository, reader GovernanceReader, log *slog.Logger, id string) (*models.Proposal, error) {
	p, err := repo.GetProposal(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: proposal %s: %w", domain.ErrFetchFailed, id, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: proposal %s: %w", domain.ErrFetchFailed, id, domain.ErrNotFound)
	}

	state, err := reader.ProposalState(ctx, id)
	if err != nil {
		log.Warn("failed to read on-chain state, using indexed status", "proposal", id, "error", err)
		return p, nil
	}
	if state != p.Status {
		log.Debug("overlaying on-chain state", "proposal", id, "indexed", p.Status, "onchain", state)
	}
	p.Status = state
	return p, nil
}
