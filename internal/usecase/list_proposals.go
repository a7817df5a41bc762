package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/samber/lo"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

// DefaultProposalListLimit is the page size used when none is given
const DefaultProposalListLimit = 20

// ListProposalsParams contains parameters for listing proposals
type ListProposalsParams struct {
	// Status filters the fetched page; nil keeps everything
	Status *models.ProposalState
	Limit  int
}

// ProposalListResult contains the result of listing proposals
type ProposalListResult struct {
	Proposals []models.ProposalSummary     `json:"proposals" yaml:"proposals"`
	ByStatus  map[models.ProposalState]int `json:"byStatus" yaml:"byStatus"`
}

// ListProposals is the use case for listing recent proposals
type ListProposals struct {
	repo     ProposalRepository
	selector ProposalSelector
	sink     ProgressSink
}

// NewListProposals creates a new ListProposals use case
func NewListProposals(repo ProposalRepository, selector ProposalSelector, sink ProgressSink) *ListProposals {
	return &ListProposals{
		repo:     repo,
		selector: selector,
		sink:     sink,
	}
}

// Run fetches the most recent proposals, newest first
func (uc *ListProposals) Run(ctx context.Context, params ListProposalsParams) (*ProposalListResult, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultProposalListLimit
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading proposals from subgraph",
		Spinner: true,
	})

	proposals, err := uc.repo.ListProposals(ctx, limit)
	if err != nil {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "failed"})
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	if params.Status != nil {
		proposals = lo.Filter(proposals, func(p models.ProposalSummary, _ int) bool {
			return p.Status == *params.Status
		})
	}
	sortProposals(proposals)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(proposals),
		Total:   len(proposals),
		Message: "Proposals loaded",
	})

	return &ProposalListResult{
		Proposals: proposals,
		ByStatus: lo.CountValuesBy(proposals, func(p models.ProposalSummary) models.ProposalState {
			return p.Status
		}),
	}, nil
}

// Select lists proposals and lets the user pick one
func (uc *ListProposals) Select(ctx context.Context, params ListProposalsParams) (*models.ProposalSummary, error) {
	result, err := uc.Run(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(result.Proposals) == 0 {
		return nil, fmt.Errorf("no proposals found")
	}
	return uc.selector.SelectProposal(ctx, result.Proposals, "Select a proposal")
}

// sortProposals orders proposals by numeric id, newest first
func sortProposals(proposals []models.ProposalSummary) {
	sort.SliceStable(proposals, func(i, j int) bool {
		a, errA := strconv.ParseUint(proposals[i].ID, 10, 64)
		b, errB := strconv.ParseUint(proposals[j].ID, 10, 64)
		if errA != nil || errB != nil {
			return proposals[i].ID > proposals[j].ID
		}
		return a > b
	})
}
