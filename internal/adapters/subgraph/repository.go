package subgraph

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// maxPageSize is the largest `first` the hosted subgraphs accept
const maxPageSize = 1000

var _ usecase.ProposalRepository = (*Client)(nil)

// GetProposal returns the proposal or nil when the subgraph does not know it
func (c *Client) GetProposal(ctx context.Context, id string) (*models.Proposal, error) {
	var data struct {
		Proposal *rawProposal `json:"proposal"`
	}
	if err := c.query(ctx, "proposal", proposalQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Proposal == nil {
		return nil, nil
	}
	return toProposal(data.Proposal)
}

// GetProposalVersions returns all revisions of a proposal, oldest first
func (c *Client) GetProposalVersions(ctx context.Context, id string) ([]models.ProposalVersion, error) {
	var data struct {
		ProposalVersions []rawProposalVersion `json:"proposalVersions"`
	}
	if err := c.query(ctx, "proposalVersions", proposalVersionsQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}

	versions := make([]models.ProposalVersion, 0, len(data.ProposalVersions))
	for i, raw := range data.ProposalVersions {
		var p numParser
		version := models.ProposalVersion{
			ID:            raw.ID,
			VersionNumber: i + 1,
			CreatedAt:     p.unix("createdAt", raw.CreatedAt),
			UpdateMessage: raw.UpdateMessage,
			Title:         raw.Title,
			Description:   raw.Description,
			Details:       raw.details(),
		}
		if p.err != nil {
			return nil, fmt.Errorf("proposal version %s: %w", raw.ID, p.err)
		}
		versions = append(versions, version)
	}
	return versions, nil
}

// GetDynamicQuorumInfo returns the dynamic quorum parameters the proposal
// was created with. A missing proposal yields nil.
func (c *Client) GetDynamicQuorumInfo(ctx context.Context, id string) (*models.DynamicQuorumInfo, error) {
	var data struct {
		Proposal *rawDynamicQuorum `json:"proposal"`
	}
	if err := c.query(ctx, "propUsingDynamicQuorum", dynamicQuorumQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Proposal == nil {
		return nil, nil
	}

	var p numParser
	info := &models.DynamicQuorumInfo{
		QuorumCoefficient: data.Proposal.QuorumCoefficient,
		MinQuorumVotesBPS: uint64(max(data.Proposal.MinQuorumVotesBPS, 0)),
		MaxQuorumVotesBPS: uint64(max(data.Proposal.MaxQuorumVotesBPS, 0)),
		TotalSupply:       p.uint("totalSupply", data.Proposal.TotalSupply),
	}
	if p.err != nil {
		return nil, p.err
	}
	return info, nil
}

// GetVotes returns the non-zero votes cast on a proposal
func (c *Client) GetVotes(ctx context.Context, proposalID string) ([]models.Vote, error) {
	var data struct {
		Votes []rawVote `json:"votes"`
	}
	vars := map[string]any{"id": proposalID, "first": maxPageSize}
	if err := c.query(ctx, "proposalVotes", votesQuery, vars, &data); err != nil {
		return nil, err
	}

	var p numParser
	votes := lo.Map(data.Votes, func(raw rawVote, _ int) models.Vote {
		return models.Vote{
			Voter:           raw.Voter.ID,
			SupportDetailed: models.Support(raw.SupportDetailed),
			Votes:           p.uint("votes", raw.Votes),
			Reason:          lo.FromPtr(raw.Reason),
		}
	})
	if p.err != nil {
		return nil, p.err
	}
	return votes, nil
}

// GetDelegateSnapshot returns the tokens each delegate represented at block
func (c *Client) GetDelegateSnapshot(ctx context.Context, voterIDs []string, block uint64) ([]models.Delegate, error) {
	if len(voterIDs) == 0 {
		return nil, nil
	}

	var data struct {
		Delegates []rawDelegate `json:"delegates"`
	}
	vars := map[string]any{"ids": voterIDs, "block": block, "first": maxPageSize}
	if err := c.query(ctx, "delegateNounsAtBlock", delegatesQuery, vars, &data); err != nil {
		return nil, err
	}

	return lo.Map(data.Delegates, func(raw rawDelegate, _ int) models.Delegate {
		return models.Delegate{
			ID:               raw.ID,
			NounsRepresented: lo.Map(raw.NounsRepresented, func(n entityRef, _ int) string { return n.ID }),
		}
	}), nil
}

// ListProposals returns the most recently created proposals
func (c *Client) ListProposals(ctx context.Context, limit int) ([]models.ProposalSummary, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	var data struct {
		Proposals []rawProposalSummary `json:"proposals"`
	}
	if err := c.query(ctx, "proposals", proposalsQuery, map[string]any{"first": limit}, &data); err != nil {
		return nil, err
	}

	summaries := make([]models.ProposalSummary, 0, len(data.Proposals))
	for _, raw := range data.Proposals {
		var p numParser
		summary := models.ProposalSummary{
			ID:           raw.ID,
			Title:        raw.Title,
			Status:       parseStatus(raw.Status),
			Proposer:     raw.Proposer.ID,
			ForCount:     p.uint("forVotes", raw.ForVotes),
			AgainstCount: p.uint("againstVotes", raw.AgainstVotes),
			AbstainCount: p.uint("abstainVotes", raw.AbstainVotes),
			CreatedBlock: p.uint("createdBlock", raw.CreatedBlock),
		}
		if p.err != nil {
			return nil, fmt.Errorf("proposal %s: %w", raw.ID, p.err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func toProposal(raw *rawProposal) (*models.Proposal, error) {
	var p numParser
	proposal := &models.Proposal{
		ID:                      raw.ID,
		Title:                   raw.Title,
		Description:             raw.Description,
		Proposer:                raw.Proposer.ID,
		Signers:                 lo.Map(raw.Signers, func(s entityRef, _ int) string { return s.ID }),
		Status:                  parseStatus(raw.Status),
		CreatedBlock:            p.uint("createdBlock", raw.CreatedBlock),
		StartBlock:              p.uint("startBlock", raw.StartBlock),
		EndBlock:                p.uint("endBlock", raw.EndBlock),
		ObjectionPeriodEndBlock: p.uint("objectionPeriodEndBlock", raw.ObjectionPeriodEndBlock),
		UpdatePeriodEndBlock:    p.uint("updatePeriodEndBlock", raw.UpdatePeriodEndBlock),
		ForCount:                p.uint("forVotes", raw.ForVotes),
		AgainstCount:            p.uint("againstVotes", raw.AgainstVotes),
		AbstainCount:            p.uint("abstainVotes", raw.AbstainVotes),
		QuorumVotes:             p.uint("quorumVotes", raw.QuorumVotes),
		CreatedAt:               p.unix("createdTimestamp", raw.CreatedTimestamp),
		Details:                 raw.details(),
	}
	if raw.ExecutionETA != nil && *raw.ExecutionETA != "" {
		eta := p.unix("executionETA", *raw.ExecutionETA)
		proposal.ETA = &eta
	}
	if p.err != nil {
		return nil, fmt.Errorf("proposal %s: %w", raw.ID, p.err)
	}
	return proposal, nil
}

// details zips the parallel call arrays into proposal details
func (r rawCalls) details() []models.ProposalDetail {
	return lo.Map(r.Targets, func(target string, i int) models.ProposalDetail {
		value := "0"
		if i < len(r.Values) && r.Values[i] != "" {
			value = r.Values[i]
		}
		detail := models.ProposalDetail{Target: target, Value: value}
		if i < len(r.Signatures) {
			detail.FunctionSig = r.Signatures[i]
		}
		if i < len(r.Calldatas) {
			detail.CallData = r.Calldatas[i]
		}
		return detail
	})
}

func parseStatus(status string) models.ProposalState {
	state, err := models.ParseProposalState(status)
	if err != nil {
		return models.ProposalStateUndetermined
	}
	return state
}

// numParser converts subgraph BigInt strings and keeps the first failure
type numParser struct {
	err error
}

func (p *numParser) uint(field, value string) uint64 {
	value = strings.TrimSpace(value)
	if value == "" || p.err != nil {
		return 0
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		p.err = fmt.Errorf("invalid %s %q: %w", field, value, err)
		return 0
	}
	return n
}

func (p *numParser) unix(field, value string) time.Time {
	secs := p.uint(field, value)
	if secs == 0 {
		return time.Time{}
	}
	return time.Unix(int64(secs), 0).UTC()
}
