package models

import (
	"fmt"
	"strings"
	"time"
)

// ProposalState mirrors the DAO contract's ProposalState enum
type ProposalState int

const (
	ProposalStateUndetermined ProposalState = iota - 1
	ProposalStatePending
	ProposalStateActive
	ProposalStateCanceled
	ProposalStateDefeated
	ProposalStateSucceeded
	ProposalStateQueued
	ProposalStateExpired
	ProposalStateExecuted
	ProposalStateVetoed
	ProposalStateObjectionPeriod
	ProposalStateUpdatable
)

var proposalStateNames = map[ProposalState]string{
	ProposalStateUndetermined:    "undetermined",
	ProposalStatePending:         "pending",
	ProposalStateActive:          "active",
	ProposalStateCanceled:        "canceled",
	ProposalStateDefeated:        "defeated",
	ProposalStateSucceeded:       "succeeded",
	ProposalStateQueued:          "queued",
	ProposalStateExpired:         "expired",
	ProposalStateExecuted:        "executed",
	ProposalStateVetoed:          "vetoed",
	ProposalStateObjectionPeriod: "objection_period",
	ProposalStateUpdatable:       "updatable",
}

// String returns the lower snake case name of the state
func (s ProposalState) String() string {
	if name, ok := proposalStateNames[s]; ok {
		return name
	}
	return proposalStateNames[ProposalStateUndetermined]
}

// MarshalText implements encoding.TextMarshaler so JSON and YAML output
// carry the state name rather than the ordinal.
func (s ProposalState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseProposalState parses both contract ordinals ("5") and subgraph
// status names ("QUEUED", "OBJECTION_PERIOD").
func ParseProposalState(value string) (ProposalState, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "cancelled" {
		return ProposalStateCanceled, nil
	}
	for state, name := range proposalStateNames {
		if name == normalized {
			return state, nil
		}
	}
	var ordinal int
	if _, err := fmt.Sscanf(normalized, "%d", &ordinal); err == nil {
		state := ProposalState(ordinal)
		if _, ok := proposalStateNames[state]; ok {
			return state, nil
		}
	}
	return ProposalStateUndetermined, fmt.Errorf("unknown proposal state %q", value)
}

// ProposalDetail is a single call executed by a proposal
type ProposalDetail struct {
	Target      string `json:"target" yaml:"target"`
	Value       string `json:"value" yaml:"value"`
	FunctionSig string `json:"functionSig" yaml:"functionSig"`
	CallData    string `json:"callData" yaml:"callData"`
}

// Proposal is a read-only snapshot of a governance proposal
type Proposal struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Proposer    string        `json:"proposer" yaml:"proposer"`
	Signers     []string      `json:"signers,omitempty" yaml:"signers,omitempty"`
	Status      ProposalState `json:"status" yaml:"status"`

	// Voting window, in blocks
	CreatedBlock            uint64 `json:"createdBlock" yaml:"createdBlock"`
	StartBlock              uint64 `json:"startBlock" yaml:"startBlock"`
	EndBlock                uint64 `json:"endBlock" yaml:"endBlock"`
	ObjectionPeriodEndBlock uint64 `json:"objectionPeriodEndBlock,omitempty" yaml:"objectionPeriodEndBlock,omitempty"`
	UpdatePeriodEndBlock    uint64 `json:"updatePeriodEndBlock,omitempty" yaml:"updatePeriodEndBlock,omitempty"`

	// Vote counts
	ForCount     uint64 `json:"forCount" yaml:"forCount"`
	AgainstCount uint64 `json:"againstCount" yaml:"againstCount"`
	AbstainCount uint64 `json:"abstainCount" yaml:"abstainCount"`
	QuorumVotes  uint64 `json:"quorumVotes" yaml:"quorumVotes"`

	// ETA is set once the proposal is queued
	ETA *time.Time `json:"eta,omitempty" yaml:"eta,omitempty"`

	CreatedAt time.Time        `json:"createdAt" yaml:"createdAt"`
	Details   []ProposalDetail `json:"details" yaml:"details"`
}

// VotingEndBlock returns the last block votes are accepted, accounting for
// an objection period.
func (p *Proposal) VotingEndBlock() uint64 {
	if p.ObjectionPeriodEndBlock != 0 {
		return p.ObjectionPeriodEndBlock
	}
	return p.EndBlock
}

// ProposalVersion is one revision of an updatable proposal
type ProposalVersion struct {
	ID            string           `json:"id" yaml:"id"`
	VersionNumber int              `json:"versionNumber" yaml:"versionNumber"`
	CreatedAt     time.Time        `json:"createdAt" yaml:"createdAt"`
	UpdateMessage string           `json:"updateMessage,omitempty" yaml:"updateMessage,omitempty"`
	Title         string           `json:"title" yaml:"title"`
	Description   string           `json:"description" yaml:"description"`
	Details       []ProposalDetail `json:"details" yaml:"details"`
}

// DynamicQuorumInfo holds the dynamic quorum parameters a proposal was
// created with. A zero coefficient means the proposal uses the static quorum.
type DynamicQuorumInfo struct {
	QuorumCoefficient string `json:"quorumCoefficient" yaml:"quorumCoefficient"`
	MinQuorumVotesBPS uint64 `json:"minQuorumVotesBPS" yaml:"minQuorumVotesBPS"`
	MaxQuorumVotesBPS uint64 `json:"maxQuorumVotesBPS" yaml:"maxQuorumVotesBPS"`
	TotalSupply       uint64 `json:"totalSupply" yaml:"totalSupply"`
}

// UsesStaticQuorum reports whether the current quorum should not be read from
// the DAO contract.
func (d *DynamicQuorumInfo) UsesStaticQuorum() bool {
	return d == nil || d.QuorumCoefficient == "" || d.QuorumCoefficient == "0"
}

// IsV2Prop reports whether the proposal was created under dynamic quorum
func (d *DynamicQuorumInfo) IsV2Prop() bool {
	return !d.UsesStaticQuorum() && !strings.HasPrefix(d.QuorumCoefficient, "-")
}

// ProposalSummary is a compact proposal row used by listings
type ProposalSummary struct {
	ID           string        `json:"id" yaml:"id"`
	Title        string        `json:"title" yaml:"title"`
	Status       ProposalState `json:"status" yaml:"status"`
	Proposer     string        `json:"proposer" yaml:"proposer"`
	ForCount     uint64        `json:"forCount" yaml:"forCount"`
	AgainstCount uint64        `json:"againstCount" yaml:"againstCount"`
	AbstainCount uint64        `json:"abstainCount" yaml:"abstainCount"`
	CreatedBlock uint64        `json:"createdBlock" yaml:"createdBlock"`
}
