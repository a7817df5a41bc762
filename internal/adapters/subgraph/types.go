package subgraph

import (
	"encoding/json"
)

// graphQLRequest is the POST body sent to the subgraph
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLResponse is the envelope of every subgraph reply
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type entityRef struct {
	ID string `json:"id"`
}

// rawProposal mirrors the subgraph Proposal entity. BigInt fields arrive
// as decimal strings.
type rawProposal struct {
	ID                      string      `json:"id"`
	Title                   string      `json:"title"`
	Description             string      `json:"description"`
	Status                  string      `json:"status"`
	Proposer                entityRef   `json:"proposer"`
	Signers                 []entityRef `json:"signers"`
	CreatedBlock            string      `json:"createdBlock"`
	CreatedTimestamp        string      `json:"createdTimestamp"`
	StartBlock              string      `json:"startBlock"`
	EndBlock                string      `json:"endBlock"`
	ObjectionPeriodEndBlock string      `json:"objectionPeriodEndBlock"`
	UpdatePeriodEndBlock    string      `json:"updatePeriodEndBlock"`
	ForVotes                string      `json:"forVotes"`
	AgainstVotes            string      `json:"againstVotes"`
	AbstainVotes            string      `json:"abstainVotes"`
	QuorumVotes             string      `json:"quorumVotes"`
	ExecutionETA            *string     `json:"executionETA"`
	rawCalls
}

// rawCalls are the parallel call arrays shared by proposals and versions
type rawCalls struct {
	Targets    []string `json:"targets"`
	Values     []string `json:"values"`
	Signatures []string `json:"signatures"`
	Calldatas  []string `json:"calldatas"`
}

type rawProposalVersion struct {
	ID            string `json:"id"`
	CreatedAt     string `json:"createdAt"`
	UpdateMessage string `json:"updateMessage"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	rawCalls
}

type rawDynamicQuorum struct {
	QuorumCoefficient string `json:"quorumCoefficient"`
	MinQuorumVotesBPS int64  `json:"minQuorumVotesBPS"`
	MaxQuorumVotesBPS int64  `json:"maxQuorumVotesBPS"`
	TotalSupply       string `json:"totalSupply"`
}

type rawVote struct {
	SupportDetailed int       `json:"supportDetailed"`
	Votes           string    `json:"votes"`
	Reason          *string   `json:"reason"`
	Voter           entityRef `json:"voter"`
}

type rawDelegate struct {
	ID               string      `json:"id"`
	NounsRepresented []entityRef `json:"nounsRepresented"`
}

type rawProposalSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	Proposer     entityRef `json:"proposer"`
	ForVotes     string    `json:"forVotes"`
	AgainstVotes string    `json:"againstVotes"`
	AbstainVotes string    `json:"abstainVotes"`
	CreatedBlock string    `json:"createdBlock"`
}
