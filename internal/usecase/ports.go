package usecase

import (
	"context"
	"math/big"

	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

// ProposalRepository reads indexed governance data from the subgraph
type ProposalRepository interface {
	GetProposal(ctx context.Context, id string) (*models.Proposal, error)
	GetProposalVersions(ctx context.Context, id string) ([]models.ProposalVersion, error)
	GetDynamicQuorumInfo(ctx context.Context, id string) (*models.DynamicQuorumInfo, error)
	GetVotes(ctx context.Context, proposalID string) ([]models.Vote, error)
	GetDelegateSnapshot(ctx context.Context, voterIDs []string, block uint64) ([]models.Delegate, error)
	ListProposals(ctx context.Context, limit int) ([]models.ProposalSummary, error)
}

// GovernanceReader reads live state from the DAO, token and stream contracts
type GovernanceReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	ProposalState(ctx context.Context, id string) (models.ProposalState, error)
	QuorumVotes(ctx context.Context, id string) (uint64, error)
	PriorVotes(ctx context.Context, account string, block uint64) (uint64, error)
	StreamBalance(ctx context.Context, stream, account string) (*big.Int, error)
}

// GovernanceWriter submits wallet transactions. Every call returns a channel
// of status updates that is closed once a final state has been sent.
// Submission errors arrive as an Exception status, never as a return value.
type GovernanceWriter interface {
	Account() string
	Queue(ctx context.Context, id string) <-chan models.TransactionStatus
	Execute(ctx context.Context, id string) <-chan models.TransactionStatus
	Cancel(ctx context.Context, id string) <-chan models.TransactionStatus
	CastVote(ctx context.Context, id string, support models.Support, reason string) <-chan models.TransactionStatus
	WithdrawFromStream(ctx context.Context, stream string, amount *big.Int) <-chan models.TransactionStatus
}

// NetworkProber asks an RPC endpoint which chain it serves
type NetworkProber interface {
	ProbeChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// Notification is a modal message raised when a transaction settles
type Notification struct {
	Title   string
	Message string
	State   models.TxState
}

// Notifier shows notifications to the user
type Notifier interface {
	Notify(n Notification)
}

// Translator looks up user facing copy in the active locale
type Translator interface {
	T(key string, args ...any) string
}

// Confirmer asks the user to approve a transaction before it is sent
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ProposalSelector handles interactive selection of proposals
type ProposalSelector interface {
	SelectProposal(ctx context.Context, proposals []models.ProposalSummary, prompt string) (*models.ProposalSummary, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
