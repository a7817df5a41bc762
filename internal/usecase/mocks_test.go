package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"strings"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// MockProposalRepository is a mock implementation of ProposalRepository
type MockProposalRepository struct {
	mock.Mock
}

func (m *MockProposalRepository) GetProposal(ctx context.Context, id string) (*models.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

func (m *MockProposalRepository) GetProposalVersions(ctx context.Context, id string) ([]models.ProposalVersion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProposalVersion), args.Error(1)
}

func (m *MockProposalRepository) GetDynamicQuorumInfo(ctx context.Context, id string) (*models.DynamicQuorumInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DynamicQuorumInfo), args.Error(1)
}

func (m *MockProposalRepository) GetVotes(ctx context.Context, proposalID string) ([]models.Vote, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vote), args.Error(1)
}

func (m *MockProposalRepository) GetDelegateSnapshot(ctx context.Context, voterIDs []string, block uint64) ([]models.Delegate, error) {
	args := m.Called(ctx, voterIDs, block)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Delegate), args.Error(1)
}

func (m *MockProposalRepository) ListProposals(ctx context.Context, limit int) ([]models.ProposalSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProposalSummary), args.Error(1)
}

// MockGovernanceReader is a mock implementation of GovernanceReader
type MockGovernanceReader struct {
	mock.Mock
}

func (m *MockGovernanceReader) BlockNumber(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockGovernanceReader) ProposalState(ctx context.Context, id string) (models.ProposalState, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ProposalState), args.Error(1)
}

func (m *MockGovernanceReader) QuorumVotes(ctx context.Context, id string) (uint64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockGovernanceReader) PriorVotes(ctx context.Context, account string, block uint64) (uint64, error) {
	args := m.Called(ctx, account, block)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockGovernanceReader) StreamBalance(ctx context.Context, stream, account string) (*big.Int, error) {
	args := m.Called(ctx, stream, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// MockGovernanceWriter is a mock implementation of GovernanceWriter. Each
// submit call replays the statuses registered for it.
type MockGovernanceWriter struct {
	mock.Mock
	account string
}

func replay(statuses ...models.TransactionStatus) <-chan models.TransactionStatus {
	ch := make(chan models.TransactionStatus, len(statuses))
	for _, s := range statuses {
		ch <- s
	}
	close(ch)
	return ch
}

func (m *MockGovernanceWriter) Account() string {
	return m.account
}

func (m *MockGovernanceWriter) Queue(ctx context.Context, id string) <-chan models.TransactionStatus {
	args := m.Called(ctx, id)
	return replay(args.Get(0).([]models.TransactionStatus)...)
}

func (m *MockGovernanceWriter) Execute(ctx context.Context, id string) <-chan models.TransactionStatus {
	args := m.Called(ctx, id)
	return replay(args.Get(0).([]models.TransactionStatus)...)
}

func (m *MockGovernanceWriter) Cancel(ctx context.Context, id string) <-chan models.TransactionStatus {
	args := m.Called(ctx, id)
	return replay(args.Get(0).([]models.TransactionStatus)...)
}

func (m *MockGovernanceWriter) CastVote(ctx context.Context, id string, support models.Support, reason string) <-chan models.TransactionStatus {
	args := m.Called(ctx, id, support, reason)
	return replay(args.Get(0).([]models.TransactionStatus)...)
}

func (m *MockGovernanceWriter) WithdrawFromStream(ctx context.Context, stream string, amount *big.Int) <-chan models.TransactionStatus {
	args := m.Called(ctx, stream, amount)
	return replay(args.Get(0).([]models.TransactionStatus)...)
}

// stubConfirmer answers every prompt with the same value
type stubConfirmer struct {
	answer  bool
	prompts []string
}

func (c *stubConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	c.prompts = append(c.prompts, prompt)
	return c.answer, nil
}

// upperTranslator makes translated copy distinguishable from keys
type upperTranslator struct{}

func (upperTranslator) T(key string, args ...any) string {
	return strings.ToUpper(key)
}

func mined(hash string) []models.TransactionStatus {
	return []models.TransactionStatus{
		{Status: models.TxStateMining, TxHash: hash},
		{Status: models.TxStateSuccess, TxHash: hash, BlockNumber: 100},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ usecase.Confirmer = (*stubConfirmer)(nil)
