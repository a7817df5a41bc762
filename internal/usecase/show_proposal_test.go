package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/nounsgov/internal/adapters/progress"
	"github.com/trebuchet-org/nounsgov/internal/domain"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

const (
	voterA  = "0x00000000000000000000000000000000000000a1"
	voterB  = "0x00000000000000000000000000000000000000b2"
	account = "0x00000000000000000000000000000000000000c3"
)

func activeProposal() *models.Proposal {
	return &models.Proposal{
		ID:           "42",
		Title:        "Fund the thing",
		Proposer:     account,
		Status:       models.ProposalStateActive,
		CreatedBlock: 900,
		StartBlock:   950,
		EndBlock:     1100,
		ForCount:     3,
		AgainstCount: 1,
		QuorumVotes:  150,
	}
}

func TestShowProposal(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	setup := func() (*MockProposalRepository, *MockGovernanceReader) {
		repo := new(MockProposalRepository)
		reader := new(MockGovernanceReader)
		repo.On("GetProposal", mock.Anything, "42").Return(activeProposal(), nil)
		repo.On("GetProposalVersions", mock.Anything, "42").Return([]models.ProposalVersion{{ID: "42-1", VersionNumber: 1}}, nil)
		reader.On("ProposalState", mock.Anything, "42").Return(models.ProposalStateActive, nil)
		reader.On("BlockNumber", mock.Anything).Return(uint64(1000), nil)
		return repo, reader
	}

	t.Run("loads and derives the vote page", func(t *testing.T) {
		repo, reader := setup()
		repo.On("GetDynamicQuorumInfo", mock.Anything, "42").Return(&models.DynamicQuorumInfo{QuorumCoefficient: "1000000"}, nil)
		repo.On("GetVotes", mock.Anything, "42").Return([]models.Vote{
			{Voter: voterA, SupportDetailed: models.SupportFor, Votes: 3},
			{Voter: voterB, SupportDetailed: models.SupportAgainst, Votes: 1},
		}, nil)
		repo.On("GetDelegateSnapshot", mock.Anything, []string{voterA, voterB}, uint64(900)).Return([]models.Delegate{
			{ID: voterA, NounsRepresented: []string{"1", "2", "3"}},
			{ID: voterB, NounsRepresented: []string{"9"}},
		}, nil)
		reader.On("QuorumVotes", mock.Anything, "42").Return(uint64(210), nil)
		reader.On("PriorVotes", mock.Anything, account, uint64(900)).Return(uint64(4), nil)

		uc := usecase.NewShowProposal(repo, reader, progress.NewNopSink(), discardLogger())
		view, err := uc.Run(context.Background(), usecase.ShowProposalParams{ProposalID: "42", Account: account, Now: now})
		require.NoError(t, err)

		assert.Equal(t, "Fund the thing", view.Proposal.Title)
		assert.Len(t, view.Versions, 1)
		assert.True(t, view.IsV2Prop)
		assert.False(t, view.UsesStaticQuorum)
		require.NotNil(t, view.CurrentQuorum)
		assert.Equal(t, uint64(210), view.Threshold())
		require.NotNil(t, view.CurrentBlock)
		assert.Equal(t, uint64(1000), *view.CurrentBlock)
		assert.Equal(t, uint64(4), view.AvailableVotes)

		assert.Equal(t, []string{"1", "2", "3"}, view.ForNouns)
		assert.Equal(t, []string{"9"}, view.AgainstNouns)
		assert.Empty(t, view.AbstainNouns)
		assert.Equal(t, view.ForNouns, view.NounsFor(models.SupportFor))

		assert.InDelta(t, 75.0, view.Tally.ForPercentage, 0.001)
		assert.True(t, view.Actions.ActiveForVoting)
		assert.True(t, view.Actions.Cancellable)
		assert.Equal(t, "Cancel", view.Actions.DestructiveStateButtonLabel)

		require.True(t, view.Window.Known)
		assert.Equal(t, now.Add(-50*12*time.Second), view.Window.Start)
		assert.Equal(t, now.Add(100*12*time.Second), view.Window.End)
		assert.Equal(t, domain.WindowEnds, view.Window.Phase(now))

		repo.AssertExpectations(t)
		reader.AssertExpectations(t)
	})

	t.Run("static quorum skips the quorum read", func(t *testing.T) {
		repo, reader := setup()
		repo.On("GetDynamicQuorumInfo", mock.Anything, "42").Return(&models.DynamicQuorumInfo{QuorumCoefficient: "0"}, nil)
		repo.On("GetVotes", mock.Anything, "42").Return([]models.Vote{}, nil)

		uc := usecase.NewShowProposal(repo, reader, progress.NewNopSink(), discardLogger())
		view, err := uc.Run(context.Background(), usecase.ShowProposalParams{ProposalID: "42", Now: now})
		require.NoError(t, err)

		assert.True(t, view.UsesStaticQuorum)
		assert.Nil(t, view.CurrentQuorum)
		assert.Equal(t, uint64(150), view.Threshold())
		assert.Zero(t, view.AvailableVotes)
		assert.Empty(t, view.DelegateVotes)

		reader.AssertNotCalled(t, "QuorumVotes", mock.Anything, mock.Anything)
		reader.AssertNotCalled(t, "PriorVotes", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "GetDelegateSnapshot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("on-chain state overrides the indexed status", func(t *testing.T) {
		repo := new(MockProposalRepository)
		reader := new(MockGovernanceReader)
		repo.On("GetProposal", mock.Anything, "42").Return(activeProposal(), nil)
		repo.On("GetProposalVersions", mock.Anything, "42").Return([]models.ProposalVersion{}, nil)
		repo.On("GetDynamicQuorumInfo", mock.Anything, "42").Return(nil, nil)
		repo.On("GetVotes", mock.Anything, "42").Return([]models.Vote{}, nil)
		reader.On("ProposalState", mock.Anything, "42").Return(models.ProposalStateSucceeded, nil)
		reader.On("BlockNumber", mock.Anything).Return(uint64(1200), nil)

		uc := usecase.NewShowProposal(repo, reader, progress.NewNopSink(), discardLogger())
		view, err := uc.Run(context.Background(), usecase.ShowProposalParams{ProposalID: "42", Now: now})
		require.NoError(t, err)

		assert.Equal(t, models.ProposalStateSucceeded, view.Proposal.Status)
		assert.True(t, view.Actions.AwaitingStateChange)
		assert.Equal(t, "Queue", view.Actions.MoveStateButtonLabel)
		assert.Equal(t, domain.WindowEnded, view.Window.Phase(now))
	})

	t.Run("chain failures degrade to missing values", func(t *testing.T) {
		repo := new(MockProposalRepository)
		reader := new(MockGovernanceReader)
		repo.On("GetProposal", mock.Anything, "42").Return(activeProposal(), nil)
		repo.On("GetProposalVersions", mock.Anything, "42").Return([]models.ProposalVersion{}, nil)
		repo.On("GetDynamicQuorumInfo", mock.Anything, "42").Return(&models.DynamicQuorumInfo{QuorumCoefficient: "5"}, nil)
		repo.On("GetVotes", mock.Anything, "42").Return([]models.Vote{}, nil)
		reader.On("ProposalState", mock.Anything, "42").Return(models.ProposalStateUndetermined, errors.New("rpc down"))
		reader.On("BlockNumber", mock.Anything).Return(uint64(0), errors.New("rpc down"))
		reader.On("QuorumVotes", mock.Anything, "42").Return(uint64(0), errors.New("rpc down"))

		uc := usecase.NewShowProposal(repo, reader, progress.NewNopSink(), discardLogger())
		view, err := uc.Run(context.Background(), usecase.ShowProposalParams{ProposalID: "42", Now: now})
		require.NoError(t, err)

		assert.Equal(t, models.ProposalStateActive, view.Proposal.Status)
		assert.Nil(t, view.CurrentBlock)
		assert.Nil(t, view.CurrentQuorum)
		assert.False(t, view.Window.Known)
		assert.Equal(t, domain.WindowStarts, view.Window.Phase(now))
		assert.Equal(t, uint64(150), view.Threshold())
	})

	t.Run("subgraph failure is a fetch failure", func(t *testing.T) {
		repo := new(MockProposalRepository)
		reader := new(MockGovernanceReader)
		repo.On("GetProposal", mock.Anything, "42").Return(nil, errors.New("502 bad gateway"))
		repo.On("GetProposalVersions", mock.Anything, "42").Return([]models.ProposalVersion{}, nil).Maybe()
		repo.On("GetDynamicQuorumInfo", mock.Anything, "42").Return(nil, nil).Maybe()

		uc := usecase.NewShowProposal(repo, reader, progress.NewNopSink(), discardLogger())
		_, err := uc.Run(context.Background(), usecase.ShowProposalParams{ProposalID: "42", Now: now})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFetchFailed)
		assert.Contains(t, err.Error(), "502 bad gateway")
	})

	t.Run("missing proposal is not found", func(t *testing.T) {
		repo := new(MockProposalRepository)
		reader := new(MockGovernanceReader)
		repo.On("GetProposal", mock.Anything, "7").Return(nil, nil)
		repo.On("GetProposalVersions", mock.Anything, "7").Return([]models.ProposalVersion{}, nil).Maybe()
		repo.On("GetDynamicQuorumInfo", mock.Anything, "7").Return(nil, nil).Maybe()

		uc := usecase.NewShowProposal(repo, reader, progress.NewNopSink(), discardLogger())
		_, err := uc.Run(context.Background(), usecase.ShowProposalParams{ProposalID: "7", Now: now})
		assert.ErrorIs(t, err, domain.ErrFetchFailed)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("vote failure is a fetch failure", func(t *testing.T) {
		repo, reader := setup()
		repo.On("GetDynamicQuorumInfo", mock.Anything, "42").Return(nil, nil)
		repo.On("GetVotes", mock.Anything, "42").Return(nil, errors.New("timeout"))

		uc := usecase.NewShowProposal(repo, reader, progress.NewNopSink(), discardLogger())
		_, err := uc.Run(context.Background(), usecase.ShowProposalParams{ProposalID: "42", Now: now})
		assert.ErrorIs(t, err, domain.ErrFetchFailed)
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		uc := usecase.NewShowProposal(new(MockProposalRepository), new(MockGovernanceReader), progress.NewNopSink(), discardLogger())
		_, err := uc.Run(context.Background(), usecase.ShowProposalParams{ProposalID: "abc"})
		assert.ErrorIs(t, err, domain.ErrInvalidProposalID)
	})
}
