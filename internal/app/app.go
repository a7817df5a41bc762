package app

import (
	"log/slog"

	"github.com/trebuchet-org/nounsgov/internal/config"
	"github.com/trebuchet-org/nounsgov/internal/i18n"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger
	Locale *i18n.Locale

	// Use cases
	ShowProposal       *usecase.ShowProposal
	ListProposals      *usecase.ListProposals
	TransitionProposal *usecase.TransitionProposal
	CastVote           *usecase.CastVote
	WithdrawStream     *usecase.WithdrawStream
	ListNetworks       *usecase.ListNetworks
	ShowConfig         *usecase.ShowConfig

	// Adapters (needed by the interactive vote page, which reports through
	// its own notifier and progress sink)
	Repository usecase.ProposalRepository
	Reader     usecase.GovernanceReader
	Writer     usecase.GovernanceWriter
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	locale *i18n.Locale,
	showProposal *usecase.ShowProposal,
	listProposals *usecase.ListProposals,
	transitionProposal *usecase.TransitionProposal,
	castVote *usecase.CastVote,
	withdrawStream *usecase.WithdrawStream,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	repository usecase.ProposalRepository,
	reader usecase.GovernanceReader,
	writer usecase.GovernanceWriter,
) (*App, error) {
	return &App{
		Config:             cfg,
		Log:                log,
		Locale:             locale,
		ShowProposal:       showProposal,
		ListProposals:      listProposals,
		TransitionProposal: transitionProposal,
		CastVote:           castVote,
		WithdrawStream:     withdrawStream,
		ListNetworks:       listNetworks,
		ShowConfig:         showConfig,
		Repository:         repository,
		Reader:             reader,
		Writer:             writer,
	}, nil
}
