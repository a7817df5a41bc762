package adapters

import (
	"os"

	"github.com/google/wire"
	"github.com/trebuchet-org/nounsgov/internal/adapters/blockchain"
	"github.com/trebuchet-org/nounsgov/internal/adapters/interactive"
	"github.com/trebuchet-org/nounsgov/internal/adapters/notify"
	"github.com/trebuchet-org/nounsgov/internal/adapters/progress"
	"github.com/trebuchet-org/nounsgov/internal/adapters/subgraph"
	"github.com/trebuchet-org/nounsgov/internal/config"
	"github.com/trebuchet-org/nounsgov/internal/i18n"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// ProvideLocale resolves the configured locale, falling back to en-US
func ProvideLocale(cfg *config.RuntimeConfig) *i18n.Locale {
	return i18n.MatchLocale(cfg.Locale)
}

// ProvideNotifier shows transaction notifications on stderr so stdout stays
// parseable for --json and --yaml
func ProvideNotifier() *notify.ConsoleNotifier {
	return notify.NewConsoleNotifier(os.Stderr)
}

// SubgraphSet provides the indexed governance data source
var SubgraphSet = wire.NewSet(
	subgraph.NewClientFromConfig,
	wire.Bind(new(usecase.ProposalRepository), new(*subgraph.Client)),
)

// BlockchainSet provides contract reads and wallet transactions
var BlockchainSet = wire.NewSet(
	blockchain.NewConnection,
	blockchain.NewReader,
	wire.Bind(new(usecase.GovernanceReader), new(*blockchain.Reader)),
	blockchain.NewWriter,
	wire.Bind(new(usecase.GovernanceWriter), new(*blockchain.Writer)),
	blockchain.NewProber,
	wire.Bind(new(usecase.NetworkProber), new(*blockchain.Prober)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ProposalSelector), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.Confirmer), new(*interactive.SelectorAdapter)),
)

// OutputSet provides notifications, progress and translations
var OutputSet = wire.NewSet(
	ProvideNotifier,
	wire.Bind(new(usecase.Notifier), new(*notify.ConsoleNotifier)),
	progress.NewProgressSink,
	ProvideLocale,
	wire.Bind(new(usecase.Translator), new(*i18n.Locale)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	SubgraphSet,
	BlockchainSet,
	InteractiveSet,
	OutputSet,
)
