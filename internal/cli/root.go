package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nounsgov/internal/app"
	"github.com/trebuchet-org/nounsgov/internal/cli/render"
	"github.com/trebuchet-org/nounsgov/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// skipsApp reports whether a command runs without loading configuration
func skipsApp(name string) bool {
	switch name {
	case "version", "help", "completion", "__complete":
		return true
	}
	return false
}

// skipsTimeout reports whether a command is long-lived and must not be
// bounded by --timeout
func skipsTimeout(name string) bool {
	return name == "view"
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nounsgov",
		Short: "Nouns DAO governance from the terminal",
		Long: `nounsgov shows Nouns DAO proposals the way the vote page does: votes per
support value, quorum threshold, voting window and snapshot. With a configured
account it can also vote, queue, execute or cancel proposals and withdraw from
payment streams.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsApp(cmd.Name()) {
				return nil
			}

			// Set up viper with every flag of the command being run
			v := config.SetupViper("", cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 && !skipsTimeout(cmd.Name()) {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., mainnet, sepolia)")
	rootCmd.PersistentFlags().String("locale", "", "Locale for dates and copy (en-US, ja-JP, zh-CN)")
	rootCmd.PersistentFlags().String("account", "", "Account address used for voting power and transactions")
	rootCmd.PersistentFlags().String("rpc-url", "", "Override the network's RPC endpoint")
	rootCmd.PersistentFlags().String("config-root", "", "Directory containing nounsgov.toml (default: search upwards)")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("yaml", false, "Output in YAML format")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Duration("timeout", 2*time.Minute, "Timeout for network operations")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "wallet",
		Title: "Wallet Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	for _, cmd := range []*cobra.Command{NewShowCmd(), NewViewCmd(), NewListCmd()} {
		cmd.GroupID = "main"
		rootCmd.AddCommand(cmd)
	}

	// Wallet commands
	for _, cmd := range []*cobra.Command{NewVoteCmd(), NewQueueCmd(), NewExecuteCmd(), NewCancelCmd(), NewStreamCmd()} {
		cmd.GroupID = "wallet"
		rootCmd.AddCommand(cmd)
	}

	// Management commands
	for _, cmd := range []*cobra.Command{NewNetworksCmd(), NewConfigCmd()} {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// outputFormat returns the structured format selected by --json or --yaml
func outputFormat(cfg *config.RuntimeConfig) render.Format {
	switch {
	case cfg.JSON:
		return render.FormatJSON
	case cfg.YAML:
		return render.FormatYAML
	default:
		return render.FormatText
	}
}

// renderStructured writes result as JSON or YAML and reports whether it did
func renderStructured[T any](cmd *cobra.Command, cfg *config.RuntimeConfig, result T) (bool, error) {
	format := outputFormat(cfg)
	if format == render.FormatText {
		return false, nil
	}
	return true, render.NewStructuredRenderer[T](cmd.OutOrStdout(), format).Render(result)
}
