package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nounsgov/internal/cli/render"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		Long: `List the built-in networks and those defined under [networks] in
nounsgov.toml. The current network is marked with *.

With --probe each RPC endpoint is dialed and its chain ID compared to the
configured one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Run use case
			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Probe: probe})
			if err != nil {
				return err
			}

			if done, err := renderStructured(cmd, app.Config, result); done {
				return err
			}

			// Render output
			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), !color.NoColor)
			return renderer.RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Dial each RPC endpoint and check its chain ID")

	return cmd
}
