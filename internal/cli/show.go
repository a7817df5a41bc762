package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nounsgov/internal/app"
	"github.com/trebuchet-org/nounsgov/internal/cli/render"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var delegateView bool

	cmd := &cobra.Command{
		Use:   "show [proposal-id]",
		Short: "Show the vote page of a proposal",
		Long: `Show a proposal the way the vote page does: status, proposer functions,
votes for, against and abstain (as noun ids or per delegate), the quorum
threshold, the voting window and the snapshot block.

Without an id, pick a recent proposal interactively.

Examples:
  nounsgov show 42
  nounsgov show 42 --delegate-view
  nounsgov show 42 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			id, err := proposalIDArg(cmd, app, args)
			if err != nil {
				return err
			}

			view, err := app.ShowProposal.Run(cmd.Context(), usecase.ShowProposalParams{
				ProposalID: id,
				Account:    app.Config.Account.Address,
			})
			if err != nil {
				return err
			}

			if done, err := renderStructured(cmd, app.Config, view); done {
				return err
			}

			renderer := render.NewProposalRenderer(cmd.OutOrStdout(), app.Locale, render.ProposalRendererOptions{
				DelegateView: delegateView,
				WebURL:       app.Config.Network.WebURL,
			})
			return renderer.Render(view)
		},
	}

	cmd.Flags().BoolVar(&delegateView, "delegate-view", false, "List delegates instead of noun ids in the vote cards")

	return cmd
}

// proposalIDArg returns the id argument, or lets the user pick one from the
// recent proposals when none was given
func proposalIDArg(cmd *cobra.Command, app *app.App, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if app.Config.NonInteractive {
		return "", fmt.Errorf("a proposal id is required in non-interactive mode")
	}
	picked, err := app.ListProposals.Select(cmd.Context(), usecase.ListProposalsParams{})
	if err != nil {
		return "", err
	}
	return picked.ID, nil
}
