package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nounsgov/internal/cli/tui"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// NewViewCmd creates the interactive vote page command
func NewViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [proposal-id]",
		Short: "Open the interactive vote page of a proposal",
		Long: `Open a full-screen vote page for a proposal. The page refreshes after every
transaction and shows transaction results as dialogs.

Keys:
  d      switch between Noun view and delegate view
  m      queue or execute the proposal when it is ready
  c      cancel the proposal (proposer only)
  w      withdraw from a payment stream created for you
  r      refresh
  q      quit`,
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

			// The page reports through its own bridge instead of the console
			bridge := tui.NewBridge()
			reconciler := usecase.NewTxReconciler(bridge, app.Locale)

			return tui.Run(cmd.Context(), id, tui.Deps{
				Loader:     usecase.NewShowProposal(app.Repository, app.Reader, bridge, app.Log),
				Transition: usecase.NewTransitionProposal(app.Repository, app.Reader, app.Writer, reconciler, nil, bridge, app.Log),
				Withdraw:   usecase.NewWithdrawStream(app.Reader, app.Writer, reconciler, nil, bridge, app.Log),
				Pending:    reconciler,
				Bridge:     bridge,
				Locale:     app.Locale,
				Account:    app.Config.Account.Address,
				WebURL:     app.Config.Network.WebURL,
			})
		},
	}

	return cmd
}
