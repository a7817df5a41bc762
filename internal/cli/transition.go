package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nounsgov/internal/app"
	"github.com/trebuchet-org/nounsgov/internal/cli/render"
	"github.com/trebuchet-org/nounsgov/internal/domain"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// NewQueueCmd creates the queue command
func NewQueueCmd() *cobra.Command {
	return newTransitionCmd(domain.ActionQueue, "Queue a succeeded proposal in the timelock")
}

// NewExecuteCmd creates the execute command
func NewExecuteCmd() *cobra.Command {
	return newTransitionCmd(domain.ActionExecute, "Execute a queued proposal once its eta has passed")
}

// NewCancelCmd creates the cancel command
func NewCancelCmd() *cobra.Command {
	return newTransitionCmd(domain.ActionCancel, "Cancel a proposal you proposed")
}

func newTransitionCmd(action domain.Action, short string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <proposal-id>", action.Verb()),
		Short: short,
		Long: fmt.Sprintf(`%s

The proposal's on-chain state is checked first; the command fails when the
proposal cannot be %sd by the configured account right now. The transaction
is signed with the configured private key (NOUNSGOV_PRIVATE_KEY or
[account] private_key) and followed until it is mined.`, short, action.Verb()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.TransitionProposal.Run(cmd.Context(), usecase.TransitionProposalParams{
				ProposalID:  args[0],
				Action:      action,
				SkipConfirm: yes || app.Config.NonInteractive,
			})
			if err != nil {
				return err
			}
			return renderTransaction(cmd, app, result)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// renderTransaction prints the outcome of a wallet action and turns a
// failed transaction into a command error
func renderTransaction(cmd *cobra.Command, app *app.App, result *usecase.TransactionResult) error {
	if done, err := renderStructured(cmd, app.Config, result); done {
		if err != nil {
			return err
		}
	} else {
		renderer := render.NewTransactionRenderer(cmd.OutOrStdout(), app.Config.Network.ExplorerURL)
		if err := renderer.Render(result); err != nil {
			return err
		}
	}

	if result.Aborted || result.Succeeded() {
		return nil
	}
	return fmt.Errorf("%s transaction did not succeed: %s", result.Action.Verb(), result.Status.Status)
}
