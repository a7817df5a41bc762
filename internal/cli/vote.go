package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// NewVoteCmd creates the vote command
func NewVoteCmd() *cobra.Command {
	var (
		reason string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "vote <proposal-id> <for|against|abstain>",
		Short: "Vote on an active proposal",
		Long: `Cast a vote with the configured account on a proposal that is active or in
its objection period. Voting power is the account's votes at the proposal's
creation block.

Examples:
  nounsgov vote 42 for
  nounsgov vote 42 against --reason "too expensive"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			support, err := models.ParseSupport(args[1])
			if err != nil {
				return err
			}

			result, err := app.CastVote.Run(cmd.Context(), usecase.CastVoteParams{
				ProposalID:  args[0],
				Support:     support,
				Reason:      reason,
				SkipConfirm: yes || app.Config.NonInteractive,
			})
			if err != nil {
				return err
			}
			return renderTransaction(cmd, app, result)
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Reason published with the vote")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
