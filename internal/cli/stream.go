package cli

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// NewStreamCmd creates the stream command group
func NewStreamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Payment streams created by executed proposals",
	}

	cmd.AddCommand(NewStreamWithdrawCmd())

	return cmd
}

// NewStreamWithdrawCmd creates the stream withdraw subcommand
func NewStreamWithdrawCmd() *cobra.Command {
	var (
		amount string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "withdraw <stream-address>",
		Short: "Withdraw your balance from a payment stream",
		Long: `Withdraw from a stream whose recipient is the configured account. The vote
page of an executed proposal lists the streams it created for you.

Without --amount the full withdrawable balance is withdrawn. Amounts are in
the token's smallest unit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.WithdrawStreamParams{
				StreamAddress: args[0],
				SkipConfirm:   yes || app.Config.NonInteractive,
			}
			if amount != "" {
				v, ok := new(big.Int).SetString(amount, 10)
				if !ok {
					return fmt.Errorf("invalid amount %q", amount)
				}
				params.Amount = v
			}

			result, err := app.WithdrawStream.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			return renderTransaction(cmd, app, result)
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Amount to withdraw (default: full balance)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
