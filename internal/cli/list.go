package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/nounsgov/internal/cli/render"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		status string
		limit  int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recent proposals",
		Long: `List the most recent proposals from the subgraph, newest first.

The list can be filtered by status. The filter applies to the fetched page.`,
		Example: `  # List the 20 most recent proposals
  nounsgov list

  # Only proposals waiting to be queued
  nounsgov list --status succeeded --limit 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListProposalsParams{Limit: limit}
			if status != "" {
				state, err := models.ParseProposalState(status)
				if err != nil {
					return err
				}
				params.Status = &state
			}

			result, err := app.ListProposals.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if done, err := renderStructured(cmd, app.Config, result); done {
				return err
			}

			renderer := render.NewProposalsRenderer(cmd.OutOrStdout(), !color.NoColor)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (active, succeeded, queued, executed, ...)")
	cmd.Flags().IntVar(&limit, "limit", usecase.DefaultProposalListLimit, "Number of proposals to fetch")

	return cmd
}
