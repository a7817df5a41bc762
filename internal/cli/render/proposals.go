package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// titleWidth truncates long proposal titles in the list
const titleWidth = 56

// ProposalsRenderer renders proposal lists as a table
type ProposalsRenderer struct {
	out   io.Writer
	color bool
}

// NewProposalsRenderer creates a new proposals renderer
func NewProposalsRenderer(out io.Writer, color bool) *ProposalsRenderer {
	return &ProposalsRenderer{
		out:   out,
		color: color,
	}
}

var _ Renderer[*usecase.ProposalListResult] = (*ProposalsRenderer)(nil)

// Render writes the proposal table followed by per-status counts
func (r *ProposalsRenderer) Render(result *usecase.ProposalListResult) error {
	if len(result.Proposals) == 0 {
		fmt.Fprintln(r.out, "No proposals found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"ID", "TITLE", "STATUS", "FOR", "AGAINST", "ABSTAIN"})

	for _, p := range result.Proposals {
		status := StatusLabel(p.Status)
		if r.color {
			status = statusStyle(p.Status).Sprint(status)
		}
		t.AppendRow(table.Row{
			p.ID,
			text.Trim(p.Title, titleWidth),
			status,
			p.ForCount,
			p.AgainstCount,
			p.AbstainCount,
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	t.Render()

	fmt.Fprintln(r.out)
	states := make([]models.ProposalState, 0, len(result.ByStatus))
	for s := range result.ByStatus {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	for _, s := range states {
		fmt.Fprintf(r.out, "%s: %d  ", StatusLabel(s), result.ByStatus[s])
	}
	fmt.Fprintln(r.out)
	return nil
}
