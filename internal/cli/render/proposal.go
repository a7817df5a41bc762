package render

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/trebuchet-org/nounsgov/internal/domain"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/i18n"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cardWidth is the wrap width of noun id lists inside vote cards
const cardWidth = 28

var (
	headerStyle  = color.New(color.FgCyan, color.Bold)
	titleStyle   = color.New(color.Bold, color.FgHiWhite)
	sectionStyle = color.New(color.Bold, color.FgHiWhite)
	faintStyle   = color.New(color.Faint)
	hintStyle    = color.New(color.FgGreen)
	actionStyle  = color.New(color.FgYellow, color.Bold)
)

var supports = []models.Support{models.SupportFor, models.SupportAgainst, models.SupportAbstain}

// ProposalRendererOptions tweaks the vote page
type ProposalRendererOptions struct {
	// DelegateView lists delegates instead of noun ids in vote cards
	DelegateView bool
	// Pending marks actions with a transaction in flight
	Pending map[domain.Action]bool
	// WebURL prefixes the edit link when set
	WebURL string
}

// ProposalRenderer renders the vote page for a single proposal
type ProposalRenderer struct {
	out  io.Writer
	loc  *i18n.Locale
	opts ProposalRendererOptions
}

// NewProposalRenderer creates a new vote page renderer
func NewProposalRenderer(out io.Writer, loc *i18n.Locale, opts ProposalRendererOptions) *ProposalRenderer {
	return &ProposalRenderer{
		out:  out,
		loc:  loc,
		opts: opts,
	}
}

var _ Renderer[*usecase.ProposalView] = (*ProposalRenderer)(nil)

// Render writes the vote page
func (r *ProposalRenderer) Render(view *usecase.ProposalView) error {
	if view == nil || view.Proposal == nil {
		return fmt.Errorf("no proposal to render")
	}
	now := view.FetchedAt
	if now.IsZero() {
		now = time.Now()
	}

	r.renderHeader(view)
	r.renderStreamOffers(view)
	r.renderProposerFunctions(view, now)
	r.renderVoteCards(view)
	r.renderInfoCards(view, now)
	r.renderDescription(view)
	return nil
}

func (r *ProposalRenderer) renderHeader(view *usecase.ProposalView) {
	p := view.Proposal

	headerStyle.Fprintln(r.out, r.loc.T(i18n.MsgProposalHeader, p.ID))
	titleStyle.Fprintln(r.out, p.Title)
	fmt.Fprintln(r.out, strings.Repeat("=", 80))

	fmt.Fprintf(r.out, "%s  %s", statusStyle(p.Status).Sprintf("[%s]", StatusLabel(p.Status)), r.loc.T(i18n.MsgProposedBy, p.Proposer))
	if len(p.Signers) > 0 {
		fmt.Fprintf(r.out, " + %d", len(p.Signers))
	}
	fmt.Fprintln(r.out)

	if len(view.Versions) > 1 {
		fmt.Fprintln(r.out, faintStyle.Sprint(r.loc.T(i18n.MsgVersion, len(view.Versions))))
	}
	if view.Actions.ActiveForVoting {
		fmt.Fprintln(r.out, hintStyle.Sprint(r.loc.T(i18n.MsgActiveForVoting)))
	}
	fmt.Fprintln(r.out)
}

func (r *ProposalRenderer) renderStreamOffers(view *usecase.ProposalView) {
	for _, offer := range view.StreamOffers {
		actionStyle.Fprintln(r.out, r.loc.T(i18n.MsgWithdrawFromStream, offer.StreamAddress))
		fmt.Fprintf(r.out, "  %s → %s, %s of %s\n",
			r.loc.FormatLongDate(time.Unix(offer.StartTime, 0)),
			r.loc.FormatLongDate(time.Unix(offer.EndTime, 0)),
			formatAmount(offer.StreamAmount),
			ShortAddress(offer.TokenAddress),
		)
		fmt.Fprintf(r.out, "  %s\n", faintStyle.Sprint(r.loc.T(i18n.MsgOnlyVisibleToYou)))
		fmt.Fprintf(r.out, "  nounsgov stream withdraw %s\n\n", offer.StreamAddress)
	}
}

func (r *ProposalRenderer) renderProposerFunctions(view *usecase.ProposalView, now time.Time) {
	a := view.Actions
	if !a.Updateable && !a.Cancellable && !a.HasMoveStateAction {
		return
	}

	if a.Updateable || a.Cancellable {
		sectionStyle.Fprintln(r.out, r.loc.T(i18n.MsgProposerFunctions))
		if view.CurrentBlock != nil {
			if target, ok := domain.CountdownTarget(view.Proposal, *view.CurrentBlock, now); ok {
				countdown := r.loc.RelativeDuration(target, now)
				if a.Updateable {
					fmt.Fprintln(r.out, "  "+r.loc.T(i18n.MsgEditableFor, countdown))
				} else {
					fmt.Fprintln(r.out, "  "+r.loc.T(i18n.MsgCancelableFor, countdown))
				}
			}
		}
	}

	var buttons []string
	if a.HasMoveStateAction {
		buttons = append(buttons, r.button(a.MoveStateAction, view.Proposal.ID))
	}
	if a.HasDestructiveStateAction {
		buttons = append(buttons, r.button(a.DestructiveStateAction, view.Proposal.ID))
	}
	for _, b := range buttons {
		fmt.Fprintln(r.out, "  "+b)
	}
	if a.EditPath != "" {
		fmt.Fprintf(r.out, "  Edit: %s%s\n", r.opts.WebURL, a.EditPath)
	}
	fmt.Fprintln(r.out)
}

func (r *ProposalRenderer) button(action domain.Action, id string) string {
	label := actionStyle.Sprintf("[%s]", action.Label())
	if r.opts.Pending[action] {
		return label + " " + faintStyle.Sprint("⏳ pending")
	}
	return fmt.Sprintf("%s %s", label, faintStyle.Sprintf("nounsgov %s %s", action.Verb(), id))
}

func (r *ProposalRenderer) renderVoteCards(view *usecase.ProposalView) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = true
	t.Style().Format.Header = text.FormatDefault

	header := table.Row{}
	counts := table.Row{}
	bodies := table.Row{}
	for _, s := range supports {
		header = append(header, supportStyle(s).Sprint(r.supportLabel(s)))
		counts = append(counts, fmt.Sprintf("%s  %.2f%%",
			r.loc.T(i18n.MsgVotesCount, view.Tally.Count(s)),
			view.Tally.Percentage(s),
		))
		bodies = append(bodies, r.cardBody(view, s))
	}
	t.AppendHeader(header)
	t.AppendRow(counts)
	t.AppendRow(bodies)
	t.SetColumnConfigs(lo.Map(supports, func(_ models.Support, i int) table.ColumnConfig {
		return table.ColumnConfig{Number: i + 1, WidthMax: cardWidth + 2}
	}))
	t.Render()
}

func (r *ProposalRenderer) cardBody(view *usecase.ProposalView, support models.Support) string {
	if r.opts.DelegateView {
		delegates := domain.DelegatesBySupport(view.DelegateVotes, support)
		if len(delegates) == 0 {
			return faintStyle.Sprint(r.loc.T(i18n.MsgNoVotes))
		}
		rows := lo.Map(delegates, func(d models.DelegateVote, _ int) string {
			return fmt.Sprintf("%s %d", ShortAddress(d.Delegate), len(d.NounsRepresented))
		})
		return strings.Join(rows, "\n")
	}

	nouns := view.NounsFor(support)
	if len(nouns) == 0 {
		return faintStyle.Sprint(r.loc.T(i18n.MsgNoVotes))
	}
	return text.WrapSoft(strings.Join(nouns, ", "), cardWidth)
}

func (r *ProposalRenderer) supportLabel(s models.Support) string {
	switch s {
	case models.SupportFor:
		return r.loc.T(i18n.MsgFor)
	case models.SupportAgainst:
		return r.loc.T(i18n.MsgAgainst)
	default:
		return r.loc.T(i18n.MsgAbstain)
	}
}

func (r *ProposalRenderer) renderInfoCards(view *usecase.ProposalView, now time.Time) {
	p := view.Proposal

	thresholdTitle := r.loc.T(i18n.MsgThreshold)
	if view.IsV2Prop {
		thresholdTitle = r.loc.T(i18n.MsgCurrentThreshold)
	}
	// A V2 proposal whose live quorum read failed has no current threshold.
	threshold := "-"
	if !view.IsV2Prop || view.CurrentQuorum != nil {
		threshold = r.loc.T(i18n.MsgVotesCount, view.Threshold())
	}
	if view.IsV2Prop && view.DynamicQuorum != nil {
		dq := view.DynamicQuorum
		threshold += "\n" + faintStyle.Sprint(r.loc.T(i18n.MsgDynamicQuorum,
			formatBPS(dq.MinQuorumVotesBPS), formatBPS(dq.MaxQuorumVotesBPS), r.loc.FormatNumber(dq.TotalSupply)))
	}

	phase := view.Window.Phase(now)
	when := "-"
	if at, ok := view.Window.PhaseTime(now); ok {
		at = at.In(time.Local)
		when = r.loc.FormatTime(at) + "\n" + r.loc.FormatLongDate(at)
	}

	snapshot := r.loc.T(i18n.MsgTakenAtBlock) + "\n" + r.loc.FormatNumber(p.CreatedBlock)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{thresholdTitle, r.loc.T(string(phase)), r.loc.T(i18n.MsgSnapshot)})
	t.AppendRow(table.Row{threshold, when, snapshot})
	t.Render()
	fmt.Fprintln(r.out)
}

func (r *ProposalRenderer) renderDescription(view *usecase.ProposalView) {
	p := view.Proposal

	sectionStyle.Fprintln(r.out, r.loc.T(i18n.MsgDescription))
	if p.Status == models.ProposalStatePending && view.Account != "" {
		fmt.Fprintln(r.out, hintStyle.Sprint(r.loc.T(i18n.MsgAvailableVotes, view.AvailableVotes, p.CreatedBlock)))
	}
	fmt.Fprintln(r.out, strings.TrimSpace(p.Description))
}

// StatusLabel renders a proposal state as title case words
func StatusLabel(state models.ProposalState) string {
	return cases.Title(language.English).String(strings.ReplaceAll(state.String(), "_", " "))
}

func formatBPS(bps uint64) string {
	return fmt.Sprintf("%.2f", float64(bps)/100)
}

func formatAmount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
