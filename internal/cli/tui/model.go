package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trebuchet-org/nounsgov/internal/cli/render"
	"github.com/trebuchet-org/nounsgov/internal/domain"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/i18n"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

const (
	frameInterval = 100 * time.Millisecond
	modalWidth    = 56
)

var spinnerFrames = spinner.CharSets[14]

var (
	statusLineStyle = lipgloss.NewStyle().Faint(true)
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(modalWidth)
)

// ProposalLoader loads the vote page view model
type ProposalLoader interface {
	Run(ctx context.Context, params usecase.ShowProposalParams) (*usecase.ProposalView, error)
}

// Transitioner queues, executes or cancels a proposal
type Transitioner interface {
	Run(ctx context.Context, params usecase.TransitionProposalParams) (*usecase.TransactionResult, error)
}

// StreamWithdrawer withdraws from a payment stream
type StreamWithdrawer interface {
	Run(ctx context.Context, params usecase.WithdrawStreamParams) (*usecase.TransactionResult, error)
}

// PendingTracker reports in-flight transactions
type PendingTracker interface {
	IsPending(action domain.Action) bool
}

// Deps are the collaborators of the interactive vote page
type Deps struct {
	Loader     ProposalLoader
	Transition Transitioner
	Withdraw   StreamWithdrawer
	Pending    PendingTracker
	Bridge     *Bridge
	Locale     *i18n.Locale
	Account    string
	WebURL     string
}

type viewLoadedMsg struct {
	view *usecase.ProposalView
	err  error
}

type txDoneMsg struct {
	action domain.Action
	result *usecase.TransactionResult
	err    error
}

type tickMsg time.Time

// confirmation is an action waiting for y/n
type confirmation struct {
	action domain.Action
	prompt string
	stream string
}

// Model is the bubbletea model of the interactive vote page
type Model struct {
	ctx        context.Context
	deps       Deps
	proposalID string

	view    *usecase.ProposalView
	err     error
	loading bool
	status  string
	frame   int

	delegateView bool
	streamIndex  int
	started      map[domain.Action]bool
	confirm      *confirmation
	notification *usecase.Notification

	width  int
	height int
	offset int
}

// NewModel creates the vote page model for proposalID
func NewModel(ctx context.Context, proposalID string, deps Deps) Model {
	return Model{
		ctx:        ctx,
		deps:       deps,
		proposalID: proposalID,
		loading:    true,
		started:    make(map[domain.Action]bool),
	}
}

// Init loads the proposal and starts the spinner and event listener
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.load(), tick()}
	if m.deps.Bridge != nil {
		cmds = append(cmds, m.deps.Bridge.listen())
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) load() tea.Cmd {
	ctx, loader, id, account := m.ctx, m.deps.Loader, m.proposalID, m.deps.Account
	return func() tea.Msg {
		view, err := loader.Run(ctx, usecase.ShowProposalParams{ProposalID: id, Account: account})
		return viewLoadedMsg{view: view, err: err}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, tick()

	case viewLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.view = msg.view
			if m.streamIndex >= len(m.view.StreamOffers) {
				m.streamIndex = 0
			}
		}
		return m, nil

	case notificationMsg:
		n := usecase.Notification(msg)
		m.notification = &n
		return m, m.deps.Bridge.listen()

	case progressMsg:
		m.status = ""
		if msg.Spinner || msg.Stage == "info" || msg.Stage == "error" {
			m.status = msg.Message
		}
		return m, m.deps.Bridge.listen()

	case txDoneMsg:
		delete(m.started, msg.action)
		if msg.err != nil {
			m.notification = &usecase.Notification{
				Title:   m.deps.Locale.T(i18n.MsgError),
				Message: msg.err.Error(),
				State:   models.TxStateException,
			}
		}
		if msg.result != nil && msg.result.Aborted {
			return m, nil
		}
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirm != nil {
		switch key {
		case "y", "enter":
			c := *m.confirm
			m.confirm = nil
			return m.start(c)
		case "n", "esc":
			m.confirm = nil
		}
		return m, nil
	}

	if m.notification != nil {
		switch key {
		case "esc", "enter":
			m.notification = nil
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "d":
		m.delegateView = !m.delegateView
	case "r":
		if !m.loading {
			m.loading = true
			return m, m.load()
		}
	case "up", "k":
		if m.offset > 0 {
			m.offset--
		}
	case "down", "j":
		m.offset++
	case "m":
		if m.view != nil && m.view.Actions.HasMoveStateAction {
			m.ask(m.view.Actions.MoveStateAction, "")
		}
	case "c":
		if m.view != nil && m.view.Actions.HasDestructiveStateAction {
			m.ask(m.view.Actions.DestructiveStateAction, "")
		}
	case "s":
		if m.view != nil && len(m.view.StreamOffers) > 1 {
			m.streamIndex = (m.streamIndex + 1) % len(m.view.StreamOffers)
		}
	case "w":
		if stream, ok := m.selectedStream(); ok {
			m.ask(domain.ActionWithdraw, stream)
		}
	}
	return m, nil
}

// selectedStream is the stream offer the withdraw key acts on
func (m Model) selectedStream() (string, bool) {
	if m.view == nil || m.streamIndex >= len(m.view.StreamOffers) {
		return "", false
	}
	return m.view.StreamOffers[m.streamIndex].StreamAddress, true
}

// ask opens the confirmation modal unless the action is already in flight
func (m *Model) ask(action domain.Action, stream string) {
	if m.isPending(action) {
		return
	}
	prompt := fmt.Sprintf("%s proposal %s?", action.Label(), m.view.Proposal.ID)
	if action == domain.ActionWithdraw {
		prompt = fmt.Sprintf("Withdraw everything from stream %s?", stream)
	}
	m.confirm = &confirmation{action: action, prompt: prompt, stream: stream}
}

func (m Model) start(c confirmation) (tea.Model, tea.Cmd) {
	m.started[c.action] = true
	ctx, id := m.ctx, m.proposalID

	if c.action == domain.ActionWithdraw {
		withdraw := m.deps.Withdraw
		return m, func() tea.Msg {
			result, err := withdraw.Run(ctx, usecase.WithdrawStreamParams{StreamAddress: c.stream, SkipConfirm: true})
			return txDoneMsg{action: c.action, result: result, err: err}
		}
	}

	transition := m.deps.Transition
	return m, func() tea.Msg {
		result, err := transition.Run(ctx, usecase.TransitionProposalParams{
			ProposalID:  id,
			Action:      c.action,
			SkipConfirm: true,
		})
		return txDoneMsg{action: c.action, result: result, err: err}
	}
}

func (m Model) isPending(action domain.Action) bool {
	if m.started[action] {
		return true
	}
	return m.deps.Pending != nil && m.deps.Pending.IsPending(action)
}

// View renders the page, with a modal on top when one is open
func (m Model) View() string {
	if modal := m.modal(); modal != "" {
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}

	lines := strings.Split(m.page(), "\n")
	if m.height > 0 {
		visible := m.height - 2
		if visible < 1 {
			visible = 1
		}
		maxOffset := len(lines) - visible
		offset := m.offset
		if offset > maxOffset {
			offset = maxOffset
		}
		if offset < 0 {
			offset = 0
		}
		lines = lines[offset:]
		if len(lines) > visible {
			lines = lines[:visible]
		}
	}
	return strings.Join(lines, "\n") + "\n" + m.footer()
}

func (m Model) page() string {
	var b strings.Builder
	if m.loading || m.status != "" {
		message := m.status
		if message == "" {
			message = fmt.Sprintf("Loading proposal %s", m.proposalID)
		}
		b.WriteString(statusLineStyle.Render(spinnerFrames[m.frame]+" "+message) + "\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.deps.Locale.T(i18n.MsgFailedToFetch)) + "\n")
		b.WriteString(m.err.Error() + "\n")
	case m.view != nil:
		pending := make(map[domain.Action]bool)
		for _, a := range []domain.Action{domain.ActionQueue, domain.ActionExecute, domain.ActionCancel, domain.ActionWithdraw} {
			pending[a] = m.isPending(a)
		}
		renderer := render.NewProposalRenderer(&b, m.deps.Locale, render.ProposalRendererOptions{
			DelegateView: m.delegateView,
			Pending:      pending,
			WebURL:       m.deps.WebURL,
		})
		if err := renderer.Render(m.view); err != nil {
			b.WriteString(err.Error() + "\n")
		}
	}
	return b.String()
}

func (m Model) footer() string {
	toggle := m.deps.Locale.T(i18n.MsgSwitchToDelegateView)
	if m.delegateView {
		toggle = m.deps.Locale.T(i18n.MsgSwitchToNounView)
	}
	keys := []string{"d: " + toggle, "r: refresh"}
	if m.view != nil {
		if m.view.Actions.HasMoveStateAction {
			keys = append(keys, "m: "+strings.ToLower(m.view.Actions.MoveStateButtonLabel))
		}
		if m.view.Actions.HasDestructiveStateAction {
			keys = append(keys, "c: "+strings.ToLower(m.view.Actions.DestructiveStateButtonLabel))
		}
		switch offers := len(m.view.StreamOffers); {
		case offers == 1:
			keys = append(keys, "w: withdraw")
		case offers > 1:
			stream, _ := m.selectedStream()
			keys = append(keys,
				fmt.Sprintf("w: withdraw %s (%d/%d)", render.ShortAddress(stream), m.streamIndex+1, offers),
				"s: next stream")
		}
	}
	keys = append(keys, "↑/↓: scroll", "q: quit")
	return helpStyle.Render(strings.Join(keys, "  "))
}

func (m Model) modal() string {
	switch {
	case m.confirm != nil:
		return modalStyle.BorderForeground(lipgloss.Color("3")).Render(m.confirm.prompt + "\n\n" + helpStyle.Render("y: confirm  n: back"))
	case m.notification != nil:
		n := m.notification
		border := lipgloss.Color("1")
		if n.State == models.TxStateSuccess {
			border = lipgloss.Color("2")
		}
		title := lipgloss.NewStyle().Bold(true).Foreground(border).Render(n.Title)
		return modalStyle.BorderForeground(border).Render(title + "\n\n" + n.Message + "\n\n" + helpStyle.Render("esc: dismiss"))
	default:
		return ""
	}
}

// Run starts the interactive vote page and blocks until the user quits
func Run(ctx context.Context, proposalID string, deps Deps) error {
	if deps.Bridge == nil {
		deps.Bridge = NewBridge()
	}
	defer deps.Bridge.Close()

	p := tea.NewProgram(NewModel(ctx, proposalID, deps), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("vote page failed: %w", err)
	}
	return nil
}
