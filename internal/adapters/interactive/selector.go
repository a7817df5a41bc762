package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/nounsgov/internal/config"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// SelectorAdapter handles interactive selection and confirmation
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectProposal lets the user pick a proposal with fuzzy search
func (s *SelectorAdapter) SelectProposal(ctx context.Context, proposals []models.ProposalSummary, prompt string) (*models.ProposalSummary, error) {
	// In non-interactive mode, we can't select
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode: pass a proposal id")
	}

	if len(proposals) == 0 {
		return nil, fmt.Errorf("no proposals provided for selection")
	}

	if len(proposals) == 1 {
		return &proposals[0], nil
	}

	options := formatProposalOptions(proposals)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select, / to search"),
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     options,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(searchKeys(proposals)),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return &proposals[index], nil
}

// Confirm asks a yes/no question. Non-interactive runs approve.
func (s *SelectorAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if s.config.NonInteractive {
		return true, nil
	}

	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}
	return true, nil
}

// formatProposalOptions creates display strings for proposal selection
func formatProposalOptions(proposals []models.ProposalSummary) []string {
	options := make([]string, len(proposals))
	for i, p := range proposals {
		id := color.New(color.FgWhite, color.Bold).Sprintf("%5s", p.ID)
		status := statusColor(p.Status).Sprintf("[%s]", p.Status)
		options[i] = fmt.Sprintf("%s %s %s", id, p.Title, status)
	}
	return options
}

func statusColor(state models.ProposalState) *color.Color {
	switch state {
	case models.ProposalStateActive, models.ProposalStateObjectionPeriod:
		return color.New(color.FgGreen)
	case models.ProposalStatePending, models.ProposalStateUpdatable, models.ProposalStateQueued:
		return color.New(color.FgYellow)
	case models.ProposalStateExecuted, models.ProposalStateSucceeded:
		return color.New(color.FgBlue)
	default:
		return color.New(color.FgWhite, color.Faint)
	}
}

// searchKeys are the uncolored strings fuzzy search runs against
func searchKeys(proposals []models.ProposalSummary) []string {
	keys := make([]string, len(proposals))
	for i, p := range proposals {
		keys[i] = fmt.Sprintf("%s %s %s", p.ID, p.Title, p.Status)
	}
	return keys
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.ProposalSelector = (*SelectorAdapter)(nil)
	_ usecase.Confirmer        = (*SelectorAdapter)(nil)
)
