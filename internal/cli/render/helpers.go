package render

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/nounsgov/internal/domain"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatCommandError keeps the context of errors whose last segment alone
// would not explain what went wrong
func FormatCommandError(err error) string {
	var unavailable domain.ActionUnavailableErr
	var gqlErr domain.GraphQLErr
	switch {
	case errors.As(err, &unavailable):
		return color.New(color.FgRed).Sprintf("❌ %s", unavailable.Error())
	case errors.As(err, &gqlErr):
		return color.New(color.FgRed).Sprintf("❌ Subgraph error: %s", gqlErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		return color.New(color.FgRed).Sprintf("❌ %s", err.Error())
	default:
		return FormatError(err.Error())
	}
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// ShortAddress abbreviates an address as 0x1234...abcd
func ShortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// statusStyle colors a proposal state badge
func statusStyle(state models.ProposalState) *color.Color {
	switch state {
	case models.ProposalStateActive, models.ProposalStateObjectionPeriod:
		return color.New(color.FgHiGreen, color.Bold)
	case models.ProposalStatePending, models.ProposalStateUpdatable:
		return color.New(color.FgYellow, color.Bold)
	case models.ProposalStateSucceeded, models.ProposalStateQueued:
		return color.New(color.FgCyan, color.Bold)
	case models.ProposalStateExecuted:
		return color.New(color.FgBlue, color.Bold)
	case models.ProposalStateDefeated, models.ProposalStateVetoed:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.Faint)
	}
}

// supportStyle colors vote cards
func supportStyle(support models.Support) *color.Color {
	switch support {
	case models.SupportFor:
		return color.New(color.FgGreen, color.Bold)
	case models.SupportAgainst:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgWhite, color.Bold)
	}
}
