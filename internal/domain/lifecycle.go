package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

// Action is a state transition or wallet operation the CLI can submit
type Action int

const (
	ActionQueue Action = iota
	ActionExecute
	ActionCancel
	ActionVote
	ActionWithdraw
)

// Label is the button copy for the action
func (a Action) Label() string {
	switch a {
	case ActionQueue:
		return "Queue"
	case ActionExecute:
		return "Execute"
	case ActionCancel:
		return "Cancel"
	case ActionVote:
		return "Vote"
	case ActionWithdraw:
		return "Withdraw"
	default:
		return "Unknown"
	}
}

// Verb is the lower case form used in messages
func (a Action) Verb() string {
	return strings.ToLower(a.Label())
}

// String implements fmt.Stringer
func (a Action) String() string {
	return a.Verb()
}

// MarshalText implements encoding.TextMarshaler
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.Verb()), nil
}

// nonFinalStates are the states in which a proposer may still cancel
var nonFinalStates = map[models.ProposalState]bool{
	models.ProposalStateUpdatable:       true,
	models.ProposalStatePending:         true,
	models.ProposalStateActive:          true,
	models.ProposalStateSucceeded:       true,
	models.ProposalStateQueued:          true,
	models.ProposalStateObjectionPeriod: true,
}

// SameAddress compares two hex addresses case-insensitively. Empty strings
// never match.
func SameAddress(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}

// IsProposer reports whether account proposed p
func IsProposer(p *models.Proposal, account string) bool {
	if p == nil {
		return false
	}
	return SameAddress(p.Proposer, account)
}

// IsCancellable reports whether account may cancel p
func IsCancellable(p *models.Proposal, account string) bool {
	if p == nil || account == "" {
		return false
	}
	return nonFinalStates[p.Status] && IsProposer(p, account)
}

// IsUpdateable reports whether account may still edit p
func IsUpdateable(p *models.Proposal, account string) bool {
	if p == nil || account == "" {
		return false
	}
	return p.Status == models.ProposalStateUpdatable && IsProposer(p, account)
}

// IsAwaitingStateChange reports whether p can be moved forward (queued or
// executed) by anyone.
func IsAwaitingStateChange(p *models.Proposal, now time.Time) bool {
	if p == nil {
		return false
	}
	switch p.Status {
	case models.ProposalStateSucceeded:
		return true
	case models.ProposalStateQueued:
		return p.ETA != nil && !now.Before(*p.ETA)
	default:
		return false
	}
}

// IsAwaitingDestructiveStateChange reports whether account can move p to a
// terminal state. It currently coincides with IsCancellable.
func IsAwaitingDestructiveStateChange(p *models.Proposal, account string) bool {
	return IsCancellable(p, account)
}

// IsActiveForVoting reports whether votes are accepted on p
func IsActiveForVoting(p *models.Proposal) bool {
	if p == nil {
		return false
	}
	return p.Status == models.ProposalStateActive || p.Status == models.ProposalStateObjectionPeriod
}

// MoveStateAction selects the forward transition for p. Only Succeeded
// proposals are queued; everything else is executed.
func MoveStateAction(p *models.Proposal) (Action, bool) {
	if p == nil || p.ID == "" {
		return 0, false
	}
	switch p.Status {
	case models.ProposalStateSucceeded:
		return ActionQueue, true
	default:
		return ActionExecute, true
	}
}

// DestructiveStateAction selects the terminal transition for p, if any
func DestructiveStateAction(p *models.Proposal, account string) (Action, bool) {
	if p == nil || p.ID == "" || !IsCancellable(p, account) {
		return 0, false
	}
	return ActionCancel, true
}

// ProposalActions is the full set of derived flags for one render
type ProposalActions struct {
	Cancellable                 bool   `json:"cancellable" yaml:"cancellable"`
	Updateable                  bool   `json:"updateable" yaml:"updateable"`
	AwaitingStateChange         bool   `json:"awaitingStateChange" yaml:"awaitingStateChange"`
	AwaitingDestructiveChange   bool   `json:"awaitingDestructiveChange" yaml:"awaitingDestructiveChange"`
	ActiveForVoting             bool   `json:"activeForVoting" yaml:"activeForVoting"`
	MoveStateAction             Action `json:"-" yaml:"-"`
	HasMoveStateAction          bool   `json:"-" yaml:"-"`
	DestructiveStateAction      Action `json:"-" yaml:"-"`
	HasDestructiveStateAction   bool   `json:"-" yaml:"-"`
	MoveStateButtonLabel        string `json:"moveStateButtonLabel,omitempty" yaml:"moveStateButtonLabel,omitempty"`
	DestructiveStateButtonLabel string `json:"destructiveStateButtonLabel,omitempty" yaml:"destructiveStateButtonLabel,omitempty"`
	EditPath                    string `json:"editPath,omitempty" yaml:"editPath,omitempty"`
}

// ResolveActions derives every action flag for p as seen by account at now
func ResolveActions(p *models.Proposal, account string, now time.Time) ProposalActions {
	actions := ProposalActions{
		Cancellable:               IsCancellable(p, account),
		Updateable:                IsUpdateable(p, account),
		AwaitingStateChange:       IsAwaitingStateChange(p, now),
		AwaitingDestructiveChange: IsAwaitingDestructiveStateChange(p, account),
		ActiveForVoting:           IsActiveForVoting(p),
	}
	if actions.AwaitingStateChange {
		actions.MoveStateAction, actions.HasMoveStateAction = MoveStateAction(p)
		if actions.HasMoveStateAction {
			actions.MoveStateButtonLabel = actions.MoveStateAction.Label()
		}
	}
	if actions.AwaitingDestructiveChange {
		actions.DestructiveStateAction, actions.HasDestructiveStateAction = DestructiveStateAction(p, account)
		if actions.HasDestructiveStateAction {
			actions.DestructiveStateButtonLabel = actions.DestructiveStateAction.Label()
		}
	}
	if actions.Updateable {
		actions.EditPath = "/update-proposal/" + p.ID
	}
	return actions
}

// ValidateProposalID rejects ids that are not non-negative decimal integers
func ValidateProposalID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidProposalID)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidProposalID, id)
		}
	}
	return nil
}
