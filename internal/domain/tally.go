package domain

import "github.com/trebuchet-org/nounsgov/internal/domain/models"

// VoteTally holds vote counts and their share of the total, in percent
type VoteTally struct {
	ForCount          uint64  `json:"forCount" yaml:"forCount"`
	AgainstCount      uint64  `json:"againstCount" yaml:"againstCount"`
	AbstainCount      uint64  `json:"abstainCount" yaml:"abstainCount"`
	TotalVotes        uint64  `json:"totalVotes" yaml:"totalVotes"`
	ForPercentage     float64 `json:"forPercentage" yaml:"forPercentage"`
	AgainstPercentage float64 `json:"againstPercentage" yaml:"againstPercentage"`
	AbstainPercentage float64 `json:"abstainPercentage" yaml:"abstainPercentage"`
}

// TallyVotes computes percentages from the proposal's vote counts. All
// percentages are zero when no votes were cast.
func TallyVotes(p *models.Proposal) VoteTally {
	if p == nil {
		return VoteTally{}
	}
	t := VoteTally{
		ForCount:     p.ForCount,
		AgainstCount: p.AgainstCount,
		AbstainCount: p.AbstainCount,
		TotalVotes:   p.ForCount + p.AgainstCount + p.AbstainCount,
	}
	if t.TotalVotes == 0 {
		return t
	}
	total := float64(t.TotalVotes)
	t.ForPercentage = float64(p.ForCount) * 100 / total
	t.AgainstPercentage = float64(p.AgainstCount) * 100 / total
	t.AbstainPercentage = float64(p.AbstainCount) * 100 / total
	return t
}

// Percentage returns the share for a support value
func (t VoteTally) Percentage(support models.Support) float64 {
	switch support {
	case models.SupportFor:
		return t.ForPercentage
	case models.SupportAgainst:
		return t.AgainstPercentage
	case models.SupportAbstain:
		return t.AbstainPercentage
	default:
		return 0
	}
}

// Count returns the vote count for a support value
func (t VoteTally) Count(support models.Support) uint64 {
	switch support {
	case models.SupportFor:
		return t.ForCount
	case models.SupportAgainst:
		return t.AgainstCount
	case models.SupportAbstain:
		return t.AbstainCount
	default:
		return 0
	}
}
