package models

import (
	"fmt"
	"strings"
)

// Support is the detailed support value recorded with a vote
type Support int

const (
	SupportAgainst Support = 0
	SupportFor     Support = 1
	SupportAbstain Support = 2
)

// String returns the lower case support name
func (s Support) String() string {
	switch s {
	case SupportAgainst:
		return "against"
	case SupportFor:
		return "for"
	case SupportAbstain:
		return "abstain"
	default:
		return fmt.Sprintf("support(%d)", int(s))
	}
}

// ParseSupport accepts "for", "against", "abstain" or their numeric values
func ParseSupport(value string) (Support, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "for", "1", "yes":
		return SupportFor, nil
	case "against", "0", "no":
		return SupportAgainst, nil
	case "abstain", "2":
		return SupportAbstain, nil
	default:
		return 0, fmt.Errorf("invalid support %q: expected for, against or abstain", value)
	}
}

// Vote is a single vote cast on a proposal
type Vote struct {
	Voter           string  `json:"voter" yaml:"voter"`
	SupportDetailed Support `json:"supportDetailed" yaml:"supportDetailed"`
	Votes           uint64  `json:"votes" yaml:"votes"`
	Reason          string  `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Delegate is a delegate and the tokens it represented at a snapshot block
type Delegate struct {
	ID               string   `json:"id" yaml:"id"`
	NounsRepresented []string `json:"nounsRepresented" yaml:"nounsRepresented"`
}

// DelegateVote attributes a vote to the tokens its delegate represented
type DelegateVote struct {
	Delegate         string   `json:"delegate" yaml:"delegate"`
	SupportDetailed  Support  `json:"supportDetailed" yaml:"supportDetailed"`
	NounsRepresented []string `json:"nounsRepresented" yaml:"nounsRepresented"`
}
