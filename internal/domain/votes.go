package domain

import (
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

// GroupVotesByDelegate attributes each vote to the tokens its voter
// represented at the snapshot block. Voters without a snapshot entry keep
// their vote with an empty token list.
func GroupVotesByDelegate(votes []models.Vote, delegates []models.Delegate) []models.DelegateVote {
	delegateToNounIDs := lo.SliceToMap(delegates, func(d models.Delegate) (string, []string) {
		ids := d.NounsRepresented
		if ids == nil {
			ids = []string{}
		}
		return strings.ToLower(d.ID), ids
	})

	return lo.Map(votes, func(v models.Vote, _ int) models.DelegateVote {
		nouns, ok := delegateToNounIDs[strings.ToLower(v.Voter)]
		if !ok {
			nouns = []string{}
		}
		return models.DelegateVote{
			Delegate:         v.Voter,
			SupportDetailed:  v.SupportDetailed,
			NounsRepresented: nouns,
		}
	})
}

// NounVotes returns the token ids attributed to a support value, in vote order
func NounVotes(data []models.DelegateVote, support models.Support) []string {
	matching := lo.Filter(data, func(d models.DelegateVote, _ int) bool {
		return d.SupportDetailed == support
	})
	return lo.FlatMap(matching, func(d models.DelegateVote, _ int) []string {
		return d.NounsRepresented
	})
}

// DelegatesBySupport returns the delegate-grouped rows for a support value
func DelegatesBySupport(data []models.DelegateVote, support models.Support) []models.DelegateVote {
	return lo.Filter(data, func(d models.DelegateVote, _ int) bool {
		return d.SupportDetailed == support
	})
}

// VoterIDs returns the distinct voter addresses in vote order
func VoterIDs(votes []models.Vote) []string {
	return lo.Uniq(lo.Map(votes, func(v models.Vote, _ int) string {
		return v.Voter
	}))
}
