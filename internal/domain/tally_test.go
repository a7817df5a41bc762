package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

func TestTallyVotes(t *testing.T) {
	t.Run("zero votes", func(t *testing.T) {
		tally := TallyVotes(&models.Proposal{})
		assert.Zero(t, tally.TotalVotes)
		assert.Zero(t, tally.ForPercentage)
		assert.Zero(t, tally.AgainstPercentage)
		assert.Zero(t, tally.AbstainPercentage)
	})

	t.Run("nil proposal", func(t *testing.T) {
		assert.Equal(t, VoteTally{}, TallyVotes(nil))
	})

	counts := []struct {
		forCount, againstCount, abstainCount uint64
	}{
		{1, 0, 0},
		{1, 1, 1},
		{123, 45, 6},
		{0, 7, 0},
		{333, 333, 334},
	}
	for _, c := range counts {
		tally := TallyVotes(&models.Proposal{
			ForCount:     c.forCount,
			AgainstCount: c.againstCount,
			AbstainCount: c.abstainCount,
		})
		assert.Equal(t, c.forCount+c.againstCount+c.abstainCount, tally.TotalVotes)
		sum := tally.ForPercentage + tally.AgainstPercentage + tally.AbstainPercentage
		assert.InDelta(t, 100, sum, 1e-9)
	}

	tally := TallyVotes(&models.Proposal{ForCount: 3, AgainstCount: 1})
	assert.InDelta(t, 75, tally.Percentage(models.SupportFor), 1e-9)
	assert.InDelta(t, 25, tally.Percentage(models.SupportAgainst), 1e-9)
	assert.Zero(t, tally.Percentage(models.SupportAbstain))
	assert.Equal(t, uint64(3), tally.Count(models.SupportFor))
}
