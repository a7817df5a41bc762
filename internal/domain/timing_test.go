package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

func TestEstimateBlockTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(120*time.Second), EstimateBlockTime(now, 110, 100))
	assert.Equal(t, now.Add(-60*time.Second), EstimateBlockTime(now, 95, 100))
	assert.Equal(t, now, EstimateBlockTime(now, 100, 100))
}

func TestVotingWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	current := uint64(1000)

	t.Run("voting not started", func(t *testing.T) {
		p := &models.Proposal{StartBlock: 1010, EndBlock: 1100}
		w := EstimateVotingWindow(p, &current, now)
		assert.True(t, w.Known)
		assert.Equal(t, WindowStarts, w.Phase(now))
		at, ok := w.PhaseTime(now)
		assert.True(t, ok)
		assert.Equal(t, w.Start, at)
	})

	t.Run("voting in progress", func(t *testing.T) {
		p := &models.Proposal{StartBlock: 900, EndBlock: 1100}
		w := EstimateVotingWindow(p, &current, now)
		assert.Equal(t, WindowEnds, w.Phase(now))
		at, _ := w.PhaseTime(now)
		assert.Equal(t, w.End, at)
	})

	t.Run("voting ended", func(t *testing.T) {
		p := &models.Proposal{StartBlock: 800, EndBlock: 900}
		w := EstimateVotingWindow(p, &current, now)
		assert.Equal(t, WindowEnded, w.Phase(now))
	})

	t.Run("objection period extends the end", func(t *testing.T) {
		p := &models.Proposal{StartBlock: 800, EndBlock: 900, ObjectionPeriodEndBlock: 1050}
		w := EstimateVotingWindow(p, &current, now)
		assert.Equal(t, WindowEnds, w.Phase(now))
		assert.Equal(t, now.Add(600*time.Second), w.End)
	})

	t.Run("unknown current block", func(t *testing.T) {
		p := &models.Proposal{StartBlock: 800, EndBlock: 900}
		w := EstimateVotingWindow(p, nil, now)
		assert.False(t, w.Known)
		_, ok := w.PhaseTime(now)
		assert.False(t, ok)
	})
}

func TestCountdownTarget(t *testing.T) {
	now := time.Now()
	p := &models.Proposal{EndBlock: 110}
	at, ok := CountdownTarget(p, 100, now)
	assert.True(t, ok)
	assert.Equal(t, now.Add(120*time.Second), at)

	_, ok = CountdownTarget(p, 0, now)
	assert.False(t, ok)
}
