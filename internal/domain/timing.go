package domain

import (
	"time"

	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

// AverageBlockTimeInSecs is the mainnet average block time used to project
// block numbers onto wall-clock time.
const AverageBlockTimeInSecs = 12

// EstimateBlockTime projects block onto wall-clock time relative to
// currentBlock observed at now. Past blocks land in the past.
func EstimateBlockTime(now time.Time, block, currentBlock uint64) time.Time {
	delta := int64(block) - int64(currentBlock)
	return now.Add(time.Duration(delta*AverageBlockTimeInSecs) * time.Second)
}

// WindowPhase is the copy shown above the voting window date
type WindowPhase string

const (
	WindowStarts WindowPhase = "Starts"
	WindowEnds   WindowPhase = "Ends"
	WindowEnded  WindowPhase = "Ended"
)

// VotingWindow is a proposal's estimated start and end times
type VotingWindow struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
	Known bool      `json:"known" yaml:"known"`
}

// EstimateVotingWindow projects the proposal's start block and its final
// voting block (objection period end if set) onto wall-clock time. The window
// is unknown when the current block is.
func EstimateVotingWindow(p *models.Proposal, currentBlock *uint64, now time.Time) VotingWindow {
	if p == nil || currentBlock == nil || *currentBlock == 0 {
		return VotingWindow{}
	}
	return VotingWindow{
		Start: EstimateBlockTime(now, p.StartBlock, *currentBlock),
		End:   EstimateBlockTime(now, p.VotingEndBlock(), *currentBlock),
		Known: true,
	}
}

// Phase returns whether voting starts, ends or has ended relative to now
func (w VotingWindow) Phase(now time.Time) WindowPhase {
	if !w.Known {
		return WindowStarts
	}
	if w.Start.Before(now) && w.End.After(now) {
		return WindowEnds
	}
	if w.End.Before(now) {
		return WindowEnded
	}
	return WindowStarts
}

// PhaseTime returns the start time until voting has started, then the end time
func (w VotingWindow) PhaseTime(now time.Time) (time.Time, bool) {
	if !w.Known {
		return time.Time{}, false
	}
	if !w.Start.Before(now) {
		return w.Start, true
	}
	return w.End, true
}

// CountdownTarget is the estimated time of the proposal's end block, the
// reference for "can be edited/canceled for the next ..." copy.
func CountdownTarget(p *models.Proposal, currentBlock uint64, now time.Time) (time.Time, bool) {
	if p == nil || currentBlock == 0 {
		return time.Time{}, false
	}
	return EstimateBlockTime(now, p.EndBlock, currentBlock), true
}
