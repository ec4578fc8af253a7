// Package arena drives the wave/run simulator: it resolves a bounded
// sequence of encounters in one synchronous pass and records every
// outcome. A run's results are computed up front; the reveal schedule
// only controls when they become visible.
package arena

import (
	"time"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/encounter"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"
	"github.com/google/uuid"
)

// Status is a run's lifecycle state. Transitions are one-way:
// InProgress to either Completed or Failed.
type Status int

const (
	InProgress Status = iota
	Completed
	Failed
)

// String returns the status's lowercase name.
func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "in_progress"
	}
}

// EncounterResult is the immutable record of one resolved encounter.
type EncounterResult struct {
	Index      int
	Name       string
	Category   encounter.Category
	Approach   string
	Success    bool
	Roll       float64
	Power      float64
	Difficulty int
	EXP        int
	Gold       int
	HPLost     int
	Narrative  string
	// Milestone marks results that triggered a milestone claim.
	Milestone     bool
	MilestoneGold int
	Drops         []loot.Item
}

// RunState accumulates a simulated run. It is written only by the
// simulator and becomes immutable once Status leaves InProgress.
type RunState struct {
	ID           uuid.UUID
	Character    string
	Status       Status
	CurrentHP    int
	MaxHP        int
	TotalEXP     int
	TotalGold    int
	Results      []EncounterResult
	HighestIndex int

	StartedAt time.Time
	// VirtualDuration is steps resolved times seconds per step; the
	// run "takes" this long from the player's point of view.
	VirtualDuration time.Duration
	// CompletesAt is when the final result becomes visible.
	CompletesAt time.Time

	secondsPerStep int
}

// Terminal reports whether the run has reached a final status.
func (r *RunState) Terminal() bool {
	return r.Status != InProgress
}

// RestorePacing recomputes the reveal pacing for a run rebuilt from
// storage, deriving it from the stored timestamps. Without it a loaded
// run would never reveal anything.
func (r *RunState) RestorePacing() {
	if len(r.Results) == 0 {
		return
	}
	total := int(r.CompletesAt.Sub(r.StartedAt).Seconds())
	if total <= 0 {
		return
	}
	r.secondsPerStep = total / len(r.Results)
}
