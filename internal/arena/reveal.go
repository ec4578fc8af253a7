package arena

import "time"

// Reveal is the display-side throttle over a finished run: results are
// computed up front but surface one step at a time over real time.
// This is purely presentational and never changes resolution outcomes.

// RevealedCount returns how many results are visible at the given
// wall-clock time: one more step per SecondsPerStep since the run
// started.
func (r *RunState) RevealedCount(at time.Time) int {
	if r.secondsPerStep <= 0 || !at.After(r.StartedAt) {
		return 0
	}
	elapsed := at.Sub(r.StartedAt)
	n := int(elapsed / (time.Duration(r.secondsPerStep) * time.Second))
	if n > len(r.Results) {
		n = len(r.Results)
	}
	return n
}

// RevealedResults returns the visible prefix of the result list.
func (r *RunState) RevealedResults(at time.Time) []EncounterResult {
	return r.Results[:r.RevealedCount(at)]
}

// FullyRevealed reports whether every result is visible.
func (r *RunState) FullyRevealed(at time.Time) bool {
	return r.RevealedCount(at) == len(r.Results)
}

// NextRevealAt returns when the next hidden result becomes visible,
// or the zero time if everything is already visible. A run with no
// pacing can never reveal, so it also reports the zero time.
func (r *RunState) NextRevealAt(at time.Time) time.Time {
	if r.secondsPerStep <= 0 {
		return time.Time{}
	}
	n := r.RevealedCount(at)
	if n >= len(r.Results) {
		return time.Time{}
	}
	return r.StartedAt.Add(time.Duration((n+1)*r.secondsPerStep) * time.Second)
}
