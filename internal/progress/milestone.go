// Package progress tracks claimed milestone rewards and habit streaks.
// Both guarantee at-most-once semantics: a milestone index is claimed
// once per ledger, and a streak increments once per calendar day.
package progress

import "github.com/Hosea1989/CouplesQuest-App-sub001/internal/curve"

// Ledger records which milestone indices have been claimed. One ledger
// belongs to one run or one entity; it is not safe for concurrent use.
type Ledger struct {
	claimed map[int]bool
}

// NewLedger creates an empty milestone ledger.
func NewLedger() *Ledger {
	return &Ledger{claimed: make(map[int]bool)}
}

// Claim returns the reward for a milestone index, or nil if the index
// is not a milestone or was already claimed. Idempotent: re-claiming is
// a no-op.
func (l *Ledger) Claim(index int) *curve.MilestoneReward {
	if l.claimed[index] {
		return nil
	}
	reward, ok := curve.RewardFor(index)
	if !ok {
		return nil
	}
	l.claimed[index] = true
	return &reward
}

// Claimed reports whether an index has been claimed.
func (l *Ledger) Claimed(index int) bool {
	return l.claimed[index]
}

// Count returns how many milestones have been claimed.
func (l *Ledger) Count() int {
	return len(l.claimed)
}

// ClaimedIndices returns the claimed indices in no particular order.
func (l *Ledger) ClaimedIndices() []int {
	out := make([]int, 0, len(l.claimed))
	for i := range l.claimed {
		out = append(out, i)
	}
	return out
}
