package loot

// PityGuard upgrades a roll to at least Rare once a dry streak reaches
// its threshold, then resets. A threshold of zero disables the guard.
type PityGuard struct {
	Threshold int
	count     int
}

// pityFloor is the minimum rarity a triggered guard produces.
const pityFloor = Rare

// NewPityGuard creates a guard that triggers after threshold
// consecutive below-Rare rolls.
func NewPityGuard(threshold int) *PityGuard {
	return &PityGuard{Threshold: threshold}
}

// Apply feeds one rolled rarity through the guard. Rolls at or above
// Rare reset the streak; below-Rare rolls extend it, and the roll that
// would reach the threshold is upgraded to the floor.
func (p *PityGuard) Apply(r Rarity) Rarity {
	if p.Threshold <= 0 {
		return r
	}
	if r >= pityFloor {
		p.count = 0
		return r
	}
	p.count++
	if p.count >= p.Threshold {
		p.count = 0
		return pityFloor
	}
	return r
}

// Count returns the current dry-streak length.
func (p *PityGuard) Count() int {
	return p.count
}
