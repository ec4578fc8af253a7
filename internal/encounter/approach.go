package encounter

import (
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/modifier"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
)

// Approach is one resolution strategy for an encounter: a stat focus,
// a power modifier applied to computed power, and a risk modifier
// applied to damage on failure.
type Approach struct {
	Name string
	// Focus is the stat this approach leans on. Valid only when
	// HasFocus is true; a focusless approach falls back to raw power.
	Focus    stats.Attribute
	HasFocus bool
	// PowerModifier scales computed power. Values above 1.1 mark a
	// risky approach and earn a reward bonus on success.
	PowerModifier float64
	// RiskModifier scales damage taken on failure.
	RiskModifier float64
}

// riskyThreshold is the power modifier above which an approach counts
// as risky and earns a success reward bonus.
const riskyThreshold = 1.1

// StandardApproaches is the slate offered for every encounter.
var StandardApproaches = []Approach{
	{Name: "aggressive", Focus: stats.Strength, HasFocus: true, PowerModifier: 1.2, RiskModifier: 1.5},
	{Name: "nimble", Focus: stats.Dexterity, HasFocus: true, PowerModifier: 1.05, RiskModifier: 0.9},
	{Name: "clever", Focus: stats.Wisdom, HasFocus: true, PowerModifier: 1.0, RiskModifier: 1.0},
	{Name: "bold", Focus: stats.Charisma, HasFocus: true, PowerModifier: 1.15, RiskModifier: 1.2},
	{Name: "guarded", Focus: stats.Defense, HasFocus: true, PowerModifier: 0.9, RiskModifier: 0.7},
}

// SelectApproach picks the approach whose focus stat the character is
// strongest in. Greedy by stat value, deliberately not expected-value
// optimal. A stat-focus modifier override wins outright when some
// approach focuses the overridden stat.
func SelectApproach(eff stats.Stats, approaches []Approach, mods modifier.Set) Approach {
	if len(approaches) == 0 {
		approaches = StandardApproaches
	}

	if focus, ok := mods.FocusAttribute(); ok {
		for _, ap := range approaches {
			if ap.HasFocus && ap.Focus == focus {
				return ap
			}
		}
	}

	best := approaches[0]
	bestVal := -1
	for _, ap := range approaches {
		if !ap.HasFocus {
			continue
		}
		if v := eff.Get(ap.Focus); v > bestVal {
			best = ap
			bestVal = v
		}
	}
	return best
}

// ComputePower turns effective stats and a chosen approach into the
// scalar compared against difficulty. A focusless approach contributes
// raw power with no modifier. The stat-focus modifier adds extra weight
// to the focused stat.
func ComputePower(eff stats.Stats, ap Approach, mods modifier.Set) float64 {
	power := float64(eff.Power())

	if focus, ok := mods.FocusAttribute(); ok && mods.StatFocusMultiplier > 1 {
		power += float64(eff.Get(focus)) * (mods.StatFocusMultiplier - 1)
	}

	if ap.HasFocus {
		power *= ap.PowerModifier
	}
	return power * mods.DamageDealMultiplier
}

// RewardBonus returns the multiplicative success bonus for risky
// approaches: 1.0 for safe approaches, growing with how far the power
// modifier sits above the risky threshold.
func RewardBonus(ap Approach) float64 {
	if !ap.HasFocus || ap.PowerModifier <= riskyThreshold {
		return 1.0
	}
	return 1.0 + (ap.PowerModifier - riskyThreshold)
}
