// Package modifier holds the tunable multipliers and overrides an
// active event or buff applies to simulation runs.
package modifier

import "github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"

// Set is one group of active modifiers. Unset options are neutral:
// multipliers 1.0, overrides absent, flags false.
type Set struct {
	// DamageDealMultiplier scales the party's computed power.
	DamageDealMultiplier float64 `yaml:"damage_deal_multiplier"`

	// DamageTakenMultiplier scales damage taken on failed encounters.
	DamageTakenMultiplier float64 `yaml:"damage_taken_multiplier"`

	// StartingHPOverride replaces the character's HP at run start.
	// 0 means no override.
	StartingHPOverride int `yaml:"starting_hp_override"`

	// HPRegenPerStep is flat HP restored between encounters.
	HPRegenPerStep int `yaml:"hp_regen_per_step"`

	// GoldMultiplier scales gold rewards.
	GoldMultiplier float64 `yaml:"gold_multiplier"`

	// EXPMultiplier scales experience rewards.
	EXPMultiplier float64 `yaml:"exp_multiplier"`

	// AllBossEncounters forces every generated encounter to the boss
	// category.
	AllBossEncounters bool `yaml:"all_boss_encounters"`

	// StatFocus names an attribute that overrides approach focus
	// selection. Empty means no override.
	StatFocus string `yaml:"stat_focus"`

	// StatFocusMultiplier scales the focused stat's contribution when
	// StatFocus is set.
	StatFocusMultiplier float64 `yaml:"stat_focus_multiplier"`
}

// Neutral returns a Set with every option at its no-op value.
func Neutral() Set {
	return Set{
		DamageDealMultiplier:  1.0,
		DamageTakenMultiplier: 1.0,
		GoldMultiplier:        1.0,
		EXPMultiplier:         1.0,
		StatFocusMultiplier:   1.0,
	}
}

// Normalized returns a copy with zero-valued multipliers replaced by
// 1.0, so a partially filled YAML block behaves as documented.
func (s Set) Normalized() Set {
	if s.DamageDealMultiplier == 0 {
		s.DamageDealMultiplier = 1.0
	}
	if s.DamageTakenMultiplier == 0 {
		s.DamageTakenMultiplier = 1.0
	}
	if s.GoldMultiplier == 0 {
		s.GoldMultiplier = 1.0
	}
	if s.EXPMultiplier == 0 {
		s.EXPMultiplier = 1.0
	}
	if s.StatFocusMultiplier == 0 {
		s.StatFocusMultiplier = 1.0
	}
	return s
}

// FocusAttribute returns the stat-focus override, if any.
func (s Set) FocusAttribute() (stats.Attribute, bool) {
	if s.StatFocus == "" {
		return 0, false
	}
	return stats.ParseAttribute(s.StatFocus), true
}
