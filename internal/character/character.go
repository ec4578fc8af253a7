// Package character holds the mutable character snapshot the engine
// writes through during a run: EXP, gold and HP. Effective stats are
// recomputed on demand and never stored.
package character

import (
	"math"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
)

// Leveling constants
const (
	MaxLevel   = 50
	HPPerLevel = 10
)

// XPForLevel returns the total EXP required to reach a given level.
// Uses polynomial curve: 100 * level^1.5
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(100 * math.Pow(float64(level), 1.5))
}

// XPToNextLevel returns EXP needed from current level to the next.
func XPToNextLevel(currentLevel int) int {
	if currentLevel >= MaxLevel {
		return 0
	}
	return XPForLevel(currentLevel+1) - XPForLevel(currentLevel)
}

// Sheet is a character snapshot. Callers must serialize concurrent
// simulations against the same sheet; the engine does not lock it.
type Sheet struct {
	Name      string
	Level     int
	EXP       int
	Gold      int
	CurrentHP int
	MaxHP     int
	Base      stats.Stats
	Equipment []loot.Item
	Buffs     []stats.Stats
}

// NewSheet creates a level-1 character with the given base stats and
// max HP, starting at full health.
func NewSheet(name string, base stats.Stats, maxHP int) *Sheet {
	return &Sheet{
		Name:      name,
		Level:     1,
		CurrentHP: maxHP,
		MaxHP:     maxHP,
		Base:      base,
	}
}

// EffectiveStats returns base + equipment bonuses + active buffs,
// clamped non-negative.
func (s *Sheet) EffectiveStats() stats.Stats {
	equip := make([]stats.Stats, 0, len(s.Equipment))
	for _, item := range s.Equipment {
		equip = append(equip, item.BonusStats())
	}
	return stats.Effective(s.Base, equip, s.Buffs)
}

// Power returns the scalar power of the current effective stats.
func (s *Sheet) Power() int {
	return s.EffectiveStats().Power()
}

// GainEXP adds experience and applies any level-ups, growing max HP
// per level gained. Returns the number of levels gained.
func (s *Sheet) GainEXP(exp int) int {
	if exp <= 0 {
		return 0
	}
	s.EXP += exp

	gained := 0
	for s.Level < MaxLevel && s.EXP >= XPForLevel(s.Level+1) {
		s.Level++
		s.MaxHP += HPPerLevel
		s.CurrentHP += HPPerLevel
		gained++
	}
	return gained
}

// AddGold credits gold. Negative amounts are ignored; spending goes
// through Spend.
func (s *Sheet) AddGold(gold int) {
	if gold > 0 {
		s.Gold += gold
	}
}

// Spend debits gold if the balance covers it.
func (s *Sheet) Spend(gold int) bool {
	if gold < 0 || s.Gold < gold {
		return false
	}
	s.Gold -= gold
	return true
}

// ApplyDamage reduces current HP, never below zero. Returns the new
// current HP.
func (s *Sheet) ApplyDamage(dmg int) int {
	if dmg > 0 {
		s.CurrentHP -= dmg
		if s.CurrentHP < 0 {
			s.CurrentHP = 0
		}
	}
	return s.CurrentHP
}

// Heal restores current HP, clamped to max HP.
func (s *Sheet) Heal(hp int) {
	if hp <= 0 {
		return
	}
	s.CurrentHP += hp
	if s.CurrentHP > s.MaxHP {
		s.CurrentHP = s.MaxHP
	}
}

// Equip adds an item to the worn equipment, replacing any item already
// in its slot.
func (s *Sheet) Equip(item loot.Item) {
	for i, worn := range s.Equipment {
		if worn.Slot == item.Slot {
			s.Equipment[i] = item
			return
		}
	}
	s.Equipment = append(s.Equipment, item)
}
