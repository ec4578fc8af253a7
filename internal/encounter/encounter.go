// Package encounter generates and resolves single combat/challenge
// units. Encounters are created synthetically from a progression index
// and are immutable once generated.
package encounter

import (
	"fmt"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/curve"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/modifier"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
)

// Category tags the kind of challenge an encounter poses.
type Category int

const (
	Combat Category = iota
	Puzzle
	Trap
	Boss
)

// String returns the category's lowercase name.
func (c Category) String() string {
	switch c {
	case Combat:
		return "combat"
	case Puzzle:
		return "puzzle"
	case Trap:
		return "trap"
	case Boss:
		return "boss"
	default:
		return "combat"
	}
}

// categoryCycle is the fixed rotation non-milestone waves draw from.
var categoryCycle = []Category{Combat, Puzzle, Combat, Trap}

// CategoryFor selects the category for an index: the fixed cycle by
// index position, with bosses forced on milestone indices or by the
// all-boss modifier.
func CategoryFor(index int, mods modifier.Set) Category {
	if mods.AllBossEncounters {
		return Boss
	}
	if curve.IsMilestone(index) {
		return Boss
	}
	if index < 1 {
		index = 1
	}
	return categoryCycle[(index-1)%len(categoryCycle)]
}

// Encounter describes one challenge unit.
type Encounter struct {
	Index      int
	Name       string
	Category   Category
	Difficulty int
	// Primary is the stat the encounter tests.
	Primary stats.Attribute
	// BonusLootChance is the odds of an extra drop on success.
	BonusLootChance float64
	// SuccessPool and FailurePool are the narrative lines to draw from.
	SuccessPool []string
	FailurePool []string
}

// Pools supplies the name and narrative pools used during generation.
// Catalog data can replace any pool; empty pools fall back to the
// built-in defaults.
type Pools struct {
	Names     map[Category][]string
	BossNames []string
	Success   []string
	Failure   []string
}

// DefaultPools returns the built-in generation pools.
func DefaultPools() *Pools {
	return &Pools{
		Names: map[Category][]string{
			Combat: {"Gnoll Skirmishers", "Bandit Ambush", "Feral Pack", "Rusted Sentinels"},
			Puzzle: {"Sealed Rune Door", "Mirror Labyrinth", "Clockwork Riddle"},
			Trap:   {"Collapsing Corridor", "Poison Dart Gallery", "Shifting Floor"},
		},
		BossNames: []string{"Warden of the Depths", "The Hollow King", "Maw of Embers", "Gravetide Colossus"},
		Success: []string{
			"The way forward opens.",
			"A clean victory, barely a scratch.",
			"Skill carries the day.",
		},
		Failure: []string{
			"Driven back, bruised and winded.",
			"The attempt goes badly wrong.",
			"A costly misstep.",
		},
	}
}

// primaryFor maps a category to the stat it tests.
func primaryFor(c Category) stats.Attribute {
	switch c {
	case Puzzle:
		return stats.Wisdom
	case Trap:
		return stats.Dexterity
	default:
		return stats.Strength
	}
}

// bonusLootFor maps a category to its extra-drop odds.
func bonusLootFor(c Category) float64 {
	switch c {
	case Trap:
		return 0.15
	case Boss:
		return 0.25
	default:
		return 0.10
	}
}

// Generate builds the encounter for a progression index. Generation is
// pure: the same index and modifiers always produce the same encounter.
func Generate(index int, mods modifier.Set, pools *Pools) Encounter {
	if index < 1 {
		index = 1
	}
	if pools == nil {
		pools = DefaultPools()
	}

	cat := CategoryFor(index, mods)
	name := nameFor(index, cat, pools)

	success := pools.Success
	if len(success) == 0 {
		success = DefaultPools().Success
	}
	failure := pools.Failure
	if len(failure) == 0 {
		failure = DefaultPools().Failure
	}

	return Encounter{
		Index:           index,
		Name:            name,
		Category:        cat,
		Difficulty:      curve.Difficulty(index),
		Primary:         primaryFor(cat),
		BonusLootChance: bonusLootFor(cat),
		SuccessPool:     success,
		FailurePool:     failure,
	}
}

func nameFor(index int, cat Category, pools *Pools) string {
	if cat == Boss {
		pool := pools.BossNames
		if len(pool) == 0 {
			pool = DefaultPools().BossNames
		}
		return fmt.Sprintf("%s (Wave %d)", pool[(index-1)%len(pool)], index)
	}
	pool := pools.Names[cat]
	if len(pool) == 0 {
		pool = DefaultPools().Names[cat]
	}
	return pool[(index-1)%len(pool)]
}
