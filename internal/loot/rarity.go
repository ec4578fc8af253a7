package loot

import "github.com/Hosea1989/CouplesQuest-App-sub001/internal/rng"

// Rarity is the ordered loot quality tier.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary
)

// Rarities lists all tiers from most to least common.
var Rarities = []Rarity{Common, Uncommon, Rare, Epic, Legendary}

// String returns the rarity's lowercase name, matching catalog YAML keys.
func (r Rarity) String() string {
	switch r {
	case Common:
		return "common"
	case Uncommon:
		return "uncommon"
	case Rare:
		return "rare"
	case Epic:
		return "epic"
	case Legendary:
		return "legendary"
	default:
		return "common"
	}
}

// ParseRarity converts a catalog string to a Rarity. Unknown strings map
// to Common.
func ParseRarity(s string) Rarity {
	switch s {
	case "uncommon":
		return Uncommon
	case "rare":
		return Rare
	case "epic":
		return Epic
	case "legendary":
		return Legendary
	default:
		return Common
	}
}

// baseWeights is the luckless probability mass per rarity ordinal.
var baseWeights = [...]float64{60, 25, 10, 4, 1}

// luckWeightStep is how much one point of luck inflates a rarity's
// weight per ordinal. Kept small so luck biases rolls without ever
// unlocking tiers the content tier does not permit.
const luckWeightStep = 0.02

// MaxRarityForTier returns the rarest quality a content tier can drop.
// Tier 1 drops only common; tier 5 and above can drop legendary.
func MaxRarityForTier(tier int) Rarity {
	if tier < 1 {
		tier = 1
	}
	if tier > len(Rarities) {
		tier = len(Rarities)
	}
	return Rarities[tier-1]
}

// RollRarity selects a rarity for the given content tier and luck value.
// Higher luck shifts probability mass toward rarer tiers; the result
// never exceeds what the tier permits. The roll always yields exactly
// one rarity.
func RollRarity(tier, luck int, src rng.Source) Rarity {
	if luck < 0 {
		luck = 0
	}
	cap := MaxRarityForTier(tier)

	total := 0.0
	weights := make([]float64, int(cap)+1)
	for r := Common; r <= cap; r++ {
		w := baseWeights[r] * (1 + float64(luck)*luckWeightStep*float64(r))
		weights[r] = w
		total += w
	}

	roll := src.Float64() * total
	acc := 0.0
	for r := Common; r <= cap; r++ {
		acc += weights[r]
		if roll < acc {
			return r
		}
	}
	return cap
}
