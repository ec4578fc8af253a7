package balance

import (
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/rng"
)

// RarityDistribution samples the rarity roll and returns the observed
// fraction per rarity for a given content tier and luck value.
func RarityDistribution(tier, luck, trials int, seed uint64) map[loot.Rarity]float64 {
	src := rng.New(seed)
	counts := make(map[loot.Rarity]int)
	for i := 0; i < trials; i++ {
		counts[loot.RollRarity(tier, luck, src)]++
	}

	dist := make(map[loot.Rarity]float64, len(counts))
	for r, n := range counts {
		dist[r] = float64(n) / float64(trials)
	}
	return dist
}

// AvgItemValue samples full item rolls and returns the mean gold value.
func AvgItemValue(tier, luck, trials int, seed uint64) float64 {
	src := rng.New(seed)
	roller := loot.NewRoller()
	total := 0
	for i := 0; i < trials; i++ {
		total += roller.Roll(tier, luck, src).Value
	}
	return float64(total) / float64(trials)
}
