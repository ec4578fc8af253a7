package curve

import "github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"

// MilestoneReward describes what clearing a milestone index grants.
type MilestoneReward struct {
	Gold       int
	DropChance float64
	MaxRarity  loot.Rarity
}

// denseMilestoneLimit is the last index where milestones come every 5
// waves; beyond it they come every 10.
const denseMilestoneLimit = 25

// maxDropChance caps bonus drop odds for open-ended late milestones.
const maxDropChance = 0.5

// IsMilestone reports whether an index grants a milestone reward:
// every 5th index up to 25, every 10th thereafter.
func IsMilestone(index int) bool {
	if index <= 0 {
		return false
	}
	if index <= denseMilestoneLimit {
		return index%5 == 0
	}
	return index%10 == 0
}

// milestoneTable covers the hand-tuned early milestones.
var milestoneTable = map[int]MilestoneReward{
	5:  {Gold: 50, DropChance: 0.15, MaxRarity: loot.Uncommon},
	10: {Gold: 100, DropChance: 0.20, MaxRarity: loot.Rare},
	15: {Gold: 150, DropChance: 0.30, MaxRarity: loot.Rare},
	20: {Gold: 200, DropChance: 0.40, MaxRarity: loot.Epic},
	25: {Gold: 300, DropChance: 0.50, MaxRarity: loot.Legendary},
}

// RewardFor returns the milestone reward for an index. Indices past the
// fixed table scale open-endedly: tier = (index-25)/10, gold grows 100
// per tier, drop chance is capped.
func RewardFor(index int) (MilestoneReward, bool) {
	if !IsMilestone(index) {
		return MilestoneReward{}, false
	}
	if r, ok := milestoneTable[index]; ok {
		return r, true
	}

	tier := (index - denseMilestoneLimit) / 10
	chance := 0.30 + 0.05*float64(tier)
	if chance > maxDropChance {
		chance = maxDropChance
	}
	return MilestoneReward{
		Gold:       300 + 100*tier,
		DropChance: chance,
		MaxRarity:  loot.Legendary,
	}, true
}
