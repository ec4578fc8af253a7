package loot

import (
	"fmt"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/rng"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
)

// RollStatBonus returns the primary stat bonus for an item of the given
// rarity. The range scales with the rarity ordinal: common rolls 1-3,
// legendary rolls 5-13.
func RollStatBonus(r Rarity, src rng.Source) int {
	min := 1 + int(r)
	max := 3 + 2*int(r)
	return min + src.Intn(max-min+1)
}

// secondaryChance is the probability a rolled item carries a second
// stat, per rarity ordinal.
func secondaryChance(r Rarity) float64 {
	return 0.10 + 0.15*float64(r)
}

// RollSecondaryStat optionally attaches a second stat to an item.
// Higher rarity means a higher chance and a larger bonus. The result is
// never the primary stat. Returns false when no secondary stat rolls.
func RollSecondaryStat(r Rarity, primary stats.Attribute, src rng.Source) (stats.Attribute, int, bool) {
	if !src.Chance(secondaryChance(r)) {
		return 0, 0, false
	}

	// Pick uniformly among the other five attributes.
	pick := src.Intn(len(stats.Attributes) - 1)
	attr := stats.Attributes[pick]
	if attr == primary {
		attr = stats.Attributes[len(stats.Attributes)-1]
	}

	bonus := 1 + src.Intn(1+int(r))
	return attr, bonus, true
}

// Namer supplies the word pools used to compose item names and
// descriptions. Catalog data can replace any pool; missing pools fall
// back to the built-in defaults.
type Namer struct {
	Prefixes map[Rarity][]string
	Nouns    map[Slot][]string
	Suffixes map[stats.Attribute]string
}

// DefaultNamer returns the built-in word pools.
func DefaultNamer() *Namer {
	return &Namer{
		Prefixes: map[Rarity][]string{
			Common:    {"Worn", "Plain", "Simple"},
			Uncommon:  {"Sturdy", "Polished", "Keen"},
			Rare:      {"Fine", "Gleaming", "Runed"},
			Epic:      {"Heroic", "Radiant", "Stormforged"},
			Legendary: {"Mythic", "Eternal", "Dragonbound"},
		},
		Nouns: map[Slot][]string{
			SlotWeapon:    {"Blade", "Warhammer", "Longbow", "Staff"},
			SlotHead:      {"Helm", "Circlet", "Hood"},
			SlotBody:      {"Cuirass", "Robe", "Hauberk"},
			SlotHands:     {"Gauntlets", "Gloves", "Bracers"},
			SlotFeet:      {"Greaves", "Boots", "Treads"},
			SlotAccessory: {"Ring", "Amulet", "Charm"},
		},
		Suffixes: map[stats.Attribute]string{
			stats.Strength:  "of Might",
			stats.Dexterity: "of Grace",
			stats.Wisdom:    "of Insight",
			stats.Charisma:  "of Presence",
			stats.Defense:   "of Warding",
			stats.Luck:      "of Fortune",
		},
	}
}

func (n *Namer) prefix(r Rarity, src rng.Source) string {
	pool := n.Prefixes[r]
	if len(pool) == 0 {
		pool = DefaultNamer().Prefixes[r]
	}
	return pool[src.Intn(len(pool))]
}

func (n *Namer) noun(s Slot, src rng.Source) string {
	pool := n.Nouns[s]
	if len(pool) == 0 {
		pool = DefaultNamer().Nouns[s]
	}
	return pool[src.Intn(len(pool))]
}

func (n *Namer) suffix(a stats.Attribute) string {
	if s, ok := n.Suffixes[a]; ok {
		return s
	}
	return DefaultNamer().Suffixes[a]
}

// Roller generates complete items from a content tier and a luck value.
type Roller struct {
	Namer *Namer
	Pity  *PityGuard // optional dry-streak protection
}

// NewRoller creates a roller with the default word pools and no pity
// protection.
func NewRoller() *Roller {
	return &Roller{Namer: DefaultNamer()}
}

// Roll generates one item. The rarity roll respects the tier's cap and
// the luck bias; slot and primary stat are drawn uniformly.
func (ro *Roller) Roll(tier, luck int, src rng.Source) Item {
	rarity := RollRarity(tier, luck, src)
	if ro.Pity != nil {
		rarity = ro.Pity.Apply(rarity)
	}
	slot := Slots[src.Intn(len(Slots))]
	primary := stats.Attributes[src.Intn(len(stats.Attributes))]
	return ro.build(rarity, slot, primary, src)
}

// RollWithFloor generates an item whose rarity is at least floor,
// used for rewards that guarantee quality (raid defeats). The roll
// still respects the tier cap when the cap sits above the floor.
func (ro *Roller) RollWithFloor(tier, luck int, floor Rarity, src rng.Source) Item {
	rarity := RollRarity(tier, luck, src)
	if rarity < floor {
		rarity = floor
	}
	slot := Slots[src.Intn(len(Slots))]
	primary := stats.Attributes[src.Intn(len(stats.Attributes))]
	return ro.build(rarity, slot, primary, src)
}

// RollForSlot generates an item for a fixed slot, used for targeted
// drops such as raid rewards.
func (ro *Roller) RollForSlot(tier, luck int, slot Slot, src rng.Source) Item {
	rarity := RollRarity(tier, luck, src)
	if ro.Pity != nil {
		rarity = ro.Pity.Apply(rarity)
	}
	primary := stats.Attributes[src.Intn(len(stats.Attributes))]
	return ro.build(rarity, slot, primary, src)
}

func (ro *Roller) build(rarity Rarity, slot Slot, primary stats.Attribute, src rng.Source) Item {
	namer := ro.Namer
	if namer == nil {
		namer = DefaultNamer()
	}

	bonus := RollStatBonus(rarity, src)
	item := Item{
		Slot:    slot,
		Rarity:  rarity,
		Primary: primary,
		Bonus:   bonus,
	}

	if attr, secBonus, ok := RollSecondaryStat(rarity, primary, src); ok {
		item.HasSecondary = true
		item.Secondary = attr
		item.SecondaryBon = secBonus
	}

	item.Name = fmt.Sprintf("%s %s %s", namer.prefix(rarity, src), namer.noun(slot, src), namer.suffix(primary))
	item.Description = fmt.Sprintf("A %s %s that grants +%d %s.", rarity, slot, bonus, primary)
	if item.HasSecondary {
		item.Description += fmt.Sprintf(" It also carries +%d %s.", item.SecondaryBon, item.Secondary)
	}
	item.Value = priceFor(rarity, bonus)
	return item
}

// priceFor derives a gold value from rarity and the rolled bonus.
func priceFor(r Rarity, bonus int) int {
	return 50*(int(r)+1) + 5*bonus
}
