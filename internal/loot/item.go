package loot

import (
	"fmt"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
)

// Slot represents where a generated item is worn.
type Slot int

const (
	SlotWeapon Slot = iota
	SlotHead
	SlotBody
	SlotHands
	SlotFeet
	SlotAccessory
)

// Slots lists all equipment slots in generation order.
var Slots = []Slot{SlotWeapon, SlotHead, SlotBody, SlotHands, SlotFeet, SlotAccessory}

// String returns the slot's lowercase name.
func (s Slot) String() string {
	switch s {
	case SlotWeapon:
		return "weapon"
	case SlotHead:
		return "head"
	case SlotBody:
		return "body"
	case SlotHands:
		return "hands"
	case SlotFeet:
		return "feet"
	case SlotAccessory:
		return "accessory"
	default:
		return "weapon"
	}
}

// Item is a generated piece of equipment. Immutable once rolled.
type Item struct {
	Name        string
	Description string
	Slot        Slot
	Rarity      Rarity
	Primary     stats.Attribute
	Bonus       int
	// Secondary stat, present only when HasSecondary is true.
	HasSecondary bool
	Secondary    stats.Attribute
	SecondaryBon int
	Value        int // gold price
}

// BonusStats returns the item's stat contribution for effective-stat
// aggregation.
func (i Item) BonusStats() stats.Stats {
	var s stats.Stats
	add := func(a stats.Attribute, v int) {
		switch a {
		case stats.Strength:
			s.Strength += v
		case stats.Dexterity:
			s.Dexterity += v
		case stats.Wisdom:
			s.Wisdom += v
		case stats.Charisma:
			s.Charisma += v
		case stats.Defense:
			s.Defense += v
		case stats.Luck:
			s.Luck += v
		}
	}
	add(i.Primary, i.Bonus)
	if i.HasSecondary {
		add(i.Secondary, i.SecondaryBon)
	}
	return s
}

// String returns a short display form of the item.
func (i Item) String() string {
	return fmt.Sprintf("%s (%s %s, +%d %s)", i.Name, i.Rarity, i.Slot, i.Bonus, i.Primary)
}
