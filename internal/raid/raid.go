// Package raid resolves weekly raid bosses: a shared HP pool that
// party runs chip away at. The boss's identity rotates weekly from a
// date-derived seed, so every player faces the same boss in a given
// week.
package raid

import (
	"time"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/arena"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/rng"
)

// Template describes a raid boss archetype from the catalog.
type Template struct {
	Name   string
	BaseHP int
	// Tier sets the rarity ceiling of defeat rewards.
	Tier int
}

// DefaultTemplates is the built-in boss roster used when no catalog is
// loaded.
var DefaultTemplates = []Template{
	{Name: "Ashen Tyrant", BaseHP: 50000, Tier: 4},
	{Name: "The Drowned Choir", BaseHP: 65000, Tier: 4},
	{Name: "Starveling Wyrm", BaseHP: 80000, Tier: 5},
	{Name: "Herald of Rust", BaseHP: 60000, Tier: 5},
}

// rewardFloor is the minimum rarity a raid defeat reward rolls.
const rewardFloor = loot.Epic

// WeekSeed derives a deterministic seed from the ISO week of t.
func WeekSeed(t time.Time) uint64 {
	year, week := t.ISOWeek()
	return uint64(year)*100 + uint64(week)
}

// Boss is one week's raid boss instance.
type Boss struct {
	Template Template
	Week     uint64
	MaxHP    int
	// damage tracks total damage contributed per party.
	damage map[string]int
	total  int
}

// DefaultHPVariancePercent is the HP spread applied when the caller
// passes a non-positive variance.
const DefaultHPVariancePercent = 20

// BossOfWeek selects and scales the boss for the week containing t.
// Deterministic: every caller sees the same boss for the same week.
// variancePercent widens the HP pool by up to that percentage so
// repeat bosses differ week over week.
func BossOfWeek(t time.Time, templates []Template, variancePercent int) *Boss {
	if len(templates) == 0 {
		templates = DefaultTemplates
	}
	if variancePercent <= 0 {
		variancePercent = DefaultHPVariancePercent
	}
	seed := WeekSeed(t)
	src := rng.New(seed)

	tpl := templates[src.Intn(len(templates))]
	hp := tpl.BaseHP + src.Intn(tpl.BaseHP*variancePercent/100+1)

	return &Boss{
		Template: tpl,
		Week:     seed,
		MaxHP:    hp,
		damage:   make(map[string]int),
	}
}

// DamageFor converts a finished run's performance into raid damage:
// the sum of computed power over cleared waves. Risky approaches and
// deep runs both pay off.
func DamageFor(run *arena.RunState) int {
	total := 0.0
	for _, res := range run.Results {
		if res.Success {
			total += res.Power
		}
	}
	return int(total)
}

// Contribute applies a party's damage and returns the boss HP left.
func (b *Boss) Contribute(party string, damage int) int {
	if damage < 0 {
		damage = 0
	}
	b.damage[party] += damage
	b.total += damage

	return b.Remaining()
}

// Remaining returns HP left, floored at zero.
func (b *Boss) Remaining() int {
	left := b.MaxHP - b.total
	if left < 0 {
		return 0
	}
	return left
}

// Defeated reports whether accumulated damage has emptied the pool.
func (b *Boss) Defeated() bool {
	return b.total >= b.MaxHP
}

// Contribution returns the damage a party has dealt so far.
func (b *Boss) Contribution(party string) int {
	return b.damage[party]
}

// RollReward generates a defeat reward for one contributor. Rarity is
// floored at epic regardless of the roll.
func (b *Boss) RollReward(luck int, src rng.Source) loot.Item {
	return loot.NewRoller().RollWithFloor(b.Template.Tier, luck, rewardFloor, src)
}
