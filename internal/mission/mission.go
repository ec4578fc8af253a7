// Package mission simulates AFK missions: a character is dispatched
// for a real-time duration while the outcome is computed immediately
// and held back until the mission's completion time passes.
package mission

import (
	"errors"
	"time"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/character"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/curve"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/encounter"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/modifier"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/rng"
	"github.com/google/uuid"
)

// ErrNotComplete is returned when claiming a mission before its
// completion time.
var ErrNotComplete = errors.New("mission still in progress")

// ErrAlreadyClaimed is returned when claiming a mission twice.
var ErrAlreadyClaimed = errors.New("mission rewards already claimed")

// Mission describes one AFK dispatch: how long it takes in real time
// and which difficulty band it draws encounters from.
type Mission struct {
	Name     string
	Duration time.Duration
	// Band is the difficulty band: encounters are generated at indices
	// starting from (Band-1)*5 + 1.
	Band int
	// Steps is how many encounters the mission resolves.
	Steps int
	// LootChancePerStep is the odds each cleared step drops an item.
	LootChancePerStep float64
}

// Content carries catalog-loaded generation material into a mission:
// encounter pools, the approach slate and the loot roller. The zero
// value falls back to the built-ins throughout.
type Content struct {
	Pools      *encounter.Pools
	Approaches []encounter.Approach
	Roller     *loot.Roller
}

// StepResult records one resolved mission step.
type StepResult struct {
	Index    int
	Name     string
	Approach string
	Success  bool
	EXP      int
	Gold     int
}

// Outcome is a fully simulated mission awaiting its claim.
type Outcome struct {
	ID          uuid.UUID
	Mission     Mission
	Character   string
	Steps       []StepResult
	Cleared     int
	TotalEXP    int
	TotalGold   int
	Items       []loot.Item
	StartedAt   time.Time
	CompletesAt time.Time

	claimed bool
}

// Simulate resolves the whole mission in one pass. Rewards are not
// written to the sheet until Claim; an abandoned mission costs nothing.
func Simulate(m Mission, sheet *character.Sheet, content Content, mods modifier.Set, src rng.Source, now time.Time) *Outcome {
	mods = mods.Normalized()
	if m.Band < 1 {
		m.Band = 1
	}
	if m.LootChancePerStep <= 0 {
		m.LootChancePerStep = 0.2
	}

	out := &Outcome{
		ID:          uuid.New(),
		Mission:     m,
		Character:   sheet.Name,
		StartedAt:   now,
		CompletesAt: now.Add(m.Duration),
	}
	if m.Steps <= 0 {
		return out
	}

	eff := sheet.EffectiveStats()
	roller := content.Roller
	if roller == nil {
		roller = loot.NewRoller()
	}
	base := (m.Band-1)*5 + 1

	for step := 0; step < m.Steps; step++ {
		index := base + step
		enc := encounter.Generate(index, mods, content.Pools)
		ap := encounter.SelectApproach(eff, content.Approaches, mods)
		power := encounter.ComputePower(eff, ap, mods)

		success, _ := encounter.Resolve(power, float64(enc.Difficulty), src)
		res := StepResult{Index: index, Name: enc.Name, Approach: ap.Name, Success: success}

		if success {
			res.EXP = curve.EXPReward(index, mods.EXPMultiplier)
			res.Gold = curve.GoldReward(index, mods.GoldMultiplier)
			out.Cleared++
			out.TotalEXP += res.EXP
			out.TotalGold += res.Gold

			if src.Chance(m.LootChancePerStep) {
				out.Items = append(out.Items, roller.Roll(m.Band, eff.Luck, src))
			}
		}
		out.Steps = append(out.Steps, res)
	}

	return out
}

// Ready reports whether the mission's real-time duration has elapsed.
func (o *Outcome) Ready(at time.Time) bool {
	return !at.Before(o.CompletesAt)
}

// Claim writes the mission rewards through to the sheet. It fails
// before the completion time and is rejected on a second claim.
func (o *Outcome) Claim(sheet *character.Sheet, at time.Time) error {
	if !o.Ready(at) {
		return ErrNotComplete
	}
	if o.claimed {
		return ErrAlreadyClaimed
	}
	o.claimed = true

	sheet.GainEXP(o.TotalEXP)
	sheet.AddGold(o.TotalGold)
	return nil
}

// Claimed reports whether the rewards have been collected.
func (o *Outcome) Claimed() bool {
	return o.claimed
}
