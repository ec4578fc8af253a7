package arena

import (
	"time"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/character"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/curve"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/encounter"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/logger"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/modifier"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/progress"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/rng"
	"github.com/google/uuid"
)

// DefaultSecondsPerStep is the virtual duration of one wave.
const DefaultSecondsPerStep = 90

// Simulator runs encounter sequences against a character sheet.
// One Run call owns its RunState exclusively; callers must serialize
// concurrent runs against the same sheet.
type Simulator struct {
	MaxSteps       int
	SecondsPerStep int
	Mods           modifier.Set
	Pools          *encounter.Pools
	Roller         *loot.Roller
	Approaches     []encounter.Approach
}

// NewSimulator creates a simulator with the given step bound, neutral
// modifiers, default pools and the standard approach slate.
func NewSimulator(maxSteps int) *Simulator {
	return &Simulator{
		MaxSteps:       maxSteps,
		SecondsPerStep: DefaultSecondsPerStep,
		Mods:           modifier.Neutral(),
		Roller:         loot.NewRoller(),
	}
}

// lootTierFor maps a wave index to the content tier its drops roll
// against: one tier every five waves, capped at legendary territory.
func lootTierFor(index int) int {
	tier := 1 + (index-1)/5
	if tier > 5 {
		tier = 5
	}
	return tier
}

// Run simulates the whole sequence in one uninterrupted pass, writing
// EXP, gold and HP through to the sheet at each resolved step.
func (sim *Simulator) Run(sheet *character.Sheet, src rng.Source, now time.Time) *RunState {
	mods := sim.Mods.Normalized()
	secondsPerStep := sim.SecondsPerStep
	if secondsPerStep <= 0 {
		secondsPerStep = DefaultSecondsPerStep
	}
	roller := sim.Roller
	if roller == nil {
		roller = loot.NewRoller()
	}

	maxHP := sheet.MaxHP
	hp := sheet.CurrentHP
	if mods.StartingHPOverride > 0 {
		maxHP = mods.StartingHPOverride
		hp = mods.StartingHPOverride
	}

	run := &RunState{
		ID:             uuid.New(),
		Character:      sheet.Name,
		Status:         InProgress,
		CurrentHP:      hp,
		MaxHP:          maxHP,
		StartedAt:      now,
		secondsPerStep: secondsPerStep,
	}

	// Misconfigured runs short-circuit to a terminal empty-result state
	// instead of looping or dividing by zero.
	if sim.MaxSteps <= 0 {
		run.Status = Completed
		run.CompletesAt = now
		return run
	}
	if maxHP <= 0 || hp <= 0 {
		run.Status = Failed
		run.CurrentHP = 0
		run.CompletesAt = now
		return run
	}

	ledger := progress.NewLedger()

	for i := 1; i <= sim.MaxSteps; i++ {
		enc := encounter.Generate(i, mods, sim.Pools)
		eff := sheet.EffectiveStats()
		ap := encounter.SelectApproach(eff, sim.Approaches, mods)
		power := encounter.ComputePower(eff, ap, mods)

		success, roll := encounter.Resolve(power, float64(enc.Difficulty), src)

		result := EncounterResult{
			Index:      i,
			Name:       enc.Name,
			Category:   enc.Category,
			Approach:   ap.Name,
			Success:    success,
			Roll:       roll,
			Power:      power,
			Difficulty: enc.Difficulty,
		}

		if success {
			bonus := encounter.RewardBonus(ap) * ap.RiskModifier
			result.EXP = int(float64(curve.EXPReward(i, mods.EXPMultiplier)) * bonus)
			result.Gold = int(float64(curve.GoldReward(i, mods.GoldMultiplier)) * bonus)
			result.Narrative = enc.SuccessPool[src.Intn(len(enc.SuccessPool))]

			if reward := ledger.Claim(i); reward != nil {
				result.Milestone = true
				result.MilestoneGold = reward.Gold
				if src.Chance(reward.DropChance) {
					item := roller.Roll(int(reward.MaxRarity)+1, eff.Luck, src)
					result.Drops = append(result.Drops, item)
				}
			}
			if src.Chance(enc.BonusLootChance) {
				item := roller.Roll(lootTierFor(i), eff.Luck, src)
				result.Drops = append(result.Drops, item)
			}

			sheet.GainEXP(result.EXP)
			sheet.AddGold(result.Gold + result.MilestoneGold)
			run.TotalEXP += result.EXP
			run.TotalGold += result.Gold + result.MilestoneGold
		} else {
			dmg := encounter.FailureDamage(i, power, float64(enc.Difficulty), ap, mods)
			if dmg > hp {
				dmg = hp
			}
			hp -= dmg
			result.HPLost = dmg
			result.Narrative = enc.FailurePool[src.Intn(len(enc.FailurePool))]
		}

		run.Results = append(run.Results, result)
		run.HighestIndex = i
		writeThroughHP(sheet, hp)

		if hp <= 0 {
			run.Status = Failed
			break
		}

		// Between-step regeneration, clamped to max HP.
		if mods.HPRegenPerStep > 0 {
			hp += mods.HPRegenPerStep
			if hp > maxHP {
				hp = maxHP
			}
			writeThroughHP(sheet, hp)
		}
	}

	if run.Status == InProgress {
		run.Status = Completed
	}

	run.CurrentHP = hp

	run.VirtualDuration = time.Duration(len(run.Results)*secondsPerStep) * time.Second
	run.CompletesAt = now.Add(run.VirtualDuration)

	logger.Debug("simulated run",
		"run_id", run.ID,
		"character", sheet.Name,
		"status", run.Status.String(),
		"waves", len(run.Results),
		"exp", run.TotalEXP,
		"gold", run.TotalGold)

	return run
}

// writeThroughHP mirrors the run's HP into the sheet, clamped to the
// sheet's own max when an HP override made the run pool larger.
func writeThroughHP(sheet *character.Sheet, hp int) {
	if hp > sheet.MaxHP {
		hp = sheet.MaxHP
	}
	if hp < 0 {
		hp = 0
	}
	sheet.CurrentHP = hp
}
