package encounter

import (
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/curve"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/modifier"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/rng"
)

const (
	// chanceFloor and chanceCeiling bound success odds: no encounter is
	// ever a guaranteed win or a guaranteed loss.
	chanceFloor   = 0.01
	chanceCeiling = 0.99

	// chanceShape controls how fast the power/difficulty ratio converts
	// to success odds. A ratio of 1.0 gives about 56%.
	chanceShape = 0.8

	// minFailureDamage is the base damage floor when a character
	// outclasses an encounter and still fails.
	minFailureDamage = 5
)

// SuccessChance converts a power/difficulty ratio into success odds.
// Strictly increasing in power, decreasing in difficulty, and always
// within (0, 1); the floor and ceiling apply only at extreme ratios.
func SuccessChance(power, difficulty float64) float64 {
	if difficulty <= 0 {
		return chanceCeiling
	}
	if power < 0 {
		power = 0
	}
	ratio := power / difficulty
	chance := ratio / (ratio + chanceShape)
	if chance < chanceFloor {
		return chanceFloor
	}
	if chance > chanceCeiling {
		return chanceCeiling
	}
	return chance
}

// Resolve rolls one encounter attempt. It never fails: a definite
// success/failure outcome and the raw roll always come back.
func Resolve(power, difficulty float64, src rng.Source) (bool, float64) {
	chance := SuccessChance(power, difficulty)
	roll := src.Float64()
	return roll <= chance, roll
}

// FailureDamage computes HP lost on a failed encounter. Late-run
// failures cost more through the wave scaling factor.
func FailureDamage(index int, power, difficulty float64, ap Approach, mods modifier.Set) int {
	base := difficulty - power
	if base < minFailureDamage {
		base = minFailureDamage
	}

	risk := ap.RiskModifier
	if !ap.HasFocus || risk == 0 {
		risk = 1.0
	}

	dmg := int(base * risk * mods.DamageTakenMultiplier * curve.WaveScaling(index))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}
