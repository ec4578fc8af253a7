// Package curve holds the pure progression functions: difficulty and
// reward scaling per wave index and the milestone schedule. Keeping
// these as closed-form functions avoids hand-authored balance tables
// for the open-ended late game.
package curve

import "math"

const (
	// linearLimit is the last index of the linear difficulty region.
	linearLimit = 10

	// compoundRate is the per-step difficulty growth past the linear
	// region.
	compoundRate = 1.09

	baseDifficulty = 15
	difficultyStep = 5

	expPerIndex  = 15
	goldPerIndex = 10
)

// Difficulty returns the difficulty rating for a progression index.
// Linear through index 10, then compounding at ~9% per step.
func Difficulty(index int) int {
	if index < 1 {
		index = 1
	}
	if index <= linearLimit {
		return baseDifficulty + difficultyStep*index
	}
	linearTop := float64(baseDifficulty + difficultyStep*linearLimit)
	return int(linearTop * math.Pow(compoundRate, float64(index-linearLimit)))
}

// EXPReward returns the experience awarded for clearing an index, after
// the active EXP multiplier. Truncated to an integer.
func EXPReward(index int, multiplier float64) int {
	if index < 1 {
		return 0
	}
	return int(float64(expPerIndex*index) * multiplier)
}

// GoldReward returns the gold awarded for clearing an index, after the
// active gold multiplier. Truncated to an integer.
func GoldReward(index int, multiplier float64) int {
	if index < 1 {
		return 0
	}
	return int(float64(goldPerIndex*index) * multiplier)
}

// WaveScaling returns the damage scaling factor for failures at an
// index: 5% compounding per step, so late failures cost more.
func WaveScaling(index int) float64 {
	if index < 1 {
		index = 1
	}
	return math.Pow(1.05, float64(index-1))
}
