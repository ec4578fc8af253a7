package balance

import (
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/curve"
)

// CurveRow is one wave's worth of deterministic tuning values.
type CurveRow struct {
	Index      int
	Difficulty int
	EXP        int
	Gold       int
	Scaling    float64
	Milestone  bool
}

// CurveTable tabulates the difficulty and reward curves through wave n.
func CurveTable(n int) []CurveRow {
	rows := make([]CurveRow, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, CurveRow{
			Index:      i,
			Difficulty: curve.Difficulty(i),
			EXP:        curve.EXPReward(i, 1.0),
			Gold:       curve.GoldReward(i, 1.0),
			Scaling:    curve.WaveScaling(i),
			Milestone:  curve.IsMilestone(i),
		})
	}
	return rows
}
