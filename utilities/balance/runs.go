// Package balance provides Monte Carlo simulation tools for tuning
// the reward engine.
package balance

import (
	"time"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/arena"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/character"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/rng"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
)

// Profile is a character archetype for simulation.
type Profile struct {
	Name  string
	Stats stats.Stats
	MaxHP int
}

// RunSummary aggregates outcomes across many simulated runs.
type RunSummary struct {
	Trials         int
	Completed      int
	Failed         int
	AvgWaves       float64
	AvgEXP         float64
	AvgGold        float64
	AvgHPRemaining float64
	// WaveSuccess is the per-wave success fraction, indexed by wave-1.
	WaveSuccess []float64
}

// CompletionRate returns the fraction of trials that completed.
func (s RunSummary) CompletionRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Trials)
}

// SimulateRuns runs trials independent simulations of the profile and
// aggregates the outcomes. Each trial gets its own derived seed so the
// sweep is reproducible.
func SimulateRuns(p Profile, trials, maxSteps int, seedBase uint64) RunSummary {
	summary := RunSummary{Trials: trials, WaveSuccess: make([]float64, maxSteps)}
	attempts := make([]int, maxSteps)
	now := time.Now()

	for i := 0; i < trials; i++ {
		sim := arena.NewSimulator(maxSteps)
		sheet := character.NewSheet(p.Name, p.Stats, p.MaxHP)
		run := sim.Run(sheet, rng.New(seedBase+uint64(i)+1), now)

		if run.Status == arena.Completed {
			summary.Completed++
		} else {
			summary.Failed++
		}
		summary.AvgWaves += float64(len(run.Results))
		summary.AvgEXP += float64(run.TotalEXP)
		summary.AvgGold += float64(run.TotalGold)
		summary.AvgHPRemaining += float64(run.CurrentHP)

		for _, res := range run.Results {
			attempts[res.Index-1]++
			if res.Success {
				summary.WaveSuccess[res.Index-1]++
			}
		}
	}

	if trials > 0 {
		summary.AvgWaves /= float64(trials)
		summary.AvgEXP /= float64(trials)
		summary.AvgGold /= float64(trials)
		summary.AvgHPRemaining /= float64(trials)
	}
	for i := range summary.WaveSuccess {
		if attempts[i] > 0 {
			summary.WaveSuccess[i] /= float64(attempts[i])
		}
	}
	return summary
}
