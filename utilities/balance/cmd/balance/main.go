// balance is a Monte Carlo simulator for tuning the reward engine.
//
// Usage:
//
//	balance [command] [options]
//
// Commands:
//
//	runs     - Simulate full runs for a stat profile
//	sweep    - Compare completion rates across stat levels
//	loot     - Sample the rarity distribution for a tier and luck value
//	curves   - Print the difficulty and reward curve table
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
	"github.com/Hosea1989/CouplesQuest-App-sub001/utilities/balance"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "runs":
		runRunsSim()
	case "sweep":
		runSweep()
	case "loot":
		runLootSim()
	case "curves":
		runCurves()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("balance - Monte Carlo simulator for the reward engine")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  runs     Simulate full runs for a stat profile")
	fmt.Println("  sweep    Compare completion rates across stat levels")
	fmt.Println("  loot     Sample the rarity distribution for a tier and luck value")
	fmt.Println("  curves   Print the difficulty and reward curve table")
}

func runRunsSim() {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	trials := fs.Int("trials", 1000, "Number of simulated runs")
	steps := fs.Int("steps", 25, "Waves per run")
	stat := fs.Int("stat", 10, "Value for every attribute")
	hp := fs.Int("hp", 100, "Starting max HP")
	seed := fs.Uint64("seed", 1, "Base seed")
	fs.Parse(os.Args[2:])

	profile := balance.Profile{
		Name:  "sim",
		Stats: stats.NewStats(*stat, *stat, *stat, *stat, *stat, *stat),
		MaxHP: *hp,
	}

	summary := balance.SimulateRuns(profile, *trials, *steps, *seed)

	fmt.Printf("Profile: all stats %d, %d HP, %d waves, %d trials\n", *stat, *hp, *steps, *trials)
	fmt.Printf("  Completion rate: %.1f%%\n", summary.CompletionRate()*100)
	fmt.Printf("  Avg waves:       %.1f\n", summary.AvgWaves)
	fmt.Printf("  Avg EXP:         %.0f\n", summary.AvgEXP)
	fmt.Printf("  Avg gold:        %.0f\n", summary.AvgGold)
	fmt.Printf("  Avg HP left:     %.1f\n", summary.AvgHPRemaining)
	fmt.Println("  Per-wave success:")
	for i, rate := range summary.WaveSuccess {
		fmt.Printf("    wave %2d: %5.1f%%\n", i+1, rate*100)
	}
}

func runSweep() {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	trials := fs.Int("trials", 500, "Trials per stat level")
	steps := fs.Int("steps", 25, "Waves per run")
	hp := fs.Int("hp", 100, "Starting max HP")
	from := fs.Int("from", 5, "Lowest attribute value")
	to := fs.Int("to", 30, "Highest attribute value")
	step := fs.Int("step", 5, "Attribute increment")
	seed := fs.Uint64("seed", 1, "Base seed")
	fs.Parse(os.Args[2:])

	fmt.Printf("%-6s %-12s %-10s %-10s %-10s\n", "stat", "completion", "avg waves", "avg exp", "avg gold")
	for s := *from; s <= *to; s += *step {
		profile := balance.Profile{
			Name:  "sim",
			Stats: stats.NewStats(s, s, s, s, s, s),
			MaxHP: *hp,
		}
		summary := balance.SimulateRuns(profile, *trials, *steps, *seed)
		fmt.Printf("%-6d %-12s %-10.1f %-10.0f %-10.0f\n",
			s, fmt.Sprintf("%.1f%%", summary.CompletionRate()*100),
			summary.AvgWaves, summary.AvgEXP, summary.AvgGold)
	}
}

func runLootSim() {
	fs := flag.NewFlagSet("loot", flag.ExitOnError)
	tier := fs.Int("tier", 3, "Content tier (1-5)")
	luck := fs.Int("luck", 10, "Luck value")
	trials := fs.Int("trials", 100000, "Number of rolls")
	seed := fs.Uint64("seed", 1, "Seed")
	fs.Parse(os.Args[2:])

	dist := balance.RarityDistribution(*tier, *luck, *trials, *seed)
	fmt.Printf("Rarity distribution for tier %d, luck %d (%d rolls):\n", *tier, *luck, *trials)
	for _, r := range loot.Rarities {
		if frac, ok := dist[r]; ok {
			fmt.Printf("  %-10s %6.2f%%\n", r, frac*100)
		}
	}
	fmt.Printf("Avg item value: %.0f gold\n", balance.AvgItemValue(*tier, *luck, *trials, *seed))
}

func runCurves() {
	fs := flag.NewFlagSet("curves", flag.ExitOnError)
	n := fs.Int("n", 30, "Number of waves to tabulate")
	fs.Parse(os.Args[2:])

	fmt.Printf("%-6s %-12s %-8s %-8s %-9s %s\n", "wave", "difficulty", "exp", "gold", "scaling", "milestone")
	for _, row := range balance.CurveTable(*n) {
		mark := ""
		if row.Milestone {
			mark = "*"
		}
		fmt.Printf("%-6d %-12d %-8d %-8d %-9.3f %s\n",
			row.Index, row.Difficulty, row.EXP, row.Gold, row.Scaling, mark)
	}
}
