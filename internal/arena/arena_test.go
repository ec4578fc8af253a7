package arena

import (
	"reflect"
	"testing"
	"time"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/character"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/encounter"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/rng"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
)

var testStart = time.Date(2025, time.May, 10, 8, 0, 0, 0, time.UTC)

func newHero(maxHP int) *character.Sheet {
	// Power 100: 20*4 + (20+20)/2.
	return character.NewSheet("hero", stats.NewStats(20, 20, 20, 20, 20, 20), maxHP)
}

// forcedSource returns a fixed Float64 for every draw.
type forcedSource struct{ v float64 }

func (f forcedSource) Uint64() uint64        { return 0 }
func (f forcedSource) Float64() float64      { return f.v }
func (f forcedSource) Intn(n int) int        { return 0 }
func (f forcedSource) Chance(p float64) bool { return f.v < p }

func TestRunDeterminism(t *testing.T) {
	simulate := func() *RunState {
		sim := NewSimulator(20)
		return sim.Run(newHero(200), rng.New(777), testStart)
	}

	a := simulate()
	b := simulate()

	if a.Status != b.Status {
		t.Fatalf("statuses differ: %s vs %s", a.Status, b.Status)
	}
	if !reflect.DeepEqual(a.Results, b.Results) {
		t.Error("identical seeds and inputs must produce identical result sequences")
	}
	if a.TotalEXP != b.TotalEXP || a.TotalGold != b.TotalGold {
		t.Error("totals diverged between identical runs")
	}
}

func TestRunHPStaysInRange(t *testing.T) {
	sim := NewSimulator(50)
	sheet := newHero(120)
	run := sim.Run(sheet, rng.New(31), testStart)

	hp := 120
	for _, res := range run.Results {
		hp -= res.HPLost
		if hp < 0 {
			t.Fatalf("HP went negative at wave %d", res.Index)
		}
	}
	if run.CurrentHP < 0 || run.CurrentHP > run.MaxHP {
		t.Errorf("final HP %d outside [0, %d]", run.CurrentHP, run.MaxHP)
	}
	if sheet.CurrentHP < 0 || sheet.CurrentHP > sheet.MaxHP {
		t.Errorf("sheet HP %d outside [0, %d]", sheet.CurrentHP, sheet.MaxHP)
	}
}

func TestRunTerminalStatusOneWay(t *testing.T) {
	sim := NewSimulator(10)
	run := sim.Run(newHero(500), rng.New(5), testStart)

	if !run.Terminal() {
		t.Fatal("a finished run must be terminal")
	}
	if run.Status != Completed && run.Status != Failed {
		t.Fatalf("unexpected terminal status %s", run.Status)
	}
}

func TestTwelveWaveCompletion(t *testing.T) {
	// Neutral slate: risk multiplier 1.0 and no risky bonus, so EXP per
	// cleared wave is exactly 15*i.
	neutral := []encounter.Approach{
		{Name: "clever", Focus: stats.Wisdom, HasFocus: true, PowerModifier: 1.0, RiskModifier: 1.0},
	}

	sim := NewSimulator(12)
	sim.Approaches = neutral
	sheet := newHero(500)
	run := sim.Run(sheet, rng.New(4242), testStart)

	if run.Status != Completed {
		t.Fatalf("status = %s, want completed", run.Status)
	}
	if len(run.Results) != 12 {
		t.Fatalf("resolved %d waves, want 12", len(run.Results))
	}
	if run.HighestIndex != 12 {
		t.Errorf("HighestIndex = %d, want 12", run.HighestIndex)
	}

	wantEXP := 0
	for _, res := range run.Results {
		if res.Success {
			wantEXP += 15 * res.Index
		}
	}
	if run.TotalEXP != wantEXP {
		t.Errorf("TotalEXP = %d, want %d (sum of 15*i over successes)", run.TotalEXP, wantEXP)
	}

	// Byte-identical reproduction with the same seed.
	again := NewSimulator(12)
	again.Approaches = neutral
	rerun := again.Run(newHero(500), rng.New(4242), testStart)
	if !reflect.DeepEqual(run.Results, rerun.Results) {
		t.Error("twelve-wave run is not reproducible")
	}
}

func TestAllFailuresRunFails(t *testing.T) {
	sim := NewSimulator(100)
	sheet := newHero(50)
	run := sim.Run(sheet, forcedSource{v: 0.9999}, testStart)

	if run.Status != Failed {
		t.Fatalf("status = %s, want failed", run.Status)
	}

	total := 0
	for _, res := range run.Results {
		if res.Success {
			t.Fatalf("wave %d succeeded under a forced-failure roll", res.Index)
		}
		total += res.HPLost
	}
	if total != 50 {
		t.Errorf("cumulative HP lost = %d, want exactly the starting HP", total)
	}

	last := run.Results[len(run.Results)-1]
	if run.HighestIndex != last.Index {
		t.Errorf("HighestIndex = %d, want %d", run.HighestIndex, last.Index)
	}
	if run.CurrentHP != 0 {
		t.Errorf("CurrentHP = %d, want 0", run.CurrentHP)
	}
	if sheet.CurrentHP != 0 {
		t.Errorf("sheet HP = %d, want 0", sheet.CurrentHP)
	}
}

func TestMilestonesClaimedOnce(t *testing.T) {
	sim := NewSimulator(30)
	run := sim.Run(newHero(1000), forcedSource{v: 0.0}, testStart)

	if run.Status != Completed {
		t.Fatalf("status = %s, want completed", run.Status)
	}

	seen := map[int]int{}
	for _, res := range run.Results {
		if res.Milestone {
			seen[res.Index]++
		}
	}

	want := []int{5, 10, 15, 20, 25, 30}
	if len(seen) != len(want) {
		t.Errorf("milestone indices = %v, want %v", seen, want)
	}
	for _, i := range want {
		if seen[i] != 1 {
			t.Errorf("milestone %d claimed %d times", i, seen[i])
		}
	}
}

func TestZeroStepsShortCircuits(t *testing.T) {
	sim := NewSimulator(0)
	run := sim.Run(newHero(100), rng.New(1), testStart)

	if run.Status != Completed {
		t.Errorf("status = %s, want completed", run.Status)
	}
	if len(run.Results) != 0 {
		t.Errorf("expected empty result list, got %d results", len(run.Results))
	}
}

func TestNonPositiveHPShortCircuits(t *testing.T) {
	sim := NewSimulator(10)
	run := sim.Run(newHero(0), rng.New(1), testStart)

	if run.Status != Failed {
		t.Errorf("status = %s, want failed", run.Status)
	}
	if len(run.Results) != 0 {
		t.Errorf("expected empty result list, got %d results", len(run.Results))
	}
}

func TestWriteThroughRewards(t *testing.T) {
	sim := NewSimulator(5)
	sheet := newHero(300)
	run := sim.Run(sheet, forcedSource{v: 0.0}, testStart)

	if sheet.Gold != run.TotalGold {
		t.Errorf("sheet gold %d != run gold %d", sheet.Gold, run.TotalGold)
	}
	if sheet.EXP != run.TotalEXP {
		t.Errorf("sheet EXP %d != run EXP %d", sheet.EXP, run.TotalEXP)
	}
	if run.TotalEXP == 0 {
		t.Error("an all-success run should earn EXP")
	}
}

func TestHPRegenClampedToMax(t *testing.T) {
	sim := NewSimulator(20)
	sim.Mods.HPRegenPerStep = 50
	sheet := newHero(100)
	run := sim.Run(sheet, rng.New(11), testStart)

	if run.CurrentHP > run.MaxHP {
		t.Errorf("regen pushed HP to %d, max is %d", run.CurrentHP, run.MaxHP)
	}
}

func TestStartingHPOverride(t *testing.T) {
	sim := NewSimulator(100)
	sim.Mods.StartingHPOverride = 5
	run := sim.Run(newHero(1000), forcedSource{v: 0.9999}, testStart)

	if run.Status != Failed {
		t.Errorf("a 5 HP run of forced failures should fail, got %s", run.Status)
	}
	if run.MaxHP != 5 {
		t.Errorf("override should set run max HP, got %d", run.MaxHP)
	}
}

func TestVirtualDurationAndCompletion(t *testing.T) {
	sim := NewSimulator(8)
	sim.SecondsPerStep = 60
	run := sim.Run(newHero(500), rng.New(2), testStart)

	wantDuration := time.Duration(len(run.Results)*60) * time.Second
	if run.VirtualDuration != wantDuration {
		t.Errorf("VirtualDuration = %s, want %s", run.VirtualDuration, wantDuration)
	}
	if !run.CompletesAt.Equal(testStart.Add(wantDuration)) {
		t.Errorf("CompletesAt = %s, want %s", run.CompletesAt, testStart.Add(wantDuration))
	}
}

func TestRevealSchedule(t *testing.T) {
	sim := NewSimulator(4)
	sim.SecondsPerStep = 60
	run := sim.Run(newHero(500), rng.New(9), testStart)

	if n := run.RevealedCount(testStart); n != 0 {
		t.Errorf("nothing should be visible at start, got %d", n)
	}
	if n := run.RevealedCount(testStart.Add(61 * time.Second)); n != 1 {
		t.Errorf("one result should be visible after one step, got %d", n)
	}
	if n := run.RevealedCount(testStart.Add(10 * time.Minute)); n != len(run.Results) {
		t.Errorf("everything should be visible well past completion, got %d", n)
	}

	if !run.FullyRevealed(run.CompletesAt.Add(time.Second)) {
		t.Error("run should be fully revealed after CompletesAt")
	}

	next := run.NextRevealAt(testStart)
	if !next.Equal(testStart.Add(60 * time.Second)) {
		t.Errorf("NextRevealAt = %s, want %s", next, testStart.Add(60*time.Second))
	}
	if !run.NextRevealAt(run.CompletesAt.Add(time.Hour)).IsZero() {
		t.Error("NextRevealAt past completion should be zero")
	}
}
