package curve

import (
	"math"
	"testing"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"
)

func TestDifficultyLinearRegion(t *testing.T) {
	for i := 1; i <= 10; i++ {
		want := 15 + 5*i
		if got := Difficulty(i); got != want {
			t.Errorf("Difficulty(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestDifficultyStrictlyIncreasingLinear(t *testing.T) {
	for i := 1; i < 10; i++ {
		if Difficulty(i) >= Difficulty(i+1) {
			t.Errorf("Difficulty(%d)=%d not < Difficulty(%d)=%d", i, Difficulty(i), i+1, Difficulty(i+1))
		}
	}
}

func TestDifficultyCompoundRegion(t *testing.T) {
	for i := 12; i <= 60; i++ {
		ratio := float64(Difficulty(i)) / float64(Difficulty(i-1))
		if math.Abs(ratio-1.09) > 0.02 {
			t.Errorf("Difficulty(%d)/Difficulty(%d) = %.4f, want ~1.09", i, i-1, ratio)
		}
	}
}

func TestDifficultyRegimeBoundary(t *testing.T) {
	if Difficulty(10) != 65 {
		t.Errorf("Difficulty(10) = %d, want 65", Difficulty(10))
	}
	// First compounding step: 65 * 1.09 = 70.85, truncated.
	if Difficulty(11) != 70 {
		t.Errorf("Difficulty(11) = %d, want 70", Difficulty(11))
	}
}

func TestEXPReward(t *testing.T) {
	if got := EXPReward(4, 1.0); got != 60 {
		t.Errorf("EXPReward(4, 1.0) = %d, want 60", got)
	}
	if got := EXPReward(4, 1.5); got != 90 {
		t.Errorf("EXPReward(4, 1.5) = %d, want 90", got)
	}
	if got := EXPReward(0, 1.0); got != 0 {
		t.Errorf("EXPReward(0, 1.0) = %d, want 0", got)
	}
}

func TestGoldReward(t *testing.T) {
	if got := GoldReward(7, 1.0); got != 70 {
		t.Errorf("GoldReward(7, 1.0) = %d, want 70", got)
	}
	// Truncation after the multiplier: 10*3*1.25 = 37.5 -> 37.
	if got := GoldReward(3, 1.25); got != 37 {
		t.Errorf("GoldReward(3, 1.25) = %d, want 37", got)
	}
}

func TestWaveScalingGrows(t *testing.T) {
	if WaveScaling(1) != 1.0 {
		t.Errorf("WaveScaling(1) = %f, want 1.0", WaveScaling(1))
	}
	for i := 2; i <= 30; i++ {
		ratio := WaveScaling(i) / WaveScaling(i-1)
		if math.Abs(ratio-1.05) > 1e-9 {
			t.Errorf("WaveScaling ratio at %d = %f, want 1.05", i, ratio)
		}
	}
}

func TestIsMilestoneSchedule(t *testing.T) {
	want := map[int]bool{}
	for _, i := range []int{5, 10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100} {
		want[i] = true
	}

	for i := 1; i <= 100; i++ {
		if got := IsMilestone(i); got != want[i] {
			t.Errorf("IsMilestone(%d) = %v, want %v", i, got, want[i])
		}
	}
}

func TestIsMilestoneNonPositive(t *testing.T) {
	if IsMilestone(0) || IsMilestone(-5) {
		t.Error("non-positive indices are never milestones")
	}
}

func TestRewardForTable(t *testing.T) {
	r, ok := RewardFor(5)
	if !ok {
		t.Fatal("index 5 should have a milestone reward")
	}
	if r.Gold != 50 || r.MaxRarity != loot.Uncommon {
		t.Errorf("RewardFor(5) = %+v", r)
	}

	r, ok = RewardFor(25)
	if !ok {
		t.Fatal("index 25 should have a milestone reward")
	}
	if r.Gold != 300 || r.MaxRarity != loot.Legendary || r.DropChance != 0.5 {
		t.Errorf("RewardFor(25) = %+v", r)
	}
}

func TestRewardForOpenEnded(t *testing.T) {
	// tier = (55-25)/10 = 3
	r, ok := RewardFor(55)
	if ok {
		t.Fatal("55 is not a milestone")
	}
	_ = r

	r, ok = RewardFor(60)
	if !ok {
		t.Fatal("index 60 should have a milestone reward")
	}
	wantGold := 300 + 100*((60-25)/10)
	if r.Gold != wantGold {
		t.Errorf("RewardFor(60).Gold = %d, want %d", r.Gold, wantGold)
	}

	// Drop chance stays capped far into the late game.
	r, _ = RewardFor(500)
	if r.DropChance > 0.5 {
		t.Errorf("drop chance %f exceeds cap", r.DropChance)
	}
	if r.Gold <= 300 {
		t.Errorf("late milestone gold %d should exceed the table", r.Gold)
	}
}

func TestRewardForNonMilestone(t *testing.T) {
	if _, ok := RewardFor(7); ok {
		t.Error("index 7 is not a milestone")
	}
}

func TestMilestoneGoldNeverDecreases(t *testing.T) {
	prev := 0
	for i := 1; i <= 200; i++ {
		r, ok := RewardFor(i)
		if !ok {
			continue
		}
		if r.Gold < prev {
			t.Errorf("milestone gold regressed at %d: %d < %d", i, r.Gold, prev)
		}
		prev = r.Gold
	}
}
