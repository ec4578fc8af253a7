package character

import (
	"testing"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
)

func TestXPForLevel(t *testing.T) {
	if XPForLevel(1) != 0 {
		t.Errorf("XPForLevel(1) = %d, want 0", XPForLevel(1))
	}
	if XPForLevel(2) <= 0 {
		t.Error("XPForLevel(2) should be positive")
	}
	for l := 2; l < MaxLevel; l++ {
		if XPForLevel(l) >= XPForLevel(l+1) {
			t.Errorf("XP curve should be strictly increasing at level %d", l)
		}
	}
}

func TestXPToNextLevelAtCap(t *testing.T) {
	if XPToNextLevel(MaxLevel) != 0 {
		t.Error("capped characters need no further EXP")
	}
}

func TestGainEXPLevelsUp(t *testing.T) {
	s := NewSheet("hero", stats.NewStats(10, 10, 10, 10, 10, 10), 50)

	gained := s.GainEXP(XPForLevel(2))
	if gained != 1 {
		t.Fatalf("gained %d levels, want 1", gained)
	}
	if s.Level != 2 {
		t.Errorf("Level = %d, want 2", s.Level)
	}
	if s.MaxHP != 50+HPPerLevel {
		t.Errorf("MaxHP = %d, want %d", s.MaxHP, 50+HPPerLevel)
	}
}

func TestGainEXPMultipleLevels(t *testing.T) {
	s := NewSheet("hero", stats.Stats{}, 50)
	gained := s.GainEXP(XPForLevel(5))
	if gained != 4 {
		t.Errorf("gained %d levels, want 4", gained)
	}
	if s.Level != 5 {
		t.Errorf("Level = %d, want 5", s.Level)
	}
}

func TestGainEXPRespectsCap(t *testing.T) {
	s := NewSheet("hero", stats.Stats{}, 50)
	s.Level = MaxLevel

	if gained := s.GainEXP(1 << 30); gained != 0 {
		t.Errorf("capped character gained %d levels", gained)
	}
	if s.Level != MaxLevel {
		t.Errorf("Level = %d, want %d", s.Level, MaxLevel)
	}
}

func TestApplyDamageFloorsAtZero(t *testing.T) {
	s := NewSheet("hero", stats.Stats{}, 30)

	if hp := s.ApplyDamage(10); hp != 20 {
		t.Errorf("HP after 10 damage = %d, want 20", hp)
	}
	if hp := s.ApplyDamage(100); hp != 0 {
		t.Errorf("HP should floor at 0, got %d", hp)
	}
}

func TestHealClampsToMax(t *testing.T) {
	s := NewSheet("hero", stats.Stats{}, 30)
	s.CurrentHP = 10

	s.Heal(5)
	if s.CurrentHP != 15 {
		t.Errorf("HP = %d, want 15", s.CurrentHP)
	}
	s.Heal(1000)
	if s.CurrentHP != 30 {
		t.Errorf("HP should clamp to max, got %d", s.CurrentHP)
	}
}

func TestGoldAccounting(t *testing.T) {
	s := NewSheet("hero", stats.Stats{}, 30)

	s.AddGold(100)
	s.AddGold(-50) // ignored
	if s.Gold != 100 {
		t.Errorf("Gold = %d, want 100", s.Gold)
	}

	if !s.Spend(40) {
		t.Error("spend within balance should succeed")
	}
	if s.Spend(100) {
		t.Error("overspend should fail")
	}
	if s.Gold != 60 {
		t.Errorf("Gold = %d, want 60", s.Gold)
	}
}

func TestEffectiveStatsIncludeEquipment(t *testing.T) {
	s := NewSheet("hero", stats.NewStats(10, 10, 10, 10, 10, 10), 50)
	s.Equip(loot.Item{Slot: loot.SlotWeapon, Primary: stats.Strength, Bonus: 5})
	s.Buffs = append(s.Buffs, stats.Stats{Luck: 3})

	eff := s.EffectiveStats()
	if eff.Strength != 15 {
		t.Errorf("Strength = %d, want 15", eff.Strength)
	}
	if eff.Luck != 13 {
		t.Errorf("Luck = %d, want 13", eff.Luck)
	}
}

func TestEquipReplacesSlot(t *testing.T) {
	s := NewSheet("hero", stats.Stats{}, 50)
	s.Equip(loot.Item{Name: "old", Slot: loot.SlotHead, Primary: stats.Wisdom, Bonus: 1})
	s.Equip(loot.Item{Name: "new", Slot: loot.SlotHead, Primary: stats.Wisdom, Bonus: 4})

	if len(s.Equipment) != 1 {
		t.Fatalf("equipment count = %d, want 1", len(s.Equipment))
	}
	if s.Equipment[0].Name != "new" {
		t.Errorf("worn item = %s, want new", s.Equipment[0].Name)
	}
}
