package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/encounter"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
)

const sampleCatalog = `
encounters:
  combat:
    - "Rusted Sentinel"
  bosses:
    - "The Hollow King"
items:
  prefixes:
    legendary:
      - "Mythic"
  suffixes:
    luck: "of Fortune"
approaches:
  - name: "reckless"
    focus: "strength"
    power_modifier: 1.3
    risk_modifier: 1.6
  - name: "steady"
    power_modifier: 1.0
    risk_modifier: 1.0
raid_bosses:
  - name: "The Pale Warden"
    base_hp: 70000
    tier: 5
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeCatalog(t, "encounters: [not: a: map")
	_, err := Load(path)
	if err == nil {
		t.Error("expected error for malformed YAML, got nil")
	}
}

func TestPools(t *testing.T) {
	c, err := Load(writeCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	pools := c.Pools()
	if got := pools.Names[encounter.Combat]; len(got) != 1 || got[0] != "Rusted Sentinel" {
		t.Errorf("combat pool = %v, want [Rusted Sentinel]", got)
	}
	if len(pools.BossNames) != 1 || pools.BossNames[0] != "The Hollow King" {
		t.Errorf("boss pool = %v, want [The Hollow King]", pools.BossNames)
	}
	if len(pools.Names[encounter.Puzzle]) != 0 {
		t.Errorf("puzzle pool should be empty, got %v", pools.Names[encounter.Puzzle])
	}
}

func TestNamerOverlay(t *testing.T) {
	c, err := Load(writeCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	n := c.Namer()
	if got := n.Prefixes[loot.Legendary]; len(got) != 1 || got[0] != "Mythic" {
		t.Errorf("legendary prefixes = %v, want [Mythic]", got)
	}
	if got := n.Suffixes[stats.Luck]; got != "of Fortune" {
		t.Errorf("luck suffix = %q, want %q", got, "of Fortune")
	}
	// Sections not in the catalog keep the defaults.
	if len(n.Prefixes[loot.Common]) == 0 {
		t.Error("common prefixes should fall back to defaults")
	}
	if len(n.Nouns[loot.SlotWeapon]) == 0 {
		t.Error("weapon nouns should fall back to defaults")
	}
}

func TestApproachSlate(t *testing.T) {
	c, err := Load(writeCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	slate := c.ApproachSlate()
	if len(slate) != 2 {
		t.Fatalf("slate length = %d, want 2", len(slate))
	}
	if slate[0].Name != "reckless" || !slate[0].HasFocus || slate[0].Focus != stats.Strength {
		t.Errorf("unexpected first approach: %+v", slate[0])
	}
	if slate[1].HasFocus {
		t.Error("approach without focus should have HasFocus false")
	}
}

func TestApproachSlateDefault(t *testing.T) {
	c := &Catalog{}
	slate := c.ApproachSlate()
	if len(slate) != len(encounter.StandardApproaches) {
		t.Errorf("empty catalog should return the standard slate, got %d entries", len(slate))
	}
}

func TestRaidTemplates(t *testing.T) {
	c, err := Load(writeCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	templates := c.RaidTemplates()
	if len(templates) != 1 {
		t.Fatalf("templates length = %d, want 1", len(templates))
	}
	if templates[0].Name != "The Pale Warden" || templates[0].BaseHP != 70000 || templates[0].Tier != 5 {
		t.Errorf("unexpected template: %+v", templates[0])
	}

	empty := &Catalog{}
	if len(empty.RaidTemplates()) == 0 {
		t.Error("empty catalog should return the default roster")
	}
}
