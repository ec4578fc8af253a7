// Package catalog loads the static content pools (encounter names,
// narrative lines, item word pools, approaches, raid bosses) from a
// YAML file. Missing sections fall back to the built-in defaults, so
// a partial catalog is always usable.
package catalog

import (
	"fmt"
	"os"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/encounter"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/raid"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
	"gopkg.in/yaml.v3"
)

// EncounterSection holds the encounter generation pools.
type EncounterSection struct {
	Combat  []string `yaml:"combat"`
	Puzzle  []string `yaml:"puzzle"`
	Trap    []string `yaml:"trap"`
	Bosses  []string `yaml:"bosses"`
	Success []string `yaml:"success"`
	Failure []string `yaml:"failure"`
}

// ItemSection holds the item naming pools.
type ItemSection struct {
	Prefixes map[string][]string `yaml:"prefixes"` // keyed by rarity name
	Nouns    map[string][]string `yaml:"nouns"`    // keyed by slot name
	Suffixes map[string]string   `yaml:"suffixes"` // keyed by attribute name
}

// ApproachDefinition is one resolution strategy from the catalog.
// An entry with no focus is still offered; the resolver falls back to
// raw power for it.
type ApproachDefinition struct {
	Name          string  `yaml:"name"`
	Focus         string  `yaml:"focus,omitempty"`
	PowerModifier float64 `yaml:"power_modifier"`
	RiskModifier  float64 `yaml:"risk_modifier"`
}

// RaidBossDefinition is one raid boss archetype from the catalog.
type RaidBossDefinition struct {
	Name   string `yaml:"name"`
	BaseHP int    `yaml:"base_hp"`
	Tier   int    `yaml:"tier"`
}

// Catalog is the full static content set.
type Catalog struct {
	Encounters EncounterSection     `yaml:"encounters"`
	Items      ItemSection          `yaml:"items"`
	Approaches []ApproachDefinition `yaml:"approaches"`
	RaidBosses []RaidBossDefinition `yaml:"raid_bosses"`
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	return &c, nil
}

// Pools converts the encounter section into generation pools. Empty
// sections stay empty; the generator substitutes its defaults.
func (c *Catalog) Pools() *encounter.Pools {
	return &encounter.Pools{
		Names: map[encounter.Category][]string{
			encounter.Combat: c.Encounters.Combat,
			encounter.Puzzle: c.Encounters.Puzzle,
			encounter.Trap:   c.Encounters.Trap,
		},
		BossNames: c.Encounters.Bosses,
		Success:   c.Encounters.Success,
		Failure:   c.Encounters.Failure,
	}
}

// Namer converts the item section into loot word pools, starting from
// the defaults and overlaying whatever the catalog provides.
func (c *Catalog) Namer() *loot.Namer {
	n := loot.DefaultNamer()

	for key, pool := range c.Items.Prefixes {
		if len(pool) > 0 {
			n.Prefixes[loot.ParseRarity(key)] = pool
		}
	}
	for key, pool := range c.Items.Nouns {
		if len(pool) == 0 {
			continue
		}
		for _, slot := range loot.Slots {
			if slot.String() == key {
				n.Nouns[slot] = pool
			}
		}
	}
	for key, suffix := range c.Items.Suffixes {
		if suffix != "" {
			n.Suffixes[stats.ParseAttribute(key)] = suffix
		}
	}
	return n
}

// ApproachSlate converts the approach definitions, falling back to the
// standard slate when the catalog has none.
func (c *Catalog) ApproachSlate() []encounter.Approach {
	if len(c.Approaches) == 0 {
		return encounter.StandardApproaches
	}

	out := make([]encounter.Approach, 0, len(c.Approaches))
	for _, def := range c.Approaches {
		ap := encounter.Approach{
			Name:          def.Name,
			PowerModifier: def.PowerModifier,
			RiskModifier:  def.RiskModifier,
		}
		if def.Focus != "" {
			ap.Focus = stats.ParseAttribute(def.Focus)
			ap.HasFocus = true
		}
		out = append(out, ap)
	}
	return out
}

// RaidTemplates converts the raid boss definitions, falling back to
// the built-in roster when the catalog has none.
func (c *Catalog) RaidTemplates() []raid.Template {
	if len(c.RaidBosses) == 0 {
		return raid.DefaultTemplates
	}

	out := make([]raid.Template, 0, len(c.RaidBosses))
	for _, def := range c.RaidBosses {
		out = append(out, raid.Template{
			Name:   def.Name,
			BaseHP: def.BaseHP,
			Tier:   def.Tier,
		})
	}
	return out
}
