package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/arena"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/catalog"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/character"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/config"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/logger"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/raid"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/rng"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/store"
)

func main() {
	// Parse command-line flags
	configFile := flag.String("config", "data/engine.yaml", "Path to engine config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	catalogFile := flag.String("catalog", "", "Path to content catalog YAML file (overrides config)")
	seed := flag.Int64("seed", 0, "Run seed (default: derived from today's date)")
	steps := flag.Int("steps", 0, "Number of waves (default: from config)")
	name := flag.String("name", "Adventurer", "Character name")
	str := flag.Int("str", 10, "Strength")
	dex := flag.Int("dex", 10, "Dexterity")
	wis := flag.Int("wis", 10, "Wisdom")
	cha := flag.Int("cha", 10, "Charisma")
	def := flag.Int("def", 10, "Defense")
	luck := flag.Int("luck", 10, "Luck")
	hp := flag.Int("hp", 100, "Starting max HP")
	noPersist := flag.Bool("no-persist", false, "Skip writing results to the database")
	showShop := flag.Bool("shop", false, "Print today's shop stock after the run")
	joinRaid := flag.Bool("raid", false, "Contribute the run's damage to this week's raid boss")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Failed to load engine config, using defaults", "path", *configFile, "error", err)
	}

	// Catalog flag wins over the config path; both are optional.
	catalogPath := cfg.CatalogPath
	if *catalogFile != "" {
		catalogPath = *catalogFile
	}

	sim := arena.NewSimulator(cfg.Arena.MaxSteps)
	sim.SecondsPerStep = cfg.Arena.SecondsPerStep
	if *steps > 0 {
		sim.MaxSteps = *steps
	}

	raidTemplates := raid.DefaultTemplates
	if catalogPath != "" {
		cat, err := catalog.Load(catalogPath)
		if err != nil {
			logger.Warning("Failed to load catalog, using built-in content", "path", catalogPath, "error", err)
		} else {
			sim.Pools = cat.Pools()
			sim.Approaches = cat.ApproachSlate()
			sim.Roller.Namer = cat.Namer()
			raidTemplates = cat.RaidTemplates()
			logger.Info("Catalog loaded", "path", catalogPath)
		}
	}

	now := time.Now()

	runSeed := uint64(*seed)
	if *seed == 0 {
		runSeed = rng.DateSeed(now)
		logger.Info("Run seed selected", "seed", runSeed, "daily", true)
	} else {
		logger.Info("Run seed selected", "seed", runSeed, "daily", false)
	}
	src := rng.New(runSeed)

	sheet := character.NewSheet(*name, stats.NewStats(*str, *dex, *wis, *cha, *def, *luck), *hp)

	run := sim.Run(sheet, src, now)

	printRun(run)

	var db *store.Store
	if !*noPersist {
		db, err = store.Open(store.Config{
			Driver:      cfg.Database.Driver,
			SQLitePath:  cfg.Database.Path,
			PostgresDSN: cfg.Database.DSN,
		})
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		persistRun(db, run, now)
	}

	if *joinRaid {
		contributeRaid(db, run, raidTemplates, cfg.Raid.HPVariancePercent, now)
	}

	if *showShop {
		printShop(sim, sheet)
	}
}

// printRun writes the full result log to stdout.
func printRun(run *arena.RunState) {
	fmt.Printf("=== %s enters the arena ===\n", run.Character)
	for _, res := range run.Results {
		mark := "+"
		if !res.Success {
			mark = "-"
		}
		fmt.Printf("[%s] Wave %d: %s (%s, %s)\n", mark, res.Index, res.Name, res.Category, res.Approach)
		fmt.Printf("    %s\n", res.Narrative)
		if res.Success {
			fmt.Printf("    +%d exp, +%d gold\n", res.EXP, res.Gold)
		} else {
			fmt.Printf("    -%d hp\n", res.HPLost)
		}
		if res.Milestone {
			fmt.Printf("    Milestone! +%d gold\n", res.MilestoneGold)
		}
		for _, item := range res.Drops {
			fmt.Printf("    Drop: %s [%s]\n", item.Name, item.Rarity)
		}
	}
	fmt.Printf("=== Run %s: %d waves, %d exp, %d gold, %d/%d hp ===\n",
		run.Status, len(run.Results), run.TotalEXP, run.TotalGold, run.CurrentHP, run.MaxHP)
}

// persistRun writes the run, its milestone claims and the streak to
// the database.
func persistRun(db *store.Store, run *arena.RunState, now time.Time) {
	if err := db.SaveRun(run); err != nil {
		log.Fatalf("Failed to save run: %v", err)
	}

	for _, res := range run.Results {
		if !res.Milestone {
			continue
		}
		if _, err := db.ClaimMilestone(run.Character, res.Index, res.MilestoneGold); err != nil {
			logger.Warning("Failed to record milestone claim", "wave", res.Index, "error", err)
		}
	}

	if run.Status == arena.Completed {
		streak, err := db.LoadStreak(run.Character)
		if err != nil {
			logger.Warning("Failed to load streak", "error", err)
			return
		}
		length := streak.Complete(now)
		if err := db.SaveStreak(run.Character, streak); err != nil {
			logger.Warning("Failed to save streak", "error", err)
			return
		}
		fmt.Printf("Streak: %d days (best %d)\n", length, streak.Longest)
	}

	logger.Info("Run persisted", "run_id", run.ID, "status", run.Status.String())
}

// contributeRaid applies the run's damage to this week's boss. With a
// database the HP pool is shared across every invocation that week;
// without one the contribution only reports against a fresh boss.
func contributeRaid(db *store.Store, run *arena.RunState, templates []raid.Template, variancePercent int, now time.Time) {
	boss := raid.BossOfWeek(now, templates, variancePercent)
	damage := raid.DamageFor(run)

	if db == nil {
		boss.Contribute(run.Character, damage)
		fmt.Printf("\nRaid: dealt %d damage to %s (%d HP remaining, not recorded)\n",
			damage, boss.Template.Name, boss.Remaining())
		return
	}

	week := store.CurrentWeek(now)
	if err := db.AddRaidDamage(week, boss.Template.Name, run.Character, int64(damage)); err != nil {
		logger.Warning("Failed to record raid damage", "week", week, "error", err)
		return
	}
	total, err := db.RaidDamage(week)
	if err != nil {
		logger.Warning("Failed to read raid damage pool", "week", week, "error", err)
		return
	}

	remaining := int64(boss.MaxHP) - total
	if remaining < 0 {
		remaining = 0
	}
	fmt.Printf("\nRaid: dealt %d damage to %s (%d HP remaining)\n",
		damage, boss.Template.Name, remaining)
	if remaining == 0 {
		fmt.Printf("%s has fallen this week!\n", boss.Template.Name)
	}
}

// printShop writes today's shop stock to stdout.
func printShop(sim *arena.Simulator, sheet *character.Sheet) {
	eff := sheet.EffectiveStats()
	stock := sim.Roller.DailyStock(time.Now(), sheet.Level, eff.Luck)
	fmt.Println("\n=== Today's shop ===")
	for _, item := range stock.Items {
		fmt.Printf("%4dg  %s [%s]\n", item.Value, item.Name, item.Rarity)
	}
}
