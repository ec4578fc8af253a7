package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/arena"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/catalog"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/config"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/logger"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/server"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/store"
)

func main() {
	// Parse command-line flags
	port := flag.Int("port", 8480, "HTTP/WebSocket server port")
	configFile := flag.String("config", "data/engine.yaml", "Path to engine config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	catalogFile := flag.String("catalog", "", "Path to content catalog YAML file (overrides config)")
	noPersist := flag.Bool("no-persist", false, "Keep runs in memory only")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	logger.Info("Starting arena server")

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Failed to load engine config, using defaults", "path", *configFile, "error", err)
	}

	sim := arena.NewSimulator(cfg.Arena.MaxSteps)
	sim.SecondsPerStep = cfg.Arena.SecondsPerStep

	catalogPath := cfg.CatalogPath
	if *catalogFile != "" {
		catalogPath = *catalogFile
	}
	if catalogPath != "" {
		cat, err := catalog.Load(catalogPath)
		if err != nil {
			logger.Warning("Failed to load catalog, using built-in content", "path", catalogPath, "error", err)
		} else {
			sim.Pools = cat.Pools()
			sim.Approaches = cat.ApproachSlate()
			sim.Roller.Namer = cat.Namer()
			logger.Info("Catalog loaded", "path", catalogPath)
		}
	}

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
		logger.Info("Run database initialized", "driver", cfg.Database.Driver)
	}

	if len(cfg.WebSocket.AllowedOrigins) == 0 {
		logger.Info("WebSocket CORS policy", "mode", "same-origin")
	} else if len(cfg.WebSocket.AllowedOrigins) == 1 && cfg.WebSocket.AllowedOrigins[0] == "*" {
		logger.Warning("WebSocket CORS allows all origins (not recommended for production)")
	} else {
		logger.Info("WebSocket CORS policy", "allowed_origins", cfg.WebSocket.AllowedOrigins)
	}

	srv := server.NewServer(cfg, sim, db)

	addr := fmt.Sprintf(":%d", *port)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
