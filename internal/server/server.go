// Package server exposes the run engine over HTTP and WebSocket. Runs
// are simulated synchronously at creation; clients then poll or
// subscribe to watch results appear on the reveal schedule.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/arena"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/character"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/config"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/logger"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/rng"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/stats"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/store"
	"github.com/google/uuid"
)

// Server handles run creation and result streaming.
type Server struct {
	cfg         *config.EngineConfig
	sim         *arena.Simulator
	db          *store.Store
	connLimiter *ConnLimiter

	mu   sync.RWMutex
	runs map[uuid.UUID]*arena.RunState
}

// NewServer creates a server around a configured simulator. The store
// may be nil, in which case runs are held in memory only.
func NewServer(cfg *config.EngineConfig, sim *arena.Simulator, db *store.Store) *Server {
	return &Server{
		cfg:         cfg,
		sim:         sim,
		db:          db,
		connLimiter: NewConnLimiter(cfg.Connections),
		runs:        make(map[uuid.UUID]*arena.RunState),
	}
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /runs", s.handleStartRun)
	mux.HandleFunc("GET /runs/{id}", s.handleGetRun)
	mux.HandleFunc("GET /ws/runs/{id}", s.handleWebSocketUpgrade)
	return mux
}

// Start starts the HTTP server on the given address and blocks.
func (s *Server) Start(address string) error {
	logger.Info("Arena server listening", "address", address)
	return http.ListenAndServe(address, s.Handler())
}

// startRunRequest is the JSON body for POST /runs.
type startRunRequest struct {
	Name  string `json:"name"`
	Seed  uint64 `json:"seed,omitempty"`
	Steps int    `json:"steps,omitempty"`
	MaxHP int    `json:"max_hp,omitempty"`

	Strength  int `json:"strength"`
	Dexterity int `json:"dexterity"`
	Wisdom    int `json:"wisdom"`
	Charisma  int `json:"charisma"`
	Defense   int `json:"defense"`
	Luck      int `json:"luck"`
}

// runSummary is the JSON view of a run. Until every result has been
// revealed the status reads in_progress regardless of the stored
// outcome, so clients cannot peek at the ending.
type runSummary struct {
	ID            string                  `json:"id"`
	Character     string                  `json:"character"`
	Status        string                  `json:"status"`
	StartedAt     time.Time               `json:"started_at"`
	CompletesAt   time.Time               `json:"completes_at"`
	RevealedCount int                     `json:"revealed_count"`
	TotalWaves    int                     `json:"total_waves"`
	Revealed      []arena.EncounterResult `json:"revealed"`
}

func (s *Server) summarize(run *arena.RunState, at time.Time) runSummary {
	revealed := run.RevealedResults(at)
	status := run.Status.String()
	if !run.FullyRevealed(at) {
		status = arena.InProgress.String()
	}
	return runSummary{
		ID:            run.ID.String(),
		Character:     run.Character,
		Status:        status,
		StartedAt:     run.StartedAt,
		CompletesAt:   run.CompletesAt,
		RevealedCount: len(revealed),
		TotalWaves:    len(run.Results),
		Revealed:      revealed,
	}
}

// handleStartRun simulates a new run and returns its initial summary.
func (s *Server) handleStartRun(w http.ResponseWriter, r *http.Request) {
	var req startRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	maxHP := req.MaxHP
	if maxHP <= 0 {
		maxHP = 100
	}
	sheet := character.NewSheet(req.Name,
		stats.NewStats(req.Strength, req.Dexterity, req.Wisdom, req.Charisma, req.Defense, req.Luck),
		maxHP)

	now := time.Now()
	seed := req.Seed
	if seed == 0 {
		seed = rng.DateSeed(now)
	}

	sim := *s.sim
	if req.Steps > 0 {
		sim.MaxSteps = req.Steps
	}

	run := sim.Run(sheet, rng.New(seed), now)

	s.mu.Lock()
	s.runs[run.ID] = run
	s.mu.Unlock()

	if s.db != nil {
		if err := s.db.SaveRun(run); err != nil {
			logger.Error("Failed to persist run", "run_id", run.ID, "error", err)
		}
	}

	logger.Info("Run started", "run_id", run.ID, "character", run.Character,
		"waves", len(run.Results), "completes_at", run.CompletesAt)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s.summarize(run, now))
}

// lookupRun finds a run in memory, falling back to the store.
func (s *Server) lookupRun(id uuid.UUID) (*arena.RunState, error) {
	s.mu.RLock()
	run, ok := s.runs[id]
	s.mu.RUnlock()
	if ok {
		return run, nil
	}

	if s.db == nil {
		return nil, nil
	}
	run, err := s.db.GetRun(id)
	if err != nil {
		return nil, err
	}
	if run != nil {
		s.mu.Lock()
		s.runs[id] = run
		s.mu.Unlock()
	}
	return run, nil
}

// runFromRequest parses the path ID and loads the run, writing the
// appropriate error response when it can't.
func (s *Server) runFromRequest(w http.ResponseWriter, r *http.Request) *arena.RunState {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid run id", http.StatusBadRequest)
		return nil
	}

	run, err := s.lookupRun(id)
	if err != nil {
		logger.Error("Failed to load run", "run_id", id, "error", err)
		http.Error(w, "failed to load run", http.StatusInternalServerError)
		return nil
	}
	if run == nil {
		http.Error(w, "run not found", http.StatusNotFound)
		return nil
	}
	return run
}

// handleGetRun returns the run's summary with results revealed as of now.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run := s.runFromRequest(w, r)
	if run == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.summarize(run, time.Now()))
}

// getRealIP extracts the real client IP from an HTTP request.
// It checks X-Forwarded-For header first (for reverse proxy setups),
// then falls back to the direct remote address.
func getRealIP(r *http.Request) string {
	// Check X-Forwarded-For header (set by reverse proxies like nginx)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// X-Forwarded-For can contain multiple IPs: "client, proxy1, proxy2"
		// The first one is the original client
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			clientIP := strings.TrimSpace(ips[0])
			if clientIP != "" {
				return clientIP
			}
		}
	}

	// Check X-Real-IP header (alternative header used by some proxies)
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to direct remote address
	return extractIP(r.RemoteAddr)
}
