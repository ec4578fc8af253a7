package server

import (
	"net/http"
	"time"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/arena"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/logger"
	"github.com/gorilla/websocket"
)

// revealEvent is one WebSocket message: either a newly revealed result
// or the final summary when the run is fully revealed.
type revealEvent struct {
	Type    string                 `json:"type"` // "result" or "done"
	Result  *arena.EncounterResult `json:"result,omitempty"`
	Summary *runSummary            `json:"summary,omitempty"`
}

// handleWebSocketUpgrade upgrades the connection and streams the run's
// results as they become visible.
func (s *Server) handleWebSocketUpgrade(w http.ResponseWriter, r *http.Request) {
	run := s.runFromRequest(w, r)
	if run == nil {
		return
	}

	// Get the real client IP (supports X-Forwarded-For from reverse proxies)
	clientIP := getRealIP(r)

	// Check connection limits before upgrading
	if s.connLimiter != nil && !s.connLimiter.TryAcquire(clientIP) {
		logger.Warning("WebSocket connection rejected - limit exceeded",
			"remote_addr", r.RemoteAddr,
			"client_ip", clientIP)
		http.Error(w, "Too many connections. Please try again later.", http.StatusTooManyRequests)
		return
	}

	// Create upgrader with origin check based on server config
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := s.cfg.WebSocket.IsOriginAllowed(origin, r.Host)
			if !allowed {
				logger.Warning("WebSocket connection rejected - origin not allowed",
					"origin", origin,
					"host", r.Host,
					"remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", "error", err)
		// Release the connection slot since upgrade failed
		if s.connLimiter != nil {
			s.connLimiter.Release(clientIP)
		}
		return
	}

	go s.streamRun(wsConn, run, clientIP)
}

// streamRun writes already-revealed results immediately, then one
// message per reveal until the run finishes, then a summary and close.
func (s *Server) streamRun(wsConn *websocket.Conn, run *arena.RunState, clientIP string) {
	defer func() {
		if s.connLimiter != nil {
			s.connLimiter.Release(clientIP)
		}
		wsConn.Close()
	}()

	if s.cfg.WebSocket.MaxMessageSize > 0 {
		wsConn.SetReadLimit(s.cfg.WebSocket.MaxMessageSize)
	}

	// Discard client messages, but notice when the peer goes away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := wsConn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sent := 0
	for {
		now := time.Now()
		revealed := run.RevealedResults(now)

		for sent < len(revealed) {
			res := revealed[sent]
			if err := wsConn.WriteJSON(revealEvent{Type: "result", Result: &res}); err != nil {
				logger.Debug("WebSocket write failed", "run_id", run.ID, "error", err)
				return
			}
			sent++
		}

		if run.FullyRevealed(now) {
			summary := s.summarize(run, now)
			if err := wsConn.WriteJSON(revealEvent{Type: "done", Summary: &summary}); err != nil {
				logger.Debug("WebSocket write failed", "run_id", run.ID, "error", err)
			}
			return
		}

		next := run.NextRevealAt(now)
		if next.IsZero() {
			// Pacing is broken; nothing further will ever reveal.
			logger.Warning("Run has no reveal schedule, closing stream", "run_id", run.ID)
			return
		}
		wait := time.Until(next)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-time.After(wait):
		case <-closed:
			return
		}
	}
}
