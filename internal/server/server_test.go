package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/arena"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/config"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/encounter"
	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/loot"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultConfig()
	sim := arena.NewSimulator(5)
	return NewServer(cfg, sim, nil)
}

// revealedRun builds a finished run whose results are all already
// visible, as if it started in the past.
func revealedRun(waves int) *arena.RunState {
	started := time.Now().Add(-1 * time.Hour)
	results := make([]arena.EncounterResult, waves)
	for i := range results {
		results[i] = arena.EncounterResult{
			Index:    i + 1,
			Name:     "Rusted Sentinel",
			Category: encounter.Combat,
			Approach: "aggressive",
			Success:  true,
			EXP:      15,
			Drops:    []loot.Item{},
		}
	}
	run := &arena.RunState{
		ID:          uuid.New(),
		Character:   "rowan",
		Status:      arena.Completed,
		Results:     results,
		StartedAt:   started,
		CompletesAt: started.Add(time.Duration(waves) * time.Second),
	}
	run.RestorePacing()
	return run
}

func TestStartRun(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	body := `{"name":"rowan","strength":12,"dexterity":10,"wisdom":10,"charisma":10,"defense":10,"luck":10,"seed":99}`
	resp, err := http.Post(ts.URL+"/runs", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /runs failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	var summary runSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if summary.Character != "rowan" {
		t.Errorf("character = %q, want rowan", summary.Character)
	}
	if summary.TotalWaves == 0 {
		t.Error("run should have resolved at least one wave")
	}
	if summary.Status != "in_progress" {
		t.Errorf("fresh run status = %q, want in_progress", summary.Status)
	}
	if summary.RevealedCount != 0 {
		t.Errorf("fresh run revealed %d results, want 0", summary.RevealedCount)
	}
}

func TestStartRunValidation(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	// Missing name
	resp, err := http.Post(ts.URL+"/runs", "application/json", strings.NewReader(`{"strength":10}`))
	if err != nil {
		t.Fatalf("POST /runs failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing name status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	// Malformed JSON
	resp, err = http.Post(ts.URL+"/runs", "application/json", strings.NewReader(`{broken`))
	if err != nil {
		t.Fatalf("POST /runs failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad JSON status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/runs/" + uuid.NewString())
	if err != nil {
		t.Fatalf("GET /runs failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown run status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	resp, err = http.Get(ts.URL + "/runs/not-a-uuid")
	if err != nil {
		t.Fatalf("GET /runs failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestGetRunFullyRevealed(t *testing.T) {
	s := newTestServer(t)
	run := revealedRun(3)
	s.runs[run.ID] = run

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/runs/" + run.ID.String())
	if err != nil {
		t.Fatalf("GET /runs failed: %v", err)
	}
	defer resp.Body.Close()

	var summary runSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if summary.Status != "completed" {
		t.Errorf("revealed run status = %q, want completed", summary.Status)
	}
	if summary.RevealedCount != 3 {
		t.Errorf("revealed count = %d, want 3", summary.RevealedCount)
	}
	if len(summary.Revealed) != 3 {
		t.Errorf("revealed results = %d, want 3", len(summary.Revealed))
	}
}

func TestWebSocketStream(t *testing.T) {
	s := newTestServer(t)
	run := revealedRun(3)
	s.runs[run.ID] = run

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/runs/" + run.ID.String()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("WebSocket dial failed: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var results int
	for {
		var event revealEvent
		if err := conn.ReadJSON(&event); err != nil {
			t.Fatalf("failed to read event after %d results: %v", results, err)
		}
		if event.Type == "done" {
			if event.Summary == nil {
				t.Fatal("done event missing summary")
			}
			if event.Summary.Status != "completed" {
				t.Errorf("summary status = %q, want completed", event.Summary.Status)
			}
			break
		}
		if event.Type != "result" || event.Result == nil {
			t.Fatalf("unexpected event: %+v", event)
		}
		results++
	}

	if results != 3 {
		t.Errorf("streamed %d results, want 3", results)
	}
}

func TestWebSocketRunNotFound(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/runs/" + uuid.NewString()
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		t.Fatal("expected dial to fail for unknown run")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 handshake response, got %+v", resp)
	}
}
