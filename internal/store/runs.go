package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/arena"
	"github.com/google/uuid"
)

// SaveRun inserts or replaces a run record. Terminal runs are
// immutable in practice, so a second save just rewrites the same row.
func (s *Store) SaveRun(run *arena.RunState) error {
	results, err := json.Marshal(run.Results)
	if err != nil {
		return fmt.Errorf("failed to encode run results: %w", err)
	}

	query := s.qb.Build(`
		INSERT INTO runs (id, character_name, status, current_hp, max_hp,
			total_exp, total_gold, highest_index, results, started_at, completes_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			current_hp = EXCLUDED.current_hp,
			total_exp = EXCLUDED.total_exp,
			total_gold = EXCLUDED.total_gold,
			highest_index = EXCLUDED.highest_index,
			results = EXCLUDED.results,
			completes_at = EXCLUDED.completes_at
	`)

	_, err = s.db.Exec(query,
		run.ID.String(), run.Character, run.Status.String(),
		run.CurrentHP, run.MaxHP, run.TotalEXP, run.TotalGold,
		run.HighestIndex, string(results), run.StartedAt, run.CompletesAt)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// GetRun loads a run by ID, or nil if it doesn't exist.
func (s *Store) GetRun(id uuid.UUID) (*arena.RunState, error) {
	query := s.qb.Build(`
		SELECT id, character_name, status, current_hp, max_hp,
			total_exp, total_gold, highest_index, results, started_at, completes_at
		FROM runs
		WHERE id = ?
	`)

	run, err := scanRun(s.db.QueryRow(query, id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// RecentRuns returns a character's runs, newest first.
func (s *Store) RecentRuns(character string, limit int) ([]*arena.RunState, error) {
	query := s.qb.Build(`
		SELECT id, character_name, status, current_hp, max_hp,
			total_exp, total_gold, highest_index, results, started_at, completes_at
		FROM runs
		WHERE character_name = ?
		ORDER BY started_at DESC
		LIMIT ?
	`)

	rows, err := s.db.Query(query, character, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*arena.RunState
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*arena.RunState, error) {
	var (
		run     arena.RunState
		rawID   string
		status  string
		results string
	)

	err := row.Scan(&rawID, &run.Character, &status, &run.CurrentHP, &run.MaxHP,
		&run.TotalEXP, &run.TotalGold, &run.HighestIndex, &results,
		&run.StartedAt, &run.CompletesAt)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run id %q: %w", rawID, err)
	}
	run.ID = id
	run.Status = parseStatus(status)
	run.VirtualDuration = run.CompletesAt.Sub(run.StartedAt)

	if err := json.Unmarshal([]byte(results), &run.Results); err != nil {
		return nil, fmt.Errorf("failed to decode run results: %w", err)
	}

	// Pacing depends on the result count, so it must be rebuilt after
	// the results are decoded.
	run.RestorePacing()

	return &run, nil
}

func parseStatus(s string) arena.Status {
	switch s {
	case "completed":
		return arena.Completed
	case "failed":
		return arena.Failed
	default:
		return arena.InProgress
	}
}
