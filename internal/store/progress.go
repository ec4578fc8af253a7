package store

import (
	"database/sql"
	"time"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/progress"
)

// ClaimMilestone records a milestone claim and returns whether this
// was the first claim for the wave. The primary key on
// (character_name, wave) makes the claim at-most-once even across
// concurrent processes.
func (s *Store) ClaimMilestone(character string, wave, gold int) (bool, error) {
	query := s.qb.Build(`
		INSERT INTO milestone_claims (character_name, wave, gold, claimed_at)
		VALUES (?, ?, ?, ?)
	`)

	_, err := s.db.Exec(query, character, wave, gold, time.Now().UTC())
	if err != nil {
		if s.dialect.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MilestonesClaimed returns the waves a character has claimed, ascending.
func (s *Store) MilestonesClaimed(character string) ([]int, error) {
	query := s.qb.Build(`
		SELECT wave FROM milestone_claims
		WHERE character_name = ?
		ORDER BY wave ASC
	`)

	rows, err := s.db.Query(query, character)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var waves []int
	for rows.Next() {
		var wave int
		if err := rows.Scan(&wave); err != nil {
			return nil, err
		}
		waves = append(waves, wave)
	}
	return waves, rows.Err()
}

// LoadStreak returns a character's streak, or a fresh one if none is
// recorded yet.
func (s *Store) LoadStreak(character string) (*progress.Streak, error) {
	query := s.qb.Build(`
		SELECT current, longest, last_day FROM streaks
		WHERE character_name = ?
	`)

	streak := &progress.Streak{}
	err := s.db.QueryRow(query, character).Scan(&streak.Current, &streak.Longest, &streak.LastDay)
	if err == sql.ErrNoRows {
		return &progress.Streak{}, nil
	}
	if err != nil {
		return nil, err
	}
	streak.LastDay = streak.LastDay.UTC()
	return streak, nil
}

// SaveStreak writes a character's streak, replacing any existing row.
func (s *Store) SaveStreak(character string, streak *progress.Streak) error {
	query := s.qb.Build(`
		INSERT INTO streaks (character_name, current, longest, last_day)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (character_name) DO UPDATE SET
			current = EXCLUDED.current,
			longest = EXCLUDED.longest,
			last_day = EXCLUDED.last_day
	`)

	_, err := s.db.Exec(query, character, streak.Current, streak.Longest, streak.LastDay)
	return err
}
