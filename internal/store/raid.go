package store

import (
	"time"
)

// RaidContribution is one character's accumulated damage for a week.
type RaidContribution struct {
	Week      int
	BossName  string
	Character string
	Damage    int64
}

// AddRaidDamage adds damage to a character's weekly contribution,
// creating the row on first contribution.
func (s *Store) AddRaidDamage(week int, bossName, character string, damage int64) error {
	query := s.qb.Build(`
		INSERT INTO raid_contributions (week, boss_name, character_name, damage)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (week, character_name) DO UPDATE SET
			damage = raid_contributions.damage + EXCLUDED.damage
	`)

	_, err := s.db.Exec(query, week, bossName, character, damage)
	return err
}

// RaidDamage returns the total damage dealt to the week's boss.
func (s *Store) RaidDamage(week int) (int64, error) {
	query := s.qb.Build(`
		SELECT COALESCE(SUM(damage), 0) FROM raid_contributions
		WHERE week = ?
	`)

	var total int64
	if err := s.db.QueryRow(query, week).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// RaidLeaderboard returns the week's contributions sorted by damage.
func (s *Store) RaidLeaderboard(week int, limit int) ([]RaidContribution, error) {
	query := s.qb.Build(`
		SELECT week, boss_name, character_name, damage
		FROM raid_contributions
		WHERE week = ?
		ORDER BY damage DESC
		LIMIT ?
	`)

	rows, err := s.db.Query(query, week, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []RaidContribution
	for rows.Next() {
		var entry RaidContribution
		if err := rows.Scan(&entry.Week, &entry.BossName, &entry.Character, &entry.Damage); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// CurrentWeek returns the raid week number for a timestamp. Weeks are
// ISO weeks encoded as year*100+week so they sort and compare cleanly.
func CurrentWeek(at time.Time) int {
	year, week := at.ISOWeek()
	return year*100 + week
}
