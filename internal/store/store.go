// Package store provides SQL-backed persistence for run history,
// milestone claims, streaks, and raid contributions. It supports
// SQLite for single-host deployments and PostgreSQL for shared ones.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Config holds database connection configuration.
type Config struct {
	// Driver specifies which database to use: "sqlite" or "postgres"
	Driver string

	// SQLitePath is the database file location (sqlite only).
	SQLitePath string

	// PostgresDSN is the connection string (postgres only).
	PostgresDSN string
}

// Store wraps the database connection and provides persistence operations.
type Store struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
}

// Open opens the database described by the config and runs migrations.
func Open(cfg Config) (*Store, error) {
	dialect := NewDialect(DialectType(cfg.Driver))

	var dsn string
	switch dialect.(type) {
	case *PostgresDialect:
		dsn = cfg.PostgresDSN
	default:
		// Ensure directory exists
		dir := filepath.Dir(cfg.SQLitePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = cfg.SQLitePath
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run init statement: %w", err)
		}
	}

	s := &Store{
		db:      db,
		dialect: dialect,
		qb:      NewQueryBuilder(dialect),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema if it doesn't exist. The DDL is
// restricted to types both backends accept.
func (s *Store) migrate() error {
	migrations := []string{
		// Completed and in-flight runs. Results are stored as a JSON
		// blob since they are only ever read back whole.
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			character_name TEXT NOT NULL,
			status TEXT NOT NULL,
			current_hp INTEGER NOT NULL,
			max_hp INTEGER NOT NULL,
			total_exp INTEGER NOT NULL,
			total_gold INTEGER NOT NULL,
			highest_index INTEGER NOT NULL,
			results TEXT NOT NULL DEFAULT '[]',
			started_at TIMESTAMP NOT NULL,
			completes_at TIMESTAMP NOT NULL
		)`,

		// One row per claimed milestone wave. The primary key makes
		// double claims a constraint violation.
		`CREATE TABLE IF NOT EXISTS milestone_claims (
			character_name TEXT NOT NULL,
			wave INTEGER NOT NULL,
			gold INTEGER NOT NULL,
			claimed_at TIMESTAMP NOT NULL,
			PRIMARY KEY (character_name, wave)
		)`,

		// Streak bookkeeping, one row per character.
		`CREATE TABLE IF NOT EXISTS streaks (
			character_name TEXT PRIMARY KEY,
			current INTEGER NOT NULL,
			longest INTEGER NOT NULL,
			last_day TIMESTAMP NOT NULL
		)`,

		// Weekly raid damage, one row per character per week.
		`CREATE TABLE IF NOT EXISTS raid_contributions (
			week INTEGER NOT NULL,
			boss_name TEXT NOT NULL,
			character_name TEXT NOT NULL,
			damage BIGINT NOT NULL,
			PRIMARY KEY (week, character_name)
		)`,

		// Indexes for common queries
		`CREATE INDEX IF NOT EXISTS idx_runs_character_name ON runs(character_name)`,
		`CREATE INDEX IF NOT EXISTS idx_raid_contributions_week ON raid_contributions(week)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	return nil
}

// DB returns the underlying sql.DB for advanced operations.
func (s *Store) DB() *sql.DB {
	return s.db
}
