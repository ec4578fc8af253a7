// migrate-to-postgres migrates engine data from SQLite to PostgreSQL.
//
// Usage:
//
//	go run ./cmd/migrate-to-postgres \
//	    -sqlite data/arena.db \
//	    -pg-dsn "host=localhost port=5432 user=arena password=arena dbname=arena sslmode=disable"
package main

import (
	"database/sql"
	"flag"
	"log"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/store"
)

func main() {
	// Parse command-line flags
	sqlitePath := flag.String("sqlite", "data/arena.db", "Path to SQLite database")
	pgDSN := flag.String("pg-dsn", "", "PostgreSQL connection string")
	dryRun := flag.Bool("dry-run", false, "Show what would be migrated without making changes")
	flag.Parse()

	if *pgDSN == "" {
		log.Fatal("-pg-dsn is required")
	}

	log.Println("SQLite to PostgreSQL Migration Tool")
	log.Println("====================================")

	log.Printf("Opening SQLite database: %s", *sqlitePath)
	src, err := store.Open(store.Config{Driver: "sqlite", SQLitePath: *sqlitePath})
	if err != nil {
		log.Fatalf("Failed to open SQLite database: %v", err)
	}
	defer src.Close()

	log.Println("Opening PostgreSQL database")
	dst, err := store.Open(store.Config{Driver: "postgres", PostgresDSN: *pgDSN})
	if err != nil {
		log.Fatalf("Failed to open PostgreSQL database: %v", err)
	}
	defer dst.Close()

	if *dryRun {
		log.Println("DRY RUN MODE - No changes will be made")
	}

	qb := store.NewQueryBuilder(store.NewDialect(store.DialectPostgres))

	tables := []struct {
		name    string
		columns int
		selectQ string
		insertQ string
	}{
		{
			name:    "runs",
			columns: 11,
			selectQ: `SELECT id, character_name, status, current_hp, max_hp,
				total_exp, total_gold, highest_index, results, started_at, completes_at FROM runs`,
			insertQ: `INSERT INTO runs (id, character_name, status, current_hp, max_hp,
				total_exp, total_gold, highest_index, results, started_at, completes_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`,
		},
		{
			name:    "milestone_claims",
			columns: 4,
			selectQ: `SELECT character_name, wave, gold, claimed_at FROM milestone_claims`,
			insertQ: `INSERT INTO milestone_claims (character_name, wave, gold, claimed_at)
				VALUES (?, ?, ?, ?) ON CONFLICT (character_name, wave) DO NOTHING`,
		},
		{
			name:    "streaks",
			columns: 4,
			selectQ: `SELECT character_name, current, longest, last_day FROM streaks`,
			insertQ: `INSERT INTO streaks (character_name, current, longest, last_day)
				VALUES (?, ?, ?, ?) ON CONFLICT (character_name) DO NOTHING`,
		},
		{
			name:    "raid_contributions",
			columns: 4,
			selectQ: `SELECT week, boss_name, character_name, damage FROM raid_contributions`,
			insertQ: `INSERT INTO raid_contributions (week, boss_name, character_name, damage)
				VALUES (?, ?, ?, ?) ON CONFLICT (week, character_name) DO NOTHING`,
		},
	}

	for _, table := range tables {
		copied, skipped, err := copyTable(src.DB(), dst.DB(), table.selectQ, qb.Build(table.insertQ), table.columns, *dryRun)
		if err != nil {
			log.Fatalf("Failed to migrate %s: %v", table.name, err)
		}
		log.Printf("%-20s copied %d rows (%d already present)", table.name, copied, skipped)
	}

	log.Println("Migration complete")
}

// copyTable streams every row of the select query into the insert
// query. Rows the target already has are counted, not overwritten.
func copyTable(src, dst *sql.DB, selectQ, insertQ string, columns int, dryRun bool) (copied, skipped int, err error) {
	rows, err := src.Query(selectQ)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	values := make([]any, columns)
	ptrs := make([]any, columns)
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return copied, skipped, err
		}
		if dryRun {
			copied++
			continue
		}
		res, err := dst.Exec(insertQ, values...)
		if err != nil {
			return copied, skipped, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			skipped++
		} else {
			copied++
		}
	}
	return copied, skipped, rows.Err()
}
