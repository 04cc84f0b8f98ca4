package repository

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens (or creates) a SQLite database at the given path and ensures
// all required tables exist. Pass ":memory:" for an in-memory database.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			client_id TEXT NOT NULL,
			service_id TEXT NOT NULL,
			file_hash TEXT UNIQUE NOT NULL,
			format TEXT NOT NULL,
			period_start DATETIME,
			period_end DATETIME,
			transaction_count INTEGER NOT NULL,
			total_amount TEXT NOT NULL,
			provider_commission TEXT NOT NULL,
			platform_commission TEXT NOT NULL,
			client_payout TEXT NOT NULL,
			payload TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_client ON reports(client_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at)`,

		`CREATE TABLE IF NOT EXISTS report_transactions (
			report_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			external_id TEXT NOT NULL,
			ts DATETIME,
			device TEXT NOT NULL,
			masked_card TEXT NOT NULL,
			card_class TEXT NOT NULL,
			subtotal TEXT NOT NULL,
			tip TEXT NOT NULL,
			total TEXT NOT NULL,
			refunded TEXT NOT NULL,
			provider_commission TEXT NOT NULL,
			provider_rate TEXT NOT NULL,
			platform_commission TEXT NOT NULL,
			platform_rate TEXT NOT NULL,
			client_payout TEXT NOT NULL,
			PRIMARY KEY (report_id, seq),
			FOREIGN KEY (report_id) REFERENCES reports(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_report_transactions_external ON report_transactions(external_id)`,

		`CREATE TABLE IF NOT EXISTS report_allocations (
			report_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			recipient_id TEXT NOT NULL,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			percentage TEXT NOT NULL,
			amount TEXT NOT NULL,
			PRIMARY KEY (report_id, seq),
			FOREIGN KEY (report_id) REFERENCES reports(id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:60], err)
		}
	}

	return nil
}
