package storage

import (
	"database/sql"
	"fmt"
)

// Open opens the local SQLite database with WAL mode, a busy timeout and
// foreign key enforcement set through the DSN.
// POST: Returns a pooled connection, caller owns Close
func Open(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	return db, nil
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// All gym data lives on the backend API. The only local state is the
	// session table backing the login cookie.
	schema := `
	CREATE TABLE IF NOT EXISTS session (
		token TEXT PRIMARY KEY,
		admin_id INTEGER NOT NULL,
		admin_nome TEXT NOT NULL DEFAULT '',
		admin_email TEXT NOT NULL DEFAULT '',
		backend_token TEXT NOT NULL,
		created_at TEXT NOT NULL,
		expires_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_session_expires ON session(expires_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
