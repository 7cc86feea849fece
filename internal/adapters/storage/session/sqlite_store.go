package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new session store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

var _ Store = (*SQLiteStore)(nil)

// Get retrieves a Session by its token.
// PRE: token is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) Get(ctx context.Context, token string) (Session, error) {
	query := "SELECT token, admin_id, admin_nome, admin_email, backend_token, created_at, expires_at FROM session WHERE token = ?"
	row := s.db.QueryRowContext(ctx, query, token)

	entity, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return Session{}, fmt.Errorf("session not found: %w", err)
	}
	return entity, err
}

// Save persists a Session to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity Session) error {
	query := `INSERT INTO session (token, admin_id, admin_nome, admin_email, backend_token, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(token) DO UPDATE SET
			admin_id=excluded.admin_id,
			admin_nome=excluded.admin_nome,
			admin_email=excluded.admin_email,
			backend_token=excluded.backend_token,
			expires_at=excluded.expires_at`

	_, err := s.db.ExecContext(ctx, query,
		entity.Token,
		entity.AdminID,
		entity.AdminNome,
		entity.AdminEmail,
		entity.BackendToken,
		entity.CreatedAt.Format(time.RFC3339Nano),
		entity.ExpiresAt.Format(time.RFC3339Nano),
	)
	return err
}

// Delete removes a Session from the database.
// PRE: token is non-empty
// POST: Entity with given token is removed
func (s *SQLiteStore) Delete(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE token = ?", token)
	return err
}

// DeleteExpired removes every session past its expiry.
// POST: Returns the number of sessions removed
func (s *SQLiteStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE expires_at < ?", now.Format(time.RFC3339Nano))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// scanSession extracts a Session from a row scanner function.
func scanSession(scan func(dest ...interface{}) error) (Session, error) {
	var entity Session
	var createdAt, expiresAt string
	err := scan(
		&entity.Token,
		&entity.AdminID,
		&entity.AdminNome,
		&entity.AdminEmail,
		&entity.BackendToken,
		&createdAt,
		&expiresAt,
	)
	if err != nil {
		return Session{}, err
	}
	entity.CreatedAt, _ = parseTime(createdAt)
	entity.ExpiresAt, _ = parseTime(expiresAt)
	return entity, nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		t, err := time.Parse(f, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time: %s", s)
}
