package session

import (
	"context"
	"time"
)

// Session is one logged-in browser. The backend token travels with it so
// every request made on behalf of this admin carries the right bearer.
type Session struct {
	Token        string
	AdminID      int64
	AdminNome    string
	AdminEmail   string
	BackendToken string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Store persists login sessions.
type Store interface {
	Get(ctx context.Context, token string) (Session, error)
	Save(ctx context.Context, entity Session) error
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
