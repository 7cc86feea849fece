package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"fitlab/internal/adapters/storage"
)

// openTestDB creates an in-memory SQLite database with the schema applied.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	return db
}

func TestSQLiteStore_SaveGetDelete(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))
	ctx := context.Background()

	entity := Session{
		Token:        "sess-1",
		AdminID:      3,
		AdminNome:    "Ana",
		AdminEmail:   "ana@fitlab.local",
		BackendToken: "jwt-abc",
		CreatedAt:    time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		ExpiresAt:    time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
	}
	if err := store.Save(ctx, entity); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.AdminID != 3 || got.AdminNome != "Ana" || got.BackendToken != "jwt-abc" {
		t.Errorf("got %+v", got)
	}
	if !got.ExpiresAt.Equal(entity.ExpiresAt) {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, entity.ExpiresAt)
	}

	if err := store.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "sess-1"); err == nil {
		t.Fatal("Get after Delete should fail")
	}
}

func TestSQLiteStore_SaveUpserts(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))
	ctx := context.Background()

	entity := Session{Token: "sess-1", AdminID: 1, BackendToken: "old", CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.Save(ctx, entity); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	entity.BackendToken = "new"
	if err := store.Save(ctx, entity); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := store.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.BackendToken != "new" {
		t.Errorf("BackendToken = %q, want %q", got.BackendToken, "new")
	}
}

func TestSQLiteStore_DeleteExpired(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	sessions := []Session{
		{Token: "live", AdminID: 1, BackendToken: "t", CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
		{Token: "dead-1", AdminID: 1, BackendToken: "t", CreatedAt: now.Add(-48 * time.Hour), ExpiresAt: now.Add(-24 * time.Hour)},
		{Token: "dead-2", AdminID: 2, BackendToken: "t", CreatedAt: now.Add(-30 * time.Hour), ExpiresAt: now.Add(-time.Minute)},
	}
	for _, s := range sessions {
		if err := store.Save(ctx, s); err != nil {
			t.Fatalf("Save %s failed: %v", s.Token, err)
		}
	}

	removed, err := store.DeleteExpired(ctx, now)
	if err != nil {
		t.Fatalf("DeleteExpired failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if _, err := store.Get(ctx, "live"); err != nil {
		t.Errorf("live session was removed: %v", err)
	}
	if _, err := store.Get(ctx, "dead-1"); err == nil {
		t.Error("expired session survived")
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		exp  time.Time
		want bool
	}{
		{"future expiry", now.Add(time.Hour), false},
		{"past expiry", now.Add(-time.Hour), true},
		{"zero expiry never expires", time.Time{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Session{ExpiresAt: tc.exp}
			if got := s.Expired(now); got != tc.want {
				t.Errorf("Expired = %v, want %v", got, tc.want)
			}
		})
	}
}
