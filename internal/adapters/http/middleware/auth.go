package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"fitlab/internal/adapters/backend"
	sessionStore "fitlab/internal/adapters/storage/session"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

// SessionTTL caps how long a login lives, regardless of the backend token.
const SessionTTL = 24 * time.Hour

const sessionCookieName = "fitlab_session"

var timeNow = time.Now

// OpenSession creates a session row for a fresh login and returns its token.
// PRE: backendToken was just issued by the backend
// POST: The session expires at the earlier of now+SessionTTL and tokenExp
func OpenSession(ctx context.Context, store sessionStore.Store, adminID int64, nome, email, backendToken string, tokenExp time.Time) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	now := timeNow()
	expires := now.Add(SessionTTL)
	if !tokenExp.IsZero() && tokenExp.Before(expires) {
		expires = tokenExp
	}
	err = store.Save(ctx, sessionStore.Session{
		Token:        token,
		AdminID:      adminID,
		AdminNome:    nome,
		AdminEmail:   email,
		BackendToken: backendToken,
		CreatedAt:    now,
		ExpiresAt:    expires,
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// CloseSession removes the session row for a logout.
func CloseSession(ctx context.Context, store sessionStore.Store, token string) error {
	return store.Delete(ctx, token)
}

// Auth returns middleware that resolves the session cookie and puts both the
// session and its backend bearer token on the request context.
// It does NOT block unauthenticated requests, use RequireAuth for that.
func Auth(store sessionStore.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err == nil && cookie.Value != "" {
				session, err := store.Get(r.Context(), cookie.Value)
				if err == nil {
					if session.Expired(timeNow()) {
						store.Delete(r.Context(), cookie.Value)
					} else {
						ctx := context.WithValue(r.Context(), sessionContextKey, session)
						ctx = backend.WithToken(ctx, session.BackendToken)
						r = r.WithContext(ctx)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns middleware that blocks unauthenticated requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (sessionStore.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(sessionStore.Session)
	return session, ok
}

// SessionTokenFromRequest reads the raw session cookie value, empty if absent.
func SessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   false, // Allow HTTP for local development
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(SessionTTL / time.Second),
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// ContextWithSession returns a context with the given session set.
// Intended for use in tests.
func ContextWithSession(ctx context.Context, sess sessionStore.Session) context.Context {
	ctx = context.WithValue(ctx, sessionContextKey, sess)
	return backend.WithToken(ctx, sess.BackendToken)
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
