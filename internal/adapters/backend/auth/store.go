package auth

import (
	"context"
	"time"

	domain "fitlab/internal/domain/administrador"
)

// Store authenticates against the backend API.
type Store interface {
	Login(ctx context.Context, email, senha string) (string, error)
	Me(ctx context.Context) (domain.Administrador, error)
}

// TokenExpiry reads the exp claim from a backend JWT. The zero time means
// the token carries no expiry. Signature verification stays with the
// backend, the token is opaque to this app otherwise.
type TokenExpiry func(token string) time.Time
