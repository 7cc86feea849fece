package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fitlab/internal/adapters/backend"
	domain "fitlab/internal/domain/administrador"
)

// RESTStore implements Store against the backend API.
type RESTStore struct {
	api backend.Doer
}

var _ Store = (*RESTStore)(nil)

// NewRESTStore creates a Store backed by the given API client.
func NewRESTStore(api backend.Doer) *RESTStore {
	return &RESTStore{api: api}
}

// Login exchanges credentials for a bearer token.
// PRE: email and senha are non-empty
// POST: Returns the JWT issued by the backend
func (s *RESTStore) Login(ctx context.Context, email, senha string) (string, error) {
	payload := struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}{Email: email, Senha: senha}
	var out struct {
		Token string `json:"token"`
	}
	if err := s.api.Do(ctx, http.MethodPost, "/login", payload, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Me fetches the administrator behind the token in ctx.
func (s *RESTStore) Me(ctx context.Context) (domain.Administrador, error) {
	var out struct {
		Admin domain.Administrador `json:"admin"`
	}
	if err := s.api.Do(ctx, http.MethodGet, "/me", nil, &out); err != nil {
		return domain.Administrador{}, err
	}
	return out.Admin, nil
}

// ExpiryOf reads the exp claim without verifying the signature.
// POST: Returns the zero time for malformed tokens or tokens without exp
func ExpiryOf(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
