package orchestrators

import (
	"context"
	"strings"
	"time"

	"fitlab/internal/adapters/backend"
	authStore "fitlab/internal/adapters/backend/auth"
	domain "fitlab/internal/domain/administrador"
)

// LoginInput carries the credentials from the login form.
type LoginInput struct {
	Email string
	Senha string
}

// LoginResult carries everything needed to open a session.
type LoginResult struct {
	Token     string
	Admin     domain.Administrador
	ExpiresAt time.Time
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AuthStore   authStore.Store
	TokenExpiry authStore.TokenExpiry
}

// ExecuteLogin exchanges credentials for a token and loads the profile.
// PRE: input comes straight from the form, unvalidated
// POST: A non-empty field map means no backend call was made
// POST: On success the result carries the token, the admin and the exp claim
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, map[string]string, error) {
	fieldErrs := make(map[string]string)
	if strings.TrimSpace(input.Email) == "" {
		fieldErrs["email"] = "E-mail deve ser preenchido!"
	}
	if input.Senha == "" {
		fieldErrs["senha"] = "Senha deve ser preenchida!"
	}
	if len(fieldErrs) > 0 {
		return LoginResult{}, fieldErrs, nil
	}

	token, err := deps.AuthStore.Login(ctx, input.Email, input.Senha)
	if err != nil {
		return LoginResult{}, nil, err
	}

	admin, err := deps.AuthStore.Me(backend.WithToken(ctx, token))
	if err != nil {
		return LoginResult{}, nil, err
	}

	result := LoginResult{Token: token, Admin: admin}
	if deps.TokenExpiry != nil {
		result.ExpiresAt = deps.TokenExpiry(token)
	}
	return result, nil, nil
}
