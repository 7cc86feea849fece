package orchestrators

import (
	"context"
	"testing"
	"time"

	"fitlab/internal/adapters/backend"
	domain "fitlab/internal/domain/administrador"
)

type mockAuthStore struct {
	loginCalls int
	token      string
	loginErr   error
	admin      domain.Administrador
	meToken    string
}

func (m *mockAuthStore) Login(ctx context.Context, email, senha string) (string, error) {
	m.loginCalls++
	return m.token, m.loginErr
}

func (m *mockAuthStore) Me(ctx context.Context) (domain.Administrador, error) {
	m.meToken = backend.TokenFromContext(ctx)
	return m.admin, nil
}

func TestExecuteLogin_EmptyFieldsBlockBackend(t *testing.T) {
	store := &mockAuthStore{}

	_, fieldErrs, err := ExecuteLogin(context.Background(), LoginInput{}, LoginDeps{AuthStore: store})
	if err != nil {
		t.Fatalf("ExecuteLogin: %v", err)
	}
	if fieldErrs["email"] != "E-mail deve ser preenchido!" {
		t.Errorf("email error = %q", fieldErrs["email"])
	}
	if fieldErrs["senha"] != "Senha deve ser preenchida!" {
		t.Errorf("senha error = %q", fieldErrs["senha"])
	}
	if store.loginCalls != 0 {
		t.Errorf("backend was called %d times on empty credentials", store.loginCalls)
	}
}

func TestExecuteLogin_Success(t *testing.T) {
	exp := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	store := &mockAuthStore{
		token: "tok-abc",
		admin: domain.Administrador{ID: 1, Nome: "Ana", Email: "ana@fitlab.local"},
	}
	deps := LoginDeps{
		AuthStore:   store,
		TokenExpiry: func(token string) time.Time { return exp },
	}

	result, fieldErrs, err := ExecuteLogin(context.Background(), LoginInput{Email: "ana@fitlab.local", Senha: "s3nh4"}, deps)
	if err != nil {
		t.Fatalf("ExecuteLogin: %v", err)
	}
	if len(fieldErrs) != 0 {
		t.Fatalf("fieldErrs = %v", fieldErrs)
	}
	if result.Token != "tok-abc" {
		t.Errorf("Token = %q", result.Token)
	}
	if result.Admin.Nome != "Ana" {
		t.Errorf("Admin = %+v", result.Admin)
	}
	if !result.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want %v", result.ExpiresAt, exp)
	}
	if store.meToken != "tok-abc" {
		t.Errorf("Me was called with token %q", store.meToken)
	}
}

func TestExecuteLogin_BackendErrorPropagates(t *testing.T) {
	store := &mockAuthStore{loginErr: &backend.APIError{Status: 401, Message: "Credenciais inválidas."}}

	_, fieldErrs, err := ExecuteLogin(context.Background(), LoginInput{Email: "a@b.c", Senha: "x"}, LoginDeps{AuthStore: store})
	if err == nil {
		t.Fatal("expected the 401 to propagate")
	}
	if fieldErrs != nil {
		t.Errorf("fieldErrs = %v, want nil", fieldErrs)
	}
}
