package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 2*time.Second), srv
}

// TestClient_Do_UnwrapsEnvelope verifies the {"data": ...} envelope is transparent.
func TestClient_Do_UnwrapsEnvelope(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"token":"abc123"}}`))
	})
	defer srv.Close()

	var out struct {
		Token string `json:"token"`
	}
	if err := c.Do(context.Background(), http.MethodPost, "/login", nil, &out); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if out.Token != "abc123" {
		t.Errorf("Token = %q, want abc123", out.Token)
	}
}

// TestClient_Do_DecodesBareArray verifies list endpoints without an envelope decode.
func TestClient_Do_DecodesBareArray(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"nome":"Maria"},{"id":2,"nome":"Joao"}]`))
	})
	defer srv.Close()

	var out []struct {
		ID   int64  `json:"id"`
		Nome string `json:"nome"`
	}
	if err := c.Do(context.Background(), http.MethodGet, "/clientes", nil, &out); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if len(out) != 2 || out[1].Nome != "Joao" {
		t.Errorf("unexpected decode result: %+v", out)
	}
}

// TestClient_Do_ValidationError verifies field errors come back tagged.
func TestClient_Do_ValidationError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"email":"E-mail já cadastrado."}}`))
	})
	defer srv.Close()

	err := c.Do(context.Background(), http.MethodPost, "/clientes", map[string]string{}, nil)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if vErr.Fields["email"] != "E-mail já cadastrado." {
		t.Errorf("Fields = %v", vErr.Fields)
	}
}

// TestClient_Do_APIErrorMessagePrecedence verifies message > err > error.
func TestClient_Do_APIErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message wins", `{"message":"sem permissão","err":"x","error":"y"}`, "sem permissão"},
		{"err next", `{"err":"credenciais inválidas","error":"y"}`, "credenciais inválidas"},
		{"error last", `{"error":"falhou"}`, "falhou"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			})
			defer srv.Close()

			err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil)
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %T", err)
			}
			if apiErr.Message != tt.want {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.want)
			}
		})
	}
}

// TestClient_Do_NetworkError verifies unreachable hosts yield NetworkError.
func TestClient_Do_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	c := NewClient(srv.URL, time.Second)
	err := c.Do(context.Background(), http.MethodGet, "/clientes", nil, nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
}

// TestClient_Do_SendsBearerToken verifies the context token reaches the wire.
func TestClient_Do_SendsBearerToken(t *testing.T) {
	var gotAuth string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	ctx := WithToken(context.Background(), "tok-1")
	if err := c.Do(ctx, http.MethodGet, "/me", nil, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&APIError{Status: http.StatusNotFound}) {
		t.Error("404 should be not found")
	}
	if IsNotFound(&APIError{Status: http.StatusForbidden}) {
		t.Error("403 is not not-found")
	}
	if IsNotFound(errors.New("misc")) {
		t.Error("plain errors are not not-found")
	}
}
