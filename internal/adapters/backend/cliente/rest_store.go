package cliente

import (
	"context"
	"fmt"
	"net/http"

	"fitlab/internal/adapters/backend"
	domain "fitlab/internal/domain/cliente"
)

// RESTStore implements Store against the backend API.
type RESTStore struct {
	api backend.Doer
}

// Compile-time check that *RESTStore satisfies Store.
var _ Store = (*RESTStore)(nil)

// NewRESTStore creates a Store backed by the given API client.
func NewRESTStore(api backend.Doer) *RESTStore {
	return &RESTStore{api: api}
}

// clientePayload carries only the editable fields on writes.
type clientePayload struct {
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	DataNascimento string `json:"data_nascimento"`
}

func payloadFrom(value domain.Cliente) clientePayload {
	return clientePayload{
		Nome:           value.Nome,
		Email:          value.Email,
		Telefone:       value.Telefone,
		DataNascimento: value.DataNascimento,
	}
}

func (s *RESTStore) List(ctx context.Context) ([]domain.Cliente, error) {
	var out []domain.Cliente
	if err := s.api.Do(ctx, http.MethodGet, "/clientes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RESTStore) GetByID(ctx context.Context, id int64) (domain.Cliente, error) {
	var out domain.Cliente
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/clientes/%d", id), nil, &out); err != nil {
		return domain.Cliente{}, err
	}
	return out, nil
}

func (s *RESTStore) Create(ctx context.Context, value domain.Cliente) error {
	return s.api.Do(ctx, http.MethodPost, "/clientes", payloadFrom(value), nil)
}

func (s *RESTStore) Update(ctx context.Context, value domain.Cliente) error {
	return s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/clientes/%d", value.ID), payloadFrom(value), nil)
}

func (s *RESTStore) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/clientes/%d", id), nil, nil)
}
