package administrador

import (
	"context"
	"fmt"
	"net/http"

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

// administradorPayload carries the editable fields on writes. Senha is
// omitted when blank so an update keeps the current password.
type administradorPayload struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Senha    string `json:"senha,omitempty"`
}

func payloadFrom(value domain.Administrador) administradorPayload {
	return administradorPayload{
		Nome:     value.Nome,
		Email:    value.Email,
		Telefone: value.Telefone,
		Senha:    value.Senha,
	}
}

func (s *RESTStore) List(ctx context.Context) ([]domain.Administrador, error) {
	var out []domain.Administrador
	if err := s.api.Do(ctx, http.MethodGet, "/administradores", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RESTStore) GetByID(ctx context.Context, id int64) (domain.Administrador, error) {
	var out domain.Administrador
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/administradores/%d", id), nil, &out); err != nil {
		return domain.Administrador{}, err
	}
	return out, nil
}

func (s *RESTStore) Create(ctx context.Context, value domain.Administrador) error {
	return s.api.Do(ctx, http.MethodPost, "/administradores", payloadFrom(value), nil)
}

func (s *RESTStore) Update(ctx context.Context, value domain.Administrador) error {
	return s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/administradores/%d", value.ID), payloadFrom(value), nil)
}

func (s *RESTStore) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/administradores/%d", id), nil, nil)
}
