package plano

import (
	"context"
	"fmt"
	"net/http"

	"fitlab/internal/adapters/backend"
	domain "fitlab/internal/domain/plano"
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

type planoPayload struct {
	Nome       string  `json:"nome"`
	Frequencia string  `json:"frequencia"`
	Valor      float64 `json:"valor"`
}

func payloadFrom(value domain.Plano) planoPayload {
	return planoPayload{Nome: value.Nome, Frequencia: value.Frequencia, Valor: value.Valor}
}

func (s *RESTStore) List(ctx context.Context) ([]domain.Plano, error) {
	var out []domain.Plano
	if err := s.api.Do(ctx, http.MethodGet, "/planos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RESTStore) GetByID(ctx context.Context, id int64) (domain.Plano, error) {
	var out domain.Plano
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/planos/%d", id), nil, &out); err != nil {
		return domain.Plano{}, err
	}
	return out, nil
}

func (s *RESTStore) Create(ctx context.Context, value domain.Plano) error {
	return s.api.Do(ctx, http.MethodPost, "/planos", payloadFrom(value), nil)
}

func (s *RESTStore) Update(ctx context.Context, value domain.Plano) error {
	return s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/planos/%d", value.ID), payloadFrom(value), nil)
}

func (s *RESTStore) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/planos/%d", id), nil, nil)
}
