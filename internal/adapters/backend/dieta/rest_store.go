package dieta

import (
	"context"
	"fmt"
	"net/http"

	"fitlab/internal/adapters/backend"
	domain "fitlab/internal/domain/dieta"
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

type dietaPayload struct {
	Descricao       string `json:"descricao"`
	Instrucoes      string `json:"instrucoes"`
	ExpiresAt       string `json:"expires_at"`
	ClienteID       int64  `json:"cliente_id"`
	NutricionistaID int64  `json:"nutricionista_id"`
}

func payloadFrom(value domain.Dieta) dietaPayload {
	return dietaPayload{
		Descricao:       value.Descricao,
		Instrucoes:      value.Instrucoes,
		ExpiresAt:       value.ExpiresAt,
		ClienteID:       value.ClienteID,
		NutricionistaID: value.NutricionistaID,
	}
}

func (s *RESTStore) List(ctx context.Context) ([]domain.Dieta, error) {
	var out []domain.Dieta
	if err := s.api.Do(ctx, http.MethodGet, "/dietas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RESTStore) GetByID(ctx context.Context, id int64) (domain.Dieta, error) {
	var out domain.Dieta
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/dietas/%d", id), nil, &out); err != nil {
		return domain.Dieta{}, err
	}
	return out, nil
}

func (s *RESTStore) Create(ctx context.Context, value domain.Dieta) error {
	return s.api.Do(ctx, http.MethodPost, "/dietas", payloadFrom(value), nil)
}

func (s *RESTStore) Update(ctx context.Context, value domain.Dieta) error {
	return s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/dietas/%d", value.ID), payloadFrom(value), nil)
}

func (s *RESTStore) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/dietas/%d", id), nil, nil)
}
