package treino

import (
	"context"
	"fmt"
	"net/http"

	"fitlab/internal/adapters/backend"
	domain "fitlab/internal/domain/treino"
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

type treinoPayload struct {
	Objetivo          string `json:"objetivo"`
	Nivel             string `json:"nivel"`
	Exercicios        string `json:"exercicios"`
	ExpiresAt         string `json:"expires_at"`
	ClienteID         int64  `json:"cliente_id"`
	PersonalTrainerID int64  `json:"personal_trainer_id"`
}

func payloadFrom(value domain.Treino) treinoPayload {
	return treinoPayload{
		Objetivo:          value.Objetivo,
		Nivel:             value.Nivel,
		Exercicios:        value.Exercicios,
		ExpiresAt:         value.ExpiresAt,
		ClienteID:         value.ClienteID,
		PersonalTrainerID: value.PersonalTrainerID,
	}
}

func (s *RESTStore) List(ctx context.Context) ([]domain.Treino, error) {
	var out []domain.Treino
	if err := s.api.Do(ctx, http.MethodGet, "/treinos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RESTStore) GetByID(ctx context.Context, id int64) (domain.Treino, error) {
	var out domain.Treino
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/treinos/%d", id), nil, &out); err != nil {
		return domain.Treino{}, err
	}
	return out, nil
}

func (s *RESTStore) Create(ctx context.Context, value domain.Treino) error {
	return s.api.Do(ctx, http.MethodPost, "/treinos", payloadFrom(value), nil)
}

func (s *RESTStore) Update(ctx context.Context, value domain.Treino) error {
	return s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/treinos/%d", value.ID), payloadFrom(value), nil)
}

func (s *RESTStore) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/treinos/%d", id), nil, nil)
}
