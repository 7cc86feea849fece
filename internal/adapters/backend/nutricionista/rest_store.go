package nutricionista

import (
	"context"
	"fmt"
	"net/http"

	"fitlab/internal/adapters/backend"
	domain "fitlab/internal/domain/nutricionista"
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

type nutricionistaPayload struct {
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	Telefone      string `json:"telefone"`
	Especialidade string `json:"especialidade"`
	CRN           string `json:"crn"`
}

// payloadFrom strips phone formatting, the backend stores digits only.
func payloadFrom(value domain.Nutricionista) nutricionistaPayload {
	return nutricionistaPayload{
		Nome:          value.Nome,
		Email:         value.Email,
		Telefone:      domain.Digits(value.Telefone),
		Especialidade: value.Especialidade,
		CRN:           value.CRN,
	}
}

func (s *RESTStore) List(ctx context.Context) ([]domain.Nutricionista, error) {
	var out []domain.Nutricionista
	if err := s.api.Do(ctx, http.MethodGet, "/nutricionistas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RESTStore) GetByID(ctx context.Context, id int64) (domain.Nutricionista, error) {
	var out domain.Nutricionista
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/nutricionistas/%d", id), nil, &out); err != nil {
		return domain.Nutricionista{}, err
	}
	return out, nil
}

func (s *RESTStore) Create(ctx context.Context, value domain.Nutricionista) error {
	return s.api.Do(ctx, http.MethodPost, "/nutricionistas", payloadFrom(value), nil)
}

func (s *RESTStore) Update(ctx context.Context, value domain.Nutricionista) error {
	return s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/nutricionistas/%d", value.ID), payloadFrom(value), nil)
}

func (s *RESTStore) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/nutricionistas/%d", id), nil, nil)
}
