package personal

import (
	"context"
	"fmt"
	"net/http"

	"fitlab/internal/adapters/backend"
	domain "fitlab/internal/domain/personal"
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

type personalPayload struct {
	Nome               string `json:"nome"`
	Email              string `json:"email"`
	Telefone           string `json:"telefone"`
	Certificacao       string `json:"certificacao"`
	Especialidade      string `json:"especialidade"`
	HorarioAtendimento string `json:"horario_atendimento"`
}

// payloadFrom normalizes the phone number to the display format before the write.
func payloadFrom(value domain.PersonalTrainer) personalPayload {
	return personalPayload{
		Nome:               value.Nome,
		Email:              value.Email,
		Telefone:           domain.FormatTelefone(value.Telefone),
		Certificacao:       value.Certificacao,
		Especialidade:      value.Especialidade,
		HorarioAtendimento: value.HorarioAtendimento,
	}
}

func (s *RESTStore) List(ctx context.Context) ([]domain.PersonalTrainer, error) {
	var out []domain.PersonalTrainer
	if err := s.api.Do(ctx, http.MethodGet, "/personaltrainers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RESTStore) GetByID(ctx context.Context, id int64) (domain.PersonalTrainer, error) {
	var out domain.PersonalTrainer
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/personaltrainers/%d", id), nil, &out); err != nil {
		return domain.PersonalTrainer{}, err
	}
	return out, nil
}

func (s *RESTStore) Create(ctx context.Context, value domain.PersonalTrainer) error {
	return s.api.Do(ctx, http.MethodPost, "/personaltrainers", payloadFrom(value), nil)
}

func (s *RESTStore) Update(ctx context.Context, value domain.PersonalTrainer) error {
	return s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/personaltrainers/%d", value.ID), payloadFrom(value), nil)
}

func (s *RESTStore) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/personaltrainers/%d", id), nil, nil)
}
