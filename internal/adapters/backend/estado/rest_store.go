package estado

import (
	"context"
	"fmt"
	"net/http"

	"fitlab/internal/adapters/backend"
	domain "fitlab/internal/domain/estado"
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

type estadoPayload struct {
	ClienteID             int64   `json:"cliente_id"`
	NutricionistaID       int64   `json:"nutricionista_id"`
	Data                  string  `json:"data"`
	Peso                  float64 `json:"peso"`
	Altura                float64 `json:"altura"`
	TaxaGordura           float64 `json:"taxa_gordura"`
	CircunferenciaCintura float64 `json:"circunferencia_cintura"`
	CircunferenciaBraco   float64 `json:"circunferencia_braco"`
}

func payloadFrom(value domain.Estado) estadoPayload {
	return estadoPayload{
		ClienteID:             value.ClienteID,
		NutricionistaID:       value.NutricionistaID,
		Data:                  value.Data,
		Peso:                  value.Peso,
		Altura:                value.Altura,
		TaxaGordura:           value.TaxaGordura,
		CircunferenciaCintura: value.CircunferenciaCintura,
		CircunferenciaBraco:   value.CircunferenciaBraco,
	}
}

func (s *RESTStore) List(ctx context.Context) ([]domain.Estado, error) {
	var out []domain.Estado
	if err := s.api.Do(ctx, http.MethodGet, "/estados", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RESTStore) GetByID(ctx context.Context, id int64) (domain.Estado, error) {
	var out domain.Estado
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/estados/%d", id), nil, &out); err != nil {
		return domain.Estado{}, err
	}
	return out, nil
}

func (s *RESTStore) Create(ctx context.Context, value domain.Estado) error {
	return s.api.Do(ctx, http.MethodPost, "/estados", payloadFrom(value), nil)
}

func (s *RESTStore) Update(ctx context.Context, value domain.Estado) error {
	return s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/estados/%d", value.ID), payloadFrom(value), nil)
}

func (s *RESTStore) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/estados/%d", id), nil, nil)
}
