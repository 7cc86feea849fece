package checkin

import (
	"context"
	"fmt"
	"net/http"

	"fitlab/internal/adapters/backend"
	domain "fitlab/internal/domain/checkin"
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

func (s *RESTStore) List(ctx context.Context) ([]domain.CheckIn, error) {
	var out []domain.CheckIn
	if err := s.api.Do(ctx, http.MethodGet, "/checkins", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RESTStore) GetByID(ctx context.Context, id int64) (domain.CheckIn, error) {
	var out domain.CheckIn
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/checkins/%d", id), nil, &out); err != nil {
		return domain.CheckIn{}, err
	}
	return out, nil
}

func (s *RESTStore) Create(ctx context.Context, assinaturaID int64) error {
	payload := struct {
		AssinaturaID int64 `json:"assinatura_id"`
	}{AssinaturaID: assinaturaID}
	return s.api.Do(ctx, http.MethodPost, "/checkins", payload, nil)
}

func (s *RESTStore) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/checkins/%d", id), nil, nil)
}
