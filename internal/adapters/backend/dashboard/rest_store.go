package dashboard

import (
	"context"
	"net/http"

	"fitlab/internal/adapters/backend"
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

func (s *RESTStore) GetOverview(ctx context.Context) (Overview, error) {
	var out Overview
	if err := s.api.Do(ctx, http.MethodGet, "/dashboard/overview", nil, &out); err != nil {
		return Overview{}, err
	}
	return out, nil
}
