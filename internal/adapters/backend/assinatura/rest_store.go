package assinatura

import (
	"context"
	"fmt"
	"net/http"

	"fitlab/internal/adapters/backend"
	domain "fitlab/internal/domain/assinatura"
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

type assinaturaPayload struct {
	ClienteID       int64   `json:"cliente_id"`
	PlanoID         int64   `json:"plano_id"`
	MetodoPagamento string  `json:"metodo_pagamento"`
	Valor           float64 `json:"valor"`
}

func (s *RESTStore) List(ctx context.Context) ([]domain.Assinatura, error) {
	var out []domain.Assinatura
	if err := s.api.Do(ctx, http.MethodGet, "/assinaturas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RESTStore) ListAtivas(ctx context.Context) ([]domain.Assinatura, error) {
	var out []domain.Assinatura
	if err := s.api.Do(ctx, http.MethodGet, "/assinaturas/ativas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RESTStore) GetByID(ctx context.Context, id int64) (domain.Assinatura, error) {
	var out domain.Assinatura
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/assinaturas/%d", id), nil, &out); err != nil {
		return domain.Assinatura{}, err
	}
	return out, nil
}

func (s *RESTStore) Create(ctx context.Context, value domain.Assinatura) error {
	payload := assinaturaPayload{
		ClienteID:       value.ClienteID,
		PlanoID:         value.PlanoID,
		MetodoPagamento: value.MetodoPagamento,
		Valor:           value.Valor,
	}
	return s.api.Do(ctx, http.MethodPost, "/assinaturas", payload, nil)
}

func (s *RESTStore) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/assinaturas/%d", id), nil, nil)
}
