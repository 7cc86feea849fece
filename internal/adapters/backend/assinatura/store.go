package assinatura

import (
	"context"

	domain "fitlab/internal/domain/assinatura"
)

// Store reads and writes Assinatura records on the backend API.
// Subscriptions are never edited in place, only created and removed.
type Store interface {
	List(ctx context.Context) ([]domain.Assinatura, error)
	ListAtivas(ctx context.Context) ([]domain.Assinatura, error)
	GetByID(ctx context.Context, id int64) (domain.Assinatura, error)
	Create(ctx context.Context, value domain.Assinatura) error
	Delete(ctx context.Context, id int64) error
}
