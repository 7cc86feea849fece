package plano

import (
	"context"

	domain "fitlab/internal/domain/plano"
)

// Store reads and writes Plano records on the backend API.
type Store interface {
	List(ctx context.Context) ([]domain.Plano, error)
	GetByID(ctx context.Context, id int64) (domain.Plano, error)
	Create(ctx context.Context, value domain.Plano) error
	Update(ctx context.Context, value domain.Plano) error
	Delete(ctx context.Context, id int64) error
}
