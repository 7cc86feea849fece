package treino

import (
	"context"

	domain "fitlab/internal/domain/treino"
)

// Store reads and writes Treino records on the backend API.
type Store interface {
	List(ctx context.Context) ([]domain.Treino, error)
	GetByID(ctx context.Context, id int64) (domain.Treino, error)
	Create(ctx context.Context, value domain.Treino) error
	Update(ctx context.Context, value domain.Treino) error
	Delete(ctx context.Context, id int64) error
}
