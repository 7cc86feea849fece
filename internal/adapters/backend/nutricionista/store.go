package nutricionista

import (
	"context"

	domain "fitlab/internal/domain/nutricionista"
)

// Store reads and writes Nutricionista records on the backend API.
type Store interface {
	List(ctx context.Context) ([]domain.Nutricionista, error)
	GetByID(ctx context.Context, id int64) (domain.Nutricionista, error)
	Create(ctx context.Context, value domain.Nutricionista) error
	Update(ctx context.Context, value domain.Nutricionista) error
	Delete(ctx context.Context, id int64) error
}
