package dieta

import (
	"context"

	domain "fitlab/internal/domain/dieta"
)

// Store reads and writes Dieta records on the backend API.
type Store interface {
	List(ctx context.Context) ([]domain.Dieta, error)
	GetByID(ctx context.Context, id int64) (domain.Dieta, error)
	Create(ctx context.Context, value domain.Dieta) error
	Update(ctx context.Context, value domain.Dieta) error
	Delete(ctx context.Context, id int64) error
}
