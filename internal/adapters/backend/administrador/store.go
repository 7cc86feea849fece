package administrador

import (
	"context"

	domain "fitlab/internal/domain/administrador"
)

// Store reads and writes Administrador records on the backend API.
type Store interface {
	List(ctx context.Context) ([]domain.Administrador, error)
	GetByID(ctx context.Context, id int64) (domain.Administrador, error)
	Create(ctx context.Context, value domain.Administrador) error
	Update(ctx context.Context, value domain.Administrador) error
	Delete(ctx context.Context, id int64) error
}
