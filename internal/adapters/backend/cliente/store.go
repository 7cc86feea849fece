package cliente

import (
	"context"

	domain "fitlab/internal/domain/cliente"
)

// Store reads and writes Cliente records on the backend API.
type Store interface {
	List(ctx context.Context) ([]domain.Cliente, error)
	GetByID(ctx context.Context, id int64) (domain.Cliente, error)
	Create(ctx context.Context, value domain.Cliente) error
	Update(ctx context.Context, value domain.Cliente) error
	Delete(ctx context.Context, id int64) error
}
