package estado

import (
	"context"

	domain "fitlab/internal/domain/estado"
)

// Store reads and writes Estado records on the backend API.
type Store interface {
	List(ctx context.Context) ([]domain.Estado, error)
	GetByID(ctx context.Context, id int64) (domain.Estado, error)
	Create(ctx context.Context, value domain.Estado) error
	Update(ctx context.Context, value domain.Estado) error
	Delete(ctx context.Context, id int64) error
}
