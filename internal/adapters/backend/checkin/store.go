package checkin

import (
	"context"

	domain "fitlab/internal/domain/checkin"
)

// Store reads and writes CheckIn records on the backend API.
type Store interface {
	List(ctx context.Context) ([]domain.CheckIn, error)
	GetByID(ctx context.Context, id int64) (domain.CheckIn, error)
	Create(ctx context.Context, assinaturaID int64) error
	Delete(ctx context.Context, id int64) error
}
