package personal

import (
	"context"

	domain "fitlab/internal/domain/personal"
)

// Store reads and writes PersonalTrainer records on the backend API.
type Store interface {
	List(ctx context.Context) ([]domain.PersonalTrainer, error)
	GetByID(ctx context.Context, id int64) (domain.PersonalTrainer, error)
	Create(ctx context.Context, value domain.PersonalTrainer) error
	Update(ctx context.Context, value domain.PersonalTrainer) error
	Delete(ctx context.Context, id int64) error
}
