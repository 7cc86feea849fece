package orchestrators

import (
	"context"
	"errors"

	"fitlab/internal/adapters/backend"
	treinoStore "fitlab/internal/adapters/backend/treino"
	domain "fitlab/internal/domain/treino"
)

// SaveTreinoInput carries the editor fields for a workout.
type SaveTreinoInput struct {
	ID                int64
	Objetivo          string
	Nivel             string
	Exercicios        string
	ExpiresAt         string
	ClienteID         int64
	PersonalTrainerID int64
}

// SaveTreinoDeps holds dependencies for SaveTreino.
type SaveTreinoDeps struct {
	TreinoStore treinoStore.Store
}

// ExecuteSaveTreino validates the input and creates or updates the workout.
// POST: A non-empty field map means the save was blocked before any backend call
func ExecuteSaveTreino(ctx context.Context, input SaveTreinoInput, deps SaveTreinoDeps) (map[string]string, error) {
	value := domain.Treino{
		ID:                input.ID,
		Objetivo:          input.Objetivo,
		Nivel:             input.Nivel,
		Exercicios:        input.Exercicios,
		ExpiresAt:         input.ExpiresAt,
		ClienteID:         input.ClienteID,
		PersonalTrainerID: input.PersonalTrainerID,
	}
	if fieldErrs := value.Validate(); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	var err error
	if input.ID == 0 {
		err = deps.TreinoStore.Create(ctx, value)
	} else {
		err = deps.TreinoStore.Update(ctx, value)
	}
	if err != nil {
		var vErr *backend.ValidationError
		if errors.As(err, &vErr) {
			return vErr.Fields, nil
		}
		return nil, err
	}
	return nil, nil
}
