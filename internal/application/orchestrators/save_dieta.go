package orchestrators

import (
	"context"
	"errors"

	"fitlab/internal/adapters/backend"
	dietaStore "fitlab/internal/adapters/backend/dieta"
	domain "fitlab/internal/domain/dieta"
)

// SaveDietaInput carries the editor fields for a diet.
type SaveDietaInput struct {
	ID              int64
	Descricao       string
	Instrucoes      string
	ExpiresAt       string
	ClienteID       int64
	NutricionistaID int64
}

// SaveDietaDeps holds dependencies for SaveDieta.
type SaveDietaDeps struct {
	DietaStore dietaStore.Store
}

// ExecuteSaveDieta validates the input and creates or updates the diet.
// POST: A non-empty field map means the save was blocked before any backend call
func ExecuteSaveDieta(ctx context.Context, input SaveDietaInput, deps SaveDietaDeps) (map[string]string, error) {
	value := domain.Dieta{
		ID:              input.ID,
		Descricao:       input.Descricao,
		Instrucoes:      input.Instrucoes,
		ExpiresAt:       input.ExpiresAt,
		ClienteID:       input.ClienteID,
		NutricionistaID: input.NutricionistaID,
	}
	if fieldErrs := value.Validate(); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	var err error
	if input.ID == 0 {
		err = deps.DietaStore.Create(ctx, value)
	} else {
		err = deps.DietaStore.Update(ctx, value)
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
