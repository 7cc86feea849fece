package orchestrators

import (
	"context"
	"errors"

	"fitlab/internal/adapters/backend"
	nutricionistaStore "fitlab/internal/adapters/backend/nutricionista"
	domain "fitlab/internal/domain/nutricionista"
)

// SaveNutricionistaInput carries the editor fields for a nutritionist.
type SaveNutricionistaInput struct {
	ID            int64
	Nome          string
	Email         string
	Telefone      string
	Especialidade string
	CRN           string
}

// SaveNutricionistaDeps holds dependencies for SaveNutricionista.
type SaveNutricionistaDeps struct {
	NutricionistaStore nutricionistaStore.Store
}

// ExecuteSaveNutricionista validates the input and creates or updates the nutritionist.
// POST: A non-empty field map means the save was blocked before any backend call
func ExecuteSaveNutricionista(ctx context.Context, input SaveNutricionistaInput, deps SaveNutricionistaDeps) (map[string]string, error) {
	value := domain.Nutricionista{
		ID:            input.ID,
		Nome:          input.Nome,
		Email:         input.Email,
		Telefone:      input.Telefone,
		Especialidade: input.Especialidade,
		CRN:           input.CRN,
	}
	if fieldErrs := value.Validate(); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	var err error
	if input.ID == 0 {
		err = deps.NutricionistaStore.Create(ctx, value)
	} else {
		err = deps.NutricionistaStore.Update(ctx, value)
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
