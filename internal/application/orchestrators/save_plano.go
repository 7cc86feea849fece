package orchestrators

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"fitlab/internal/adapters/backend"
	planoStore "fitlab/internal/adapters/backend/plano"
	domain "fitlab/internal/domain/plano"
)

// SavePlanoInput carries the editor fields for a plan. Valor arrives as the
// raw form value so a non-numeric entry can be reported as a field error.
type SavePlanoInput struct {
	ID         int64
	Nome       string
	Frequencia string
	Valor      string
}

// SavePlanoDeps holds dependencies for SavePlano.
type SavePlanoDeps struct {
	PlanoStore planoStore.Store
}

// ExecuteSavePlano validates the input and creates or updates the plan.
// POST: A non-empty field map means the save was blocked before any backend call
func ExecuteSavePlano(ctx context.Context, input SavePlanoInput, deps SavePlanoDeps) (map[string]string, error) {
	valor, parseErr := strconv.ParseFloat(strings.TrimSpace(input.Valor), 64)
	value := domain.Plano{
		ID:         input.ID,
		Nome:       input.Nome,
		Frequencia: input.Frequencia,
		Valor:      valor,
		ValorSet:   parseErr == nil,
	}
	if fieldErrs := value.Validate(); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	var err error
	if input.ID == 0 {
		err = deps.PlanoStore.Create(ctx, value)
	} else {
		err = deps.PlanoStore.Update(ctx, value)
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
