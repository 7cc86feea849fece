package orchestrators

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"fitlab/internal/adapters/backend"
	estadoStore "fitlab/internal/adapters/backend/estado"
	domain "fitlab/internal/domain/estado"
)

// SaveEstadoInput carries the editor fields for a physical assessment.
// Numeric fields arrive as raw form values.
type SaveEstadoInput struct {
	ID                    int64
	ClienteID             int64
	NutricionistaID       int64
	Data                  string
	Peso                  string
	Altura                string
	TaxaGordura           string
	CircunferenciaCintura string
	CircunferenciaBraco   string
}

// SaveEstadoDeps holds dependencies for SaveEstado.
type SaveEstadoDeps struct {
	EstadoStore estadoStore.Store
}

// ExecuteSaveEstado validates the input and creates or updates the assessment.
// POST: A non-empty field map means the save was blocked before any backend call
func ExecuteSaveEstado(ctx context.Context, input SaveEstadoInput, deps SaveEstadoDeps) (map[string]string, error) {
	value := domain.Estado{
		ID:                    input.ID,
		ClienteID:             input.ClienteID,
		NutricionistaID:       input.NutricionistaID,
		Data:                  input.Data,
		Peso:                  parseMeasure(input.Peso),
		Altura:                parseMeasure(input.Altura),
		TaxaGordura:           parseMeasure(input.TaxaGordura),
		CircunferenciaCintura: parseMeasure(input.CircunferenciaCintura),
		CircunferenciaBraco:   parseMeasure(input.CircunferenciaBraco),
	}
	if fieldErrs := value.Validate(); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	var err error
	if input.ID == 0 {
		err = deps.EstadoStore.Create(ctx, value)
	} else {
		err = deps.EstadoStore.Update(ctx, value)
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

// parseMeasure turns a raw form value into a number. Unparseable input
// becomes -1, which every measurement check rejects.
func parseMeasure(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return -1
	}
	return v
}
