package orchestrators

import (
	"context"
	"errors"

	"fitlab/internal/adapters/backend"
	personalStore "fitlab/internal/adapters/backend/personal"
	domain "fitlab/internal/domain/personal"
)

// SavePersonalInput carries the editor fields for a personal trainer.
// The schedule arrives as separate opening and closing times.
type SavePersonalInput struct {
	ID            int64
	Nome          string
	Email         string
	Telefone      string
	Certificacao  string
	Especialidade string
	HorarioInicio string
	HorarioFim    string
}

// SavePersonalDeps holds dependencies for SavePersonal.
type SavePersonalDeps struct {
	PersonalStore personalStore.Store
}

// ExecuteSavePersonal validates the input and creates or updates the trainer.
// POST: A non-empty field map means the save was blocked before any backend call
// INVARIANT: HorarioAtendimento is stored packed as "HH:MM-HH:MM"
func ExecuteSavePersonal(ctx context.Context, input SavePersonalInput, deps SavePersonalDeps) (map[string]string, error) {
	value := domain.PersonalTrainer{
		ID:                 input.ID,
		Nome:               input.Nome,
		Email:              input.Email,
		Telefone:           input.Telefone,
		Certificacao:       input.Certificacao,
		Especialidade:      input.Especialidade,
		HorarioAtendimento: domain.PackHorario(input.HorarioInicio, input.HorarioFim),
	}
	if fieldErrs := value.Validate(); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	var err error
	if input.ID == 0 {
		err = deps.PersonalStore.Create(ctx, value)
	} else {
		err = deps.PersonalStore.Update(ctx, value)
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
