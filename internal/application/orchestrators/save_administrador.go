package orchestrators

import (
	"context"
	"errors"

	"fitlab/internal/adapters/backend"
	administradorStore "fitlab/internal/adapters/backend/administrador"
	domain "fitlab/internal/domain/administrador"
)

// SaveAdministradorInput carries the editor fields for an administrator.
// Senha left blank on update keeps the stored password.
type SaveAdministradorInput struct {
	ID       int64
	Nome     string
	Email    string
	Telefone string
	Senha    string
}

// SaveAdministradorDeps holds dependencies for SaveAdministrador.
type SaveAdministradorDeps struct {
	AdministradorStore administradorStore.Store
}

// ExecuteSaveAdministrador validates the input and creates or updates the account.
// PRE: input comes straight from the form, unvalidated
// POST: A non-empty field map means the save was blocked before any backend call
// INVARIANT: Senha is required only when creating
func ExecuteSaveAdministrador(ctx context.Context, input SaveAdministradorInput, deps SaveAdministradorDeps) (map[string]string, error) {
	value := domain.Administrador{
		ID:       input.ID,
		Nome:     input.Nome,
		Email:    input.Email,
		Telefone: input.Telefone,
		Senha:    input.Senha,
	}
	if fieldErrs := value.Validate(input.ID == 0); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	var err error
	if input.ID == 0 {
		err = deps.AdministradorStore.Create(ctx, value)
	} else {
		err = deps.AdministradorStore.Update(ctx, value)
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
