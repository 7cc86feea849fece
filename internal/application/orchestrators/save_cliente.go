package orchestrators

import (
	"context"
	"errors"

	"fitlab/internal/adapters/backend"
	clienteStore "fitlab/internal/adapters/backend/cliente"
	domain "fitlab/internal/domain/cliente"
)

// SaveClienteInput carries the editor fields for a client.
type SaveClienteInput struct {
	ID             int64
	Nome           string
	Email          string
	Telefone       string
	DataNascimento string
}

// SaveClienteDeps holds dependencies for SaveCliente.
type SaveClienteDeps struct {
	ClienteStore clienteStore.Store
}

// ExecuteSaveCliente validates the input and creates or updates the client.
// PRE: input comes straight from the form, unvalidated
// POST: A non-empty field map means the save was blocked before any backend call
// POST: Backend field rejections come back in the same map
func ExecuteSaveCliente(ctx context.Context, input SaveClienteInput, deps SaveClienteDeps) (map[string]string, error) {
	value := domain.Cliente{
		ID:             input.ID,
		Nome:           input.Nome,
		Email:          input.Email,
		Telefone:       input.Telefone,
		DataNascimento: input.DataNascimento,
	}
	if fieldErrs := value.Validate(); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	var err error
	if input.ID == 0 {
		err = deps.ClienteStore.Create(ctx, value)
	} else {
		err = deps.ClienteStore.Update(ctx, value)
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
