package orchestrators

import (
	"context"
	"errors"

	"fitlab/internal/adapters/backend"
	assinaturaStore "fitlab/internal/adapters/backend/assinatura"
	planoStore "fitlab/internal/adapters/backend/plano"
	domain "fitlab/internal/domain/assinatura"
)

// SaveAssinaturaInput carries the editor fields for a new subscription.
// Subscriptions are create-only; renewals come from the backend.
type SaveAssinaturaInput struct {
	ClienteID       int64
	PlanoID         int64
	MetodoPagamento string
}

// SaveAssinaturaDeps holds dependencies for SaveAssinatura.
type SaveAssinaturaDeps struct {
	AssinaturaStore assinaturaStore.Store
	PlanoStore      planoStore.Store
}

// ExecuteSaveAssinatura validates the input, copies the price from the
// chosen plan and creates the subscription.
// POST: A non-empty field map means the save was blocked before the create call
// INVARIANT: Valor always equals the selected plan's price
func ExecuteSaveAssinatura(ctx context.Context, input SaveAssinaturaInput, deps SaveAssinaturaDeps) (map[string]string, error) {
	value := domain.Assinatura{
		ClienteID:       input.ClienteID,
		PlanoID:         input.PlanoID,
		MetodoPagamento: input.MetodoPagamento,
	}
	if fieldErrs := value.Validate(); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	plano, err := deps.PlanoStore.GetByID(ctx, input.PlanoID)
	if err != nil {
		if backend.IsNotFound(err) {
			return map[string]string{"plano_id": "Selecione um plano."}, nil
		}
		return nil, err
	}
	value.Valor = plano.Valor

	if err := deps.AssinaturaStore.Create(ctx, value); err != nil {
		var vErr *backend.ValidationError
		if errors.As(err, &vErr) {
			return vErr.Fields, nil
		}
		return nil, err
	}
	return nil, nil
}
