package assinatura

// Subscription status values reported by the backend.
const (
	StatusAtiva   = "ativa"
	StatusProxima = "proxima"
	StatusVencida = "vencida"
)

// MetodosPagamento lists the accepted payment methods, in display order.
var MetodosPagamento = []string{
	"Cartão de Crédito",
	"Boleto Bancário",
	"Pix",
	"Transferência Bancária",
	"Dinheiro",
}

// Assinatura holds state for a subscription. Cliente and Plano references
// come as foreign keys; list views join them client-side.
type Assinatura struct {
	ID              int64   `json:"id"`
	ClienteID       int64   `json:"cliente_id"`
	PlanoID         int64   `json:"plano_id"`
	MetodoPagamento string  `json:"metodo_pagamento"`
	Valor           float64 `json:"valor"`
	Desconto        float64 `json:"desconto,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	ExpiresAt       string  `json:"expires_at,omitempty"`
}

// Validate checks the editable fields and returns one message per invalid field.
// POST: Returns an empty map when all fields are valid
func (a *Assinatura) Validate() map[string]string {
	errs := make(map[string]string)
	if a.ClienteID == 0 {
		errs["cliente_id"] = "Selecione um cliente."
	}
	if a.PlanoID == 0 {
		errs["plano_id"] = "Selecione um plano."
	}
	if !isMetodoPagamento(a.MetodoPagamento) {
		errs["metodo_pagamento"] = "Informe o método de pagamento."
	}
	return errs
}

func isMetodoPagamento(value string) bool {
	for _, m := range MetodosPagamento {
		if m == value {
			return true
		}
	}
	return false
}
