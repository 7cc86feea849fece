package checkin

// ClienteRef is the nested client the backend embeds in check-in reads.
type ClienteRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// AssinaturaRef is the nested subscription the backend embeds in check-in reads.
type AssinaturaRef struct {
	ID      int64      `json:"id"`
	Cliente ClienteRef `json:"cliente"`
}

// CheckIn holds state for a gym entry record.
type CheckIn struct {
	ID               int64         `json:"id"`
	AssinaturaID     int64         `json:"assinatura_id"`
	Entrada          string        `json:"entrada"`
	Saida            string        `json:"saida,omitempty"`
	AcessoAutorizado bool          `json:"acesso_autorizado"`
	RazaoBloqueio    string        `json:"razao_bloqueio,omitempty"`
	Assinatura       AssinaturaRef `json:"assinatura"`
}

// ClienteNome returns the embedded client name, empty when the join is missing.
// INVARIANT: CheckIn fields are not mutated
func (c CheckIn) ClienteNome() string {
	return c.Assinatura.Cliente.Nome
}

// Validate checks the editable fields and returns one message per invalid field.
// POST: Returns an empty map when all fields are valid
func (c *CheckIn) Validate() map[string]string {
	errs := make(map[string]string)
	if c.AssinaturaID == 0 {
		errs["assinatura_id"] = "Selecione uma assinatura."
	}
	return errs
}
