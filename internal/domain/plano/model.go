package plano

import "strings"

// Length limits for user-editable fields.
const (
	MinNomeLength       = 2
	MaxNomeLength       = 50
	MinFrequenciaLength = 2
	MaxFrequenciaLength = 40
)

// Plano holds state for a membership plan.
type Plano struct {
	ID         int64   `json:"id"`
	Nome       string  `json:"nome"`
	Frequencia string  `json:"frequencia"`
	Valor      float64 `json:"valor"`
	ValorSet   bool    `json:"-"`
}

// Validate checks the editable fields and returns one message per invalid field.
// POST: Returns an empty map when all fields are valid
func (p *Plano) Validate() map[string]string {
	errs := make(map[string]string)

	nome := strings.TrimSpace(p.Nome)
	if nome == "" {
		errs["nome"] = "Nome do Plano deve ser preenchido!"
	} else if len([]rune(nome)) < MinNomeLength || len([]rune(nome)) > MaxNomeLength {
		errs["nome"] = "Nome do Plano deve ter entre 2 e 50 caracteres!"
	}

	freq := strings.TrimSpace(p.Frequencia)
	if freq == "" {
		errs["frequencia"] = "Frequência deve ser preenchida!"
	} else if len([]rune(freq)) < MinFrequenciaLength || len([]rune(freq)) > MaxFrequenciaLength {
		errs["frequencia"] = "Frequência deve ter entre 2 e 40 caracteres!"
	}

	if !p.ValorSet || p.Valor < 0 {
		errs["valor"] = "Valor deve ser um número positivo!"
	}

	return errs
}
