package dieta

import "strings"

// Objetivos lists the diet goals offered by the editor, in display order.
var Objetivos = []string{
	"Ganho de massa",
	"Emagrecimento",
	"Definição muscular",
	"Aumento de energia",
	"Saúde geral",
	"Reeducação alimentar",
	"Vegetariana",
	"Vegana",
}

// ClienteRef is the nested client the backend embeds in diet reads.
type ClienteRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// NutricionistaRef is the nested nutritionist the backend embeds in diet reads.
type NutricionistaRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Dieta holds state for a diet prescription. Instrucoes is markdown.
type Dieta struct {
	ID              int64            `json:"id"`
	Descricao       string           `json:"descricao"`
	Instrucoes      string           `json:"instrucoes"`
	ExpiresAt       string           `json:"expires_at"`
	CreatedAt       string           `json:"created_at,omitempty"`
	ClienteID       int64            `json:"cliente_id"`
	NutricionistaID int64            `json:"nutricionista_id"`
	Cliente         ClienteRef       `json:"cliente"`
	Nutricionista   NutricionistaRef `json:"nutricionista"`
}

// Validate checks the editable fields and returns one message per invalid field.
// POST: Returns an empty map when all fields are valid
func (d *Dieta) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(d.Descricao) == "" {
		errs["descricao"] = "Descrição é obrigatória."
	}
	if strings.TrimSpace(d.ExpiresAt) == "" {
		errs["expires_at"] = "Data de expiração é obrigatória."
	}
	if strings.TrimSpace(d.Instrucoes) == "" {
		errs["instrucoes"] = "Instruções não podem ser vazias."
	}
	if d.ClienteID == 0 {
		errs["cliente_id"] = "Selecione um cliente."
	}
	if d.NutricionistaID == 0 {
		errs["nutricionista_id"] = "Selecione um nutricionista."
	}
	return errs
}
