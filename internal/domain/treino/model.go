package treino

import (
	"strings"
	"time"
)

// Objetivos lists the training goals offered by the editor, in display order.
var Objetivos = []string{
	"Ganho de massa",
	"Emagrecimento",
	"Definição muscular",
	"Fortalecimento geral",
	"Resistência física",
	"Condicionamento cardiorrespiratório",
	"Reabilitação",
	"Flexibilidade",
	"Saúde geral",
	"Melhora de desempenho esportivo",
	"Prevenção de lesões",
}

// Niveis lists the difficulty levels offered by the editor.
var Niveis = []string{
	"Iniciante",
	"Intermediário",
	"Avançado",
}

// timeNow allows tests to pin the clock for expiry checks.
var timeNow = time.Now

// ClienteRef is the nested client the backend embeds in workout reads.
type ClienteRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// PersonalRef is the nested trainer the backend embeds in workout reads.
type PersonalRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Treino holds state for a workout prescription. Exercicios is markdown.
type Treino struct {
	ID                int64       `json:"id"`
	Objetivo          string      `json:"objetivo"`
	Nivel             string      `json:"nivel"`
	Exercicios        string      `json:"exercicios"`
	ExpiresAt         string      `json:"expires_at"`
	ClienteID         int64       `json:"cliente_id"`
	PersonalTrainerID int64       `json:"personal_trainer_id"`
	Cliente           ClienteRef  `json:"cliente"`
	Personal          PersonalRef `json:"personal"`
}

// Validate checks the editable fields and returns one message per invalid field.
// PRE: Treino struct is initialized
// POST: Returns an empty map when all fields are valid
// INVARIANT: ExpiresAt must fall after the current day
func (t *Treino) Validate() map[string]string {
	errs := make(map[string]string)
	if !contains(Objetivos, t.Objetivo) {
		errs["objetivo"] = "Selecione um objetivo."
	}
	if !contains(Niveis, t.Nivel) {
		errs["nivel"] = "Selecione um nível."
	}
	if strings.TrimSpace(t.Exercicios) == "" {
		errs["exercicios"] = "Exercícios não podem ser vazios."
	}
	if strings.TrimSpace(t.ExpiresAt) == "" {
		errs["expires_at"] = "Data de expiração é obrigatória."
	} else if exp, err := parseDate(t.ExpiresAt); err != nil {
		errs["expires_at"] = "Data de expiração deve ser uma data válida."
	} else {
		now := timeNow()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, exp.Location())
		if !exp.After(today) {
			errs["expires_at"] = "A data de expiração deve ser futura."
		}
	}
	if t.ClienteID == 0 {
		errs["cliente_id"] = "Selecione um cliente."
	}
	if t.PersonalTrainerID == 0 {
		errs["personal_trainer_id"] = "Selecione um personal trainer."
	}
	return errs
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
