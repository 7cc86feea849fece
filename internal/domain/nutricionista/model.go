package nutricionista

import (
	"regexp"
	"strings"
)

// TelefoneDigits is the exact digit count for a Brazilian mobile number.
const TelefoneDigits = 11

// Especialidades lists the nutritionist specialties offered by the editor.
var Especialidades = []string{
	"Nutrição Clínica",
	"Nutrição Esportiva",
	"Nutrição Funcional",
	"Nutrição Pediátrica",
	"Nutrição Oncológica",
	"Nutrição Geriátrica",
}

// CRNs lists the regional council registrations.
var CRNs = []string{
	"CRN-1", "CRN-2", "CRN-3", "CRN-4", "CRN-5", "CRN-6",
	"CRN-7", "CRN-8", "CRN-9", "CRN-10", "CRN-11",
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Nutricionista holds state for a nutritionist. Telefone is submitted
// digits-only.
type Nutricionista struct {
	ID            int64  `json:"id"`
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	Telefone      string `json:"telefone"`
	Especialidade string `json:"especialidade"`
	CRN           string `json:"crn"`
}

// Validate checks the editable fields and returns one message per invalid field.
// POST: Returns an empty map when all fields are valid
func (n *Nutricionista) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(n.Nome) == "" {
		errs["nome"] = "Nome deve ser preenchido!"
	}
	email := strings.TrimSpace(n.Email)
	if email == "" {
		errs["email"] = "E-mail deve ser preenchido!"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "E-mail deve ser válido!"
	}
	if len(Digits(n.Telefone)) != TelefoneDigits {
		errs["telefone"] = "Telefone deve ter 11 dígitos."
	}
	if !contains(Especialidades, n.Especialidade) {
		errs["especialidade"] = "Selecione uma especialidade."
	}
	if !contains(CRNs, n.CRN) {
		errs["crn"] = "Selecione um CRN."
	}
	return errs
}

// Digits strips everything but the digit characters from a phone value.
func Digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
