package cliente

import (
	"regexp"
	"strings"
	"time"
)

// Length limits for user-editable fields.
const (
	MinNomeLength     = 2
	MaxNomeLength     = 50
	MinTelefoneLength = 10
	MaxTelefoneLength = 15
	MinIdadeAnos      = 16
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// timeNow allows tests to pin the clock for age checks.
var timeNow = time.Now

// Cliente holds state for a gym client.
type Cliente struct {
	ID             int64  `json:"id"`
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	DataNascimento string `json:"data_nascimento"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// Validate checks the editable fields and returns one message per invalid field.
// PRE: Cliente struct is initialized
// POST: Returns an empty map when all fields are valid
// INVARIANT: A client must be at least 16 years old
func (c *Cliente) Validate() map[string]string {
	errs := make(map[string]string)

	nome := strings.TrimSpace(c.Nome)
	if nome == "" {
		errs["nome"] = "Nome do Cliente deve ser preenchido!"
	} else if len([]rune(nome)) < MinNomeLength || len([]rune(nome)) > MaxNomeLength {
		errs["nome"] = "Nome do Cliente deve ter entre 2 e 50 caracteres!"
	}

	email := strings.TrimSpace(c.Email)
	if email == "" {
		errs["email"] = "E-mail do Cliente deve ser preenchido!"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "E-mail do Cliente deve ser válido!"
	}

	telefone := strings.TrimSpace(c.Telefone)
	if telefone == "" {
		errs["telefone"] = "Telefone do Cliente deve ser preenchido!"
	} else if len(telefone) < MinTelefoneLength || len(telefone) > MaxTelefoneLength {
		errs["telefone"] = "Telefone do Cliente deve ter entre 10 e 15 caracteres!"
	}

	if strings.TrimSpace(c.DataNascimento) == "" {
		errs["data_nascimento"] = "Data de Nascimento deve ser preenchida!"
	} else if nascimento, err := parseDate(c.DataNascimento); err != nil {
		errs["data_nascimento"] = "Data de Nascimento deve ser uma data válida!"
	} else if nascimento.AddDate(MinIdadeAnos, 0, 0).After(timeNow()) {
		errs["data_nascimento"] = "O cliente deve ter pelo menos 16 anos."
	}

	return errs
}

// parseDate accepts the date-only form used by the editor and the RFC3339
// timestamps the backend returns.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
