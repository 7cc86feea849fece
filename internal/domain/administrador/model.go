package administrador

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Administrador holds state for a back-office administrator account.
// Senha is write-only: the backend never returns it and an empty value on
// update means "keep the current password".
type Administrador struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Senha    string `json:"senha,omitempty"`
}

// Validate checks the editable fields and returns one message per invalid field.
// PRE: requireSenha is true when creating a new account
// POST: Returns an empty map when all fields are valid
func (a *Administrador) Validate(requireSenha bool) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(a.Nome) == "" {
		errs["nome"] = "Nome deve ser preenchido!"
	}
	email := strings.TrimSpace(a.Email)
	if email == "" {
		errs["email"] = "E-mail deve ser preenchido!"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "E-mail deve ser válido!"
	}
	if strings.TrimSpace(a.Telefone) == "" {
		errs["telefone"] = "Telefone deve ser preenchido!"
	}
	if requireSenha && strings.TrimSpace(a.Senha) == "" {
		errs["senha"] = "Senha deve ser preenchida!"
	}
	return errs
}
