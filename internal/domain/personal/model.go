package personal

import (
	"fmt"
	"regexp"
	"strings"
)

// TelefoneDigits is the exact digit count for a Brazilian mobile number.
const TelefoneDigits = 11

// Certificacoes lists the accepted trainer certifications.
var Certificacoes = []string{
	"CREF-SP",
	"CREF-RJ",
	"CREF-MG",
	"Reebok CrossFit Level 1",
	"ISSA Certified Trainer",
	"ACE Certified Personal Trainer",
}

// Especialidades lists the trainer specialties offered by the editor.
var Especialidades = []string{
	"Musculação",
	"Funcional",
	"CrossFit",
	"Pilates",
	"Yoga",
	"HIIT",
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
var horarioPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// PersonalTrainer holds state for a personal trainer.
// HorarioAtendimento is packed as "HH:MM-HH:MM".
type PersonalTrainer struct {
	ID                 int64  `json:"id"`
	Nome               string `json:"nome"`
	Email              string `json:"email"`
	Telefone           string `json:"telefone"`
	Certificacao       string `json:"certificacao"`
	Especialidade      string `json:"especialidade"`
	HorarioAtendimento string `json:"horario_atendimento"`
}

// Validate checks the editable fields and returns one message per invalid field.
// POST: Returns an empty map when all fields are valid
// INVARIANT: Telefone carries exactly 11 digits, closing time is after opening time
func (p *PersonalTrainer) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(p.Nome) == "" {
		errs["nome"] = "Nome deve ser preenchido!"
	}
	email := strings.TrimSpace(p.Email)
	if email == "" {
		errs["email"] = "E-mail deve ser preenchido!"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "E-mail deve ser válido!"
	}
	if len(Digits(p.Telefone)) != TelefoneDigits {
		errs["telefone"] = "Telefone deve ter 11 dígitos."
	}
	if !contains(Certificacoes, p.Certificacao) {
		errs["certificacao"] = "Selecione uma certificação."
	}
	if !contains(Especialidades, p.Especialidade) {
		errs["especialidade"] = "Selecione uma especialidade."
	}
	inicio, fim, ok := SplitHorario(p.HorarioAtendimento)
	switch {
	case !ok:
		errs["horario_atendimento"] = "Informe o horário de atendimento."
	case fim <= inicio:
		errs["horario_atendimento"] = "Término deve ser após início."
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

// FormatTelefone renders 11 digits as "(NN) NNNNN-NNNN".
// PRE: value contains at least the digits to format
// POST: Returns the input unchanged when it does not carry 11 digits
func FormatTelefone(value string) string {
	digits := Digits(value)
	if len(digits) != TelefoneDigits {
		return value
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
}

// SplitHorario unpacks "HH:MM-HH:MM" into its opening and closing times.
// POST: ok is false unless both halves are well-formed clock values
func SplitHorario(value string) (inicio, fim string, ok bool) {
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	inicio, fim = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if !horarioPattern.MatchString(inicio) || !horarioPattern.MatchString(fim) {
		return "", "", false
	}
	return inicio, fim, true
}

// PackHorario joins opening and closing times into the stored form.
func PackHorario(inicio, fim string) string {
	return inicio + "-" + fim
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
