package cliente

import (
	"testing"
	"time"
)

func TestClienteValidate(t *testing.T) {
	timeNow = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	defer func() { timeNow = time.Now }()

	valid := Cliente{
		Nome:           "Maria Souza",
		Email:          "maria@example.com",
		Telefone:       "11987654321",
		DataNascimento: "1990-05-12",
	}

	tests := []struct {
		name    string
		mutate  func(c *Cliente)
		field   string
		message string
	}{
		{"valid client", func(c *Cliente) {}, "", ""},
		{"empty nome", func(c *Cliente) { c.Nome = "  " }, "nome", "Nome do Cliente deve ser preenchido!"},
		{"nome too short", func(c *Cliente) { c.Nome = "A" }, "nome", "Nome do Cliente deve ter entre 2 e 50 caracteres!"},
		{"empty email", func(c *Cliente) { c.Email = "" }, "email", "E-mail do Cliente deve ser preenchido!"},
		{"invalid email", func(c *Cliente) { c.Email = "maria@" }, "email", "E-mail do Cliente deve ser válido!"},
		{"empty telefone", func(c *Cliente) { c.Telefone = "" }, "telefone", "Telefone do Cliente deve ser preenchido!"},
		{"telefone too short", func(c *Cliente) { c.Telefone = "119876" }, "telefone", "Telefone do Cliente deve ter entre 10 e 15 caracteres!"},
		{"empty nascimento", func(c *Cliente) { c.DataNascimento = "" }, "data_nascimento", "Data de Nascimento deve ser preenchida!"},
		{"garbage nascimento", func(c *Cliente) { c.DataNascimento = "not-a-date" }, "data_nascimento", "Data de Nascimento deve ser uma data válida!"},
		{"under sixteen", func(c *Cliente) { c.DataNascimento = "2012-01-01" }, "data_nascimento", "O cliente deve ter pelo menos 16 anos."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			errs := c.Validate()
			if tt.field == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if errs[tt.field] != tt.message {
				t.Fatalf("field %s: got %q, want %q", tt.field, errs[tt.field], tt.message)
			}
		})
	}
}

func TestClienteValidateAcceptsBackendTimestamp(t *testing.T) {
	c := Cliente{
		Nome:           "Joao Lima",
		Email:          "joao@example.com",
		Telefone:       "11912345678",
		DataNascimento: "1985-03-02T00:00:00Z",
	}
	if errs := c.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
