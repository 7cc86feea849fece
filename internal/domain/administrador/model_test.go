package administrador

import "testing"

func TestAdministradorValidateSenha(t *testing.T) {
	a := Administrador{
		Nome:     "Ana Lima",
		Email:    "ana@fitlab.com",
		Telefone: "11987654321",
	}

	t.Run("senha required on create", func(t *testing.T) {
		if got := a.Validate(true)["senha"]; got != "Senha deve ser preenchida!" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("senha optional on update", func(t *testing.T) {
		if errs := a.Validate(false); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})
}
