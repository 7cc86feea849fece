package treino

import (
	"testing"
	"time"
)

func TestTreinoValidateExpiry(t *testing.T) {
	timeNow = func() time.Time { return time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC) }
	defer func() { timeNow = time.Now }()

	base := Treino{
		Objetivo:          "Ganho de massa",
		Nivel:             "Iniciante",
		Exercicios:        "- Supino 3x10\n- Agachamento 3x12",
		ExpiresAt:         "2026-09-15",
		ClienteID:         1,
		PersonalTrainerID: 2,
	}

	tests := []struct {
		name      string
		expiresAt string
		wantMsg   string
	}{
		{"future date passes", "2026-09-15", ""},
		{"today is rejected", "2026-08-30", "A data de expiração deve ser futura."},
		{"past is rejected", "2026-01-01", "A data de expiração deve ser futura."},
		{"empty is required", "", "Data de expiração é obrigatória."},
		{"garbage is invalid", "amanhã", "Data de expiração deve ser uma data válida."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := base
			tr.ExpiresAt = tt.expiresAt
			got := tr.Validate()["expires_at"]
			if got != tt.wantMsg {
				t.Fatalf("got %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestTreinoValidateEnums(t *testing.T) {
	tr := Treino{Objetivo: "Levantar peso", Nivel: "Expert"}
	errs := tr.Validate()
	if errs["objetivo"] == "" {
		t.Fatal("expected objetivo outside the list to be rejected")
	}
	if errs["nivel"] == "" {
		t.Fatal("expected nivel outside the list to be rejected")
	}
}
