package estado

import "strings"

// MaxTaxaGordura caps the body fat percentage.
const MaxTaxaGordura = 100

// ClienteRef is the nested client the backend embeds in assessment reads.
type ClienteRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// NutricionistaRef is the nested nutritionist the backend embeds in assessment reads.
type NutricionistaRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Estado holds state for a physical assessment snapshot.
type Estado struct {
	ID                    int64            `json:"id"`
	ClienteID             int64            `json:"cliente_id"`
	NutricionistaID       int64            `json:"nutricionista_id"`
	Data                  string           `json:"data"`
	Peso                  float64          `json:"peso"`
	Altura                float64          `json:"altura"`
	TaxaGordura           float64          `json:"taxa_gordura"`
	CircunferenciaCintura float64          `json:"circunferencia_cintura"`
	CircunferenciaBraco   float64          `json:"circunferencia_braco"`
	Cliente               ClienteRef       `json:"cliente"`
	Nutricionista         NutricionistaRef `json:"nutricionista"`
}

// Validate checks the editable fields and returns one message per invalid field.
// POST: Returns an empty map when all fields are valid
// INVARIANT: Body measurements are strictly positive, fat percentage within [0,100]
func (e *Estado) Validate() map[string]string {
	errs := make(map[string]string)
	if e.ClienteID == 0 {
		errs["cliente_id"] = "Selecione um cliente."
	}
	if e.NutricionistaID == 0 {
		errs["nutricionista_id"] = "Selecione um nutricionista."
	}
	if strings.TrimSpace(e.Data) == "" {
		errs["data"] = "Data é obrigatória."
	}
	if e.Peso <= 0 {
		errs["peso"] = "Peso deve ser maior que zero."
	}
	if e.Altura <= 0 {
		errs["altura"] = "Altura deve ser maior que zero."
	}
	if e.TaxaGordura < 0 {
		errs["taxa_gordura"] = "Taxa de gordura não pode ser negativa."
	} else if e.TaxaGordura > MaxTaxaGordura {
		errs["taxa_gordura"] = "Taxa de gordura não pode exceder 100%."
	}
	if e.CircunferenciaCintura <= 0 {
		errs["circunferencia_cintura"] = "Circunferência da cintura deve ser maior que zero."
	}
	if e.CircunferenciaBraco <= 0 {
		errs["circunferencia_braco"] = "Circunferência do braço deve ser maior que zero."
	}
	return errs
}
