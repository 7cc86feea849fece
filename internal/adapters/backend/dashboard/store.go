package dashboard

import "context"

// Stats are the headline numbers on the overview.
type Stats struct {
	TotalClientes               int     `json:"totalClientes"`
	AssinaturasAtivas           int     `json:"assinaturasAtivas"`
	AssinaturasVencendoEm10Dias int     `json:"assinaturasVencendoEm10Dias"`
	CheckinsHoje                int     `json:"checkinsHoje"`
	ReceitaSemana               float64 `json:"receitaSemana"`
	NovasAssinaturasSemana      int     `json:"novasAssinaturasSemana"`
}

// RecentCheckIn is one row of the latest check-ins list.
type RecentCheckIn struct {
	Cliente string `json:"cliente"`
	Hora    string `json:"hora"`
}

// Chart carries the 6-month subscription series.
type Chart struct {
	Labels    []string `json:"labels"`
	Novos     []int    `json:"novos"`
	Renovados []int    `json:"renovados"`
}

// Overview is the aggregate payload served by the backend for the dashboard.
// OcupacaoPorHora is sparse: hours without check-ins are absent.
type Overview struct {
	Stats           Stats           `json:"stats"`
	RecentCheckins  []RecentCheckIn `json:"recentCheckins"`
	OcupacaoPorHora map[string]int  `json:"ocupacaoPorHora"`
	Chart           Chart           `json:"chart"`
}

// Store fetches the dashboard aggregate from the backend API.
type Store interface {
	GetOverview(ctx context.Context) (Overview, error)
}
