package projections

import (
	"context"
	"testing"

	dashboardStore "fitlab/internal/adapters/backend/dashboard"
)

type mockDashboardStore struct {
	overview dashboardStore.Overview
	err      error
}

// GetOverview implements the dashboard store interface for testing.
// POST: Returns the canned overview or error
func (m *mockDashboardStore) GetOverview(ctx context.Context) (dashboardStore.Overview, error) {
	if m.err != nil {
		return dashboardStore.Overview{}, m.err
	}
	return m.overview, nil
}

func TestQueryGetDashboard_OccupancyPadding(t *testing.T) {
	deps := GetDashboardDeps{DashboardStore: &mockDashboardStore{
		overview: dashboardStore.Overview{
			OcupacaoPorHora: map[string]int{"9": 3, "14": 1},
		},
	}}

	result, err := QueryGetDashboard(context.Background(), deps)
	if err != nil {
		t.Fatalf("QueryGetDashboard: %v", err)
	}

	if len(result.Occupancy) != 19 {
		t.Fatalf("Occupancy len = %d, want 19 (05:00-23:00)", len(result.Occupancy))
	}
	if !result.HasOccupancy {
		t.Error("HasOccupancy = false with data present")
	}
	for _, p := range result.Occupancy {
		switch p.Hora {
		case "9h":
			if p.Count != 3 {
				t.Errorf("9h = %d, want 3", p.Count)
			}
		case "14h":
			if p.Count != 1 {
				t.Errorf("14h = %d, want 1", p.Count)
			}
		default:
			if p.Count != 0 {
				t.Errorf("%s = %d, want 0", p.Hora, p.Count)
			}
		}
	}
	if result.Occupancy[0].Hora != "5h" || result.Occupancy[18].Hora != "23h" {
		t.Errorf("window edges = %s..%s", result.Occupancy[0].Hora, result.Occupancy[18].Hora)
	}
}

func TestQueryGetDashboard_EmptyOccupancy(t *testing.T) {
	deps := GetDashboardDeps{DashboardStore: &mockDashboardStore{}}

	result, err := QueryGetDashboard(context.Background(), deps)
	if err != nil {
		t.Fatalf("QueryGetDashboard: %v", err)
	}
	if result.HasOccupancy {
		t.Error("HasOccupancy = true with an empty map")
	}
	// The window itself is still rendered, just flat.
	if len(result.Occupancy) != 19 {
		t.Errorf("Occupancy len = %d, want 19", len(result.Occupancy))
	}
}

func TestQueryGetDashboard_ChartPadding(t *testing.T) {
	deps := GetDashboardDeps{DashboardStore: &mockDashboardStore{
		overview: dashboardStore.Overview{
			Chart: dashboardStore.Chart{
				Labels:    []string{"mar", "abr", "mai", "jun", "jul", "ago"},
				Novos:     []int{2, 1},
				Renovados: []int{5},
			},
		},
	}}

	result, err := QueryGetDashboard(context.Background(), deps)
	if err != nil {
		t.Fatalf("QueryGetDashboard: %v", err)
	}
	if len(result.Chart.Novos) != 6 || len(result.Chart.Renovados) != 6 {
		t.Fatalf("series not padded: novos=%d renovados=%d", len(result.Chart.Novos), len(result.Chart.Renovados))
	}
	if result.Chart.Novos[0] != 2 || result.Chart.Novos[2] != 0 {
		t.Errorf("Novos = %v", result.Chart.Novos)
	}
	if !result.HasChartData {
		t.Error("HasChartData = false with non-zero series")
	}
}

func TestQueryGetDashboard_AllZeroChart(t *testing.T) {
	deps := GetDashboardDeps{DashboardStore: &mockDashboardStore{
		overview: dashboardStore.Overview{
			Chart: dashboardStore.Chart{Labels: []string{"jul", "ago"}},
		},
	}}

	result, err := QueryGetDashboard(context.Background(), deps)
	if err != nil {
		t.Fatalf("QueryGetDashboard: %v", err)
	}
	if result.HasChartData {
		t.Error("HasChartData = true with all-zero series")
	}
}
