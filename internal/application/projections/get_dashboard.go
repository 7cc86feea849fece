package projections

import (
	"context"
	"fmt"
	"strconv"

	dashboardStore "fitlab/internal/adapters/backend/dashboard"
)

// Occupancy window rendered on the dashboard, in whole hours.
const (
	OccupancyFirstHour = 5
	OccupancyLastHour  = 23
)

// OccupancyPoint is one bar of the hourly occupancy chart.
type OccupancyPoint struct {
	Hora  string
	Count int
}

// ChartView is the 6-month subscription series with both series padded to
// the label count.
type ChartView struct {
	Labels    []string
	Novos     []int
	Renovados []int
}

// GetDashboardResult carries the reshaped overview for rendering.
type GetDashboardResult struct {
	Stats          dashboardStore.Stats
	RecentCheckins []dashboardStore.RecentCheckIn
	Occupancy      []OccupancyPoint
	HasOccupancy   bool
	Chart          ChartView
	HasChartData   bool
}

// GetDashboardDeps holds dependencies for GetDashboard.
type GetDashboardDeps struct {
	DashboardStore dashboardStore.Store
}

// QueryGetDashboard fetches the overview and reshapes it for presentation.
// POST: Occupancy always spans 05:00-23:00 with zeros for missing hours
// POST: Chart series are zero-padded to the label count
// INVARIANT: HasOccupancy is false only when the backend map was empty
func QueryGetDashboard(ctx context.Context, deps GetDashboardDeps) (GetDashboardResult, error) {
	overview, err := deps.DashboardStore.GetOverview(ctx)
	if err != nil {
		return GetDashboardResult{}, err
	}

	result := GetDashboardResult{
		Stats:          overview.Stats,
		RecentCheckins: overview.RecentCheckins,
		Occupancy:      padOccupancy(overview.OcupacaoPorHora),
		HasOccupancy:   len(overview.OcupacaoPorHora) > 0,
		Chart:          padChart(overview.Chart),
	}
	for _, v := range result.Chart.Novos {
		if v > 0 {
			result.HasChartData = true
		}
	}
	for _, v := range result.Chart.Renovados {
		if v > 0 {
			result.HasChartData = true
		}
	}
	return result, nil
}

// padOccupancy expands the sparse hour map onto the fixed display window.
func padOccupancy(byHour map[string]int) []OccupancyPoint {
	points := make([]OccupancyPoint, 0, OccupancyLastHour-OccupancyFirstHour+1)
	for h := OccupancyFirstHour; h <= OccupancyLastHour; h++ {
		points = append(points, OccupancyPoint{
			Hora:  fmt.Sprintf("%dh", h),
			Count: byHour[strconv.Itoa(h)],
		})
	}
	return points
}

// padChart right-pads both series with zeros up to the label count.
func padChart(chart dashboardStore.Chart) ChartView {
	view := ChartView{
		Labels:    chart.Labels,
		Novos:     make([]int, len(chart.Labels)),
		Renovados: make([]int, len(chart.Labels)),
	}
	copy(view.Novos, chart.Novos)
	copy(view.Renovados, chart.Renovados)
	return view
}
