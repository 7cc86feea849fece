package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// handleAdminPerf returns aggregated request and backend-call timings as JSON
// (GET /admin/perf).
// Query params: window (minutes, default 15), top (list size, default 10).
func handleAdminPerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		http.Error(w, "perf collection disabled", http.StatusServiceUnavailable)
		return
	}

	windowMinutes := 15
	if v := r.URL.Query().Get("window"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			windowMinutes = n
		}
	}
	topN := 10
	if v := r.URL.Query().Get("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topN = n
		}
	}

	since := timeNow().Add(-time.Duration(windowMinutes) * time.Minute)
	snap := perfCollector.Snapshot(since, topN)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}
