package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fitlab/internal/application/orchestrators"
	"fitlab/internal/application/projections"
)

// handleDashboard handles GET /dashboard
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetDashboard(r.Context(),
		projections.GetDashboardDeps{DashboardStore: stores.DashboardStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "dashboard.html", map[string]any{
			"Stats":          result.Stats,
			"RecentCheckins": result.RecentCheckins,
			"Occupancy":      result.Occupancy,
			"HasOccupancy":   result.HasOccupancy,
			"Chart":          result.Chart,
			"HasChartData":   result.HasChartData,
			"DigestEnabled":  emailSender != nil && digestToAddress != "",
			"Flash":          popFlash(w, r),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleDashboardDigest handles POST /dashboard/digest (send the expiry digest now)
func handleDashboardDigest(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if emailSender == nil || digestToAddress == "" {
		setFlash(w, "Envio de e-mail não está configurado.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	count, err := orchestrators.ExecuteSendExpiryDigest(r.Context(), orchestrators.SendExpiryDigestDeps{
		AssinaturaStore: stores.AssinaturaStore,
		ClienteStore:    stores.ClienteStore,
		PlanoStore:      stores.PlanoStore,
		Sender:          emailSender,
		From:            emailFromAddress,
		ReplyTo:         emailReplyTo,
		To:              digestToAddress,
	})
	if err != nil {
		setFlash(w, "Não foi possível enviar o resumo. Tente novamente.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if count == 0 {
		setFlash(w, "Nenhuma assinatura vencendo. Nada foi enviado.")
	} else if count == 1 {
		setFlash(w, "Resumo enviado: 1 assinatura vencendo.")
	} else {
		setFlash(w, fmt.Sprintf("Resumo enviado: %d assinaturas vencendo.", count))
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleDashboardEvents handles GET /dashboard/events (server-sent events).
// Emits one "checkin" event per recorded check-in so the page can refresh
// its numbers without polling.
func handleDashboardEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, cancel := eventBus.Subscribe()
	defer cancel()

	// Initial comment keeps proxies from buffering the stream.
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: checkin\ndata: {\"assinatura_id\": %d}\n\n", event.AssinaturaID)
			flusher.Flush()
		}
	}
}
