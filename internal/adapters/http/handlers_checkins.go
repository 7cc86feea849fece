package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/csrf"

	"fitlab/internal/application/listutil"
	"fitlab/internal/application/orchestrators"
	"fitlab/internal/application/projections"
)

// handleCheckins handles GET /checkins (list)
func handleCheckins(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), projections.CheckInSorts, projections.CheckInDefaultSort)
	result, err := projections.QueryGetCheckInList(r.Context(),
		projections.GetCheckInListQuery{Search: lp.Search, Sort: lp.Sort, Facet: lp.Facet},
		projections.GetCheckInListDeps{CheckInStore: stores.CheckInStore},
		timeNow())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "checkins_list.html", map[string]any{
			"CheckIns":   result.CheckIns,
			"CountLabel": resultCountLabel(result.Total, lp.Search != ""),
			"Search":     lp.Search,
			"Sort":       lp.Sort,
			"Facet":      lp.Facet,
			"Facets":     projections.CheckInFacets,
			"Flash":      popFlash(w, r),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleCheckinForm handles GET /checkins/form
// The select lists only active subscriptions, the backend rejects the rest anyway.
func handleCheckinForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderCheckinForm(w, r, orchestrators.RegisterCheckInInput{}, nil, "")
}

// handleCheckinSave handles POST /checkins/save
func handleCheckinSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.RegisterCheckInInput{
		AssinaturaID: parseFormID(r, "assinatura_id"),
	}

	fieldErrs, err := orchestrators.ExecuteRegisterCheckIn(r.Context(), input,
		orchestrators.RegisterCheckInDeps{CheckInStore: stores.CheckInStore, Bus: eventBus})
	if err != nil {
		renderCheckinForm(w, r, input, nil, saveErrorBanner(err))
		return
	}
	if len(fieldErrs) > 0 {
		renderCheckinForm(w, r, input, fieldErrs, "")
		return
	}

	setFlash(w, "Check-in registrado.")
	http.Redirect(w, r, "/checkins", http.StatusSeeOther)
}

// handleCheckinView handles GET /checkins/view?id=
func handleCheckinView(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	value, err := stores.CheckInStore.GetByID(r.Context(), parseID(r, "id"))
	if err != nil {
		setFlash(w, "Check-in não encontrado.")
		http.Redirect(w, r, "/checkins", http.StatusSeeOther)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "checkin_view.html", map[string]any{
			"CheckIn": value,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(value)
}

// handleCheckinDelete handles GET (confirm page) and POST (remove) for /checkins/delete
func handleCheckinDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		value, err := stores.CheckInStore.GetByID(r.Context(), parseID(r, "id"))
		if err != nil {
			setFlash(w, "Check-in não encontrado.")
			http.Redirect(w, r, "/checkins", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "confirm_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Title":     "Excluir check-in",
			"Question":  "Confirma exclusão deste check-in?",
			"Detail":    value.ClienteNome(),
			"Action":    "/checkins/delete",
			"ID":        value.ID,
			"CancelURL": "/checkins",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if err := stores.CheckInStore.Delete(r.Context(), parseFormID(r, "id")); err != nil {
			setFlash(w, deleteErrorBanner(err))
			http.Redirect(w, r, "/checkins", http.StatusSeeOther)
			return
		}
		setFlash(w, "Check-in excluído.")
		http.Redirect(w, r, "/checkins", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func renderCheckinForm(w http.ResponseWriter, r *http.Request, input orchestrators.RegisterCheckInInput, fieldErrs map[string]string, banner string) {
	ativas, err := stores.AssinaturaStore.ListAtivas(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	clienteNomes := make(map[int64]string)
	if clientes, err := stores.ClienteStore.List(r.Context()); err == nil {
		for _, c := range clientes {
			clienteNomes[c.ID] = c.Nome
		}
	}

	type option struct {
		ID      int64
		Cliente string
	}
	options := make([]option, 0, len(ativas))
	for _, a := range ativas {
		options = append(options, option{ID: a.ID, Cliente: clienteNomes[a.ClienteID]})
	}

	renderTemplate(w, r, "checkins_form.html", map[string]any{
		"CSRFToken":   csrf.Token(r),
		"Form":        input,
		"Errors":      fieldErrs,
		"Error":       banner,
		"Assinaturas": options,
	})
}
