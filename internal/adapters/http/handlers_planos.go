package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"fitlab/internal/application/listutil"
	"fitlab/internal/application/orchestrators"
	"fitlab/internal/application/projections"
)

// handlePlanos handles GET /planos (list)
func handlePlanos(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), projections.PlanoSorts, projections.PlanoDefaultSort)
	result, err := projections.QueryGetPlanoList(r.Context(),
		projections.GetPlanoListQuery{Search: lp.Search, Sort: lp.Sort},
		projections.GetPlanoListDeps{PlanoStore: stores.PlanoStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "planos_list.html", map[string]any{
			"Planos":     result.Planos,
			"CountLabel": resultCountLabel(result.Total, lp.Search != ""),
			"Search":     lp.Search,
			"Sort":       lp.Sort,
			"Flash":      popFlash(w, r),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handlePlanoForm handles GET /planos/form (blank or ?id= for edit)
func handlePlanoForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.SavePlanoInput{}
	if id := parseID(r, "id"); id != 0 {
		value, err := stores.PlanoStore.GetByID(r.Context(), id)
		if err != nil {
			setFlash(w, "Plano não encontrado.")
			http.Redirect(w, r, "/planos", http.StatusSeeOther)
			return
		}
		input = orchestrators.SavePlanoInput{
			ID:         value.ID,
			Nome:       value.Nome,
			Frequencia: value.Frequencia,
			Valor:      strconv.FormatFloat(value.Valor, 'f', 2, 64),
		}
	}

	renderPlanoForm(w, r, input, nil, "")
}

// handlePlanoSave handles POST /planos/save
func handlePlanoSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SavePlanoInput{
		ID:         parseFormID(r, "id"),
		Nome:       r.FormValue("nome"),
		Frequencia: r.FormValue("frequencia"),
		Valor:      r.FormValue("valor"),
	}

	fieldErrs, err := orchestrators.ExecuteSavePlano(r.Context(), input,
		orchestrators.SavePlanoDeps{PlanoStore: stores.PlanoStore})
	if err != nil {
		renderPlanoForm(w, r, input, nil, saveErrorBanner(err))
		return
	}
	if len(fieldErrs) > 0 {
		renderPlanoForm(w, r, input, fieldErrs, "")
		return
	}

	setFlash(w, "Plano salvo com sucesso.")
	http.Redirect(w, r, "/planos", http.StatusSeeOther)
}

// handlePlanoDelete handles GET (confirm page) and POST (remove) for /planos/delete
func handlePlanoDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		value, err := stores.PlanoStore.GetByID(r.Context(), parseID(r, "id"))
		if err != nil {
			setFlash(w, "Plano não encontrado.")
			http.Redirect(w, r, "/planos", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "confirm_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Title":     "Excluir plano",
			"Question":  "Confirma exclusão deste plano?",
			"Detail":    value.Nome,
			"Action":    "/planos/delete",
			"ID":        value.ID,
			"CancelURL": "/planos",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if err := stores.PlanoStore.Delete(r.Context(), parseFormID(r, "id")); err != nil {
			setFlash(w, deleteErrorBanner(err))
			http.Redirect(w, r, "/planos", http.StatusSeeOther)
			return
		}
		setFlash(w, "Plano excluído.")
		http.Redirect(w, r, "/planos", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func renderPlanoForm(w http.ResponseWriter, r *http.Request, input orchestrators.SavePlanoInput, fieldErrs map[string]string, banner string) {
	renderTemplate(w, r, "planos_form.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Form":      input,
		"Errors":    fieldErrs,
		"Error":     banner,
		"IsEdit":    input.ID != 0,
	})
}
