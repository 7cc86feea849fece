package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/csrf"

	"fitlab/internal/application/listutil"
	"fitlab/internal/application/orchestrators"
	"fitlab/internal/application/projections"
	dietaDomain "fitlab/internal/domain/dieta"
)

// handleDietas handles GET /dietas (list)
func handleDietas(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), projections.DietaSorts, projections.DietaDefaultSort)
	result, err := projections.QueryGetDietaList(r.Context(),
		projections.GetDietaListQuery{Search: lp.Search, Sort: lp.Sort, Facet: lp.Facet},
		projections.GetDietaListDeps{DietaStore: stores.DietaStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "dietas_list.html", map[string]any{
			"Dietas":     result.Dietas,
			"CountLabel": resultCountLabel(result.Total, lp.Search != ""),
			"Search":     lp.Search,
			"Sort":       lp.Sort,
			"Facet":      lp.Facet,
			"Facets":     dietaDomain.Objetivos,
			"Flash":      popFlash(w, r),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleDietaForm handles GET /dietas/form (blank or ?id= for edit)
func handleDietaForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.SaveDietaInput{}
	if id := parseID(r, "id"); id != 0 {
		value, err := stores.DietaStore.GetByID(r.Context(), id)
		if err != nil {
			setFlash(w, "Dieta não encontrada.")
			http.Redirect(w, r, "/dietas", http.StatusSeeOther)
			return
		}
		input = orchestrators.SaveDietaInput{
			ID:              value.ID,
			Descricao:       value.Descricao,
			Instrucoes:      value.Instrucoes,
			ExpiresAt:       value.ExpiresAt,
			ClienteID:       value.ClienteID,
			NutricionistaID: value.NutricionistaID,
		}
	}

	renderDietaForm(w, r, input, nil, "")
}

// handleDietaSave handles POST /dietas/save
func handleDietaSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SaveDietaInput{
		ID:              parseFormID(r, "id"),
		Descricao:       r.FormValue("descricao"),
		Instrucoes:      r.FormValue("instrucoes"),
		ExpiresAt:       r.FormValue("expires_at"),
		ClienteID:       parseFormID(r, "cliente_id"),
		NutricionistaID: parseFormID(r, "nutricionista_id"),
	}

	fieldErrs, err := orchestrators.ExecuteSaveDieta(r.Context(), input,
		orchestrators.SaveDietaDeps{DietaStore: stores.DietaStore})
	if err != nil {
		renderDietaForm(w, r, input, nil, saveErrorBanner(err))
		return
	}
	if len(fieldErrs) > 0 {
		renderDietaForm(w, r, input, fieldErrs, "")
		return
	}

	setFlash(w, "Dieta salva com sucesso.")
	http.Redirect(w, r, "/dietas", http.StatusSeeOther)
}

// handleDietaDelete handles GET (confirm page) and POST (remove) for /dietas/delete
func handleDietaDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		value, err := stores.DietaStore.GetByID(r.Context(), parseID(r, "id"))
		if err != nil {
			setFlash(w, "Dieta não encontrada.")
			http.Redirect(w, r, "/dietas", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "confirm_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Title":     "Excluir dieta",
			"Question":  "Confirma exclusão desta dieta?",
			"Detail":    value.Descricao,
			"Action":    "/dietas/delete",
			"ID":        value.ID,
			"CancelURL": "/dietas",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if err := stores.DietaStore.Delete(r.Context(), parseFormID(r, "id")); err != nil {
			setFlash(w, deleteErrorBanner(err))
			http.Redirect(w, r, "/dietas", http.StatusSeeOther)
			return
		}
		setFlash(w, "Dieta excluída.")
		http.Redirect(w, r, "/dietas", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func renderDietaForm(w http.ResponseWriter, r *http.Request, input orchestrators.SaveDietaInput, fieldErrs map[string]string, banner string) {
	clientes, err := stores.ClienteStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	nutricionistas, err := stores.NutricionistaStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "dietas_form.html", map[string]any{
		"CSRFToken":      csrf.Token(r),
		"Form":           input,
		"Errors":         fieldErrs,
		"Error":          banner,
		"IsEdit":         input.ID != 0,
		"Clientes":       clientes,
		"Nutricionistas": nutricionistas,
		"Objetivos":      dietaDomain.Objetivos,
	})
}
