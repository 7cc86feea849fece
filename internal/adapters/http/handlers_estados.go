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

// handleEstados handles GET /estados (list of body measurements)
func handleEstados(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), projections.EstadoSorts, projections.EstadoDefaultSort)
	result, err := projections.QueryGetEstadoList(r.Context(),
		projections.GetEstadoListQuery{Search: lp.Search, Sort: lp.Sort},
		projections.GetEstadoListDeps{EstadoStore: stores.EstadoStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "estados_list.html", map[string]any{
			"Estados":    result.Estados,
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

// handleEstadoForm handles GET /estados/form (blank or ?id= for edit)
func handleEstadoForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.SaveEstadoInput{}
	if id := parseID(r, "id"); id != 0 {
		value, err := stores.EstadoStore.GetByID(r.Context(), id)
		if err != nil {
			setFlash(w, "Registro não encontrado.")
			http.Redirect(w, r, "/estados", http.StatusSeeOther)
			return
		}
		input = orchestrators.SaveEstadoInput{
			ID:                    value.ID,
			ClienteID:             value.ClienteID,
			NutricionistaID:       value.NutricionistaID,
			Data:                  value.Data,
			Peso:                  formatMeasure(value.Peso),
			Altura:                formatMeasure(value.Altura),
			TaxaGordura:           formatMeasure(value.TaxaGordura),
			CircunferenciaCintura: formatMeasure(value.CircunferenciaCintura),
			CircunferenciaBraco:   formatMeasure(value.CircunferenciaBraco),
		}
	}

	renderEstadoForm(w, r, input, nil, "")
}

// handleEstadoSave handles POST /estados/save
func handleEstadoSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SaveEstadoInput{
		ID:                    parseFormID(r, "id"),
		ClienteID:             parseFormID(r, "cliente_id"),
		NutricionistaID:       parseFormID(r, "nutricionista_id"),
		Data:                  r.FormValue("data"),
		Peso:                  r.FormValue("peso"),
		Altura:                r.FormValue("altura"),
		TaxaGordura:           r.FormValue("taxa_gordura"),
		CircunferenciaCintura: r.FormValue("circunferencia_cintura"),
		CircunferenciaBraco:   r.FormValue("circunferencia_braco"),
	}

	fieldErrs, err := orchestrators.ExecuteSaveEstado(r.Context(), input,
		orchestrators.SaveEstadoDeps{EstadoStore: stores.EstadoStore})
	if err != nil {
		renderEstadoForm(w, r, input, nil, saveErrorBanner(err))
		return
	}
	if len(fieldErrs) > 0 {
		renderEstadoForm(w, r, input, fieldErrs, "")
		return
	}

	setFlash(w, "Estado físico salvo com sucesso.")
	http.Redirect(w, r, "/estados", http.StatusSeeOther)
}

// handleEstadoDelete handles GET (confirm page) and POST (remove) for /estados/delete
func handleEstadoDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		value, err := stores.EstadoStore.GetByID(r.Context(), parseID(r, "id"))
		if err != nil {
			setFlash(w, "Registro não encontrado.")
			http.Redirect(w, r, "/estados", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "confirm_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Title":     "Excluir estado físico",
			"Question":  "Confirma exclusão deste registro?",
			"Detail":    value.Cliente.Nome,
			"Action":    "/estados/delete",
			"ID":        value.ID,
			"CancelURL": "/estados",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if err := stores.EstadoStore.Delete(r.Context(), parseFormID(r, "id")); err != nil {
			setFlash(w, deleteErrorBanner(err))
			http.Redirect(w, r, "/estados", http.StatusSeeOther)
			return
		}
		setFlash(w, "Registro excluído.")
		http.Redirect(w, r, "/estados", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func renderEstadoForm(w http.ResponseWriter, r *http.Request, input orchestrators.SaveEstadoInput, fieldErrs map[string]string, banner string) {
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

	renderTemplate(w, r, "estados_form.html", map[string]any{
		"CSRFToken":      csrf.Token(r),
		"Form":           input,
		"Errors":         fieldErrs,
		"Error":          banner,
		"IsEdit":         input.ID != 0,
		"Clientes":       clientes,
		"Nutricionistas": nutricionistas,
	})
}

// formatMeasure renders a measurement for the form, empty for the zero value.
func formatMeasure(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
