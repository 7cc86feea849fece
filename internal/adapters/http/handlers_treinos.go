package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/csrf"

	"fitlab/internal/application/listutil"
	"fitlab/internal/application/orchestrators"
	"fitlab/internal/application/projections"
	treinoDomain "fitlab/internal/domain/treino"
)

// handleTreinos handles GET /treinos (list)
func handleTreinos(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), projections.TreinoSorts, projections.TreinoDefaultSort)
	result, err := projections.QueryGetTreinoList(r.Context(),
		projections.GetTreinoListQuery{Search: lp.Search, Sort: lp.Sort, Facet: lp.Facet},
		projections.GetTreinoListDeps{TreinoStore: stores.TreinoStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "treinos_list.html", map[string]any{
			"Treinos":    result.Treinos,
			"CountLabel": resultCountLabel(result.Total, lp.Search != ""),
			"Search":     lp.Search,
			"Sort":       lp.Sort,
			"Facet":      lp.Facet,
			"Facets":     treinoDomain.Objetivos,
			"Flash":      popFlash(w, r),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleTreinoForm handles GET /treinos/form (blank or ?id= for edit)
func handleTreinoForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.SaveTreinoInput{}
	if id := parseID(r, "id"); id != 0 {
		value, err := stores.TreinoStore.GetByID(r.Context(), id)
		if err != nil {
			setFlash(w, "Treino não encontrado.")
			http.Redirect(w, r, "/treinos", http.StatusSeeOther)
			return
		}
		input = orchestrators.SaveTreinoInput{
			ID:                value.ID,
			Objetivo:          value.Objetivo,
			Nivel:             value.Nivel,
			Exercicios:        value.Exercicios,
			ExpiresAt:         value.ExpiresAt,
			ClienteID:         value.ClienteID,
			PersonalTrainerID: value.PersonalTrainerID,
		}
	}

	renderTreinoForm(w, r, input, nil, "")
}

// handleTreinoSave handles POST /treinos/save
func handleTreinoSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SaveTreinoInput{
		ID:                parseFormID(r, "id"),
		Objetivo:          r.FormValue("objetivo"),
		Nivel:             r.FormValue("nivel"),
		Exercicios:        r.FormValue("exercicios"),
		ExpiresAt:         r.FormValue("expires_at"),
		ClienteID:         parseFormID(r, "cliente_id"),
		PersonalTrainerID: parseFormID(r, "personal_trainer_id"),
	}

	fieldErrs, err := orchestrators.ExecuteSaveTreino(r.Context(), input,
		orchestrators.SaveTreinoDeps{TreinoStore: stores.TreinoStore})
	if err != nil {
		renderTreinoForm(w, r, input, nil, saveErrorBanner(err))
		return
	}
	if len(fieldErrs) > 0 {
		renderTreinoForm(w, r, input, fieldErrs, "")
		return
	}

	setFlash(w, "Treino salvo com sucesso.")
	http.Redirect(w, r, "/treinos", http.StatusSeeOther)
}

// handleTreinoDelete handles GET (confirm page) and POST (remove) for /treinos/delete
func handleTreinoDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		value, err := stores.TreinoStore.GetByID(r.Context(), parseID(r, "id"))
		if err != nil {
			setFlash(w, "Treino não encontrado.")
			http.Redirect(w, r, "/treinos", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "confirm_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Title":     "Excluir treino",
			"Question":  "Confirma exclusão deste treino?",
			"Detail":    value.Objetivo,
			"Action":    "/treinos/delete",
			"ID":        value.ID,
			"CancelURL": "/treinos",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if err := stores.TreinoStore.Delete(r.Context(), parseFormID(r, "id")); err != nil {
			setFlash(w, deleteErrorBanner(err))
			http.Redirect(w, r, "/treinos", http.StatusSeeOther)
			return
		}
		setFlash(w, "Treino excluído.")
		http.Redirect(w, r, "/treinos", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func renderTreinoForm(w http.ResponseWriter, r *http.Request, input orchestrators.SaveTreinoInput, fieldErrs map[string]string, banner string) {
	clientes, err := stores.ClienteStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	personals, err := stores.PersonalStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "treinos_form.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Form":      input,
		"Errors":    fieldErrs,
		"Error":     banner,
		"IsEdit":    input.ID != 0,
		"Clientes":  clientes,
		"Personals": personals,
		"Objetivos": treinoDomain.Objetivos,
		"Niveis":    treinoDomain.Niveis,
	})
}
