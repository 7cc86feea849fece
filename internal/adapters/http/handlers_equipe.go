package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/csrf"

	"fitlab/internal/application/listutil"
	"fitlab/internal/application/orchestrators"
	"fitlab/internal/application/projections"
	nutricionistaDomain "fitlab/internal/domain/nutricionista"
	personalDomain "fitlab/internal/domain/personal"
)

// --- Administradores ---

// handleAdministradores handles GET /administradores (list)
func handleAdministradores(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), projections.EquipeSorts, projections.EquipeDefaultSort)
	result, err := projections.QueryGetAdministradorList(r.Context(),
		projections.GetEquipeListQuery{Search: lp.Search, Sort: lp.Sort},
		stores.AdministradorStore)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "administradores_list.html", map[string]any{
			"Administradores": result.Administradores,
			"CountLabel":      resultCountLabel(result.Total, lp.Search != ""),
			"Search":          lp.Search,
			"Sort":            lp.Sort,
			"Flash":           popFlash(w, r),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleAdministradorForm handles GET /administradores/form (blank or ?id= for edit)
func handleAdministradorForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.SaveAdministradorInput{}
	if id := parseID(r, "id"); id != 0 {
		value, err := stores.AdministradorStore.GetByID(r.Context(), id)
		if err != nil {
			setFlash(w, "Administrador não encontrado.")
			http.Redirect(w, r, "/administradores", http.StatusSeeOther)
			return
		}
		// Senha stays blank on edit, blank means keep the current one
		input = orchestrators.SaveAdministradorInput{
			ID:       value.ID,
			Nome:     value.Nome,
			Email:    value.Email,
			Telefone: value.Telefone,
		}
	}

	renderAdministradorForm(w, r, input, nil, "")
}

// handleAdministradorSave handles POST /administradores/save
func handleAdministradorSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SaveAdministradorInput{
		ID:       parseFormID(r, "id"),
		Nome:     r.FormValue("nome"),
		Email:    r.FormValue("email"),
		Telefone: r.FormValue("telefone"),
		Senha:    r.FormValue("senha"),
	}

	fieldErrs, err := orchestrators.ExecuteSaveAdministrador(r.Context(), input,
		orchestrators.SaveAdministradorDeps{AdministradorStore: stores.AdministradorStore})
	if err != nil {
		renderAdministradorForm(w, r, input, nil, saveErrorBanner(err))
		return
	}
	if len(fieldErrs) > 0 {
		renderAdministradorForm(w, r, input, fieldErrs, "")
		return
	}

	setFlash(w, "Administrador salvo com sucesso.")
	http.Redirect(w, r, "/administradores", http.StatusSeeOther)
}

// handleAdministradorDelete handles GET (confirm page) and POST (remove) for /administradores/delete
func handleAdministradorDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		value, err := stores.AdministradorStore.GetByID(r.Context(), parseID(r, "id"))
		if err != nil {
			setFlash(w, "Administrador não encontrado.")
			http.Redirect(w, r, "/administradores", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "confirm_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Title":     "Excluir administrador",
			"Question":  "Confirma exclusão deste administrador?",
			"Detail":    value.Nome,
			"Action":    "/administradores/delete",
			"ID":        value.ID,
			"CancelURL": "/administradores",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if err := stores.AdministradorStore.Delete(r.Context(), parseFormID(r, "id")); err != nil {
			setFlash(w, deleteErrorBanner(err))
			http.Redirect(w, r, "/administradores", http.StatusSeeOther)
			return
		}
		setFlash(w, "Administrador excluído.")
		http.Redirect(w, r, "/administradores", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func renderAdministradorForm(w http.ResponseWriter, r *http.Request, input orchestrators.SaveAdministradorInput, fieldErrs map[string]string, banner string) {
	renderTemplate(w, r, "administradores_form.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Form":      input,
		"Errors":    fieldErrs,
		"Error":     banner,
		"IsEdit":    input.ID != 0,
	})
}

// --- Personal trainers ---

// handlePersonals handles GET /personaltrainers (list)
func handlePersonals(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), projections.EquipeSorts, projections.EquipeDefaultSort)
	result, err := projections.QueryGetPersonalList(r.Context(),
		projections.GetEquipeListQuery{Search: lp.Search, Sort: lp.Sort},
		stores.PersonalStore)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "personals_list.html", map[string]any{
			"Personals":  result.Personals,
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

// handlePersonalForm handles GET /personaltrainers/form (blank or ?id= for edit)
func handlePersonalForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.SavePersonalInput{}
	if id := parseID(r, "id"); id != 0 {
		value, err := stores.PersonalStore.GetByID(r.Context(), id)
		if err != nil {
			setFlash(w, "Personal trainer não encontrado.")
			http.Redirect(w, r, "/personaltrainers", http.StatusSeeOther)
			return
		}
		inicio, fim, _ := personalDomain.SplitHorario(value.HorarioAtendimento)
		input = orchestrators.SavePersonalInput{
			ID:            value.ID,
			Nome:          value.Nome,
			Email:         value.Email,
			Telefone:      value.Telefone,
			Certificacao:  value.Certificacao,
			Especialidade: value.Especialidade,
			HorarioInicio: inicio,
			HorarioFim:    fim,
		}
	}

	renderPersonalForm(w, r, input, nil, "")
}

// handlePersonalSave handles POST /personaltrainers/save
func handlePersonalSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SavePersonalInput{
		ID:            parseFormID(r, "id"),
		Nome:          r.FormValue("nome"),
		Email:         r.FormValue("email"),
		Telefone:      r.FormValue("telefone"),
		Certificacao:  r.FormValue("certificacao"),
		Especialidade: r.FormValue("especialidade"),
		HorarioInicio: r.FormValue("horario_inicio"),
		HorarioFim:    r.FormValue("horario_fim"),
	}

	fieldErrs, err := orchestrators.ExecuteSavePersonal(r.Context(), input,
		orchestrators.SavePersonalDeps{PersonalStore: stores.PersonalStore})
	if err != nil {
		renderPersonalForm(w, r, input, nil, saveErrorBanner(err))
		return
	}
	if len(fieldErrs) > 0 {
		renderPersonalForm(w, r, input, fieldErrs, "")
		return
	}

	setFlash(w, "Personal trainer salvo com sucesso.")
	http.Redirect(w, r, "/personaltrainers", http.StatusSeeOther)
}

// handlePersonalDelete handles GET (confirm page) and POST (remove) for /personaltrainers/delete
func handlePersonalDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		value, err := stores.PersonalStore.GetByID(r.Context(), parseID(r, "id"))
		if err != nil {
			setFlash(w, "Personal trainer não encontrado.")
			http.Redirect(w, r, "/personaltrainers", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "confirm_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Title":     "Excluir personal trainer",
			"Question":  "Confirma exclusão deste personal trainer?",
			"Detail":    value.Nome,
			"Action":    "/personaltrainers/delete",
			"ID":        value.ID,
			"CancelURL": "/personaltrainers",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if err := stores.PersonalStore.Delete(r.Context(), parseFormID(r, "id")); err != nil {
			setFlash(w, deleteErrorBanner(err))
			http.Redirect(w, r, "/personaltrainers", http.StatusSeeOther)
			return
		}
		setFlash(w, "Personal trainer excluído.")
		http.Redirect(w, r, "/personaltrainers", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func renderPersonalForm(w http.ResponseWriter, r *http.Request, input orchestrators.SavePersonalInput, fieldErrs map[string]string, banner string) {
	renderTemplate(w, r, "personals_form.html", map[string]any{
		"CSRFToken":      csrf.Token(r),
		"Form":           input,
		"Errors":         fieldErrs,
		"Error":          banner,
		"IsEdit":         input.ID != 0,
		"Certificacoes":  personalDomain.Certificacoes,
		"Especialidades": personalDomain.Especialidades,
	})
}

// --- Nutricionistas ---

// handleNutricionistas handles GET /nutricionistas (list)
func handleNutricionistas(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), projections.EquipeSorts, projections.EquipeDefaultSort)
	result, err := projections.QueryGetNutricionistaList(r.Context(),
		projections.GetEquipeListQuery{Search: lp.Search, Sort: lp.Sort},
		stores.NutricionistaStore)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "nutricionistas_list.html", map[string]any{
			"Nutricionistas": result.Nutricionistas,
			"CountLabel":     resultCountLabel(result.Total, lp.Search != ""),
			"Search":         lp.Search,
			"Sort":           lp.Sort,
			"Flash":          popFlash(w, r),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleNutricionistaForm handles GET /nutricionistas/form (blank or ?id= for edit)
func handleNutricionistaForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.SaveNutricionistaInput{}
	if id := parseID(r, "id"); id != 0 {
		value, err := stores.NutricionistaStore.GetByID(r.Context(), id)
		if err != nil {
			setFlash(w, "Nutricionista não encontrado.")
			http.Redirect(w, r, "/nutricionistas", http.StatusSeeOther)
			return
		}
		input = orchestrators.SaveNutricionistaInput{
			ID:            value.ID,
			Nome:          value.Nome,
			Email:         value.Email,
			Telefone:      value.Telefone,
			Especialidade: value.Especialidade,
			CRN:           value.CRN,
		}
	}

	renderNutricionistaForm(w, r, input, nil, "")
}

// handleNutricionistaSave handles POST /nutricionistas/save
func handleNutricionistaSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SaveNutricionistaInput{
		ID:            parseFormID(r, "id"),
		Nome:          r.FormValue("nome"),
		Email:         r.FormValue("email"),
		Telefone:      r.FormValue("telefone"),
		Especialidade: r.FormValue("especialidade"),
		CRN:           r.FormValue("crn"),
	}

	fieldErrs, err := orchestrators.ExecuteSaveNutricionista(r.Context(), input,
		orchestrators.SaveNutricionistaDeps{NutricionistaStore: stores.NutricionistaStore})
	if err != nil {
		renderNutricionistaForm(w, r, input, nil, saveErrorBanner(err))
		return
	}
	if len(fieldErrs) > 0 {
		renderNutricionistaForm(w, r, input, fieldErrs, "")
		return
	}

	setFlash(w, "Nutricionista salvo com sucesso.")
	http.Redirect(w, r, "/nutricionistas", http.StatusSeeOther)
}

// handleNutricionistaDelete handles GET (confirm page) and POST (remove) for /nutricionistas/delete
func handleNutricionistaDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		value, err := stores.NutricionistaStore.GetByID(r.Context(), parseID(r, "id"))
		if err != nil {
			setFlash(w, "Nutricionista não encontrado.")
			http.Redirect(w, r, "/nutricionistas", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "confirm_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Title":     "Excluir nutricionista",
			"Question":  "Confirma exclusão deste nutricionista?",
			"Detail":    value.Nome,
			"Action":    "/nutricionistas/delete",
			"ID":        value.ID,
			"CancelURL": "/nutricionistas",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if err := stores.NutricionistaStore.Delete(r.Context(), parseFormID(r, "id")); err != nil {
			setFlash(w, deleteErrorBanner(err))
			http.Redirect(w, r, "/nutricionistas", http.StatusSeeOther)
			return
		}
		setFlash(w, "Nutricionista excluído.")
		http.Redirect(w, r, "/nutricionistas", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func renderNutricionistaForm(w http.ResponseWriter, r *http.Request, input orchestrators.SaveNutricionistaInput, fieldErrs map[string]string, banner string) {
	renderTemplate(w, r, "nutricionistas_form.html", map[string]any{
		"CSRFToken":      csrf.Token(r),
		"Form":           input,
		"Errors":         fieldErrs,
		"Error":          banner,
		"IsEdit":         input.ID != 0,
		"Especialidades": nutricionistaDomain.Especialidades,
		"CRNs":           nutricionistaDomain.CRNs,
	})
}
