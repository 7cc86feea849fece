package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/csrf"

	"fitlab/internal/application/listutil"
	"fitlab/internal/application/orchestrators"
	"fitlab/internal/application/projections"
	assinaturaDomain "fitlab/internal/domain/assinatura"
)

// handleAssinaturas handles GET /assinaturas (list)
func handleAssinaturas(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), projections.AssinaturaSorts, projections.AssinaturaDefaultSort)
	result, err := projections.QueryGetAssinaturaList(r.Context(),
		projections.GetAssinaturaListQuery{Search: lp.Search, Sort: lp.Sort, Facet: lp.Facet},
		projections.GetAssinaturaListDeps{
			AssinaturaStore: stores.AssinaturaStore,
			ClienteStore:    stores.ClienteStore,
			PlanoStore:      stores.PlanoStore,
		})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "assinaturas_list.html", map[string]any{
			"Assinaturas": result.Assinaturas,
			"CountLabel":  resultCountLabel(result.Total, lp.Search != ""),
			"Search":      lp.Search,
			"Sort":        lp.Sort,
			"Facet":       lp.Facet,
			"Facets":      projections.AssinaturaFacets,
			"Flash":       popFlash(w, r),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleAssinaturaForm handles GET /assinaturas/form (create-only)
func handleAssinaturaForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderAssinaturaForm(w, r, orchestrators.SaveAssinaturaInput{}, nil, "")
}

// handleAssinaturaSave handles POST /assinaturas/save
func handleAssinaturaSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SaveAssinaturaInput{
		ClienteID:       parseFormID(r, "cliente_id"),
		PlanoID:         parseFormID(r, "plano_id"),
		MetodoPagamento: r.FormValue("metodo_pagamento"),
	}

	fieldErrs, err := orchestrators.ExecuteSaveAssinatura(r.Context(), input,
		orchestrators.SaveAssinaturaDeps{
			AssinaturaStore: stores.AssinaturaStore,
			PlanoStore:      stores.PlanoStore,
		})
	if err != nil {
		renderAssinaturaForm(w, r, input, nil, saveErrorBanner(err))
		return
	}
	if len(fieldErrs) > 0 {
		renderAssinaturaForm(w, r, input, fieldErrs, "")
		return
	}

	setFlash(w, "Assinatura criada com sucesso.")
	http.Redirect(w, r, "/assinaturas", http.StatusSeeOther)
}

// handleAssinaturaView handles GET /assinaturas/view?id=
func handleAssinaturaView(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	value, err := stores.AssinaturaStore.GetByID(r.Context(), parseID(r, "id"))
	if err != nil {
		setFlash(w, "Assinatura não encontrada.")
		http.Redirect(w, r, "/assinaturas", http.StatusSeeOther)
		return
	}

	clienteNome := ""
	if c, err := stores.ClienteStore.GetByID(r.Context(), value.ClienteID); err == nil {
		clienteNome = c.Nome
	}
	planoNome := ""
	if p, err := stores.PlanoStore.GetByID(r.Context(), value.PlanoID); err == nil {
		planoNome = p.Nome
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "assinatura_view.html", map[string]any{
			"Assinatura":  value,
			"ClienteNome": clienteNome,
			"PlanoNome":   planoNome,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(value)
}

// handleAssinaturaDelete handles GET (confirm page) and POST (remove) for /assinaturas/delete
func handleAssinaturaDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		value, err := stores.AssinaturaStore.GetByID(r.Context(), parseID(r, "id"))
		if err != nil {
			setFlash(w, "Assinatura não encontrada.")
			http.Redirect(w, r, "/assinaturas", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "confirm_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Title":     "Excluir assinatura",
			"Question":  "Confirma exclusão desta assinatura?",
			"Detail":    value.MetodoPagamento,
			"Action":    "/assinaturas/delete",
			"ID":        value.ID,
			"CancelURL": "/assinaturas",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if err := stores.AssinaturaStore.Delete(r.Context(), parseFormID(r, "id")); err != nil {
			setFlash(w, deleteErrorBanner(err))
			http.Redirect(w, r, "/assinaturas", http.StatusSeeOther)
			return
		}
		setFlash(w, "Assinatura excluída.")
		http.Redirect(w, r, "/assinaturas", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func renderAssinaturaForm(w http.ResponseWriter, r *http.Request, input orchestrators.SaveAssinaturaInput, fieldErrs map[string]string, banner string) {
	clientes, err := stores.ClienteStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	planos, err := stores.PlanoStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "assinaturas_form.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Form":      input,
		"Errors":    fieldErrs,
		"Error":     banner,
		"Clientes":  clientes,
		"Planos":    planos,
		"Metodos":   assinaturaDomain.MetodosPagamento,
	})
}
