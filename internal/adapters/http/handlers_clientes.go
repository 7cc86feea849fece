package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/csrf"

	"fitlab/internal/adapters/backend"
	"fitlab/internal/application/listutil"
	"fitlab/internal/application/orchestrators"
	"fitlab/internal/application/projections"
	clienteDomain "fitlab/internal/domain/cliente"
)

// handleClientes handles GET /clientes (list)
func handleClientes(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), projections.ClienteSorts, projections.ClienteDefaultSort)
	result, err := projections.QueryGetClienteList(r.Context(),
		projections.GetClienteListQuery{Search: lp.Search, Sort: lp.Sort},
		projections.GetClienteListDeps{ClienteStore: stores.ClienteStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "clientes_list.html", map[string]any{
			"Clientes":   result.Clientes,
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

// handleClienteForm handles GET /clientes/form (blank or ?id= for edit)
func handleClienteForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	value := clienteDomain.Cliente{}
	if id := parseID(r, "id"); id != 0 {
		var err error
		value, err = stores.ClienteStore.GetByID(r.Context(), id)
		if err != nil {
			setFlash(w, "Cliente não encontrado.")
			http.Redirect(w, r, "/clientes", http.StatusSeeOther)
			return
		}
	}

	renderClienteForm(w, r, orchestrators.SaveClienteInput{
		ID:             value.ID,
		Nome:           value.Nome,
		Email:          value.Email,
		Telefone:       value.Telefone,
		DataNascimento: value.DataNascimento,
	}, nil, "")
}

// handleClienteSave handles POST /clientes/save
func handleClienteSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SaveClienteInput{
		ID:             parseFormID(r, "id"),
		Nome:           r.FormValue("nome"),
		Email:          r.FormValue("email"),
		Telefone:       r.FormValue("telefone"),
		DataNascimento: r.FormValue("data_nascimento"),
	}

	fieldErrs, err := orchestrators.ExecuteSaveCliente(r.Context(), input,
		orchestrators.SaveClienteDeps{ClienteStore: stores.ClienteStore})
	if err != nil {
		renderClienteForm(w, r, input, nil, saveErrorBanner(err))
		return
	}
	if len(fieldErrs) > 0 {
		renderClienteForm(w, r, input, fieldErrs, "")
		return
	}

	setFlash(w, "Cliente salvo com sucesso.")
	http.Redirect(w, r, "/clientes", http.StatusSeeOther)
}

// handleClienteDelete handles GET (confirm page) and POST (remove) for /clientes/delete
func handleClienteDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		id := parseID(r, "id")
		value, err := stores.ClienteStore.GetByID(r.Context(), id)
		if err != nil {
			setFlash(w, "Cliente não encontrado.")
			http.Redirect(w, r, "/clientes", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "confirm_delete.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Title":     "Excluir cliente",
			"Question":  "Confirma exclusão deste cliente?",
			"Detail":    value.Nome,
			"Action":    "/clientes/delete",
			"ID":        value.ID,
			"CancelURL": "/clientes",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if err := stores.ClienteStore.Delete(r.Context(), parseFormID(r, "id")); err != nil {
			setFlash(w, deleteErrorBanner(err))
			http.Redirect(w, r, "/clientes", http.StatusSeeOther)
			return
		}
		setFlash(w, "Cliente excluído.")
		http.Redirect(w, r, "/clientes", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func renderClienteForm(w http.ResponseWriter, r *http.Request, input orchestrators.SaveClienteInput, fieldErrs map[string]string, banner string) {
	renderTemplate(w, r, "clientes_form.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Form":      input,
		"Errors":    fieldErrs,
		"Error":     banner,
		"IsEdit":    input.ID != 0,
	})
}

// saveErrorBanner turns a backend failure into a banner message.
func saveErrorBanner(err error) string {
	if _, ok := asNetworkError(err); ok {
		return "Servidor indisponível. Tente novamente."
	}
	if apiErr, ok := asAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Não foi possível salvar. Tente novamente."
}

// deleteErrorBanner turns a backend delete failure into a flash message.
func deleteErrorBanner(err error) string {
	if _, ok := asNetworkError(err); ok {
		return "Servidor indisponível. Tente novamente."
	}
	if apiErr, ok := asAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Não foi possível excluir. Tente novamente."
}

func asNetworkError(err error) (*backend.NetworkError, bool) {
	var netErr *backend.NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

func asAPIError(err error) (*backend.APIError, bool) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
