package web

import (
	"errors"
	"net/http"

	"github.com/gorilla/csrf"

	"fitlab/internal/adapters/backend"
	"fitlab/internal/adapters/http/middleware"
	"fitlab/internal/application/orchestrators"
)

// handleLogin handles GET (form) and POST (authenticate) for /login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, redirect to dashboard
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Email":     "",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Email: r.FormValue("email"),
			Senha: r.FormValue("senha"),
		}
		deps := orchestrators.LoginDeps{
			AuthStore:   stores.AuthStore,
			TokenExpiry: stores.TokenExpiry,
		}

		result, fieldErrs, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
		if err != nil {
			banner := "Não foi possível entrar. Tente novamente."
			var apiErr *backend.APIError
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
				banner = "Credenciais inválidas."
			}
			renderTemplate(w, r, "login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Email":     input.Email,
				"Error":     banner,
			})
			return
		}
		if len(fieldErrs) > 0 {
			renderTemplate(w, r, "login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Email":     input.Email,
				"Errors":    fieldErrs,
			})
			return
		}

		token, err := middleware.OpenSession(r.Context(), stores.SessionStore,
			result.Admin.ID, result.Admin.Nome, result.Admin.Email,
			result.Token, result.ExpiresAt)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles POST /logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if token := middleware.SessionTokenFromRequest(r); token != "" {
		middleware.CloseSession(r.Context(), stores.SessionStore, token)
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
