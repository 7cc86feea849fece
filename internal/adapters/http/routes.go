package web

import (
	"net/http"

	"fitlab/internal/adapters/http/middleware"
)

// registerRoutes wires every page onto the mux. Everything except the login
// page and static assets sits behind RequireAuth.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleRoot)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	protected := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireAuth(h))
	}

	protected("/dashboard", handleDashboard)
	protected("/dashboard/digest", handleDashboardDigest)
	protected("/dashboard/events", handleDashboardEvents)

	protected("/clientes", handleClientes)
	protected("/clientes/form", handleClienteForm)
	protected("/clientes/save", handleClienteSave)
	protected("/clientes/delete", handleClienteDelete)

	protected("/planos", handlePlanos)
	protected("/planos/form", handlePlanoForm)
	protected("/planos/save", handlePlanoSave)
	protected("/planos/delete", handlePlanoDelete)

	protected("/assinaturas", handleAssinaturas)
	protected("/assinaturas/form", handleAssinaturaForm)
	protected("/assinaturas/save", handleAssinaturaSave)
	protected("/assinaturas/view", handleAssinaturaView)
	protected("/assinaturas/delete", handleAssinaturaDelete)

	protected("/checkins", handleCheckins)
	protected("/checkins/form", handleCheckinForm)
	protected("/checkins/save", handleCheckinSave)
	protected("/checkins/view", handleCheckinView)
	protected("/checkins/delete", handleCheckinDelete)

	protected("/dietas", handleDietas)
	protected("/dietas/form", handleDietaForm)
	protected("/dietas/save", handleDietaSave)
	protected("/dietas/delete", handleDietaDelete)

	protected("/treinos", handleTreinos)
	protected("/treinos/form", handleTreinoForm)
	protected("/treinos/save", handleTreinoSave)
	protected("/treinos/delete", handleTreinoDelete)

	protected("/estados", handleEstados)
	protected("/estados/form", handleEstadoForm)
	protected("/estados/save", handleEstadoSave)
	protected("/estados/delete", handleEstadoDelete)

	protected("/administradores", handleAdministradores)
	protected("/administradores/form", handleAdministradorForm)
	protected("/administradores/save", handleAdministradorSave)
	protected("/administradores/delete", handleAdministradorDelete)

	protected("/personaltrainers", handlePersonals)
	protected("/personaltrainers/form", handlePersonalForm)
	protected("/personaltrainers/save", handlePersonalSave)
	protected("/personaltrainers/delete", handlePersonalDelete)

	protected("/nutricionistas", handleNutricionistas)
	protected("/nutricionistas/form", handleNutricionistaForm)
	protected("/nutricionistas/save", handleNutricionistaSave)
	protected("/nutricionistas/delete", handleNutricionistaDelete)

	protected("/admin/perf", handleAdminPerf)
}

// handleRoot sends the visitor to the dashboard or the login page.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
