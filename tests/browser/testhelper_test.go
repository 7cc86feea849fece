package browser_test

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

	"fitlab/internal/adapters/backend"
	administradorStore "fitlab/internal/adapters/backend/administrador"
	assinaturaStore "fitlab/internal/adapters/backend/assinatura"
	authStore "fitlab/internal/adapters/backend/auth"
	checkinStore "fitlab/internal/adapters/backend/checkin"
	clienteStore "fitlab/internal/adapters/backend/cliente"
	dashboardStore "fitlab/internal/adapters/backend/dashboard"
	dietaStore "fitlab/internal/adapters/backend/dieta"
	estadoStore "fitlab/internal/adapters/backend/estado"
	nutricionistaStore "fitlab/internal/adapters/backend/nutricionista"
	personalStore "fitlab/internal/adapters/backend/personal"
	planoStore "fitlab/internal/adapters/backend/plano"
	treinoStore "fitlab/internal/adapters/backend/treino"
	web "fitlab/internal/adapters/http"
	"fitlab/internal/adapters/http/middleware"
	"fitlab/internal/adapters/http/perf"
	"fitlab/internal/adapters/storage"
	sessionStore "fitlab/internal/adapters/storage/session"
	"fitlab/internal/application/events"
)

// testApp holds the running app, the stub backend and Playwright handles.
type testApp struct {
	BaseURL string
	Backend *stubBackend
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// stubBackend fakes the gym REST API the app talks to. It keeps clients in
// memory and answers the handful of routes the smoke tests touch.
type stubBackend struct {
	mu       sync.Mutex
	server   *httptest.Server
	clientes []map[string]any
	nextID   int64
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()
	sb := &stubBackend{nextID: 1}

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email string `json:"email"`
			Senha string `json:"senha"`
		}
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email != "admin@fitlab.test" || creds.Senha != "TestPass123!" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "stub-jwt"})
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"admin": map[string]any{"id": 1, "nome": "Admin Teste", "email": "admin@fitlab.test"},
		})
	})
	mux.HandleFunc("/dashboard/overview", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"stats": map[string]any{
				"totalClientes":     len(sb.clientes),
				"assinaturasAtivas": 0,
				"checkinsHoje":      0,
			},
			"recentCheckins":  []any{},
			"ocupacaoPorHora": map[string]int{},
			"chart":           map[string]any{"labels": []string{}, "novos": []int{}, "renovados": []int{}},
		}})
	})
	mux.HandleFunc("/clientes", func(w http.ResponseWriter, r *http.Request) {
		sb.mu.Lock()
		defer sb.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"data": sb.clientes})
		case http.MethodPost:
			var c map[string]any
			json.NewDecoder(r.Body).Decode(&c)
			c["id"] = sb.nextID
			sb.nextID++
			sb.clientes = append(sb.clientes, c)
			w.WriteHeader(http.StatusCreated)
		}
	})
	mux.HandleFunc("/clientes/", func(w http.ResponseWriter, r *http.Request) {
		sb.mu.Lock()
		defer sb.mu.Unlock()
		id := strings.TrimPrefix(r.URL.Path, "/clientes/")
		for i, c := range sb.clientes {
			if fmt.Sprint(c["id"]) == id {
				switch r.Method {
				case http.MethodGet:
					json.NewEncoder(w).Encode(map[string]any{"data": c})
				case http.MethodDelete:
					sb.clientes = append(sb.clientes[:i], sb.clientes[i+1:]...)
				}
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Cliente não encontrado"})
	})
	// Everything else answers an empty list so list pages render
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	sb.server = httptest.NewServer(mux)
	t.Cleanup(sb.server.Close)
	return sb
}

// newTestApp wires the app against a stub backend and starts a browser.
// Set FITLAB_BROWSER_TESTS=1 to run, these need a Playwright install.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	if os.Getenv("FITLAB_BROWSER_TESTS") == "" {
		t.Skip("set FITLAB_BROWSER_TESTS=1 to run browser tests")
	}

	stub := newStubBackend(t)

	// Session database in a temp dir
	dbPath := filepath.Join(t.TempDir(), "sessions.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open session DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init session DB: %v", err)
	}

	api := backend.NewClient(stub.server.URL, 5*time.Second)
	stores := &web.Stores{
		AuthStore:          authStore.NewRESTStore(api),
		TokenExpiry:        authStore.ExpiryOf,
		ClienteStore:       clienteStore.NewRESTStore(api),
		PlanoStore:         planoStore.NewRESTStore(api),
		AssinaturaStore:    assinaturaStore.NewRESTStore(api),
		CheckInStore:       checkinStore.NewRESTStore(api),
		DietaStore:         dietaStore.NewRESTStore(api),
		TreinoStore:        treinoStore.NewRESTStore(api),
		EstadoStore:        estadoStore.NewRESTStore(api),
		AdministradorStore: administradorStore.NewRESTStore(api),
		PersonalStore:      personalStore.NewRESTStore(api),
		NutricionistaStore: nutricionistaStore.NewRESTStore(api),
		DashboardStore:     dashboardStore.NewRESTStore(api),
		SessionStore:       sessionStore.NewSQLiteStore(db),
	}

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Change to project root so relative template/static paths work
	projectRoot := findProjectRoot(t)
	origDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("failed to chdir to project root: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	// Register the test port with the CSRF middleware before building the mux
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)

	mux := web.NewMux("static", stores, perf.NewCollector(perf.DefaultRingSize), events.NewBus())
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()
	t.Cleanup(func() { srv.Close() })

	// Wait for the server to come up
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}
	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
	})

	return &testApp{
		BaseURL: baseURL,
		Backend: stub,
		PW:      pw,
		Browser: browser,
	}
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login navigates to the login page and logs in as admin.
func (a *testApp) login(t *testing.T, page playwright.Page) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=email]").Fill("admin@fitlab.test"); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator("input[name=senha]").Fill("TestPass123!"); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+"/dashboard", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to dashboard: %v", err)
	}
}

// findProjectRoot walks up from the working directory to the directory with go.mod.
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (go.mod) from working directory")
		}
		dir = parent
	}
}
