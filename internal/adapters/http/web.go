package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"fitlab/internal/adapters/backend/administrador"
	"fitlab/internal/adapters/backend/assinatura"
	"fitlab/internal/adapters/backend/auth"
	"fitlab/internal/adapters/backend/checkin"
	"fitlab/internal/adapters/backend/cliente"
	"fitlab/internal/adapters/backend/dashboard"
	"fitlab/internal/adapters/backend/dieta"
	"fitlab/internal/adapters/backend/estado"
	"fitlab/internal/adapters/backend/nutricionista"
	"fitlab/internal/adapters/backend/personal"
	"fitlab/internal/adapters/backend/plano"
	"fitlab/internal/adapters/backend/treino"
	"fitlab/internal/adapters/email"
	"fitlab/internal/adapters/http/middleware"
	"fitlab/internal/adapters/http/perf"
	sessionStore "fitlab/internal/adapters/storage/session"
	"fitlab/internal/application/events"
)

// Stores holds every backend-facing store plus the local session store.
type Stores struct {
	AuthStore          auth.Store
	TokenExpiry        auth.TokenExpiry
	ClienteStore       cliente.Store
	PlanoStore         plano.Store
	AssinaturaStore    assinatura.Store
	CheckInStore       checkin.Store
	DietaStore         dieta.Store
	TreinoStore        treino.Store
	EstadoStore        estado.Store
	AdministradorStore administrador.Store
	PersonalStore      personal.Store
	NutricionistaStore nutricionista.Store
	DashboardStore     dashboard.Store
	SessionStore       sessionStore.Store
}

// loadCSRFKey reads the CSRF secret from FITLAB_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("FITLAB_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("FITLAB_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("FITLAB_ENV") == "production" {
		log.Fatal("FITLAB_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set FITLAB_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global event bus for dashboard refresh (set by NewMux)
var eventBus *events.Bus

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailReplyTo string
var digestToAddress string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, replyTo, digestTo string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
	digestToAddress = digestTo
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector, bus *events.Bus) http.Handler {
	stores = s
	perfCollector = collector
	eventBus = bus

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(s.SessionStore),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
