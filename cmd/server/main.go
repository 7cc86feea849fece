package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

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
	emailPkg "fitlab/internal/adapters/email"
	web "fitlab/internal/adapters/http"
	"fitlab/internal/adapters/http/perf"
	"fitlab/internal/adapters/storage"
	sessionStore "fitlab/internal/adapters/storage/session"
	"fitlab/internal/application/events"
	"fitlab/internal/application/orchestrators"
	"fitlab/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// Session database: WAL mode, foreign keys, busy timeout
	db, err := storage.Open(cfg.SessionDBPath)
	if err != nil {
		log.Fatalf("failed to open session database: %v", err)
	}
	defer db.Close()
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to init session database: %v", err)
	}

	sessions := sessionStore.NewSQLiteStore(db)

	// Drop stale sessions on startup, then hourly
	sweepSessions(sessions)
	sweepStop := make(chan struct{})
	defer close(sweepStop)
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweepSessions(sessions)
			case <-sweepStop:
				return
			}
		}
	}()

	// Performance instrumentation: collector + timed backend client
	collector := perf.NewCollector(perf.DefaultRingSize)
	api := backend.NewTimedClient(backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout), collector)

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
		SessionStore:       sessions,
	}

	// Configure email sender
	var sender emailPkg.Sender
	if cfg.ResendKey != "" {
		sender = emailPkg.NewResendSender(cfg.ResendKey, cfg.EmailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		if cfg.IsProduction() {
			log.Println("WARNING: FITLAB_RESEND_KEY is not set, email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set FITLAB_RESEND_KEY for real delivery)")
		}
	}
	web.SetEmailSender(sender, cfg.EmailFrom, cfg.EmailReplyTo, cfg.DigestTo)

	// Expiry digest worker runs only when a recipient is configured. The
	// scheduled runs have no admin session, so they need a service token
	// for the backend.
	if cfg.DigestTo != "" {
		if cfg.BackendToken == "" {
			log.Println("WARNING: FITLAB_DIGEST_TO is set but FITLAB_BACKEND_TOKEN is not, scheduled digests will be rejected by the backend")
		}
		digestStop := make(chan struct{})
		defer close(digestStop)
		orchestrators.StartDigestWorker(orchestrators.SendExpiryDigestDeps{
			AssinaturaStore: stores.AssinaturaStore,
			ClienteStore:    stores.ClienteStore,
			PlanoStore:      stores.PlanoStore,
			Sender:          sender,
			From:            cfg.EmailFrom,
			ReplyTo:         cfg.EmailReplyTo,
			To:              cfg.DigestTo,
			Token:           cfg.BackendToken,
		}, cfg.DigestInterval, digestStop)
		log.Printf("Expiry digest worker started (every %s, to %s)", cfg.DigestInterval, cfg.DigestTo)
	}

	bus := events.NewBus()
	mux := web.NewMux(cfg.StaticDir, stores, collector, bus)

	log.Printf("Fitlab %s starting on %s (env=%s, backend=%s)", version, cfg.Addr, cfg.Env, cfg.BackendBaseURL)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func sweepSessions(sessions *sessionStore.SQLiteStore) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if n, err := sessions.DeleteExpired(ctx, time.Now()); err != nil {
		slog.Error("session_sweep_failed", "error", err)
	} else if n > 0 {
		slog.Info("session_sweep", "removed", n)
	}
}
