package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fitlab/internal/adapters/backend"
	assinaturaStore "fitlab/internal/adapters/backend/assinatura"
	clienteStore "fitlab/internal/adapters/backend/cliente"
	planoStore "fitlab/internal/adapters/backend/plano"
	"fitlab/internal/adapters/email"
	domain "fitlab/internal/domain/assinatura"
)

// SendExpiryDigestDeps holds dependencies for SendExpiryDigest.
type SendExpiryDigestDeps struct {
	AssinaturaStore assinaturaStore.Store
	ClienteStore    clienteStore.Store
	PlanoStore      planoStore.Store
	Sender          email.Sender
	From            string
	ReplyTo         string
	To              string
	// Token is the backend service token for unattended runs. The
	// dashboard-triggered digest carries the admin session token on its
	// request context instead.
	Token string
}

// ExecuteSendExpiryDigest emails a digest of subscriptions close to expiry.
// PRE: deps.To is a valid recipient address
// POST: Returns the number of subscriptions listed, 0 sends no email
func ExecuteSendExpiryDigest(ctx context.Context, deps SendExpiryDigestDeps) (int, error) {
	assinaturas, err := deps.AssinaturaStore.List(ctx)
	if err != nil {
		return 0, err
	}

	var expiring []domain.Assinatura
	for _, a := range assinaturas {
		if a.Status == domain.StatusProxima {
			expiring = append(expiring, a)
		}
	}
	if len(expiring) == 0 {
		return 0, nil
	}

	clienteNames := make(map[int64]string)
	if clientes, err := deps.ClienteStore.List(ctx); err == nil {
		for _, c := range clientes {
			clienteNames[c.ID] = c.Nome
		}
	}
	planoNames := make(map[int64]string)
	if planos, err := deps.PlanoStore.List(ctx); err == nil {
		for _, p := range planos {
			planoNames[p.ID] = p.Nome
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Assinaturas vencendo em breve</h2><ul>")
	for _, a := range expiring {
		nome := clienteNames[a.ClienteID]
		if nome == "" {
			nome = fmt.Sprintf("cliente #%d", a.ClienteID)
		}
		plano := planoNames[a.PlanoID]
		if plano == "" {
			plano = fmt.Sprintf("plano #%d", a.PlanoID)
		}
		fmt.Fprintf(&b, "<li>%s (%s), renova em %s</li>", nome, plano, a.ExpiresAt)
	}
	b.WriteString("</ul>")

	_, err = deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{deps.To},
		From:    deps.From,
		ReplyTo: deps.ReplyTo,
		Subject: fmt.Sprintf("Fitlab: %d assinatura(s) vencendo", len(expiring)),
		HTML:    b.String(),
	})
	if err != nil {
		return 0, err
	}
	return len(expiring), nil
}

// StartDigestWorker runs the digest on an interval until stop is closed.
// Every backend endpoint requires a bearer token, so each run authenticates
// with deps.Token.
// PRE: interval > 0, deps.Token is a valid backend token
// POST: Returns immediately, work happens on a background goroutine
func StartDigestWorker(deps SendExpiryDigestDeps, interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				count, err := ExecuteSendExpiryDigest(backend.WithToken(ctx, deps.Token), deps)
				cancel()
				if err != nil {
					slog.Error("expiry_digest_failed", "error", err)
				} else if count > 0 {
					slog.Info("expiry_digest_sent", "count", count)
				}
			case <-stop:
				return
			}
		}
	}()
}
