package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"fitlab/internal/adapters/http/middleware"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

const templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

// parseID reads a numeric id from the query string, 0 when absent or invalid.
func parseID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	return id
}

// parseFormID reads a numeric id from a posted form field, 0 when absent or invalid.
func parseFormID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(r.FormValue(name), 10, 64)
	return id
}

const flashCookieName = "fitlab_flash"

// setFlash stores a one-shot message shown after the next redirect.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   60,
	})
}

// popFlash reads and clears the flash message, empty when none is set.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}

// resultCountLabel renders the list page count line.
// Singular for one, "resultados" with an active search, "registros" otherwise.
func resultCountLabel(total int, searching bool) string {
	noun := "registro"
	if searching {
		noun = "resultado"
	}
	if total == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", total, noun)
}

// formatMoney renders a value as Brazilian currency, e.g. "R$ 120,50".
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	return "R$ " + strings.Replace(s, ".", ",", 1)
}

// formatDate renders a backend date or timestamp as DD/MM/YYYY.
func formatDate(value string) string {
	t := parseBackendTime(value)
	if t.IsZero() {
		return value
	}
	return t.Format("02/01/2006")
}

// formatDateTime renders a backend timestamp as DD/MM/YYYY HH:MM.
func formatDateTime(value string) string {
	t := parseBackendTime(value)
	if t.IsZero() {
		return value
	}
	return t.Format("02/01/2006 15:04")
}

func parseBackendTime(value string) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	return time.Time{}
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	adminNome := ""
	adminEmail := ""
	if ok {
		adminNome = sess.AdminNome
		adminEmail = sess.AdminEmail
	}

	funcMap := template.FuncMap{
		"currentAdmin": func() string { return adminNome },
		"currentEmail": func() string { return adminEmail },
		"isLoggedIn":   func() bool { return ok },
		"csrfToken":    func() string { return csrf.Token(r) },
		"list":         func(items ...string) []string { return items },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"formatMoney":    formatMoney,
		"formatDate":     formatDate,
		"formatDateTime": formatDateTime,
		"add":            func(a, b int) int { return a + b },
		"sub":            func(a, b int) int { return a - b },
		"fieldError": func(errs map[string]string, field string) string {
			if errs == nil {
				return ""
			}
			return errs[field]
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}
