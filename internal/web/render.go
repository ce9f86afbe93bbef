package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"everlight/internal/lib/logger/sl"
)

//go:embed templates/*.html templates/errors/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates. Pages are referenced
// by file name ("contact.html", "404.html").
type Renderer struct {
	log  *slog.Logger
	tmpl *template.Template
}

func NewRenderer(log *slog.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html", "templates/errors/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{log: log, tmpl: tmpl}, nil
}

func (rn *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer

	if err := rn.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		rn.log.Error("failed to render template", slog.String("template", name), sl.Err(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Page returns a handler for templates that need no data.
func (rn *Renderer) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rn.Render(w, http.StatusOK, name, nil)
	}
}

func (rn *Renderer) NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rn.Render(w, http.StatusNotFound, "404.html", nil)
	}
}

func (rn *Renderer) ServerError(w http.ResponseWriter) {
	rn.Render(w, http.StatusInternalServerError, "500.html", nil)
}
