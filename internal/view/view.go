// Package view renders the HTML pages from the embedded template set.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"covidjournal/internal/httpx"
)

// Renderer is what route handlers need from the view layer.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any)
	Error(w http.ResponseWriter, r *http.Request, status int, message string)
}

var templateFuncs = template.FuncMap{
	"comma": humanize.Comma,
	"day": func(s string) string {
		if len(s) >= len("2006-01-02") {
			return s[:len("2006-01-02")]
		}
		return s
	},
}

// Engine holds one parsed template per page, each combined with base.html.
type Engine struct {
	pages map[string]*template.Template
}

// ErrorData is passed to the error page.
type ErrorData struct {
	Status     int
	StatusText string
	Message    string
	RequestID  string
}

// New parses base.html together with every pages/*.html file in fsys.
// A page is addressed by its file name without extension.
func New(fsys fs.FS) (*Engine, error) {
	files, err := fs.Glob(fsys, "pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no page templates found")
	}

	e := &Engine{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(fsys, "base.html", f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		name := strings.TrimSuffix(path.Base(f), path.Ext(f))
		e.pages[name] = tmpl
	}
	return e, nil
}

// Render executes page into a buffer first so a template failure still
// yields a clean 500.
func (e *Engine) Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := e.pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		log.Error().Err(err).Str("page", page).Msg("template execute")
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (e *Engine) Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	e.Render(w, status, "error", ErrorData{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
		RequestID:  httpx.RequestIDFrom(r),
	})
}
