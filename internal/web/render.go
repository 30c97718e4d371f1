package web

import (
	"bytes"
	"html/template"
	"net/http"
	"path/filepath"
)

// PageFiles are the templates every Renderer parses.
var PageFiles = []string{
	"layout_head.html",
	"main.html",
	"helper.html",
	"register.html",
}

// Renderer executes page templates. It is built once at startup and is
// read-only afterwards, so handlers share it freely.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer wraps an already parsed template set.
func NewRenderer(tmpl *template.Template) *Renderer {
	return &Renderer{tmpl: tmpl}
}

// LoadRenderer parses PageFiles from dir.
func LoadRenderer(dir string) (*Renderer, error) {
	paths := make([]string, len(PageFiles))
	for i, f := range PageFiles {
		paths[i] = filepath.Join(dir, f)
	}
	tmpl, err := template.ParseFiles(paths...)
	if err != nil {
		return nil, err
	}
	return NewRenderer(tmpl), nil
}

// Render executes the named template into a buffer and writes it with
// status, so a failing template never leaves a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}
