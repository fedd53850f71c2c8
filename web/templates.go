// Package web holds the server-side view layer: a parsed-template cache
// and the page envelope every view renders into.
package web

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"stytchup/session"
	"stytchup/utils"
)

// Page is the envelope handed to every template: the layout reads Session
// for the nav, pages read Data.
type Page struct {
	Title   string
	Session *session.Session
	Error   string
	Message string
	Data    interface{}
}

type Templates struct {
	mu    sync.RWMutex
	cache map[string]*template.Template
	funcs template.FuncMap
}

func NewTemplates() *Templates {
	return &Templates{
		cache: make(map[string]*template.Template),
		funcs: template.FuncMap{
			"inr":      utils.FormatINR,
			"truncate": utils.Truncate,
			"timeShort": func(t time.Time) string {
				return t.Local().Format("15:04")
			},
			"dateShort": func(t time.Time) string {
				return t.Local().Format("02 Jan 2006")
			},
			"shortID": func(id string) string {
				if len(id) <= 8 {
					return id
				}
				return id[len(id)-8:]
			},
		},
	}
}

// Load parses every page in dir against the shared layout. Pages define a
// "content" block; layout.html is the frame.
func (t *Templates) Load(dir string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	layout := filepath.Join(dir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return err
	}

	for _, page := range pages {
		name := filepath.Base(page)
		if name == "layout.html" {
			continue
		}
		tmpl, err := template.New(name).Funcs(t.funcs).ParseFiles(layout, page)
		if err != nil {
			return err
		}
		t.cache[name] = tmpl
	}
	return nil
}

func (t *Templates) Render(w http.ResponseWriter, status int, name string, p Page) {
	t.mu.RLock()
	tmpl := t.cache[name]
	t.mu.RUnlock()

	if tmpl == nil {
		log.Printf("template %q not loaded", name)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	// render to a buffer first so a template error never emits a half page
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		log.Printf("render %q: %v", name, err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
