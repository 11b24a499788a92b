package httpserver

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/oliveiraclick/criadorLP/internal/platform/observability"
	"github.com/oliveiraclick/criadorLP/templates"
)

// renderer executes the page and fragment templates. In dev mode templates are reparsed
// from disk on each request; otherwise the embedded set is parsed once.
type renderer struct {
	dev   bool
	dir   string
	cache *template.Template
}

func newRenderer(dev bool, dir string) (*renderer, error) {
	rr := &renderer{dev: dev, dir: dir}
	if dev {
		if strings.TrimSpace(dir) == "" {
			rr.dir = "templates"
		}
		return rr, nil
	}
	t, err := parseTemplates(templates.FS)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	rr.cache = t
	return rr, nil
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
	}
	var files []string
	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found")
	}
	return template.New("_root").Funcs(funcMap).ParseFS(fsys, files...)
}

// templates returns a set that is safe to extend and execute. The cached set is never
// executed itself, so it stays clonable.
func (rr *renderer) templates() (*template.Template, error) {
	if rr.dev {
		return parseTemplates(os.DirFS(rr.dir))
	}
	if rr.cache == nil {
		return nil, fmt.Errorf("templates not initialized")
	}
	return rr.cache.Clone()
}

// page executes the base layout with name as its content block.
func (rr *renderer) page(w http.ResponseWriter, r *http.Request, name string, data any) {
	t, err := rr.templates()
	if err == nil {
		_, err = t.New("content").Parse(`{{template "` + name + `" .}}`)
	}
	if err != nil {
		rr.fail(w, r, "template parse error", err)
		return
	}
	rr.execute(w, r, t, "base", data)
}

// fragment executes a single named template, for htmx swaps.
func (rr *renderer) fragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	t, err := rr.templates()
	if err != nil {
		rr.fail(w, r, "template parse error", err)
		return
	}
	rr.execute(w, r, t, name, data)
}

func (rr *renderer) execute(w http.ResponseWriter, r *http.Request, t *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		rr.fail(w, r, "template exec error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (rr *renderer) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	observability.FromContext(r.Context()).Error(msg, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}

// markup renders n for injection into a template.
func markup(n g.Node) (template.HTML, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
