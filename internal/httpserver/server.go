package httpserver

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/oliveiraclick/criadorLP/internal/editor"
	"github.com/oliveiraclick/criadorLP/internal/export"
	mw "github.com/oliveiraclick/criadorLP/internal/middleware"
	"github.com/oliveiraclick/criadorLP/internal/platform/observability"
	"github.com/oliveiraclick/criadorLP/internal/projects"
	"github.com/oliveiraclick/criadorLP/public"
)

// Config holds runtime options for the HTTP server.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	Logger   *zap.Logger
	Metrics  *observability.Metrics
	// Tracer receives one server span per request; nil uses the global provider.
	Tracer   trace.TracerProvider
	Store    projects.Store
	Registry *editor.Registry
	Packager *export.Packager

	SessionHashKey  []byte
	SessionBlockKey []byte
	SecureCookies   bool

	// Dev reparses templates from TemplatesDir on every request and serves assets from
	// PublicDir/assets.
	Dev          bool
	TemplatesDir string
	PublicDir    string

	// Intn picks the next hero layout for "Variar".
	Intn func(n int) int
	Now  func() time.Time
}

type server struct {
	store    projects.Store
	registry *editor.Registry
	packager *export.Packager
	views    *renderer
	intn     func(int) int
	now      func() time.Time
}

// New constructs the HTTP server with the middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("httpserver: store is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Registry == nil {
		cfg.Registry = editor.NewRegistry()
	}
	if cfg.Packager == nil {
		cfg.Packager = export.New(export.WithLogger(cfg.Logger))
	}
	if cfg.Intn == nil {
		cfg.Intn = rand.IntN
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if len(cfg.SessionHashKey) == 0 {
		cfg.SessionHashKey = mw.GenerateKey(32)
	}

	views, err := newRenderer(cfg.Dev, cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}
	sessions, err := mw.NewSessions(mw.SessionConfig{
		HashKey:  cfg.SessionHashKey,
		BlockKey: cfg.SessionBlockKey,
		Secure:   cfg.SecureCookies,
		Now:      cfg.Now,
	})
	if err != nil {
		return nil, err
	}
	assets, err := public.AssetsFS()
	if err != nil {
		return nil, fmt.Errorf("embed assets: %w", err)
	}
	liveAssets := cfg.Dev && cfg.PublicDir != ""
	if liveAssets {
		assets = os.DirFS(filepath.Join(cfg.PublicDir, "assets"))
	}

	s := &server{
		store:    cfg.Store,
		registry: cfg.Registry,
		packager: cfg.Packager,
		views:    views,
		intn:     cfg.Intn,
		now:      cfg.Now,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(observability.Trace(cfg.Tracer))
	r.Use(observability.InjectLogger(cfg.Logger))
	r.Use(observability.RequestLogger)
	r.Use(observability.Recovery(cfg.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}
	r.Handle("/assets/*", mw.Assets(assets, "/assets", liveAssets))

	r.Group(func(r chi.Router) {
		r.Use(mw.HTMX)
		r.Use(sessions.Middleware)
		r.Use(mw.CSRF(cfg.SecureCookies))
		s.mountRoutes(r)
	})

	return &http.Server{
		Addr:              cfg.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       orDuration(cfg.ReadTimeout, 15*time.Second),
		WriteTimeout:      orDuration(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:       orDuration(cfg.IdleTimeout, 120*time.Second),
	}, nil
}

func (s *server) mountRoutes(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})

	r.Get("/dashboard", s.dashboard)
	r.Get("/dashboard/new", s.wizard)
	r.Post("/dashboard/new", s.wizardSubmit)

	r.Route("/projects/{id}", func(r chi.Router) {
		r.Get("/", s.openProject)
		r.Post("/delete", s.deleteProject)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.NoStore)
		r.Get("/preview", s.preview)
		r.Route("/editor", func(r chi.Router) {
			r.Get("/", s.editorPage)
			r.Get("/page", s.pageFragment)
			r.Post("/mode", s.toggleMode)
			r.Post("/global", s.updateGlobal)
			r.Post("/sections/{key}", s.updateSection)
			r.Post("/content", s.updateContent)
			r.Post("/seo", s.updateSEO)
			r.Post("/save", s.save)
			r.Get("/export", s.export)
		})
	})
}

func orDuration(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
