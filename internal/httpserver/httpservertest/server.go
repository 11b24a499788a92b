// Package httpservertest runs the full HTTP stack against an in-memory store for tests.
package httpservertest

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/oliveiraclick/criadorLP/internal/editor"
	"github.com/oliveiraclick/criadorLP/internal/httpserver"
	mw "github.com/oliveiraclick/criadorLP/internal/middleware"
	"github.com/oliveiraclick/criadorLP/internal/projects"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithStore overrides the project store.
func WithStore(store projects.Store) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Store = store
	}
}

// WithRegistry shares an editor registry with the test.
func WithRegistry(reg *editor.Registry) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Registry = reg
	}
}

// WithConfig applies an arbitrary change to the configuration.
func WithConfig(fn func(*httpserver.Config)) ServerOption {
	return func(cfg *httpserver.Config) {
		fn(cfg)
	}
}

// NewServer constructs an httptest server running the full HTTP stack with an in-memory store.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:        ":0",
		Store:          projects.NewMemoryStore(),
		SessionHashKey: mw.GenerateKey(32),
		Intn:           func(int) int { return 0 },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

// Client returns a client that keeps cookies and does not follow redirects.
func Client(t testing.TB) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// CSRFToken returns the double-submit token the client holds for base.
func CSRFToken(t testing.TB, c *http.Client, base string) string {
	t.Helper()

	u, err := url.Parse(base)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	for _, ck := range c.Jar.Cookies(u) {
		if ck.Name == mw.CSRFCookieName {
			return ck.Value
		}
	}
	t.Fatalf("no %s cookie for %s", mw.CSRFCookieName, base)
	return ""
}
