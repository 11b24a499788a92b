package middleware

import (
	"context"
	"net/http"
)

type htmxKey struct{}

// HTMX flags requests sent by htmx so handlers can answer with a fragment instead of a page.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("HX-Request") != "true" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Add("Vary", "HX-Request")
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), htmxKey{}, true)))
	})
}

// IsHTMX reports whether the HTMX middleware flagged the request.
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(htmxKey{}).(bool)
	return v
}

// NoStore disables caching for editor pages and fragments.
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
