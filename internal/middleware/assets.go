package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// Assets serves the editor's static files below prefix with weak content ETags. Embedded
// assets are hashed once and cached for a week; live assets (dev mode, read from disk) are
// hashed on every request and must be revalidated.
func Assets(fsys fs.FS, prefix string, live bool) http.Handler {
	var etags map[string]string
	if !live {
		etags = hashAll(fsys)
	}
	files := http.StripPrefix(prefix, http.FileServer(http.FS(fsys)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(strings.TrimPrefix(r.URL.Path, prefix)), "/")

		var etag string
		if live {
			w.Header().Set("Cache-Control", "no-cache")
			etag, _ = hashFile(fsys, name)
		} else {
			w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")
			etag = etags[name]
		}
		w.Header().Set("Vary", "Accept-Encoding")

		if etag != "" {
			w.Header().Set("ETag", etag)
			if r.Header.Get("If-None-Match") == etag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}

func hashAll(fsys fs.FS) map[string]string {
	out := map[string]string{}
	_ = fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if etag, err := hashFile(fsys, name); err == nil {
			out[name] = etag
		}
		return nil
	})
	return out
}

func hashFile(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return `W/"` + hex.EncodeToString(sum[:12]) + `"`, nil
}
