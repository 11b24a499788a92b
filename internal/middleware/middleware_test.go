package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func newSessions(t *testing.T) *Sessions {
	t.Helper()
	s, err := NewSessions(SessionConfig{HashKey: GenerateKey(32)})
	require.NoError(t, err)
	return s
}

func stack(t *testing.T, h http.Handler) http.Handler {
	t.Helper()
	return HTMX(newSessions(t).Middleware(CSRF(false)(h)))
}

func cookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestNewSessionsRequiresHashKey(t *testing.T) {
	t.Parallel()

	_, err := NewSessions(SessionConfig{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSessionIsIssuedAndReused(t *testing.T) {
	t.Parallel()

	s := newSessions(t)
	var seen []string
	h := s.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = append(seen, GetSession(r).ID)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	c := cookie(rec, defaultSessionCookie)
	require.NotNil(t, c)
	require.True(t, c.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Nil(t, cookie(rec, defaultSessionCookie))

	require.Len(t, seen, 2)
	require.NotEmpty(t, seen[0])
	require.Equal(t, seen[0], seen[1])
}

func TestTamperedSessionStartsOver(t *testing.T) {
	t.Parallel()

	s := newSessions(t)
	var id string
	h := s.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		id = GetSession(r).ID
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: defaultSessionCookie, Value: "forged"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.NotEmpty(t, id)
	require.NotNil(t, cookie(rec, defaultSessionCookie))
}

func TestCSRF(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := stack(t, ok)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	sess := cookie(rec, defaultSessionCookie)
	csrf := cookie(rec, CSRFCookieName)
	require.NotNil(t, sess)
	require.NotNil(t, csrf)
	require.False(t, csrf.HttpOnly)

	// header token
	req := httptest.NewRequest(http.MethodPost, "/editor/content", nil)
	req.AddCookie(sess)
	req.AddCookie(csrf)
	req.Header.Set(CSRFHeaderName, csrf.Value)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// form token
	form := url.Values{CSRFFormField: {csrf.Value}}
	req = httptest.NewRequest(http.MethodPost, "/dashboard/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(sess)
	req.AddCookie(csrf)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// missing token on an htmx request answers JSON
	req = httptest.NewRequest(http.MethodPost, "/editor/content", nil)
	req.Header.Set("HX-Request", "true")
	req.AddCookie(sess)
	req.AddCookie(csrf)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":"invalid CSRF token","status":403}`, rec.Body.String())
	require.Equal(t, "none", rec.Header().Get("HX-Reswap"))

	// cookie mismatch
	req = httptest.NewRequest(http.MethodPost, "/editor/content", nil)
	req.AddCookie(sess)
	req.Header.Set(CSRFHeaderName, csrf.Value)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAssetsEmbedded(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"editor.js": {Data: []byte("console.log(1)")}}
	h := Assets(fsys, "/assets", false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/editor.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	et := rec.Header().Get("ETag")
	require.True(t, strings.HasPrefix(et, `W/"`))
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")
	require.Equal(t, "console.log(1)", rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/assets/editor.js", nil)
	req.Header.Set("If-None-Match", et)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)
}

func TestAssetsLiveRehashes(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"app.css": {Data: []byte("a{}")}}
	h := Assets(fsys, "/assets", true)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/app.css", nil))
	require.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	first := rec.Header().Get("ETag")
	require.NotEmpty(t, first)

	fsys["app.css"] = &fstest.MapFile{Data: []byte("b{}")}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/app.css", nil))
	require.NotEqual(t, first, rec.Header().Get("ETag"))
	require.Equal(t, "b{}", rec.Body.String())
}

func TestWriteErrorPlain(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound, "projeto não encontrado")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "projeto não encontrado")
}
