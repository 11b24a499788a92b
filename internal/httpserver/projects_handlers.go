package httpserver

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oliveiraclick/criadorLP/internal/editor"
	mw "github.com/oliveiraclick/criadorLP/internal/middleware"
	"github.com/oliveiraclick/criadorLP/internal/platform/observability"
)

const (
	maxUploadBytes = 4 << 20
	maxLogoBytes   = 1 << 20
)

// wizardKeys are the navigation keys the new-project form submits.
var wizardKeys = []string{"name", "industry", "tone", "style", "type", "color", "secondary", "logo"}

func (s *server) dashboard(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.Load(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	vm := newPageData(r, "Meus projetos")
	vm.Dashboard = buildDashboardView(list, s.now())
	s.views.page(w, r, "dashboard", vm)
}

func (s *server) wizard(w http.ResponseWriter, r *http.Request) {
	vm := newPageData(r, "Nova landing page")
	vm.Wizard = buildWizardView()
	s.views.page(w, r, "wizard", vm)
}

// wizardSubmit turns the form into navigation config and opens the preview. An uploaded
// logo goes to the logo slot and the config refers to it as "local".
func (s *server) wizardSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		fail(w, r, fmt.Errorf("%w: %v", errBadInput, err))
		return
	}

	q := url.Values{}
	for _, key := range wizardKeys {
		if v := strings.TrimSpace(r.FormValue(key)); v != "" {
			q.Set(key, v)
		}
	}

	dataURI, err := readLogo(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	if dataURI != "" {
		if err := s.store.SaveLogo(r.Context(), dataURI); err != nil {
			fail(w, r, err)
			return
		}
		q.Set("logo", editor.LocalLogo)
	}

	http.Redirect(w, r, "/preview?"+q.Encode(), http.StatusSeeOther)
}

// readLogo returns the uploaded logo as a data URI, or "" when none was sent.
func readLogo(r *http.Request) (string, error) {
	f, _, err := r.FormFile("logoFile")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: logo: %v", errBadInput, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxLogoBytes+1))
	if err != nil {
		return "", fmt.Errorf("read logo: %w", err)
	}
	if len(data) == 0 {
		return "", nil
	}
	if len(data) > maxLogoBytes {
		return "", fmt.Errorf("%w: logo maior que 1 MB", errBadInput)
	}
	ctype := http.DetectContentType(data)
	if !strings.HasPrefix(ctype, "image/") {
		return "", fmt.Errorf("%w: logo deve ser uma imagem", errBadInput)
	}
	return "data:" + ctype + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// openProject restores a stored project into this session's editor.
func (s *server) openProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	p, err := s.store.Get(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}

	st, err := editor.Open(p.Data, url.Values{"name": {p.Name}, "industry": {p.Industry}, "style": {p.Style}})
	if err != nil {
		observability.FromContext(r.Context()).Warn("project data unreadable, starting from defaults",
			zap.Int64("project_id", p.ID), zap.Error(err))
	}
	st.ProjectID = p.ID
	st.Editing = true
	s.registry.Put(mw.GetSession(r).ID, st)

	http.Redirect(w, r, "/editor", http.StatusSeeOther)
}

func (s *server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}
	if mw.IsHTMX(r.Context()) {
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func projectID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: project id %q", errBadInput, raw)
	}
	return id, nil
}
