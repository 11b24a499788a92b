package httpserver

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oliveiraclick/criadorLP/internal/editor"
	"github.com/oliveiraclick/criadorLP/internal/export"
	"github.com/oliveiraclick/criadorLP/internal/format"
	mw "github.com/oliveiraclick/criadorLP/internal/middleware"
	"github.com/oliveiraclick/criadorLP/internal/platform/observability"
	"github.com/oliveiraclick/criadorLP/internal/projects"
	"github.com/oliveiraclick/criadorLP/internal/sections"
)

// preview starts a new editor state from the navigation config in the query string.
func (s *server) preview(w http.ResponseWriter, r *http.Request) {
	st := editor.New(r.URL.Query())
	st.Editing = true
	s.registry.Put(mw.GetSession(r).ID, st)
	http.Redirect(w, r, "/editor", http.StatusSeeOther)
}

func (s *server) editorPage(w http.ResponseWriter, r *http.Request) {
	st, ok := s.registry.Get(mw.GetSession(r).ID)
	if !ok {
		http.Redirect(w, r, "/dashboard/new", http.StatusFound)
		return
	}
	s.renderEditor(w, r, st)
}

func (s *server) renderEditor(w http.ResponseWriter, r *http.Request, st *editor.State) {
	page, err := markup(sections.Page(st.PageModel(s.logo(r))))
	if err != nil {
		fail(w, r, err)
		return
	}
	vm := newPageData(r, st.Global.BusinessName)
	vm.Editor = buildEditorView(st, page)
	s.views.page(w, r, "editor", vm)
}

// pageFragment re-renders the <main> region for htmx swaps.
func (s *server) pageFragment(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(*editor.State) error { return nil })
}

func (s *server) toggleMode(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(st *editor.State) error {
		st.Editing = !st.Editing
		return nil
	})
}

// updateGlobal applies the fields of the side panel that differ from the current state and
// answers with the whole editor, since a style change also moves theme and layout.
func (s *server) updateGlobal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		fail(w, r, fmt.Errorf("%w: %v", errBadInput, err))
		return
	}
	sid := mw.GetSession(r).ID
	err := s.registry.Update(sid, func(st *editor.State) error {
		gc := st.Global
		changed := formDiff(r)
		st.UpdateGlobalConfig(editor.GlobalPatch{
			BusinessName:   changed("name", gc.BusinessName),
			Industry:       changed("industry", string(gc.Industry)),
			Tone:           changed("tone", string(gc.Tone)),
			Style:          changed("style", gc.Style),
			Theme:          changed("theme", string(gc.Theme)),
			PrimaryColor:   changed("color", gc.PrimaryColor),
			SecondaryColor: changed("secondary", gc.SecondaryColor),
			Logo:           changed("logo", gc.Logo),
			PageType:       changed("type", string(gc.PageType)),
		})
		return nil
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	st, ok := s.registry.Get(sid)
	if !ok {
		fail(w, r, editor.ErrNoSession)
		return
	}
	s.renderEditor(w, r, st)
}

// updateSection handles the per-section toolbar: layout, background and "Variar".
func (s *server) updateSection(w http.ResponseWriter, r *http.Request) {
	k, ok := sections.ParseKey(chi.URLParam(r, "key"))
	if !ok {
		fail(w, r, fmt.Errorf("%w: %q", editor.ErrUnknownSection, chi.URLParam(r, "key")))
		return
	}
	if err := r.ParseForm(); err != nil {
		fail(w, r, fmt.Errorf("%w: %v", errBadInput, err))
		return
	}
	s.mutate(w, r, func(st *editor.State) error {
		if k == sections.KeyHero && r.PostForm.Get("shuffle") == "1" {
			st.ShuffleHeroLayout(s.intn)
			return nil
		}
		cur, _ := st.Section(k)
		changed := formDiff(r)
		overlay, err := formInt(r, "overlayOpacity", cur.OverlayOpacity)
		if err != nil {
			return err
		}
		texture, err := formInt(r, "textureOpacity", cur.TextureOpacity)
		if err != nil {
			return err
		}
		return st.UpdateSectionConfig(k, editor.SectionPatch{
			Layout:         changed("layout", cur.Layout),
			Image:          changed("bgImage", cur.Image),
			Video:          changed("bgVideo", cur.Video),
			OverlayColor:   changed("overlayColor", cur.OverlayColor),
			OverlayOpacity: overlay,
			Gradient:       changed("gradient", string(cur.Gradient)),
			Texture:        changed("texture", string(cur.Texture)),
			TextureOpacity: texture,
		})
	})
}

// updateContent commits one in-place text edit.
func (s *server) updateContent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		fail(w, r, fmt.Errorf("%w: %v", errBadInput, err))
		return
	}
	field := strings.TrimSpace(r.PostForm.Get("field"))
	if field == "" {
		fail(w, r, fmt.Errorf("%w: field is required", errBadInput))
		return
	}
	value := r.PostForm.Get("value")
	err := s.registry.Update(mw.GetSession(r).ID, func(st *editor.State) error {
		return st.ApplyField(field, value)
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) updateSEO(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		fail(w, r, fmt.Errorf("%w: %v", errBadInput, err))
		return
	}
	err := s.registry.Update(mw.GetSession(r).ID, func(st *editor.State) error {
		for _, field := range []string{"title", "description", "image"} {
			if _, ok := r.PostForm[field]; !ok {
				continue
			}
			if err := st.UpdateSEO(field, strings.TrimSpace(r.PostForm.Get(field))); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// save upserts the session's state as a project. The first save assigns the id.
func (s *server) save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := mw.GetSession(r).ID
	st, ok := s.registry.Get(sid)
	if !ok {
		fail(w, r, editor.ErrNoSession)
		return
	}
	data, err := st.MarshalData()
	if err != nil {
		fail(w, r, err)
		return
	}
	p := projects.Project{
		ID:       st.ProjectID,
		Name:     st.Global.BusinessName,
		Industry: st.Global.Industry.Label(),
		Style:    st.Global.Style,
		Data:     data,
	}
	if p.ID != 0 {
		if prev, err := s.store.Get(ctx, p.ID); err == nil {
			p.Status = prev.Status
		}
	}
	saved, err := s.store.Save(ctx, p)
	if err != nil {
		fail(w, r, err)
		return
	}
	_ = s.registry.Update(sid, func(st *editor.State) error {
		st.ProjectID = saved.ID
		return nil
	})
	observability.FromContext(ctx).Info("project saved", zap.Int64("project_id", saved.ID))

	if !mw.IsHTMX(ctx) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	s.views.fragment(w, r, "frag_save_status", saveStatusView{
		ID:    saved.ID,
		Saved: format.Relative(saved.LastModified, s.now()),
	})
}

// export packages the page and sends the archive as a download.
func (s *server) export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st, ok := s.registry.Get(mw.GetSession(r).ID)
	if !ok {
		fail(w, r, editor.ErrNoSession)
		return
	}
	logo := s.logo(r)
	st.Editing = true
	var buf bytes.Buffer
	if err := sections.Page(st.PageModel(logo)).Render(&buf); err != nil {
		fail(w, r, err)
		return
	}
	archive, err := s.packager.Package(ctx, export.Input{
		Markup:       buf.Bytes(),
		BusinessName: st.Global.BusinessName,
		SEO:          st.Meta(logo),
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	if archive.Key != "" {
		w.Header().Set("X-Export-Key", archive.Key)
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(archive.Data)))
	_, _ = w.Write(archive.Data)
}

// mutate runs fn on the session state and answers with the re-rendered page region. The
// render happens under the registry lock so it sees a consistent state.
func (s *server) mutate(w http.ResponseWriter, r *http.Request, fn func(*editor.State) error) {
	logo := s.logo(r)
	var buf bytes.Buffer
	err := s.registry.Update(mw.GetSession(r).ID, func(st *editor.State) error {
		if err := fn(st); err != nil {
			return err
		}
		return sections.Page(st.PageModel(logo)).Render(&buf)
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// logo reads the stored logo slot. A read failure only hides the logo.
func (s *server) logo(r *http.Request) string {
	dataURI, err := s.store.LoadLogo(r.Context())
	if err != nil {
		observability.FromContext(r.Context()).Warn("load logo", zap.Error(err))
		return ""
	}
	return dataURI
}

// formDiff returns a lookup yielding the trimmed form value for key when it was sent and
// differs from cur, and nil otherwise.
func formDiff(r *http.Request) func(key, cur string) *string {
	return func(key, cur string) *string {
		if _, ok := r.PostForm[key]; !ok {
			return nil
		}
		v := strings.TrimSpace(r.PostForm.Get(key))
		if v == cur {
			return nil
		}
		return &v
	}
}

func formInt(r *http.Request, key string, cur int) (*int, error) {
	if _, ok := r.PostForm[key]; !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(r.PostForm.Get(key)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errBadInput, key)
	}
	if n == cur {
		return nil, nil
	}
	return &n, nil
}
