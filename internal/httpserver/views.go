package httpserver

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/oliveiraclick/criadorLP/internal/content"
	"github.com/oliveiraclick/criadorLP/internal/editor"
	"github.com/oliveiraclick/criadorLP/internal/format"
	mw "github.com/oliveiraclick/criadorLP/internal/middleware"
	"github.com/oliveiraclick/criadorLP/internal/projects"
	"github.com/oliveiraclick/criadorLP/internal/sections"
)

// PageData is handed to the base layout. Exactly one of the view pointers is set.
type PageData struct {
	Title     string
	Path      string
	CSRFToken string

	Dashboard *DashboardView
	Wizard    *WizardView
	Editor    *EditorView
}

// Option is one entry of a select or radio group.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// DashboardView lists the stored projects, newest first.
type DashboardView struct {
	Count    int
	Projects []ProjectRow
}

type ProjectRow struct {
	ID          int64
	Name        string
	Industry    string
	Style       string
	Status      string
	Modified    string
	ModifiedISO string
	OpenURL     string
	DeleteURL   string
}

// WizardView feeds the new-project form.
type WizardView struct {
	DefaultName string
	Industries  []Option
	Tones       []Option
	Styles      []Option
	PageTypes   []Option
	Color       string
	Secondary   string
}

// EditorView carries the side panel values and the pre-rendered page.
type EditorView struct {
	ProjectID  int64
	Name       string
	Logo       string
	Color      string
	Secondary  string
	Industries []Option
	Tones      []Option
	Styles     []Option
	Themes     []Option
	PageTypes  []Option
	SEO        content.SEO
	ShareURL   string
	Page       template.HTML
}

type saveStatusView struct {
	ID    int64
	Saved string
}

func newPageData(r *http.Request, title string) PageData {
	return PageData{
		Title:     title,
		Path:      r.URL.Path,
		CSRFToken: mw.GetSession(r).CSRFToken,
	}
}

func buildDashboardView(list []projects.Project, now time.Time) *DashboardView {
	view := &DashboardView{Count: len(list), Projects: make([]ProjectRow, 0, len(list))}
	for _, p := range list {
		id := strconv.FormatInt(p.ID, 10)
		view.Projects = append(view.Projects, ProjectRow{
			ID:          p.ID,
			Name:        p.Name,
			Industry:    p.Industry,
			Style:       p.Style,
			Status:      p.Status,
			Modified:    format.Relative(p.LastModified, now),
			ModifiedISO: p.LastModified.UTC().Format(time.RFC3339),
			OpenURL:     "/projects/" + id,
			DeleteURL:   "/projects/" + id + "/delete",
		})
	}
	return view
}

func buildWizardView() *WizardView {
	return &WizardView{
		DefaultName: editor.DefaultBusinessName,
		Industries:  industryOptions(content.IndustryServices),
		Tones:       toneOptions(content.ToneProfessional),
		Styles:      styleOptions(editor.StyleCorporate),
		PageTypes:   pageTypeOptions(editor.PageSales),
		Color:       editor.DefaultPrimary,
		Secondary:   editor.DefaultSecondary,
	}
}

func buildEditorView(st *editor.State, page template.HTML) *EditorView {
	gc := st.Global
	return &EditorView{
		ProjectID:  st.ProjectID,
		Name:       gc.BusinessName,
		Logo:       gc.Logo,
		Color:      gc.PrimaryColor,
		Secondary:  gc.SecondaryColor,
		Industries: industryOptions(gc.Industry),
		Tones:      toneOptions(gc.Tone),
		Styles:     styleOptions(gc.Style),
		Themes:     themeOptions(gc.Theme),
		PageTypes:  pageTypeOptions(gc.PageType),
		SEO:        st.SEO,
		ShareURL:   "/preview?" + st.Query().Encode(),
		Page:       page,
	}
}

func industryOptions(selected content.Industry) []Option {
	out := make([]Option, 0, len(content.Industries)+1)
	if selected == content.IndustryDefault {
		out = append(out, Option{Value: string(content.IndustryDefault), Label: selected.Label(), Selected: true})
	}
	for _, ind := range content.Industries {
		out = append(out, Option{Value: string(ind), Label: ind.Label(), Selected: ind == selected})
	}
	return out
}

func toneOptions(selected content.Tone) []Option {
	out := make([]Option, 0, len(content.Tones))
	for _, t := range content.Tones {
		out = append(out, Option{Value: string(t), Label: string(t), Selected: t == selected})
	}
	return out
}

func styleOptions(selected string) []Option {
	out := make([]Option, 0, len(editor.Styles)+1)
	if selected == "" {
		out = append(out, Option{Value: "", Label: "Personalizado", Selected: true})
	}
	for _, s := range editor.Styles {
		out = append(out, Option{Value: s, Label: s, Selected: s == selected})
	}
	return out
}

func themeOptions(selected sections.Theme) []Option {
	out := make([]Option, 0, len(sections.Themes))
	for _, t := range sections.Themes {
		out = append(out, Option{Value: string(t), Label: t.Label(), Selected: t == selected})
	}
	return out
}

func pageTypeOptions(selected editor.PageType) []Option {
	out := make([]Option, 0, len(editor.PageTypes))
	for _, p := range editor.PageTypes {
		out = append(out, Option{Value: string(p), Label: p.Label(), Selected: p == selected})
	}
	return out
}
