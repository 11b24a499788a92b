package sections

import "strings"

// Theme is a color and typography preset applied across sections. It never affects layout.
type Theme string

const (
	ThemeMinimal Theme = "minimal"
	ThemeBold    Theme = "bold"
	ThemeTrust   Theme = "trust"
)

// Themes lists the presets offered by the editor toolbar.
var Themes = []Theme{ThemeTrust, ThemeMinimal, ThemeBold}

// ParseTheme falls back to ThemeTrust.
func ParseTheme(raw string) Theme {
	switch t := Theme(strings.TrimSpace(raw)); t {
	case ThemeMinimal, ThemeBold, ThemeTrust:
		return t
	default:
		return ThemeTrust
	}
}

// Label is the toolbar caption.
func (t Theme) Label() string {
	switch t {
	case ThemeMinimal:
		return "Minimalista"
	case ThemeBold:
		return "Ousado"
	case ThemeTrust:
		return "Confiança"
	}
	return "Confiança"
}

// palette holds the class lists a theme contributes to every section.
type palette struct {
	Bg        string
	AltBg     string
	Title     string
	Text      string
	Muted     string
	Card      string
	Badge     string
	BtnMain   string
	BtnSecond string
	Check     string
	Divider   string
}

func (t Theme) palette() palette {
	switch t {
	case ThemeMinimal:
		return palette{
			Bg:        "bg-white",
			AltBg:     "bg-neutral-50",
			Title:     "text-neutral-900 font-serif",
			Text:      "text-neutral-500 font-light",
			Muted:     "text-neutral-400",
			Card:      "bg-white border border-neutral-100",
			Badge:     "bg-neutral-100 text-neutral-500",
			BtnMain:   "text-white rounded-full hover:opacity-90",
			BtnSecond: "border border-neutral-200 text-neutral-600 rounded-full hover:bg-neutral-50",
			Check:     "bg-neutral-200 text-neutral-600",
			Divider:   "border-neutral-100",
		}
	case ThemeBold:
		return palette{
			Bg:        "bg-neutral-900",
			AltBg:     "bg-neutral-950",
			Title:     "text-white font-black uppercase tracking-tighter",
			Text:      "text-neutral-400 font-medium",
			Muted:     "text-neutral-500",
			Card:      "bg-neutral-800 border border-neutral-700",
			Badge:     "bg-neutral-800 text-white uppercase font-bold tracking-widest",
			BtnMain:   "text-black font-bold uppercase tracking-wide hover:scale-105",
			BtnSecond: "border-2 border-neutral-700 text-white font-bold uppercase hover:bg-neutral-800",
			Check:     "bg-neutral-700 text-white",
			Divider:   "border-neutral-800",
		}
	default:
		return trustPalette
	}
}

var trustPalette = palette{
	Bg:        "bg-slate-50",
	AltBg:     "bg-white",
	Title:     "text-slate-900 font-bold",
	Text:      "text-slate-600",
	Muted:     "text-slate-400",
	Card:      "bg-white shadow-lg border border-slate-100",
	Badge:     "bg-blue-50 text-blue-700 font-semibold",
	BtnMain:   "text-white font-semibold rounded-lg shadow-lg hover:shadow-xl",
	BtnSecond: "text-slate-600 font-medium hover:text-slate-900",
	Check:     "bg-slate-200 text-slate-600",
	Divider:   "border-slate-200",
}

// overMedia switches the ink to white for sections drawn over an image or video.
func (p palette) overMedia() palette {
	p.Bg = "bg-neutral-900"
	p.AltBg = p.Bg
	p.Title = "text-white font-bold"
	p.Text = "text-neutral-200"
	p.Muted = "text-neutral-300"
	p.Card = "bg-white/10 backdrop-blur border border-white/20"
	p.Divider = "border-white/20"
	return p
}
