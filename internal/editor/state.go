// Package editor holds the server-side state of one page being edited: the global page
// configuration, one configuration per section and the content of every section.
package editor

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oliveiraclick/criadorLP/internal/background"
	"github.com/oliveiraclick/criadorLP/internal/content"
	"github.com/oliveiraclick/criadorLP/internal/sections"
)

var (
	ErrUnknownSection  = errors.New("editor: unknown section")
	ErrItemNotFound    = errors.New("editor: item not found")
	ErrIndexOutOfRange = errors.New("editor: index out of range")
	ErrUnknownField    = errors.New("editor: unknown field")
	ErrNoSession       = errors.New("editor: session not found")
)

// Defaults applied when the navigation config leaves a key out.
const (
	DefaultBusinessName = "Sua Empresa"
	DefaultIndustry     = "Serviços Gerais"
	DefaultPrimary      = "#2563eb"
	DefaultSecondary    = "#1e293b"
	// LocalLogo means the logo bytes live in the store's logo slot.
	LocalLogo = "local"
)

// now is swapped in tests.
var now = time.Now

// SectionKey names one of the six sections.
type SectionKey = sections.Key

// PageType is the kind of page chosen in the wizard.
type PageType string

const (
	PageSales         PageType = "sales"
	PageCapture       PageType = "capture"
	PageInstitutional PageType = "institutional"
	PageLaunch        PageType = "launch"
	PageBio           PageType = "bio"
)

// PageTypes lists the wizard options.
var PageTypes = []PageType{PageSales, PageCapture, PageInstitutional, PageLaunch, PageBio}

// ParsePageType falls back to PageSales.
func ParsePageType(raw string) PageType {
	switch p := PageType(strings.TrimSpace(raw)); p {
	case PageSales, PageCapture, PageInstitutional, PageLaunch, PageBio:
		return p
	default:
		return PageSales
	}
}

// Label is the wizard caption.
func (p PageType) Label() string {
	switch p {
	case PageCapture:
		return "Captura de Leads"
	case PageInstitutional:
		return "Institucional"
	case PageLaunch:
		return "Lançamento"
	case PageBio:
		return "Link na Bio"
	case PageSales:
	}
	return "Página de Vendas"
}

// GlobalConfig is the page-wide configuration.
type GlobalConfig struct {
	BusinessName   string           `json:"businessName"`
	Industry       content.Industry `json:"industry"`
	Tone           content.Tone     `json:"tone"`
	Style          string           `json:"style"`
	Theme          sections.Theme   `json:"theme"`
	PrimaryColor   string           `json:"primaryColor"`
	SecondaryColor string           `json:"secondaryColor"`
	// Logo is an external URL or LocalLogo.
	Logo     string   `json:"logo,omitempty"`
	PageType PageType `json:"type"`
}

// SectionConfig is the layout and background of one section.
type SectionConfig struct {
	Layout string `json:"layout"`
	background.Config
}

// State is one page being edited. It is not safe for concurrent use; Registry serializes
// access per session.
type State struct {
	Global       GlobalConfig
	Sections     map[SectionKey]*SectionConfig
	Hero         content.Hero
	Features     []content.Feature
	Pricing      []content.Plan
	Testimonials []content.Testimonial
	FAQ          []content.FAQItem
	Footer       content.Footer
	SEO          content.SEO
	Editing      bool
	// ProjectID is the stored project this state was opened from; zero until first saved.
	ProjectID int64
}

// New builds a state from the navigation-encoded configuration. Absent or unknown values
// fall back to defaults.
func New(values url.Values) *State {
	get := func(key, def string) string {
		if v := strings.TrimSpace(values.Get(key)); v != "" {
			return v
		}
		return def
	}

	style := get("style", "")
	layout, theme := ForStyle(style)
	if raw := values.Get("layout"); strings.TrimSpace(raw) != "" {
		layout = sections.ParseHeroVariant(raw)
	}
	if raw := values.Get("theme"); strings.TrimSpace(raw) != "" {
		theme = sections.ParseTheme(raw)
	}

	g := GlobalConfig{
		BusinessName:   get("name", DefaultBusinessName),
		Industry:       content.ParseIndustry(get("industry", DefaultIndustry)),
		Tone:           content.ParseTone(get("tone", string(content.ToneProfessional))),
		Style:          style,
		Theme:          theme,
		PrimaryColor:   background.NormalizeHex(get("color", DefaultPrimary), DefaultPrimary),
		SecondaryColor: background.NormalizeHex(get("secondary", DefaultSecondary), DefaultSecondary),
		Logo:           get("logo", ""),
		PageType:       ParsePageType(get("type", string(PageSales))),
	}

	// bgOp and bgColor seed every section's overlay; image and gradient only the hero.
	overlayOpacity := atoiDefault(values.Get("bgOp"), background.DefaultOverlayOpacity)
	overlayColor := get("bgColor", background.DefaultOverlayColor)

	s := &State{
		Global:   g,
		Sections: make(map[SectionKey]*SectionConfig, len(sections.Keys)),
	}
	for _, k := range sections.Keys {
		cfg := defaultSection(k)
		cfg.OverlayOpacity = overlayOpacity
		cfg.OverlayColor = overlayColor
		if k == sections.KeyHero {
			cfg.Layout = string(layout)
			cfg.Image = get("bgImage", "")
			cfg.Gradient = background.ParseGradient(get("bgGrad", string(background.GradientNone)))
		}
		cfg.normalize(k)
		s.Sections[k] = &cfg
	}
	s.resetContent()
	return s
}

func (s *State) resetContent() {
	g := s.Global
	s.Hero = content.HeroFor(g.Industry, g.Tone, g.BusinessName)
	s.Features = content.FeaturesFor(g.Industry)
	s.Pricing = content.PricingFor(g.Industry)
	s.Testimonials = content.TestimonialsFor(g.Industry)
	s.FAQ = content.FAQFor(g.Industry)
	s.Footer = content.FooterFor(g.BusinessName, now().Year())
	s.SEO = content.SEOFor(g.BusinessName, g.Industry)
}

var defaultLayouts = map[SectionKey]string{
	sections.KeyHero:         string(sections.HeroSplitRight),
	sections.KeyFeatures:     string(sections.FeaturesCentered),
	sections.KeyPricing:      string(sections.PricingCentered),
	sections.KeyTestimonials: string(sections.TestimonialsGrid),
	sections.KeyFAQ:          string(sections.FAQAccordion),
	sections.KeyFooter:       string(sections.FooterMultiColumn),
}

func defaultSection(k SectionKey) SectionConfig {
	return SectionConfig{Layout: defaultLayouts[k], Config: background.Defaults()}
}

// normalize parses the layout for k, clamps opacities, canonicalizes the overlay color
// and keeps image and video exclusive, video first.
func (c *SectionConfig) normalize(k SectionKey) {
	c.Layout = sections.NormalizeLayout(k, c.Layout)
	c.OverlayOpacity = background.ClampOpacity(c.OverlayOpacity)
	c.TextureOpacity = background.ClampOpacity(c.TextureOpacity)
	c.OverlayColor = background.NormalizeHex(c.OverlayColor, background.DefaultOverlayColor)
	c.Gradient = background.ParseGradient(string(c.Gradient))
	c.Texture = background.ParseTexture(string(c.Texture))
	c.Image = strings.TrimSpace(c.Image)
	c.Video = strings.TrimSpace(c.Video)
	if c.Video != "" {
		c.Image = ""
	}
}

// Section returns a copy of the configuration of k.
func (s *State) Section(k SectionKey) (SectionConfig, bool) {
	c, ok := s.Sections[k]
	if !ok || c == nil {
		return defaultSection(k), false
	}
	return *c, true
}

// LogoSrc resolves the logo reference: LocalLogo reads from stored, anything else is
// used as is.
func (s *State) LogoSrc(stored string) string {
	if s.Global.Logo == LocalLogo {
		return stored
	}
	return s.Global.Logo
}

// PageModel feeds the section renderers. storedLogo is the data URI kept in the logo slot.
func (s *State) PageModel(storedLogo string) sections.PageModel {
	sec := func(k SectionKey) SectionConfig {
		c, _ := s.Section(k)
		return c
	}
	hero, features, pricing := sec(sections.KeyHero), sec(sections.KeyFeatures), sec(sections.KeyPricing)
	testimonials, faq, footer := sec(sections.KeyTestimonials), sec(sections.KeyFAQ), sec(sections.KeyFooter)
	return sections.PageModel{
		Theme: s.Global.Theme,
		Options: sections.Options{
			Editing:      s.Editing,
			Primary:      s.Global.PrimaryColor,
			Secondary:    s.Global.SecondaryColor,
			BusinessName: s.Global.BusinessName,
			LogoSrc:      s.LogoSrc(storedLogo),
		},
		Hero: sections.Block[sections.HeroVariant, content.Hero]{
			Variant: sections.ParseHeroVariant(hero.Layout), Content: s.Hero, Background: hero.Config,
		},
		Features: sections.Block[sections.FeaturesVariant, []content.Feature]{
			Variant: sections.ParseFeaturesVariant(features.Layout), Content: s.Features, Background: features.Config,
		},
		Pricing: sections.Block[sections.PricingVariant, []content.Plan]{
			Variant: sections.ParsePricingVariant(pricing.Layout), Content: s.Pricing, Background: pricing.Config,
		},
		Testimonials: sections.Block[sections.TestimonialsVariant, []content.Testimonial]{
			Variant: sections.ParseTestimonialsVariant(testimonials.Layout), Content: s.Testimonials, Background: testimonials.Config,
		},
		FAQ: sections.Block[sections.FAQVariant, []content.FAQItem]{
			Variant: sections.ParseFAQVariant(faq.Layout), Content: s.FAQ, Background: faq.Config,
		},
		Footer: sections.Block[sections.FooterVariant, content.Footer]{
			Variant: sections.ParseFooterVariant(footer.Layout), Content: s.Footer, Background: footer.Config,
		},
	}
}

// Query re-encodes the navigation configuration.
func (s *State) Query() url.Values {
	hero, _ := s.Section(sections.KeyHero)
	v := url.Values{}
	v.Set("name", s.Global.BusinessName)
	if s.Global.Style != "" {
		v.Set("style", s.Global.Style)
	}
	v.Set("industry", string(s.Global.Industry))
	v.Set("type", string(s.Global.PageType))
	if s.Global.Logo != "" {
		v.Set("logo", s.Global.Logo)
	}
	v.Set("color", s.Global.PrimaryColor)
	v.Set("secondary", s.Global.SecondaryColor)
	v.Set("tone", string(s.Global.Tone))
	v.Set("layout", hero.Layout)
	v.Set("theme", string(s.Global.Theme))
	if hero.Image != "" {
		v.Set("bgImage", hero.Image)
	}
	v.Set("bgOp", strconv.Itoa(hero.OverlayOpacity))
	v.Set("bgColor", hero.OverlayColor)
	v.Set("bgGrad", string(hero.Gradient))
	return v
}

func atoiDefault(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}
