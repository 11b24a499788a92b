// Package content resolves the default copy used to seed every page section.
//
// All lookups are pure: an unknown industry or tone never fails, it resolves to the
// generic bundle.
package content

import (
	"strings"

	"github.com/oliveiraclick/criadorLP/internal/format"
)

// Industry is the closed set of business categories the catalog knows about.
type Industry string

const (
	IndustryDefault   Industry = "default"
	IndustryTech      Industry = "tech"
	IndustryHealth    Industry = "health"
	IndustryFinance   Industry = "finance"
	IndustryEducation Industry = "education"
	IndustryMarketing Industry = "marketing"
	IndustryMusic     Industry = "music"
	IndustryDigital   Industry = "digital"
	IndustryServices  Industry = "services"
)

// Industries lists the recognized industries in wizard order.
var Industries = []Industry{
	IndustryTech,
	IndustryHealth,
	IndustryFinance,
	IndustryEducation,
	IndustryMarketing,
	IndustryMusic,
	IndustryDigital,
	IndustryServices,
}

var industryLabels = map[Industry]string{
	IndustryDefault:   "Outro",
	IndustryTech:      "Tecnologia / SaaS",
	IndustryHealth:    "Saúde / Clínica",
	IndustryFinance:   "Finanças / Contabilidade",
	IndustryEducation: "Educação / Cursos",
	IndustryMarketing: "Marketing / Agência",
	IndustryMusic:     "Música / Artista",
	IndustryDigital:   "E-book / Infoproduto",
	IndustryServices:  "Serviços Gerais",
}

// Label returns the wizard label for the industry.
func (i Industry) Label() string {
	if l, ok := industryLabels[i]; ok {
		return l
	}
	return industryLabels[IndustryDefault]
}

// ParseIndustry accepts either the tag ("health") or the wizard label ("Saúde / Clínica"),
// ignoring case and accents.
func ParseIndustry(raw string) Industry {
	key := format.Fold(raw)
	if key == "" {
		return IndustryDefault
	}
	for _, ind := range Industries {
		if key == string(ind) || key == format.Fold(ind.Label()) {
			return ind
		}
	}
	return IndustryDefault
}

// Tone is the voice used by the hero copy.
type Tone string

const (
	ToneProfessional Tone = "Profissional & Sério"
	ToneFriendly     Tone = "Amigável & Acolhedor"
	ToneUrgent       Tone = "Urgente & Promocional"
	ToneLuxury       Tone = "Luxuoso & Exclusivo"
)

// Tones lists the supported tones, default first.
var Tones = []Tone{ToneProfessional, ToneFriendly, ToneUrgent, ToneLuxury}

// ParseTone matches raw against the known tones and defaults to ToneProfessional.
func ParseTone(raw string) Tone {
	key := format.Fold(raw)
	for _, t := range Tones {
		if key == format.Fold(string(t)) {
			return t
		}
	}
	return ToneProfessional
}

// Hero is the copy shown in the first section.
type Hero struct {
	Headline     string `yaml:"headline" json:"headline"`
	Subheadline  string `yaml:"subheadline" json:"subheadline"`
	PrimaryCTA   string `yaml:"primary_cta" json:"primaryCta"`
	SecondaryCTA string `yaml:"secondary_cta" json:"secondaryCta"`
	SocialProof  string `yaml:"social_proof" json:"socialProof"`
}

// Feature is one benefit card.
type Feature struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"desc" json:"desc"`
	Icon        string `yaml:"icon" json:"icon"`
}

// Plan is one pricing tier. Exactly one plan per list is Highlighted.
type Plan struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Price       string   `yaml:"price" json:"price"`
	Features    []string `yaml:"features" json:"features"`
	Highlighted bool     `yaml:"highlighted" json:"highlighted"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID     string `yaml:"id" json:"id"`
	Quote  string `yaml:"text" json:"text"`
	Author string `yaml:"author" json:"author"`
	Role   string `yaml:"role" json:"role"`
}

// FAQItem is a question with its Markdown answer.
type FAQItem struct {
	ID       string `yaml:"id" json:"id"`
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// FooterSection is one link column in the multi-column footer.
type FooterSection struct {
	ID    string   `yaml:"id" json:"id"`
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}

// Footer holds the closing section copy.
type Footer struct {
	About        string          `yaml:"about" json:"about"`
	ContactLabel string          `yaml:"contact_label" json:"contactLabel"`
	ContactValue string          `yaml:"contact_value" json:"contactValue"`
	Copyright    string          `yaml:"copyright" json:"copyright"`
	Sections     []FooterSection `yaml:"sections" json:"sections"`
}

// SEO is the search/social metadata of the exported page.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

func interpolate(s, name string) string {
	return strings.ReplaceAll(s, "{{name}}", name)
}
