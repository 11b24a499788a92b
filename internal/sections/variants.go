package sections

import "strings"

// Key names one of the six page sections.
type Key string

const (
	KeyHero         Key = "hero"
	KeyFeatures     Key = "features"
	KeyPricing      Key = "pricing"
	KeyTestimonials Key = "testimonials"
	KeyFAQ          Key = "faq"
	KeyFooter       Key = "footer"
)

// Keys lists the sections in page order.
var Keys = []Key{KeyHero, KeyFeatures, KeyPricing, KeyTestimonials, KeyFAQ, KeyFooter}

// ParseKey reports whether raw names a section.
func ParseKey(raw string) (Key, bool) {
	k := Key(strings.TrimSpace(raw))
	for _, known := range Keys {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// Choice is one option of a layout picker.
type Choice struct {
	Value string
	Label string
}

type HeroVariant string

const (
	HeroSplitRight      HeroVariant = "split_right"
	HeroClassicCard     HeroVariant = "classic_card"
	HeroClassicCentered HeroVariant = "classic_centered"
	HeroImpactFull      HeroVariant = "impact_full"
	HeroImpactBigType   HeroVariant = "impact_big_type"
	HeroMinimalCentered HeroVariant = "minimal_centered"
)

var HeroVariants = []HeroVariant{
	HeroSplitRight, HeroClassicCard, HeroClassicCentered, HeroImpactFull, HeroImpactBigType, HeroMinimalCentered,
}

// ParseHeroVariant maps legacy names and falls back to HeroSplitRight.
func ParseHeroVariant(raw string) HeroVariant {
	switch v := HeroVariant(strings.TrimSpace(raw)); v {
	case HeroSplitRight, HeroClassicCard, HeroClassicCentered, HeroImpactFull, HeroImpactBigType, HeroMinimalCentered:
		return v
	case "centered":
		return HeroClassicCentered
	case "full_left":
		return HeroImpactFull
	default:
		return HeroSplitRight
	}
}

type FeaturesVariant string

const (
	FeaturesCentered   FeaturesVariant = "centered"
	FeaturesSplitRight FeaturesVariant = "split_right"
	FeaturesFullLeft   FeaturesVariant = "full_left"
)

var FeaturesVariants = []FeaturesVariant{FeaturesCentered, FeaturesSplitRight, FeaturesFullLeft}

func ParseFeaturesVariant(raw string) FeaturesVariant {
	switch v := FeaturesVariant(strings.TrimSpace(raw)); v {
	case FeaturesCentered, FeaturesSplitRight, FeaturesFullLeft:
		return v
	default:
		return FeaturesCentered
	}
}

type PricingVariant string

const (
	PricingCentered     PricingVariant = "centered"
	PricingList         PricingVariant = "list"
	PricingMinimalCards PricingVariant = "minimal_cards"
)

var PricingVariants = []PricingVariant{PricingCentered, PricingList, PricingMinimalCards}

func ParsePricingVariant(raw string) PricingVariant {
	switch v := PricingVariant(strings.TrimSpace(raw)); v {
	case PricingCentered, PricingList, PricingMinimalCards:
		return v
	case "full_left":
		return PricingList
	default:
		return PricingCentered
	}
}

type TestimonialsVariant string

const (
	TestimonialsGrid      TestimonialsVariant = "grid"
	TestimonialsSpotlight TestimonialsVariant = "spotlight"
)

var TestimonialsVariants = []TestimonialsVariant{TestimonialsGrid, TestimonialsSpotlight}

func ParseTestimonialsVariant(raw string) TestimonialsVariant {
	switch v := TestimonialsVariant(strings.TrimSpace(raw)); v {
	case TestimonialsGrid, TestimonialsSpotlight:
		return v
	default:
		return TestimonialsGrid
	}
}

type FAQVariant string

const (
	FAQAccordion FAQVariant = "accordion"
	FAQTwoColumn FAQVariant = "two_column"
)

var FAQVariants = []FAQVariant{FAQAccordion, FAQTwoColumn}

func ParseFAQVariant(raw string) FAQVariant {
	switch v := FAQVariant(strings.TrimSpace(raw)); v {
	case FAQAccordion, FAQTwoColumn:
		return v
	default:
		return FAQAccordion
	}
}

type FooterVariant string

const (
	FooterMultiColumn      FooterVariant = "multi_column"
	FooterSimpleCentered   FooterVariant = "simple_centered"
	FooterNewsletterImpact FooterVariant = "newsletter_impact"
	FooterMinimal          FooterVariant = "minimal"
)

var FooterVariants = []FooterVariant{FooterMultiColumn, FooterSimpleCentered, FooterNewsletterImpact, FooterMinimal}

func ParseFooterVariant(raw string) FooterVariant {
	switch v := FooterVariant(strings.TrimSpace(raw)); v {
	case FooterMultiColumn, FooterSimpleCentered, FooterNewsletterImpact, FooterMinimal:
		return v
	default:
		return FooterMultiColumn
	}
}

// NormalizeLayout parses raw as a layout of section k and returns its canonical value.
func NormalizeLayout(k Key, raw string) string {
	switch k {
	case KeyHero:
		return string(ParseHeroVariant(raw))
	case KeyFeatures:
		return string(ParseFeaturesVariant(raw))
	case KeyPricing:
		return string(ParsePricingVariant(raw))
	case KeyTestimonials:
		return string(ParseTestimonialsVariant(raw))
	case KeyFAQ:
		return string(ParseFAQVariant(raw))
	case KeyFooter:
		return string(ParseFooterVariant(raw))
	}
	return strings.TrimSpace(raw)
}

var layoutLabels = map[string]string{
	"split_right":       "Dividido",
	"classic_card":      "Cartão",
	"classic_centered":  "Centralizado",
	"impact_full":       "Impacto",
	"impact_big_type":   "Tipografia Grande",
	"minimal_centered":  "Minimalista",
	"centered":          "Grade Centralizada",
	"full_left":         "Lista Numerada",
	"list":              "Lista Horizontal",
	"minimal_cards":     "Cartões Simples",
	"grid":              "Grade",
	"spotlight":         "Destaque",
	"accordion":         "Sanfona",
	"two_column":        "Duas Colunas",
	"multi_column":      "Colunas",
	"simple_centered":   "Simples",
	"newsletter_impact": "Newsletter",
	"minimal":           "Mínimo",
}

// LayoutChoices lists the layouts offered for section k.
func LayoutChoices(k Key) []Choice {
	var values []string
	switch k {
	case KeyHero:
		values = toStrings(HeroVariants)
	case KeyFeatures:
		values = toStrings(FeaturesVariants)
	case KeyPricing:
		values = toStrings(PricingVariants)
	case KeyTestimonials:
		values = toStrings(TestimonialsVariants)
	case KeyFAQ:
		values = toStrings(FAQVariants)
	case KeyFooter:
		values = toStrings(FooterVariants)
	}
	out := make([]Choice, 0, len(values))
	for _, v := range values {
		label := layoutLabels[v]
		if k == KeyFeatures && v == string(FeaturesSplitRight) {
			label = "Lista Dividida"
		}
		out = append(out, Choice{Value: v, Label: label})
	}
	return out
}

func toStrings[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
