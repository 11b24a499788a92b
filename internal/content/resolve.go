package content

import (
	"strconv"
	"strings"
)

// HeroFor resolves the hero copy for industry and tone. Fields missing from the most specific
// entry are filled from, in order: the industry default, the generic entry for the tone and
// the generic default.
func HeroFor(industry Industry, tone Tone, businessName string) Hero {
	c := loadCatalog()
	chain := []Hero{
		c.Hero[industry][string(tone)],
		c.Hero[industry][defaultToneKey],
		c.Hero[IndustryDefault][string(tone)],
		c.Hero[IndustryDefault][defaultToneKey],
	}
	var h Hero
	for _, cand := range chain {
		h.Headline = firstNonEmpty(h.Headline, cand.Headline)
		h.Subheadline = firstNonEmpty(h.Subheadline, cand.Subheadline)
		h.PrimaryCTA = firstNonEmpty(h.PrimaryCTA, cand.PrimaryCTA)
		h.SecondaryCTA = firstNonEmpty(h.SecondaryCTA, cand.SecondaryCTA)
		h.SocialProof = firstNonEmpty(h.SocialProof, cand.SocialProof)
	}
	h.Headline = interpolate(h.Headline, businessName)
	h.Subheadline = interpolate(h.Subheadline, businessName)
	return h
}

// FeaturesFor returns the three benefit cards of industry.
func FeaturesFor(industry Industry) []Feature {
	return cloneList(lookup(loadCatalog().Features, industry), func(f Feature) Feature { return f })
}

// PricingFor returns the three plans of industry, cheapest first.
func PricingFor(industry Industry) []Plan {
	return cloneList(lookup(loadCatalog().Pricing, industry), func(p Plan) Plan {
		p.Features = append([]string(nil), p.Features...)
		return p
	})
}

// TestimonialsFor returns the three quotes of industry.
func TestimonialsFor(industry Industry) []Testimonial {
	return cloneList(lookup(loadCatalog().Testimonials, industry), func(t Testimonial) Testimonial { return t })
}

// FAQFor returns the three questions of industry.
func FAQFor(industry Industry) []FAQItem {
	return cloneList(lookup(loadCatalog().FAQ, industry), func(f FAQItem) FAQItem { return f })
}

// FooterFor returns the footer copy with the copyright line for businessName and year.
func FooterFor(businessName string, year int) Footer {
	f := loadCatalog().Footer
	f.Copyright = CopyrightLine(businessName, year)
	f.Sections = cloneList(f.Sections, func(s FooterSection) FooterSection {
		s.Items = append([]string(nil), s.Items...)
		return s
	})
	return f
}

// CopyrightLine renders the footer copyright for businessName.
func CopyrightLine(businessName string, year int) string {
	line := strings.ReplaceAll(loadCatalog().Footer.Copyright, "{{year}}", strconv.Itoa(year))
	return interpolate(line, businessName)
}

// SEOFor returns the default page title and description.
func SEOFor(businessName string, industry Industry) SEO {
	c := loadCatalog()
	label := "Serviços"
	if industry != IndustryDefault {
		label = industry.Label()
	}
	return SEO{
		Title:       strings.ReplaceAll(interpolate(c.SEO.Title, businessName), "{{industry}}", label),
		Description: interpolate(c.SEO.Description, businessName),
	}
}

func lookup[T any](m map[Industry][]T, industry Industry) []T {
	if items, ok := m[industry]; ok && len(items) > 0 {
		return items
	}
	return m[IndustryDefault]
}

func cloneList[T any](in []T, clone func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
