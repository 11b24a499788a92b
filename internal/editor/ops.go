package editor

import (
	"fmt"
	"strings"

	"github.com/oliveiraclick/criadorLP/internal/background"
	"github.com/oliveiraclick/criadorLP/internal/content"
	"github.com/oliveiraclick/criadorLP/internal/sections"
)

// SectionPatch carries the fields to change in a SectionConfig; nil fields are left alone.
type SectionPatch struct {
	Layout         *string
	Image          *string
	Video          *string
	OverlayColor   *string
	OverlayOpacity *int
	Gradient       *string
	Texture        *string
	TextureOpacity *int
}

// UpdateSectionConfig shallow-merges p into the configuration of k. The entry for k is
// replaced by a new pointer; every other entry is left untouched.
func (s *State) UpdateSectionConfig(k SectionKey, p SectionPatch) error {
	if _, ok := sections.ParseKey(string(k)); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, k)
	}
	next, _ := s.Section(k)
	if p.Layout != nil {
		next.Layout = *p.Layout
	}
	if p.OverlayColor != nil {
		next.OverlayColor = *p.OverlayColor
	}
	if p.OverlayOpacity != nil {
		next.OverlayOpacity = *p.OverlayOpacity
	}
	if p.Gradient != nil {
		next.Gradient = background.Gradient(*p.Gradient)
	}
	if p.Texture != nil {
		next.Texture = background.Texture(*p.Texture)
	}
	if p.TextureOpacity != nil {
		next.TextureOpacity = *p.TextureOpacity
	}
	// Setting one media kind clears the other.
	if p.Image != nil {
		next.Image = strings.TrimSpace(*p.Image)
		if next.Image != "" {
			next.Video = ""
		}
	}
	if p.Video != nil {
		next.Video = strings.TrimSpace(*p.Video)
		if next.Video != "" {
			next.Image = ""
		}
	}
	next.normalize(k)
	s.Sections[k] = &next
	return nil
}

// ShuffleHeroLayout switches the hero to a different layout picked with intn.
func (s *State) ShuffleHeroLayout(intn func(n int) int) sections.HeroVariant {
	hero, _ := s.Section(sections.KeyHero)
	current := sections.ParseHeroVariant(hero.Layout)
	others := make([]sections.HeroVariant, 0, len(sections.HeroVariants)-1)
	for _, v := range sections.HeroVariants {
		if v != current {
			others = append(others, v)
		}
	}
	next := string(others[intn(len(others))])
	_ = s.UpdateSectionConfig(sections.KeyHero, SectionPatch{Layout: &next})
	return sections.HeroVariant(next)
}

// GlobalPatch carries the global fields to change; nil fields are left alone.
type GlobalPatch struct {
	BusinessName   *string
	Industry       *string
	Tone           *string
	Style          *string
	Theme          *string
	PrimaryColor   *string
	SecondaryColor *string
	Logo           *string
	PageType       *string
}

// UpdateGlobalConfig applies p. An industry change regenerates Features, Pricing,
// Testimonials and FAQ from the catalog, discarding their edits; Hero and Footer are kept.
// A name change refreshes the footer copyright line. SEO copy that still matches the old
// defaults follows both.
func (s *State) UpdateGlobalConfig(p GlobalPatch) {
	prev := s.Global
	next := prev

	if p.BusinessName != nil {
		next.BusinessName = strings.TrimSpace(*p.BusinessName)
		if next.BusinessName == "" {
			next.BusinessName = DefaultBusinessName
		}
	}
	if p.Industry != nil {
		next.Industry = content.ParseIndustry(*p.Industry)
	}
	if p.Tone != nil {
		next.Tone = content.ParseTone(*p.Tone)
	}
	if p.Style != nil && strings.TrimSpace(*p.Style) != prev.Style {
		next.Style = strings.TrimSpace(*p.Style)
		layout, theme := ForStyle(next.Style)
		next.Theme = theme
		if p.Theme == nil {
			l := string(layout)
			_ = s.UpdateSectionConfig(sections.KeyHero, SectionPatch{Layout: &l})
		}
	}
	if p.Theme != nil {
		next.Theme = sections.ParseTheme(*p.Theme)
	}
	if p.PrimaryColor != nil {
		next.PrimaryColor = background.NormalizeHex(*p.PrimaryColor, prev.PrimaryColor)
	}
	if p.SecondaryColor != nil {
		next.SecondaryColor = background.NormalizeHex(*p.SecondaryColor, prev.SecondaryColor)
	}
	if p.Logo != nil {
		next.Logo = strings.TrimSpace(*p.Logo)
	}
	if p.PageType != nil {
		next.PageType = ParsePageType(*p.PageType)
	}
	s.Global = next

	if next.Industry != prev.Industry {
		s.Features = content.FeaturesFor(next.Industry)
		s.Pricing = content.PricingFor(next.Industry)
		s.Testimonials = content.TestimonialsFor(next.Industry)
		s.FAQ = content.FAQFor(next.Industry)
	}
	if next.BusinessName != prev.BusinessName {
		s.Footer.Copyright = content.CopyrightLine(next.BusinessName, now().Year())
	}
	if next.BusinessName != prev.BusinessName || next.Industry != prev.Industry {
		was := content.SEOFor(prev.BusinessName, prev.Industry)
		is := content.SEOFor(next.BusinessName, next.Industry)
		if s.SEO.Title == was.Title {
			s.SEO.Title = is.Title
		}
		if s.SEO.Description == was.Description {
			s.SEO.Description = is.Description
		}
	}
}

// UpdateHero sets one hero field.
func (s *State) UpdateHero(field, value string) error {
	switch field {
	case "headline":
		s.Hero.Headline = value
	case "subheadline":
		s.Hero.Subheadline = value
	case "primaryCta":
		s.Hero.PrimaryCTA = value
	case "secondaryCta":
		s.Hero.SecondaryCTA = value
	case "socialProof":
		s.Hero.SocialProof = value
	default:
		return fmt.Errorf("%w: hero.%s", ErrUnknownField, field)
	}
	return nil
}

// UpdateFeature sets one field of the feature with id.
func (s *State) UpdateFeature(id, field, value string) error {
	i := indexByID(s.Features, id, func(f content.Feature) string { return f.ID })
	if i < 0 {
		return fmt.Errorf("%w: feature %q", ErrItemNotFound, id)
	}
	switch field {
	case "title":
		s.Features[i].Title = value
	case "desc":
		s.Features[i].Description = value
	case "icon":
		s.Features[i].Icon = value
	default:
		return fmt.Errorf("%w: features.%s", ErrUnknownField, field)
	}
	return nil
}

// UpdatePlan sets one field of the plan with id. Highlighting a plan clears the others.
func (s *State) UpdatePlan(id, field, value string) error {
	i := indexByID(s.Pricing, id, func(p content.Plan) string { return p.ID })
	if i < 0 {
		return fmt.Errorf("%w: plan %q", ErrItemNotFound, id)
	}
	switch field {
	case "name":
		s.Pricing[i].Name = value
	case "price":
		s.Pricing[i].Price = value
	case "highlighted":
		if value != "true" {
			return nil
		}
		for j := range s.Pricing {
			s.Pricing[j].Highlighted = j == i
		}
	default:
		return fmt.Errorf("%w: pricing.%s", ErrUnknownField, field)
	}
	return nil
}

// UpdatePlanFeature sets the bullet at index of the plan with id.
func (s *State) UpdatePlanFeature(id string, index int, value string) error {
	i := indexByID(s.Pricing, id, func(p content.Plan) string { return p.ID })
	if i < 0 {
		return fmt.Errorf("%w: plan %q", ErrItemNotFound, id)
	}
	if index < 0 || index >= len(s.Pricing[i].Features) {
		return fmt.Errorf("%w: plan %q feature %d", ErrIndexOutOfRange, id, index)
	}
	s.Pricing[i].Features[index] = value
	return nil
}

// UpdateTestimonial sets one field of the testimonial with id.
func (s *State) UpdateTestimonial(id, field, value string) error {
	i := indexByID(s.Testimonials, id, func(t content.Testimonial) string { return t.ID })
	if i < 0 {
		return fmt.Errorf("%w: testimonial %q", ErrItemNotFound, id)
	}
	switch field {
	case "text":
		s.Testimonials[i].Quote = value
	case "author":
		s.Testimonials[i].Author = value
	case "role":
		s.Testimonials[i].Role = value
	default:
		return fmt.Errorf("%w: testimonials.%s", ErrUnknownField, field)
	}
	return nil
}

// UpdateFAQ sets one field of the question with id.
func (s *State) UpdateFAQ(id, field, value string) error {
	i := indexByID(s.FAQ, id, func(f content.FAQItem) string { return f.ID })
	if i < 0 {
		return fmt.Errorf("%w: faq %q", ErrItemNotFound, id)
	}
	switch field {
	case "question":
		s.FAQ[i].Question = value
	case "answer":
		s.FAQ[i].Answer = value
	default:
		return fmt.Errorf("%w: faq.%s", ErrUnknownField, field)
	}
	return nil
}

// UpdateFooter sets one top-level footer field.
func (s *State) UpdateFooter(field, value string) error {
	switch field {
	case "about":
		s.Footer.About = value
	case "contactLabel":
		s.Footer.ContactLabel = value
	case "contactValue":
		s.Footer.ContactValue = value
	case "copyright":
		s.Footer.Copyright = value
	default:
		return fmt.Errorf("%w: footer.%s", ErrUnknownField, field)
	}
	return nil
}

// UpdateFooterSectionTitle renames the footer column with sectionID.
func (s *State) UpdateFooterSectionTitle(sectionID, value string) error {
	i := indexByID(s.Footer.Sections, sectionID, func(f content.FooterSection) string { return f.ID })
	if i < 0 {
		return fmt.Errorf("%w: footer section %q", ErrItemNotFound, sectionID)
	}
	s.Footer.Sections[i].Title = value
	return nil
}

// UpdateFooterItem sets the link at index of the footer column with sectionID.
func (s *State) UpdateFooterItem(sectionID string, index int, value string) error {
	i := indexByID(s.Footer.Sections, sectionID, func(f content.FooterSection) string { return f.ID })
	if i < 0 {
		return fmt.Errorf("%w: footer section %q", ErrItemNotFound, sectionID)
	}
	if index < 0 || index >= len(s.Footer.Sections[i].Items) {
		return fmt.Errorf("%w: footer section %q item %d", ErrIndexOutOfRange, sectionID, index)
	}
	s.Footer.Sections[i].Items[index] = value
	return nil
}

// UpdateSEO sets one SEO field.
func (s *State) UpdateSEO(field, value string) error {
	switch field {
	case "title":
		s.SEO.Title = value
	case "description":
		s.SEO.Description = value
	case "image":
		s.SEO.Image = value
	default:
		return fmt.Errorf("%w: seo.%s", ErrUnknownField, field)
	}
	return nil
}

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	for i, it := range items {
		if idOf(it) == id {
			return i
		}
	}
	return -1
}
