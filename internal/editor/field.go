package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyField routes a data-field path emitted by the section renderers to the matching
// content mutation, e.g. "pricing.2.features.0" or "footer.sections.1.title".
func (s *State) ApplyField(path, value string) error {
	value = strings.TrimRight(value, "\r\n")
	parts := strings.Split(path, ".")
	bad := fmt.Errorf("%w: %q", ErrUnknownField, path)

	switch parts[0] {
	case "hero":
		if len(parts) != 2 {
			return bad
		}
		return s.UpdateHero(parts[1], value)
	case "features":
		if len(parts) != 3 {
			return bad
		}
		return s.UpdateFeature(parts[1], parts[2], value)
	case "pricing":
		switch {
		case len(parts) == 3:
			return s.UpdatePlan(parts[1], parts[2], value)
		case len(parts) == 4 && parts[2] == "features":
			idx, err := index(parts[3])
			if err != nil {
				return err
			}
			return s.UpdatePlanFeature(parts[1], idx, value)
		}
		return bad
	case "testimonials":
		if len(parts) != 3 {
			return bad
		}
		return s.UpdateTestimonial(parts[1], parts[2], value)
	case "faq":
		if len(parts) != 3 {
			return bad
		}
		return s.UpdateFAQ(parts[1], parts[2], value)
	case "footer":
		switch {
		case len(parts) == 2:
			return s.UpdateFooter(parts[1], value)
		case len(parts) == 4 && parts[1] == "sections" && parts[3] == "title":
			return s.UpdateFooterSectionTitle(parts[2], value)
		case len(parts) == 5 && parts[1] == "sections" && parts[3] == "items":
			idx, err := index(parts[4])
			if err != nil {
				return err
			}
			return s.UpdateFooterItem(parts[2], idx, value)
		}
		return bad
	case "seo":
		if len(parts) != 2 {
			return bad
		}
		return s.UpdateSEO(parts[1], value)
	}
	return bad
}

func index(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrIndexOutOfRange, raw)
	}
	return n, nil
}
