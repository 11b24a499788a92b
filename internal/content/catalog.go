package content

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalog struct {
	Hero         map[Industry]map[string]Hero `yaml:"hero"`
	Features     map[Industry][]Feature       `yaml:"features"`
	Pricing      map[Industry][]Plan          `yaml:"pricing"`
	Testimonials map[Industry][]Testimonial   `yaml:"testimonials"`
	FAQ          map[Industry][]FAQItem       `yaml:"faq"`
	Footer       Footer                       `yaml:"footer"`
	SEO          struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"seo"`
}

const defaultToneKey = "default"

var loadCatalog = sync.OnceValue(func() *catalog {
	c, err := parseCatalog(catalogYAML)
	if err != nil {
		panic(err)
	}
	return c
})

func parseCatalog(raw []byte) (*catalog, error) {
	var c catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("content: parse catalog: %w", err)
	}
	if _, ok := c.Hero[IndustryDefault][defaultToneKey]; !ok {
		return nil, fmt.Errorf("content: catalog has no generic hero")
	}
	for name, n := range map[string]int{
		"features":     len(c.Features[IndustryDefault]),
		"pricing":      len(c.Pricing[IndustryDefault]),
		"testimonials": len(c.Testimonials[IndustryDefault]),
		"faq":          len(c.FAQ[IndustryDefault]),
	} {
		if n == 0 {
			return nil, fmt.Errorf("content: catalog has no generic %s", name)
		}
	}
	for ind, plans := range c.Pricing {
		highlighted := 0
		for _, p := range plans {
			if p.Highlighted {
				highlighted++
			}
		}
		if highlighted != 1 {
			return nil, fmt.Errorf("content: pricing for %q must highlight exactly one plan, got %d", ind, highlighted)
		}
	}
	return &c, nil
}
