package editor

import (
	"strings"

	"github.com/oliveiraclick/criadorLP/internal/markup"
	"github.com/oliveiraclick/criadorLP/internal/seo"
)

// Meta builds the document head of the exported page, JSON-LD included.
func (s *State) Meta(storedLogo string) seo.Meta {
	name := s.Global.BusinessName
	m := seo.NewMeta(s.SEO.Title, s.SEO.Description, s.SEO.Image)

	logo := s.LogoSrc(storedLogo)
	if !strings.HasPrefix(logo, "http://") && !strings.HasPrefix(logo, "https://") {
		logo = ""
	}
	email := ""
	if v := strings.TrimSpace(s.Footer.ContactValue); strings.Contains(v, "@") {
		email = v
	}
	m.JSONLD = append(m.JSONLD,
		seo.JSON(seo.LocalBusiness(name, m.Description, logo, email)),
		seo.JSON(seo.WebSite(name, m.Description)),
	)

	qa := make([]seo.QA, 0, len(s.FAQ))
	for _, it := range s.FAQ {
		if strings.TrimSpace(it.Question) == "" {
			continue
		}
		qa = append(qa, seo.QA{Question: it.Question, Answer: markup.Plain(it.Answer)})
	}
	if faq := seo.FAQPage(qa); faq != nil {
		m.JSONLD = append(m.JSONLD, seo.JSON(faq))
	}
	return m
}
