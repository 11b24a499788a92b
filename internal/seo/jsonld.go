package seo

import "encoding/json"

// JSON marshals v to a compact JSON string. It returns an empty string on error.
// HTML-significant characters are escaped so the payload can sit inside a <script> element.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// LocalBusiness returns a minimal LocalBusiness schema.
func LocalBusiness(name, description, logoURL, email string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "LocalBusiness",
		"name":     name,
	}
	if description != "" {
		m["description"] = description
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	if email != "" {
		m["email"] = email
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, description string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if description != "" {
		m["description"] = description
	}
	return m
}

// QA is one question with its plain-text answer.
type QA struct {
	Question string
	Answer   string
}

// FAQPage builds schema.org FAQPage. It returns nil when items is empty.
func FAQPage(items []QA) map[string]any {
	if len(items) == 0 {
		return nil
	}
	el := make([]map[string]any, 0, len(items))
	for _, it := range items {
		el = append(el, map[string]any{
			"@type": "Question",
			"name":  it.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  it.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": el,
	}
}
