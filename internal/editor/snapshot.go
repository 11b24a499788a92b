package editor

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/oliveiraclick/criadorLP/internal/content"
	"github.com/oliveiraclick/criadorLP/internal/sections"
)

// SnapshotVersion is bumped when the Snapshot layout changes incompatibly.
const SnapshotVersion = 1

// Snapshot is the serialized form of a State, stored as a project's data.
type Snapshot struct {
	Version      int                          `json:"version"`
	Global       GlobalConfig                 `json:"global"`
	Sections     map[SectionKey]SectionConfig `json:"sections"`
	Hero         content.Hero                 `json:"hero"`
	Features     []content.Feature            `json:"features"`
	Pricing      []content.Plan               `json:"pricing"`
	Testimonials []content.Testimonial        `json:"testimonials"`
	FAQ          []content.FAQItem            `json:"faq"`
	Footer       content.Footer               `json:"footer"`
	SEO          content.SEO                  `json:"seo"`
}

// Snapshot returns a deep copy of s.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Version:      SnapshotVersion,
		Global:       s.Global,
		Sections:     make(map[SectionKey]SectionConfig, len(s.Sections)),
		Hero:         s.Hero,
		Features:     append([]content.Feature(nil), s.Features...),
		Pricing:      clonePlans(s.Pricing),
		Testimonials: append([]content.Testimonial(nil), s.Testimonials...),
		FAQ:          append([]content.FAQItem(nil), s.FAQ...),
		Footer:       cloneFooter(s.Footer),
		SEO:          s.SEO,
	}
	for k, c := range s.Sections {
		if c != nil {
			snap.Sections[k] = *c
		}
	}
	return snap
}

// Restore rebuilds a State from snap. Missing section configs get their defaults and every
// enum is re-parsed. Content is taken as stored, including cleared fields; only unversioned
// snapshots have their empty content filled from the catalog.
func Restore(snap Snapshot) *State {
	g := snap.Global
	if g.BusinessName == "" {
		g.BusinessName = DefaultBusinessName
	}
	g.Industry = content.ParseIndustry(string(g.Industry))
	g.Tone = content.ParseTone(string(g.Tone))
	g.Theme = sections.ParseTheme(string(g.Theme))
	g.PageType = ParsePageType(string(g.PageType))
	if g.PrimaryColor == "" {
		g.PrimaryColor = DefaultPrimary
	}
	if g.SecondaryColor == "" {
		g.SecondaryColor = DefaultSecondary
	}

	s := &State{
		Global:   g,
		Sections: make(map[SectionKey]*SectionConfig, len(sections.Keys)),
		Hero:     snap.Hero,
		SEO:      snap.SEO,
	}
	for _, k := range sections.Keys {
		cfg, ok := snap.Sections[k]
		if !ok {
			cfg = defaultSection(k)
		}
		cfg.normalize(k)
		s.Sections[k] = &cfg
	}

	s.Features = append([]content.Feature(nil), snap.Features...)
	s.Pricing = clonePlans(snap.Pricing)
	s.Testimonials = append([]content.Testimonial(nil), snap.Testimonials...)
	s.FAQ = append([]content.FAQItem(nil), snap.FAQ...)
	s.Footer = cloneFooter(snap.Footer)
	if snap.Version < SnapshotVersion {
		s.fillFromCatalog()
	}
	return s
}

func (s *State) fillFromCatalog() {
	fresh := New(s.Global.query())
	s.Features = orDefault(s.Features, fresh.Features)
	s.Pricing = orDefault(s.Pricing, fresh.Pricing)
	s.Testimonials = orDefault(s.Testimonials, fresh.Testimonials)
	s.FAQ = orDefault(s.FAQ, fresh.FAQ)
	if s.Footer.Copyright == "" && len(s.Footer.Sections) == 0 {
		s.Footer = fresh.Footer
	}
	if s.Hero == (content.Hero{}) {
		s.Hero = fresh.Hero
	}
	if s.SEO == (content.SEO{}) {
		s.SEO = fresh.SEO
	}
}

// MarshalData encodes the state for Project.Data.
func (s *State) MarshalData() (json.RawMessage, error) {
	b, err := json.Marshal(s.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("editor: encode snapshot: %w", err)
	}
	return b, nil
}

// UnmarshalData decodes Project.Data into a State.
func UnmarshalData(data json.RawMessage) (*State, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("editor: decode snapshot: %w", err)
	}
	return Restore(snap), nil
}

// Open restores stored project data. Empty data starts from fallback; unreadable data also
// starts from fallback and reports the decode error alongside the usable state.
func Open(data json.RawMessage, fallback url.Values) (*State, error) {
	if len(data) == 0 {
		return New(fallback), nil
	}
	st, err := UnmarshalData(data)
	if err != nil {
		return New(fallback), err
	}
	return st, nil
}

func (g GlobalConfig) query() url.Values {
	return url.Values{
		"name":     {g.BusinessName},
		"industry": {string(g.Industry)},
		"tone":     {string(g.Tone)},
	}
}

func orDefault[T any](v, def []T) []T {
	if len(v) == 0 {
		return def
	}
	return append([]T(nil), v...)
}

func clonePlans(in []content.Plan) []content.Plan {
	if in == nil {
		return nil
	}
	out := make([]content.Plan, len(in))
	for i, p := range in {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

func cloneFooter(f content.Footer) content.Footer {
	if f.Sections == nil {
		return f
	}
	secs := make([]content.FooterSection, len(f.Sections))
	for i, s := range f.Sections {
		s.Items = append([]string(nil), s.Items...)
		secs[i] = s
	}
	f.Sections = secs
	return f
}
