package editor

import (
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oliveiraclick/criadorLP/internal/background"
	"github.com/oliveiraclick/criadorLP/internal/content"
	"github.com/oliveiraclick/criadorLP/internal/sections"
)

func ptr[T any](v T) *T { return &v }

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()

	s := New(url.Values{})
	require.Equal(t, DefaultBusinessName, s.Global.BusinessName)
	require.Equal(t, content.IndustryServices, s.Global.Industry)
	require.Equal(t, content.ToneProfessional, s.Global.Tone)
	require.Equal(t, sections.ThemeTrust, s.Global.Theme)
	require.Equal(t, "#2563eb", s.Global.PrimaryColor)
	require.Equal(t, "#1e293b", s.Global.SecondaryColor)
	require.Equal(t, PageSales, s.Global.PageType)

	hero, ok := s.Section(sections.KeyHero)
	require.True(t, ok)
	require.Equal(t, "split_right", hero.Layout)
	require.Equal(t, 80, hero.OverlayOpacity)
	require.Equal(t, "#000000", hero.OverlayColor)
	require.Equal(t, background.GradientNone, hero.Gradient)
	require.Len(t, s.Sections, 6)

	footer, _ := s.Section(sections.KeyFooter)
	require.Equal(t, "multi_column", footer.Layout)
	require.Equal(t, 30, footer.TextureOpacity)
}

func TestNewSeedsOverlayForEverySection(t *testing.T) {
	t.Parallel()

	s := New(url.Values{"bgOp": {"45"}, "bgColor": {"#112233"}, "bgImage": {"h.jpg"}, "bgGrad": {"radial"}})
	for _, k := range sections.Keys {
		cfg, ok := s.Section(k)
		require.True(t, ok)
		require.Equal(t, 45, cfg.OverlayOpacity, k)
		require.Equal(t, "#112233", cfg.OverlayColor, k)
	}
	hero, _ := s.Section(sections.KeyHero)
	require.Equal(t, "h.jpg", hero.Image)
	features, _ := s.Section(sections.KeyFeatures)
	require.Empty(t, features.Image)
	require.Equal(t, background.GradientNone, features.Gradient)
}

func TestNewMapsStyleAndExplicitValuesWin(t *testing.T) {
	t.Parallel()

	s := New(url.Values{"style": {StyleBold}})
	hero, _ := s.Section(sections.KeyHero)
	require.Equal(t, "impact_full", hero.Layout)
	require.Equal(t, sections.ThemeBold, s.Global.Theme)

	s = New(url.Values{"style": {StyleBold}, "layout": {"centered"}, "theme": {"minimal"}})
	hero, _ = s.Section(sections.KeyHero)
	require.Equal(t, "classic_centered", hero.Layout)
	require.Equal(t, sections.ThemeMinimal, s.Global.Theme)

	s = New(url.Values{"bgOp": {"250"}, "bgColor": {"nope"}, "bgGrad": {"radial"}, "color": {"#F00"}})
	hero, _ = s.Section(sections.KeyHero)
	require.Equal(t, 100, hero.OverlayOpacity)
	require.Equal(t, "#000000", hero.OverlayColor)
	require.Equal(t, background.GradientRadial, hero.Gradient)
	require.Equal(t, "#ff0000", s.Global.PrimaryColor)
}

func TestQueryRoundTrip(t *testing.T) {
	t.Parallel()

	in := url.Values{
		"name":     {"Clínica Vida"},
		"industry": {"Saúde / Clínica"},
		"tone":     {"Amigável & Acolhedor"},
		"style":    {StyleMinimal},
		"type":     {"capture"},
		"bgImage":  {"https://example.com/a.jpg"},
		"bgOp":     {"55"},
	}
	s := New(in)
	again := New(s.Query())
	require.Equal(t, s.Global, again.Global)
	require.Equal(t, s.Sections[sections.KeyHero], again.Sections[sections.KeyHero])
	require.Equal(t, s.Hero, again.Hero)
}

func TestUpdateSectionConfigSwapsOnlyThatEntry(t *testing.T) {
	t.Parallel()

	s := New(url.Values{})
	before := make(map[SectionKey]*SectionConfig, len(s.Sections))
	for k, v := range s.Sections {
		before[k] = v
	}
	oldHero := *before[sections.KeyHero]

	require.NoError(t, s.UpdateSectionConfig(sections.KeyHero, SectionPatch{Layout: ptr("x")}))

	for _, k := range sections.Keys {
		if k == sections.KeyHero {
			require.NotSame(t, before[k], s.Sections[k])
			continue
		}
		require.Same(t, before[k], s.Sections[k], k)
	}
	require.Equal(t, oldHero, *before[sections.KeyHero], "old pointer must not be mutated")
	require.Equal(t, "split_right", s.Sections[sections.KeyHero].Layout)
	require.Equal(t, oldHero.OverlayOpacity, s.Sections[sections.KeyHero].OverlayOpacity)

	err := s.UpdateSectionConfig("sidebar", SectionPatch{})
	require.ErrorIs(t, err, ErrUnknownSection)
}

func TestMediaIsExclusive(t *testing.T) {
	t.Parallel()

	s := New(url.Values{})
	require.NoError(t, s.UpdateSectionConfig(sections.KeyFeatures, SectionPatch{Image: ptr("a.jpg")}))
	require.NoError(t, s.UpdateSectionConfig(sections.KeyFeatures, SectionPatch{Video: ptr("b.mp4")}))
	cfg, _ := s.Section(sections.KeyFeatures)
	require.Equal(t, "b.mp4", cfg.Video)
	require.Empty(t, cfg.Image)

	require.NoError(t, s.UpdateSectionConfig(sections.KeyFeatures, SectionPatch{Image: ptr("c.jpg")}))
	cfg, _ = s.Section(sections.KeyFeatures)
	require.Equal(t, "c.jpg", cfg.Image)
	require.Empty(t, cfg.Video)

	require.NoError(t, s.UpdateSectionConfig(sections.KeyFeatures, SectionPatch{OverlayOpacity: ptr(-5), TextureOpacity: ptr(500)}))
	cfg, _ = s.Section(sections.KeyFeatures)
	require.Equal(t, 0, cfg.OverlayOpacity)
	require.Equal(t, 100, cfg.TextureOpacity)
}

func TestIndustryChangeResetsCatalogSections(t *testing.T) {
	t.Parallel()

	s := New(url.Values{"name": {"Acme"}, "industry": {"tech"}})
	require.NoError(t, s.UpdateFeature("1", "title", "Editado"))
	require.NoError(t, s.UpdatePlan("1", "price", "R$ 1"))
	require.NoError(t, s.UpdateTestimonial("1", "author", "Editado"))
	require.NoError(t, s.UpdateFAQ("1", "question", "Editado?"))
	require.NoError(t, s.UpdateHero("headline", "Meu título"))
	require.NoError(t, s.UpdateFooter("about", "Sobre nós"))

	s.UpdateGlobalConfig(GlobalPatch{Industry: ptr("health")})

	require.Equal(t, content.FeaturesFor(content.IndustryHealth), s.Features)
	require.Equal(t, content.PricingFor(content.IndustryHealth), s.Pricing)
	require.Equal(t, content.TestimonialsFor(content.IndustryHealth), s.Testimonials)
	require.Equal(t, content.FAQFor(content.IndustryHealth), s.FAQ)
	require.Equal(t, "Meu título", s.Hero.Headline)
	require.Equal(t, "Sobre nós", s.Footer.About)

	// same industry again keeps edits
	require.NoError(t, s.UpdateFeature("1", "title", "De novo"))
	s.UpdateGlobalConfig(GlobalPatch{Industry: ptr("Saúde / Clínica")})
	require.Equal(t, "De novo", s.Features[0].Title)
}

func TestNameChangeRefreshesCopyrightAndDefaultSEO(t *testing.T) {
	t.Parallel()

	s := New(url.Values{"name": {"Acme"}})
	require.NoError(t, s.UpdateSEO("description", "Minha descrição"))

	s.UpdateGlobalConfig(GlobalPatch{BusinessName: ptr("Beta")})
	require.Contains(t, s.Footer.Copyright, "Beta.")
	require.Equal(t, content.SEOFor("Beta", s.Global.Industry).Title, s.SEO.Title)
	require.Equal(t, "Minha descrição", s.SEO.Description)
	require.Contains(t, s.Hero.Headline, "Acme")
}

func TestStyleChangeMovesHeroLayoutAndTheme(t *testing.T) {
	t.Parallel()

	s := New(url.Values{})
	s.UpdateGlobalConfig(GlobalPatch{Style: ptr(StyleCreative)})
	hero, _ := s.Section(sections.KeyHero)
	require.Equal(t, "impact_big_type", hero.Layout)
	require.Equal(t, sections.ThemeBold, s.Global.Theme)

	s.UpdateGlobalConfig(GlobalPatch{PrimaryColor: ptr("not-a-color")})
	require.Equal(t, "#2563eb", s.Global.PrimaryColor)
}

func TestApplyFieldRoutesPaths(t *testing.T) {
	t.Parallel()

	s := New(url.Values{"name": {"Acme"}})
	require.NoError(t, s.ApplyField("hero.headline", "Novo\n"))
	require.Equal(t, "Novo", s.Hero.Headline)

	require.NoError(t, s.ApplyField("pricing.2.features.0", "Tudo incluso"))
	require.Equal(t, "Tudo incluso", s.Pricing[1].Features[0])

	require.NoError(t, s.ApplyField("pricing.3.highlighted", "true"))
	require.False(t, s.Pricing[1].Highlighted)
	require.True(t, s.Pricing[2].Highlighted)

	require.NoError(t, s.ApplyField("footer.sections.2.items.1", "Vagas"))
	require.Equal(t, "Vagas", s.Footer.Sections[1].Items[1])
	require.NoError(t, s.ApplyField("footer.sections.3.title", "Jurídico"))
	require.Equal(t, "Jurídico", s.Footer.Sections[2].Title)

	require.NoError(t, s.ApplyField("features.1.icon", "Rocket"))
	require.NoError(t, s.ApplyField("seo.image", "https://example.com/og.png"))

	cases := map[string]error{
		"features.9.title":           ErrItemNotFound,
		"features.1.color":           ErrUnknownField,
		"pricing.1.features.99":      ErrIndexOutOfRange,
		"pricing.1.features.x":       ErrIndexOutOfRange,
		"footer.sections.1.items.-1": ErrIndexOutOfRange,
		"footer.sections.7.title":    ErrItemNotFound,
		"header.title":               ErrUnknownField,
		"hero":                       ErrUnknownField,
	}
	for path, want := range cases {
		err := s.ApplyField(path, "x")
		require.True(t, errors.Is(err, want), "%s: %v", path, err)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	s := New(url.Values{"name": {"Acme"}, "industry": {"music"}, "logo": {LocalLogo}})
	require.NoError(t, s.ApplyField("faq.2.answer", "Sim, **sempre**."))
	require.NoError(t, s.UpdateSectionConfig(sections.KeyPricing, SectionPatch{Layout: ptr("list"), Texture: ptr("mesh"), Image: ptr("p.jpg")}))

	data, err := s.MarshalData()
	require.NoError(t, err)

	restored, err := UnmarshalData(data)
	require.NoError(t, err)
	again, err := restored.MarshalData()
	require.NoError(t, err)
	require.JSONEq(t, string(data), string(again))
	require.Equal(t, string(data), string(again))

	snap := s.Snapshot()
	snap.Pricing[0].Features[0] = "mutated"
	require.NotEqual(t, "mutated", s.Pricing[0].Features[0])
}

func TestRestoreFillsMissingParts(t *testing.T) {
	t.Parallel()

	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(`{"global":{"businessName":"Velha","industry":"finance"}}`), &snap))
	s := Restore(snap)
	require.Len(t, s.Sections, 6)
	require.Equal(t, content.FeaturesFor(content.IndustryFinance), s.Features)
	require.Contains(t, s.Hero.Headline, "Velha")
	require.Equal(t, sections.ThemeTrust, s.Global.Theme)
}

func TestPageModelResolvesLocalLogo(t *testing.T) {
	t.Parallel()

	s := New(url.Values{"logo": {LocalLogo}})
	require.Equal(t, "data:image/png;base64,AA", s.PageModel("data:image/png;base64,AA").Options.LogoSrc)
	require.Empty(t, s.PageModel("").Options.LogoSrc)

	s = New(url.Values{"logo": {"https://cdn.example.com/logo.png"}})
	require.Equal(t, "https://cdn.example.com/logo.png", s.PageModel("ignored").Options.LogoSrc)

	s.Editing = true
	m := s.PageModel("")
	require.True(t, m.Options.Editing)
	require.Equal(t, sections.HeroSplitRight, m.Hero.Variant)
}

func TestShuffleHeroLayoutPicksDifferentLayout(t *testing.T) {
	t.Parallel()

	s := New(url.Values{})
	for i := 0; i < 5; i++ {
		before, _ := s.Section(sections.KeyHero)
		got := s.ShuffleHeroLayout(func(n int) int { return i % n })
		require.NotEqual(t, before.Layout, string(got))
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	var sizes []int
	var mu sync.Mutex
	r := NewRegistry(
		WithClock(func() time.Time { return clock }),
		WithSizeObserver(func(n int) { mu.Lock(); sizes = append(sizes, n); mu.Unlock() }),
	)

	r.Put("a", New(url.Values{"name": {"A"}}))
	r.Put("b", New(url.Values{"name": {"B"}}))
	require.Equal(t, 2, r.Len())

	require.NoError(t, r.Update("a", func(s *State) error { return s.UpdateHero("headline", "Oi") }))
	got, ok := r.Get("a")
	require.True(t, ok)
	require.Equal(t, "Oi", got.Hero.Headline)

	got.Hero.Headline = "copy only"
	again, _ := r.Get("a")
	require.Equal(t, "Oi", again.Hero.Headline)

	require.ErrorIs(t, r.Update("zzz", func(*State) error { return nil }), ErrNoSession)

	clock = clock.Add(3 * time.Hour)
	require.NoError(t, r.Update("b", func(*State) error { return nil }))
	require.Equal(t, 1, r.Sweep(2*time.Hour))
	_, ok = r.Get("a")
	require.False(t, ok)
	_, ok = r.Get("b")
	require.True(t, ok)

	mu.Lock()
	require.Equal(t, []int{1, 2, 1}, sizes)
	mu.Unlock()
}

func TestRegistryKeepsClearedContent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Put("s", New(url.Values{"name": {"Acme"}}))
	require.NoError(t, r.Update("s", func(st *State) error {
		for _, f := range []string{"title", "description", "image"} {
			if err := st.UpdateSEO(f, ""); err != nil {
				return err
			}
		}
		for _, f := range []string{"headline", "subheadline", "primaryCta", "secondaryCta", "socialProof"} {
			if err := st.UpdateHero(f, ""); err != nil {
				return err
			}
		}
		return nil
	}))

	got, ok := r.Get("s")
	require.True(t, ok)
	require.Equal(t, content.SEO{}, got.SEO)
	require.Equal(t, content.Hero{}, got.Hero)

	data, err := got.MarshalData()
	require.NoError(t, err)
	reopened, err := UnmarshalData(data)
	require.NoError(t, err)
	require.Equal(t, content.SEO{}, reopened.SEO)
	require.Equal(t, content.Hero{}, reopened.Hero)
}

func TestRegistryGetIsDeepCopy(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Put("s", New(url.Values{"name": {"Acme"}}))
	got, _ := r.Get("s")
	got.Pricing[0].Features[0] = "mutated"
	got.Sections[sections.KeyHero].Layout = "mutated"
	got.Footer.Sections[0].Items[0] = "mutated"

	again, _ := r.Get("s")
	require.NotEqual(t, "mutated", again.Pricing[0].Features[0])
	require.NotEqual(t, "mutated", again.Sections[sections.KeyHero].Layout)
	require.NotEqual(t, "mutated", again.Footer.Sections[0].Items[0])
}

func TestNewSessionIDIsUnique(t *testing.T) {
	t.Parallel()

	require.NotEqual(t, NewSessionID(), NewSessionID())
	require.Len(t, NewSessionID(), 26)
}

func TestMetaCarriesSEOAndJSONLD(t *testing.T) {
	t.Parallel()

	s := New(url.Values{"name": {"Clínica Vida"}, "industry": {"health"}, "logo": {"https://cdn.example.com/logo.png"}})
	require.NoError(t, s.UpdateSEO("image", "https://cdn.example.com/og.png"))

	m := s.Meta("")
	require.Equal(t, s.SEO.Title, m.Title)
	require.Equal(t, "summary_large_image", m.Twitter.Card)
	require.Len(t, m.JSONLD, 3)

	var biz map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[0]), &biz))
	require.Equal(t, "LocalBusiness", biz["@type"])
	require.Equal(t, "Clínica Vida", biz["name"])
	require.Equal(t, "https://cdn.example.com/logo.png", biz["logo"])

	var faq map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[2]), &faq))
	require.Equal(t, "FAQPage", faq["@type"])
	require.Len(t, faq["mainEntity"], len(s.FAQ))
}

func TestMetaSkipsLocalLogo(t *testing.T) {
	t.Parallel()

	s := New(url.Values{"logo": {LocalLogo}})
	m := s.Meta("data:image/png;base64,AAAA")

	var biz map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[0]), &biz))
	require.NotContains(t, biz, "logo")
}

func TestOpenFallsBackForMissingOrBadData(t *testing.T) {
	t.Parallel()

	fallback := url.Values{"name": {"Estúdio Som"}, "industry": {"Música / Artista"}}

	st, err := Open(nil, fallback)
	require.NoError(t, err)
	require.Equal(t, "Estúdio Som", st.Global.BusinessName)
	require.Equal(t, content.IndustryMusic, st.Global.Industry)

	st, err = Open(json.RawMessage(`{"global":`), fallback)
	require.Error(t, err)
	require.NotNil(t, st)
	require.Equal(t, "Estúdio Som", st.Global.BusinessName)

	data, err := New(url.Values{"name": {"Acme"}}).MarshalData()
	require.NoError(t, err)
	st, err = Open(data, fallback)
	require.NoError(t, err)
	require.Equal(t, "Acme", st.Global.BusinessName)
}
