package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnknownIndustryResolvesToGenericBundle(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"xyz", "", "Padaria", "DEFAULT"} {
		ind := ParseIndustry(raw)
		require.Equal(t, IndustryDefault, ind, raw)
		require.Equal(t, FeaturesFor(IndustryDefault), FeaturesFor(ind))
		require.Equal(t, PricingFor(IndustryDefault), PricingFor(ind))
		require.Equal(t, TestimonialsFor(IndustryDefault), TestimonialsFor(ind))
		require.Equal(t, FAQFor(IndustryDefault), FAQFor(ind))
		require.Equal(t, HeroFor(IndustryDefault, ToneProfessional, "X"), HeroFor(ind, ToneProfessional, "X"))
	}
}

func TestHealthProfessionalScenario(t *testing.T) {
	t.Parallel()

	ind := ParseIndustry("Saúde / Clínica")
	require.Equal(t, IndustryHealth, ind)

	hero := HeroFor(ind, ParseTone("Profissional & Sério"), "Clínica Vida")
	require.Equal(t, "Cuidado completo para a sua saúde na Clínica Vida", hero.Headline)
	require.Equal(t, "Agendar Consulta", hero.PrimaryCTA)

	features := FeaturesFor(ind)
	require.Len(t, features, 3)
	require.Equal(t, "Atendimento Humanizado", features[0].Title)

	generic := HeroFor(ParseIndustry("xyz"), ToneProfessional, "Clínica Vida")
	require.Equal(t, "Soluções Profissionais com a Clínica Vida", generic.Headline)
	require.Equal(t, "Alta Performance", FeaturesFor(ParseIndustry("xyz"))[0].Title)
}

func TestHeroToneFallsBackFieldByField(t *testing.T) {
	t.Parallel()

	h := HeroFor(IndustryTech, ToneUrgent, "Acme")
	require.Equal(t, "Acme com 50% de desconto só esta semana!", h.Headline)
	require.Equal(t, "Ver Demonstração", h.SecondaryCTA)

	// no health+urgent entry: industry default wins over the generic urgent copy
	h = HeroFor(IndustryHealth, ToneUrgent, "Acme")
	require.Equal(t, "Cuidado completo para a sua saúde na Acme", h.Headline)

	h = HeroFor(IndustryDefault, ToneLuxury, "Acme")
	require.Equal(t, "Redefinindo a Excelência em Acme", h.Headline)
	require.Equal(t, "Saber Mais", h.SecondaryCTA)
}

func TestEveryIndustryHasCompleteBundle(t *testing.T) {
	t.Parallel()

	for _, ind := range append([]Industry{IndustryDefault}, Industries...) {
		require.Len(t, FeaturesFor(ind), 3, ind)
		require.Len(t, TestimonialsFor(ind), 3, ind)
		require.Len(t, FAQFor(ind), 3, ind)

		plans := PricingFor(ind)
		require.Len(t, plans, 3, ind)
		highlighted := 0
		for i, p := range plans {
			require.Equal(t, []string{"1", "2", "3"}[i], p.ID)
			if p.Highlighted {
				highlighted++
			}
		}
		require.Equal(t, 1, highlighted, ind)

		for _, tone := range Tones {
			h := HeroFor(ind, tone, "Acme")
			require.NotEmpty(t, h.Headline)
			require.NotEmpty(t, h.PrimaryCTA)
			require.NotEmpty(t, h.SecondaryCTA)
			require.NotContains(t, h.Headline, "{{")
		}
	}
}

func TestResultsAreFreshCopies(t *testing.T) {
	t.Parallel()

	plans := PricingFor(IndustryTech)
	plans[0].Name = "changed"
	plans[0].Features[0] = "changed"
	again := PricingFor(IndustryTech)
	require.Equal(t, "Starter", again[0].Name)
	require.Equal(t, "1 Usuário", again[0].Features[0])

	footer := FooterFor("Acme", 2025)
	footer.Sections[0].Items[0] = "changed"
	require.Equal(t, "Consultoria", FooterFor("Acme", 2025).Sections[0].Items[0])
}

func TestFooterAndSEO(t *testing.T) {
	t.Parallel()

	f := FooterFor("Acme", 2025)
	require.Equal(t, "© 2025 Acme. Todos os direitos reservados.", f.Copyright)
	require.Len(t, f.Sections, 3)

	seo := SEOFor("Acme", IndustryHealth)
	require.Equal(t, "Acme - Soluções em Saúde / Clínica", seo.Title)
	require.Equal(t, "Acme - Soluções em Serviços", SEOFor("Acme", IndustryDefault).Title)
	require.Contains(t, seo.Description, "Conheça a Acme.")
}

func TestParseTone(t *testing.T) {
	t.Parallel()

	require.Equal(t, ToneUrgent, ParseTone("urgente & promocional"))
	require.Equal(t, ToneProfessional, ParseTone("sarcástico"))
}

func TestIconGlyph(t *testing.T) {
	t.Parallel()

	require.Equal(t, "⚡", IconGlyph("Zap"))
	require.Equal(t, IconGlyph("Settings"), IconGlyph("Unknown"))
	for _, name := range Icons {
		_, ok := iconGlyphs[name]
		require.True(t, ok, name)
	}
}

func TestParseCatalogRejectsMissingHighlight(t *testing.T) {
	t.Parallel()

	raw := []byte(`
hero:
  default:
    default: {headline: "x"}
features: {default: [{id: "1"}]}
testimonials: {default: [{id: "1"}]}
faq: {default: [{id: "1"}]}
pricing:
  default:
    - {id: "1", name: "a"}
`)
	_, err := parseCatalog(raw)
	require.Error(t, err)
}
