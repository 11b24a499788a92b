package sections

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oliveiraclick/criadorLP/internal/background"
	"github.com/oliveiraclick/criadorLP/internal/content"
)

// Block is one section's layout, content and background.
type Block[V ~string, C any] struct {
	Variant    V
	Content    C
	Background background.Config
}

// PageModel is everything Page needs. Renderers never read state from anywhere else.
type PageModel struct {
	Theme        Theme
	Options      Options
	Hero         Block[HeroVariant, content.Hero]
	Features     Block[FeaturesVariant, []content.Feature]
	Pricing      Block[PricingVariant, []content.Plan]
	Testimonials Block[TestimonialsVariant, []content.Testimonial]
	FAQ          Block[FAQVariant, []content.FAQItem]
	Footer       Block[FooterVariant, content.Footer]
}

// EditorPath is where section toolbars post their changes.
const EditorPath = "/editor/sections/"

// Page composes the <main> region with the six sections in fixed order.
func Page(m PageModel) g.Node {
	o := m.Options
	return Main(
		ID("page"),
		Class("min-h-screen"),
		style("--lp-primary: "+o.Primary+"; --lp-secondary: "+o.Secondary+";"),
		g.If(o.Editing, g.Attr("data-editing", "true")),
		m.wrap(KeyHero, string(m.Hero.Variant), m.Hero.Background,
			Hero(m.Hero.Variant, m.Theme, m.Hero.Content, m.Hero.Background, o)),
		m.wrap(KeyFeatures, string(m.Features.Variant), m.Features.Background,
			Features(m.Features.Variant, m.Theme, m.Features.Content, m.Features.Background, o)),
		m.wrap(KeyPricing, string(m.Pricing.Variant), m.Pricing.Background,
			Pricing(m.Pricing.Variant, m.Theme, m.Pricing.Content, m.Pricing.Background, o)),
		m.wrap(KeyTestimonials, string(m.Testimonials.Variant), m.Testimonials.Background,
			Testimonials(m.Testimonials.Variant, m.Theme, m.Testimonials.Content, m.Testimonials.Background, o)),
		m.wrap(KeyFAQ, string(m.FAQ.Variant), m.FAQ.Background,
			FAQ(m.FAQ.Variant, m.Theme, m.FAQ.Content, m.FAQ.Background, o)),
		m.wrap(KeyFooter, string(m.Footer.Variant), m.Footer.Background,
			SiteFooter(m.Footer.Variant, m.Theme, m.Footer.Content, m.Footer.Background, o)),
	)
}

func (m PageModel) wrap(k Key, layout string, bg background.Config, section g.Node) g.Node {
	if !m.Options.Editing {
		return section
	}
	return Div(Class("relative group/section"),
		Toolbar(k, layout, bg),
		section,
	)
}

// Toolbar is the per-section editor chrome: layout picker, background panel and, for the
// hero, the "Variar" shuffle button.
func Toolbar(k Key, layout string, bg background.Config) g.Node {
	return g.El("form",
		Class("exclude-from-export absolute top-4 right-4 z-50 flex flex-wrap items-center gap-2 rounded-xl bg-white/95 p-2 text-xs text-slate-700 shadow-xl opacity-0 group-hover/section:opacity-100 focus-within:opacity-100 transition-opacity"),
		editorOnly(),
		g.Attr("hx-post", EditorPath+string(k)),
		g.Attr("hx-trigger", "change, submit"),
		g.Attr("hx-target", "#page"),
		g.Attr("hx-swap", "outerHTML"),
		Select(Name("layout"), Class("rounded border px-2 py-1"), g.Attr("aria-label", "Layout"),
			g.Group(g.Map(LayoutChoices(k), func(c Choice) g.Node {
				return Option(Value(c.Value), g.If(c.Value == layout, Selected()), g.Text(c.Label))
			})),
		),
		g.If(k == KeyHero, Button(Type("submit"), Name("shuffle"), Value("1"), Class("rounded border px-2 py-1 font-semibold"), g.Text("Variar"))),
		g.El("details", Class("relative"),
			g.El("summary", Class("cursor-pointer rounded border px-2 py-1"), g.Text("Fundo")),
			Div(Class("absolute right-0 mt-2 w-72 space-y-2 rounded-xl bg-white p-4 shadow-2xl"),
				labeled("Imagem (URL)", Input(Type("url"), Name("bgImage"), Value(bg.Image), Class("w-full rounded border px-2 py-1"))),
				labeled("Vídeo (URL)", Input(Type("url"), Name("bgVideo"), Value(bg.Video), Class("w-full rounded border px-2 py-1"))),
				labeled("Cor da sobreposição", Input(Type("color"), Name("overlayColor"), Value(background.NormalizeHex(bg.OverlayColor, background.DefaultOverlayColor)))),
				labeled("Opacidade", rangeInput("overlayOpacity", bg.OverlayOpacity)),
				labeled("Gradiente", Select(Name("gradient"), Class("w-full rounded border px-2 py-1"),
					g.Group(g.Map(background.Gradients, func(gr background.Gradient) g.Node {
						return Option(Value(string(gr)), g.If(gr == bg.Gradient, Selected()), g.Text(string(gr)))
					})),
				)),
				labeled("Textura", Select(Name("texture"), Class("w-full rounded border px-2 py-1"),
					g.Group(g.Map(background.Textures, func(tx background.Texture) g.Node {
						return Option(Value(string(tx)), g.If(tx == bg.Texture, Selected()), g.Text(string(tx)))
					})),
				)),
				labeled("Opacidade da textura", rangeInput("textureOpacity", bg.TextureOpacity)),
			),
		),
	)
}

func labeled(text string, control g.Node) g.Node {
	return Label(Class("block"),
		Span(Class("block mb-1 font-medium"), g.Text(text)),
		control,
	)
}

func rangeInput(name string, v int) g.Node {
	return Input(Type("range"), Name(name), g.Attr("min", "0"), g.Attr("max", "100"), Value(strconv.Itoa(background.ClampOpacity(v))), Class("w-full"))
}
