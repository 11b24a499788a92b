package sections

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oliveiraclick/criadorLP/internal/background"
	"github.com/oliveiraclick/criadorLP/internal/content"
)

// Pricing renders the plans section. Plans keep their order, cheapest first.
func Pricing(v PricingVariant, t Theme, plans []content.Plan, bg background.Config, o Options) g.Node {
	f := newFrame(t, bg)
	switch v {
	case PricingList:
		return f.shell(KeyPricing, false, "py-24 px-6",
			Div(Class("max-w-5xl mx-auto"),
				H2(Class(joinClass("text-4xl mb-12", f.ink.Title)), g.Text("Planos & Preços")),
				Div(Class("space-y-6"),
					g.Group(g.Map(plans, func(p content.Plan) g.Node {
						var ring g.Node
						if p.Highlighted {
							ring = style("border: 2px solid " + o.Primary + ";")
						}
						return Div(Class(joinClass("p-8 rounded-xl flex flex-col md:flex-row items-center gap-8", f.ink.Card)), ring,
							Div(Class("flex-1 text-center md:text-left"),
								o.text("h3", planPath(p, "name"), p.Name, joinClass("text-2xl font-bold", f.ink.Title)),
								g.If(p.Highlighted, Span(Class("text-xs font-bold uppercase tracking-wider text-green-600 bg-green-100 px-2 py-1 rounded inline-block mt-2"), g.Text("Recomendado"))),
							),
							o.text("div", planPath(p, "price"), p.Price, joinClass("text-3xl font-bold", f.ink.Title)),
							Div(Class("flex-1"),
								Ul(Class(joinClass("text-sm space-y-2", f.ink.Text)),
									g.Group(mapIndex(p.Features, func(i int, feat string) g.Node {
										return Li(g.Text("• "), o.text("span", planFeaturePath(p, i), feat, ""))
									})),
								),
							),
							A(Href("#"), Class(joinClass("px-8 py-3 rounded-lg font-bold whitespace-nowrap", f.ink.BtnMain)), bgColor(o.Primary), g.Text("Escolher Plano")),
						)
					})),
				),
			),
		)
	case PricingMinimalCards:
		return f.shell(KeyPricing, false, "py-24 px-6",
			Div(Class("max-w-5xl mx-auto"),
				Div(Class("text-center mb-16"),
					H2(Class(joinClass("text-3xl font-light mb-2", f.ink.Title)), g.Text("Investimento")),
					P(Class(f.ink.Muted), g.Text("Simples e transparente.")),
				),
				Div(Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
					g.Group(g.Map(plans, func(p content.Plan) g.Node {
						var ring g.Node
						if p.Highlighted {
							ring = style("box-shadow: 0 0 0 2px " + o.Primary + ";")
						}
						return Div(Class(joinClass("p-6 rounded-lg border", f.ink.Divider)), ring,
							o.text("p", planPath(p, "name"), p.Name, joinClass("text-sm uppercase tracking-widest mb-4", f.ink.Muted)),
							o.text("p", planPath(p, "price"), p.Price, joinClass("text-3xl mb-6", f.ink.Title)),
							Ul(Class(joinClass("space-y-2 text-sm", f.ink.Text)),
								g.Group(mapIndex(p.Features, func(i int, feat string) g.Node {
									return o.text("li", planFeaturePath(p, i), feat, "")
								})),
							),
						)
					})),
				),
			),
		)
	case PricingCentered:
	}
	return f.shell(KeyPricing, false, "py-24 px-6",
		Div(Class("max-w-6xl mx-auto"),
			Div(Class("text-center mb-16"),
				H2(Class(joinClass("text-4xl font-bold mb-4", f.ink.Title)), g.Text("Investimento")),
				P(Class(joinClass("text-lg", f.ink.Text)), g.Text("Escolha a melhor opção para você")),
			),
			Div(Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(g.Map(plans, func(p content.Plan) g.Node {
					var accent g.Node
					if t == ThemeTrust {
						accent = style("border-top: 4px solid " + o.Primary + ";")
					}
					return Div(Class(joinClass("relative p-8 rounded-2xl transition-all duration-300 hover:-translate-y-2 flex flex-col", f.ink.Card)), accent,
						g.If(p.Highlighted, Span(
							Class("absolute -top-3 left-1/2 -translate-x-1/2 px-4 py-1 rounded-full text-xs font-bold uppercase tracking-wide text-white shadow-sm"),
							bgColor(o.Primary),
							g.Text("Mais Popular"),
						)),
						o.text("h3", planPath(p, "name"), p.Name, joinClass("text-xl font-medium mb-4", f.ink.Title)),
						o.text("div", planPath(p, "price"), p.Price, joinClass("text-4xl font-bold mb-6", f.ink.Title)),
						Ul(Class("space-y-4 mb-8 flex-grow"),
							g.Group(mapIndex(p.Features, func(i int, feat string) g.Node {
								return Li(Class("flex items-center gap-3 text-sm"),
									Div(Class(joinClass("w-5 h-5 rounded-full flex items-center justify-center shrink-0", f.ink.Check)), g.Text("✓")),
									o.text("span", planFeaturePath(p, i), feat, f.ink.Text),
								)
							})),
						),
						A(Href("#"), Class(joinClass("block text-center w-full py-3 rounded-xl font-medium transition-colors", f.ink.BtnMain)), bgColor(o.Primary), g.Text("Selecionar")),
					)
				})),
			),
		),
	)
}

func planPath(p content.Plan, field string) string {
	return fmt.Sprintf("pricing.%s.%s", p.ID, field)
}

func planFeaturePath(p content.Plan, i int) string {
	return fmt.Sprintf("pricing.%s.features.%d", p.ID, i)
}
