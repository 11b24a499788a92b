package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oliveiraclick/criadorLP/internal/background"
	"github.com/oliveiraclick/criadorLP/internal/content"
)

// Hero renders the first section.
func Hero(v HeroVariant, t Theme, c content.Hero, bg background.Config, o Options) g.Node {
	f := newFrame(t, bg)
	switch v {
	case HeroClassicCard:
		return f.shell(KeyHero, false, "py-24 px-6",
			Div(Class(joinClass("max-w-3xl mx-auto text-center p-12 rounded-3xl", f.ink.Card)),
				f.logoOrBadge(o, true),
				o.text("h1", "hero.headline", c.Headline, joinClass("text-4xl md:text-5xl mb-6 leading-tight", f.ink.Title)),
				o.block("p", "hero.subheadline", c.Subheadline, joinClass("text-lg max-w-xl mx-auto", f.ink.Text)),
				f.heroButtons(o, c, "justify-center"),
			),
		)
	case HeroClassicCentered:
		return f.shell(KeyHero, false, "py-24 px-6",
			Div(Class("max-w-4xl mx-auto text-center"),
				f.logoOrBadge(o, true),
				o.text("h1", "hero.headline", c.Headline, joinClass("text-5xl md:text-6xl mb-6 leading-tight", f.ink.Title)),
				o.block("p", "hero.subheadline", c.Subheadline, joinClass("text-lg md:text-xl max-w-2xl mx-auto", f.ink.Text)),
				f.heroButtons(o, c, "justify-center"),
			),
		)
	case HeroImpactFull:
		var glow g.Node
		if !f.comp.Active {
			glow = Div(
				Class("absolute top-[-20%] right-[-10%] w-[600px] h-[600px] rounded-full opacity-20 blur-3xl pointer-events-none"),
				bgColor(o.Primary),
			)
		}
		return f.shell(KeyHero, false, "py-32 px-6",
			glow,
			Div(Class("max-w-6xl mx-auto"),
				Div(Class("max-w-3xl"),
					f.logoOrBadge(o, false),
					o.text("h1", "hero.headline", c.Headline, joinClass("text-6xl md:text-8xl mb-8 leading-[0.9]", f.ink.Title)),
					Div(Class("w-24 h-2 mb-8"), bgColor(o.Primary)),
					o.block("p", "hero.subheadline", c.Subheadline, joinClass("text-2xl mb-10", f.ink.Text)),
					f.heroButtons(o, c, ""),
				),
			),
		)
	case HeroImpactBigType:
		return f.shell(KeyHero, false, "py-28 px-6",
			Div(Class("max-w-7xl mx-auto"),
				f.logoOrBadge(o, false),
				o.text("h1", "hero.headline", c.Headline, joinClass("text-7xl md:text-9xl leading-none tracking-tighter break-words", f.ink.Title)),
				Div(Class("mt-12 grid grid-cols-1 md:grid-cols-2 gap-8 items-end"),
					Div(Class("h-1 w-full"), bgColor(o.Primary)),
					Div(
						o.block("p", "hero.subheadline", c.Subheadline, joinClass("text-xl", f.ink.Text)),
						f.heroButtons(o, c, ""),
					),
				),
			),
		)
	case HeroMinimalCentered:
		return f.shell(KeyHero, false, "py-40 px-6",
			Div(Class("max-w-2xl mx-auto text-center"),
				o.text("h1", "hero.headline", c.Headline, joinClass("text-4xl md:text-5xl mb-6 font-light", f.ink.Title)),
				o.block("p", "hero.subheadline", c.Subheadline, joinClass("text-lg mb-10", f.ink.Text)),
				A(Href("#pricing"), Class("inline-block border-b-2 pb-1 font-medium"), style("border-color: "+o.Primary+"; color: "+o.Primary+";"),
					o.text("span", "hero.primaryCta", c.PrimaryCTA, ""),
				),
			),
		)
	case HeroSplitRight:
	}
	return f.shell(KeyHero, false, "py-20 px-6",
		Div(Class("max-w-7xl mx-auto grid grid-cols-1 lg:grid-cols-2 gap-16 items-center"),
			Div(
				f.logoOrBadge(o, false),
				o.text("h1", "hero.headline", c.Headline, joinClass("text-4xl md:text-5xl mb-6 leading-tight", f.ink.Title)),
				o.block("p", "hero.subheadline", c.Subheadline, joinClass("text-lg leading-relaxed mb-8", f.ink.Text)),
				f.heroButtons(o, c, ""),
				Div(Class("mt-8 flex items-center gap-2 text-sm opacity-60"),
					Span(g.Text("⭐⭐⭐⭐⭐")),
					o.text("span", "hero.socialProof", c.SocialProof, ""),
				),
			),
			Div(Class("aspect-square bg-neutral-200 rounded-2xl relative overflow-hidden shadow-2xl"),
				Div(Class("absolute inset-0 bg-gradient-to-tr from-black/5 to-transparent")),
				Div(Class("absolute inset-0 flex items-center justify-center text-neutral-400 font-medium"),
					g.Textf("Imagem do %s", o.BusinessName),
				),
			),
		),
	)
}

func (f frame) heroButtons(o Options, c content.Hero, align string) g.Node {
	return Div(Class(joinClass("flex flex-wrap gap-4 mt-8", align)),
		A(Href("#pricing"), Class(joinClass("px-8 py-3 transition-all", f.ink.BtnMain)), bgColor(o.Primary),
			o.text("span", "hero.primaryCta", c.PrimaryCTA, ""),
		),
		A(Href("#features"), Class(joinClass("px-8 py-3 transition-all", f.ink.BtnSecond)),
			o.text("span", "hero.secondaryCta", c.SecondaryCTA, ""),
		),
	)
}
