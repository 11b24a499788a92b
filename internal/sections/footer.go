package sections

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oliveiraclick/criadorLP/internal/background"
	"github.com/oliveiraclick/criadorLP/internal/content"
)

// SiteFooter renders the closing section. The name avoids the html package's Footer element.
func SiteFooter(v FooterVariant, t Theme, c content.Footer, bg background.Config, o Options) g.Node {
	f := newFrame(t, bg)
	copyright := o.text("p", "footer.copyright", c.Copyright, joinClass("text-sm", f.ink.Muted))

	switch v {
	case FooterSimpleCentered:
		return f.shell(KeyFooter, true, "py-16 px-6",
			Div(Class("max-w-3xl mx-auto text-center"),
				f.logoOrBadge(o, true),
				o.markdown("p", "footer.about", c.About, joinClass("mb-8", f.ink.Text)),
				Div(Class("flex flex-wrap justify-center gap-6 mb-8"),
					g.Group(g.Map(c.Sections, func(s content.FooterSection) g.Node {
						return o.text("a", footerSectionPath(s), s.Title, joinClass("font-medium hover:underline", f.ink.Title), Href("#"))
					})),
				),
				copyright,
			),
		)
	case FooterNewsletterImpact:
		return f.shell(KeyFooter, true, "py-20 px-6",
			Div(Class("max-w-6xl mx-auto"),
				Div(Class(joinClass("rounded-3xl p-10 md:p-16 mb-16 grid grid-cols-1 md:grid-cols-2 gap-8 items-center", f.ink.Card)),
					Div(
						H3(Class(joinClass("text-3xl font-bold mb-4", f.ink.Title)), g.Text("Fique por dentro das novidades")),
						P(Class(f.ink.Text), g.Text("Receba nossas últimas atualizações e ofertas exclusivas diretamente no seu email.")),
					),
					Div(Class("flex flex-col sm:flex-row gap-3"),
						Input(Type("email"), Placeholder("Seu melhor email"), Class("flex-1 px-5 py-3 rounded-xl border border-neutral-300 text-neutral-900")),
						Button(Type("button"), Class("px-6 py-3 rounded-xl text-white font-bold"), bgColor(o.Primary), g.Text("Inscrever")),
					),
				),
				f.footerColumns(o, c),
				Div(Class(joinClass("mt-12 pt-8 border-t text-center", f.ink.Divider)), copyright),
			),
		)
	case FooterMinimal:
		return f.shell(KeyFooter, true, "py-8 px-6",
			Div(Class("max-w-6xl mx-auto flex flex-col md:flex-row justify-between items-center gap-4"),
				Span(Class(joinClass("font-bold", f.ink.Title)), g.Text(o.BusinessName)),
				copyright,
			),
		)
	case FooterMultiColumn:
	}
	return f.shell(KeyFooter, true, "py-16 px-6",
		Div(Class("max-w-6xl mx-auto"),
			f.footerColumns(o, c),
			Div(Class(joinClass("mt-12 pt-8 border-t", f.ink.Divider)), copyright),
		),
	)
}

func (f frame) footerColumns(o Options, c content.Footer) g.Node {
	return Div(Class("grid grid-cols-1 md:grid-cols-5 gap-10"),
		Div(Class("md:col-span-2"),
			f.logoOrBadge(o, false),
			o.markdown("p", "footer.about", c.About, joinClass("mb-6 leading-relaxed", f.ink.Text)),
			o.text("p", "footer.contactLabel", c.ContactLabel, joinClass("text-sm font-semibold", f.ink.Title)),
			o.text("p", "footer.contactValue", c.ContactValue, "text-sm", fgColor(o.Primary)),
		),
		g.Group(g.Map(c.Sections, func(s content.FooterSection) g.Node {
			return Div(
				o.text("h4", footerSectionPath(s), s.Title, joinClass("font-semibold mb-4", f.ink.Title)),
				Ul(Class(joinClass("space-y-2 text-sm", f.ink.Text)),
					g.Group(mapIndex(s.Items, func(i int, item string) g.Node {
						return o.text("li", footerItemPath(s, i), item, "hover:underline")
					})),
				),
			)
		})),
	)
}

func footerSectionPath(s content.FooterSection) string {
	return fmt.Sprintf("footer.sections.%s.title", s.ID)
}

func footerItemPath(s content.FooterSection, i int) string {
	return fmt.Sprintf("footer.sections.%s.items.%d", s.ID, i)
}
