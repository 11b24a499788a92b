package sections

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oliveiraclick/criadorLP/internal/background"
	"github.com/oliveiraclick/criadorLP/internal/content"
)

// FAQ renders the questions section. Answers are inline Markdown.
func FAQ(v FAQVariant, t Theme, items []content.FAQItem, bg background.Config, o Options) g.Node {
	f := newFrame(t, bg)
	heading := H2(Class(joinClass("text-3xl mb-4", f.ink.Title)),
		g.Text("Dúvidas "), Span(fgColor(o.Primary), g.Text("Frequentes")),
	)

	switch v {
	case FAQTwoColumn:
		return f.shell(KeyFAQ, false, "py-24 px-6",
			Div(Class("max-w-6xl mx-auto grid grid-cols-1 lg:grid-cols-3 gap-12"),
				Div(
					heading,
					P(Class(f.ink.Text), g.Text("Tudo o que você precisa saber antes de começar.")),
				),
				Div(Class("lg:col-span-2 grid grid-cols-1 md:grid-cols-2 gap-8"),
					g.Group(g.Map(items, func(it content.FAQItem) g.Node {
						return Div(
							o.text("h3", faqPath(it, "question"), it.Question, joinClass("font-semibold text-lg mb-2", f.ink.Title)),
							o.markdown("p", faqPath(it, "answer"), it.Answer, f.ink.Text),
						)
					})),
				),
			),
		)
	case FAQAccordion:
	}
	return f.shell(KeyFAQ, false, "py-24 px-6",
		Div(Class("max-w-3xl mx-auto"),
			Div(Class("text-center mb-12"), heading),
			Div(Class("space-y-4"),
				g.Group(g.Map(items, func(it content.FAQItem) g.Node {
					return g.El("details",
						Class(joinClass("group rounded-xl p-6", f.ink.Card)),
						// keep items open while editing so the answer stays reachable
						g.If(o.Editing, g.Attr("open")),
						g.El("summary", Class("flex justify-between items-center cursor-pointer list-none"),
							o.text("span", faqPath(it, "question"), it.Question, joinClass("font-semibold text-lg", f.ink.Title)),
							Span(Class("transition-transform group-open:rotate-45 text-2xl"), fgColor(o.Primary), g.Text("+")),
						),
						o.markdown("div", faqPath(it, "answer"), it.Answer, joinClass("mt-4 leading-relaxed", f.ink.Text)),
					)
				})),
			),
		),
	)
}

func faqPath(it content.FAQItem, field string) string {
	return fmt.Sprintf("faq.%s.%s", it.ID, field)
}
