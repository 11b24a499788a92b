package sections

import (
	"fmt"
	"strings"
	"unicode/utf8"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oliveiraclick/criadorLP/internal/background"
	"github.com/oliveiraclick/criadorLP/internal/content"
)

// Testimonials renders the social proof section.
func Testimonials(v TestimonialsVariant, t Theme, items []content.Testimonial, bg background.Config, o Options) g.Node {
	f := newFrame(t, bg)
	heading := H2(Class(joinClass("text-3xl md:text-5xl mb-6 tracking-tight", f.ink.Title)),
		g.Text("Quem confia, "), Span(fgColor(o.Primary), g.Text("recomenda")),
	)

	switch v {
	case TestimonialsSpotlight:
		var lead g.Node
		rest := items
		if len(items) > 0 {
			it := items[0]
			rest = items[1:]
			lead = g.El("figure", Class("max-w-3xl mx-auto text-center mb-16"),
				Div(Class("text-6xl leading-none mb-4"), fgColor(o.Primary), g.Text("“")),
				o.block("blockquote", testimonialPath(it, "text"), it.Quote, joinClass("text-2xl md:text-3xl font-medium italic mb-8", f.ink.Title)),
				g.El("figcaption",
					o.text("p", testimonialPath(it, "author"), it.Author, joinClass("font-bold", f.ink.Title)),
					o.text("p", testimonialPath(it, "role"), it.Role, joinClass("text-sm", f.ink.Muted)),
				),
			)
		}
		return f.shell(KeyTestimonials, true, "py-24 px-6",
			Div(Class("max-w-6xl mx-auto"),
				Div(Class("text-center"), heading),
				lead,
				Div(Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
					g.Group(g.Map(rest, func(it content.Testimonial) g.Node {
						return f.testimonialCard(o, it)
					})),
				),
			),
		)
	case TestimonialsGrid:
	}
	return f.shell(KeyTestimonials, true, "py-24 px-6",
		Div(Class("max-w-6xl mx-auto"),
			Div(Class("text-center mb-16"), heading),
			Div(Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(g.Map(items, func(it content.Testimonial) g.Node {
					return f.testimonialCard(o, it)
				})),
			),
		),
	)
}

func (f frame) testimonialCard(o Options, it content.Testimonial) g.Node {
	return Div(Class(joinClass("p-8 rounded-2xl flex flex-col", f.ink.Card)),
		Div(Class("text-yellow-400 mb-4"), g.Text("★★★★★")),
		o.block("p", testimonialPath(it, "text"), it.Quote, joinClass("italic mb-6 flex-grow", f.ink.Text)),
		Div(Class("flex items-center gap-3"),
			Div(Class("w-10 h-10 rounded-full flex items-center justify-center text-white font-bold"), bgColor(o.Primary), g.Text(initial(it.Author))),
			Div(
				o.text("p", testimonialPath(it, "author"), it.Author, joinClass("font-semibold", f.ink.Title)),
				o.text("p", testimonialPath(it, "role"), it.Role, joinClass("text-sm", f.ink.Muted)),
			),
		),
	)
}

func testimonialPath(it content.Testimonial, field string) string {
	return fmt.Sprintf("testimonials.%s.%s", it.ID, field)
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}
