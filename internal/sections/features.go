package sections

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oliveiraclick/criadorLP/internal/background"
	"github.com/oliveiraclick/criadorLP/internal/content"
)

// Features renders the benefits section.
func Features(v FeaturesVariant, t Theme, items []content.Feature, bg background.Config, o Options) g.Node {
	f := newFrame(t, bg)
	heading := func(align string) g.Node {
		return Div(Class(joinClass("mb-16", align)),
			H2(Class(joinClass("text-3xl md:text-4xl font-bold mb-4", f.ink.Title)), g.Text("Por que nos escolher?")),
			P(Class(joinClass("text-lg", f.ink.Text)), g.Text("Descubra os benefícios que transformam o seu negócio.")),
		)
	}

	switch v {
	case FeaturesSplitRight:
		return f.shell(KeyFeatures, true, "py-24 px-6",
			Div(Class("max-w-6xl mx-auto grid grid-cols-1 lg:grid-cols-2 gap-16 items-start"),
				heading(""),
				Div(Class("space-y-8"),
					g.Group(g.Map(items, func(it content.Feature) g.Node {
						return Div(Class("flex gap-5"),
							f.iconBadge(o, it),
							Div(
								o.text("h3", featurePath(it, "title"), it.Title, joinClass("text-xl font-semibold mb-1", f.ink.Title)),
								o.block("p", featurePath(it, "desc"), it.Description, f.ink.Text),
							),
						)
					})),
				),
			),
		)
	case FeaturesFullLeft:
		return f.shell(KeyFeatures, true, "py-24 px-6",
			Div(Class("max-w-5xl mx-auto"),
				heading(""),
				Ol(Class(joinClass("divide-y", f.ink.Divider)),
					g.Group(mapIndex(items, func(i int, it content.Feature) g.Node {
						return Li(Class("py-8 flex items-start gap-8"),
							Span(Class("text-5xl font-black opacity-30 w-20 shrink-0"), fgColor(o.Primary), g.Textf("%02d", i+1)),
							Div(Class("flex-1"),
								o.text("h3", featurePath(it, "title"), it.Title, joinClass("text-2xl font-bold mb-2", f.ink.Title)),
								o.block("p", featurePath(it, "desc"), it.Description, joinClass("text-lg", f.ink.Text)),
							),
							f.iconPicker(o, it),
						)
					})),
				),
			),
		)
	case FeaturesCentered:
	}
	return f.shell(KeyFeatures, true, "py-24 px-6",
		Div(Class("max-w-6xl mx-auto"),
			heading("text-center max-w-2xl mx-auto"),
			Div(Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(g.Map(items, func(it content.Feature) g.Node {
					return Div(Class(joinClass("p-8 rounded-2xl text-center", f.ink.Card)),
						Div(Class("flex justify-center mb-6"), f.iconBadge(o, it)),
						o.text("h3", featurePath(it, "title"), it.Title, joinClass("text-xl font-semibold mb-3", f.ink.Title)),
						o.block("p", featurePath(it, "desc"), it.Description, f.ink.Text),
					)
				})),
			),
		),
	)
}

func featurePath(it content.Feature, field string) string {
	return fmt.Sprintf("features.%s.%s", it.ID, field)
}

func (f frame) iconBadge(o Options, it content.Feature) g.Node {
	return Div(Class("relative shrink-0"),
		Div(Class("w-14 h-14 rounded-xl flex items-center justify-center text-2xl"),
			style("background-color: "+o.Primary+"1a; color: "+o.Primary+";"),
			Span(g.Attr("aria-hidden", "true"), g.Text(content.IconGlyph(it.Icon))),
		),
		f.iconPicker(o, it),
	)
}

// iconPicker lets the user swap a feature icon. It only exists in edit mode.
func (f frame) iconPicker(o Options, it content.Feature) g.Node {
	if !o.Editing {
		return nil
	}
	return Select(
		Class("exclude-from-export mt-2 text-xs border rounded bg-white text-slate-700"),
		editorOnly(),
		g.Attr(AttrField, featurePath(it, "icon")),
		g.Group(g.Map(content.Icons, func(name string) g.Node {
			return Option(Value(name), g.If(name == it.Icon, Selected()), g.Textf("%s %s", content.IconGlyph(name), name))
		})),
	)
}
