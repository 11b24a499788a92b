package sections

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oliveiraclick/criadorLP/internal/background"
)

// frame resolves the theme palette and background stack shared by a section's markup.
type frame struct {
	ink  palette
	comp background.Composite
}

func newFrame(t Theme, bg background.Config) frame {
	f := frame{ink: t.palette(), comp: background.Compose(bg)}
	if f.comp.Active {
		f.ink = f.ink.overMedia()
	}
	return f
}

// layers renders media, overlay and texture bottom to top. Nothing is emitted without media.
func (f frame) layers() g.Node {
	c := f.comp
	if !c.Active {
		return nil
	}
	var media g.Node
	switch c.Media.Kind {
	case background.MediaVideo:
		media = g.El("video",
			Class("w-full h-full object-cover"),
			Src(c.Media.Src),
			g.Attr("autoplay"), g.Attr("muted"), g.Attr("loop"), g.Attr("playsinline"),
		)
	case background.MediaImage:
		media = Img(Class("w-full h-full object-cover"), Src(c.Media.Src), Alt(""))
	}
	var texture g.Node
	if c.Texture != nil {
		texture = Div(
			Class("absolute inset-0 z-10 pointer-events-none"),
			g.Attr("data-layer", "texture"),
			style(c.Texture.Style+" opacity: "+strconv.FormatFloat(c.Texture.Opacity, 'f', -1, 64)+";"),
		)
	}
	return Div(
		Class("absolute inset-0 z-0 overflow-hidden"),
		g.Attr("data-layer", "media"),
		media,
		Div(Class("absolute inset-0 z-10"), g.Attr("data-layer", "overlay"), style(c.Overlay.Style)),
		texture,
	)
}

// shell wraps a section body with its id, theme background and background layers.
func (f frame) shell(k Key, alt bool, class string, children ...g.Node) g.Node {
	bg := f.ink.Bg
	if alt {
		bg = f.ink.AltBg
	}
	return Section(
		ID(string(k)),
		g.Attr("data-section", string(k)),
		Class(joinClass("relative overflow-hidden", bg, class)),
		f.layers(),
		Div(Class("relative z-20"), g.Group(children)),
	)
}

func (f frame) logoOrBadge(o Options, centered bool) g.Node {
	align := ""
	if centered {
		align = "mx-auto"
	}
	if o.LogoSrc != "" {
		return Img(Class(joinClass("h-12 mb-6 object-contain", align)), Src(o.LogoSrc), Alt(o.BusinessName))
	}
	return Div(Class(joinClass("inline-block px-3 py-1 rounded-full text-xs mb-6", f.ink.Badge)), g.Text(o.BusinessName))
}
