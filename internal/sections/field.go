package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oliveiraclick/criadorLP/internal/markup"
)

// Options carries the page-wide values every renderer needs besides its own content.
type Options struct {
	Editing      bool
	Primary      string
	Secondary    string
	BusinessName string
	// LogoSrc is the resolved logo URL or data URI; empty shows the name badge.
	LogoSrc string
}

// Attributes the browser side of the editor looks for. The exporter strips them.
const (
	AttrField      = "data-field"
	AttrMultiline  = "data-multiline"
	AttrSource     = "data-source"
	AttrEditorOnly = "data-editor-only"
)

// text renders a single-line field. In edit mode Enter commits it.
func (o Options) text(tag, path, value, class string, extra ...g.Node) g.Node {
	return g.El(tag, o.fieldAttrs(path, class, false), g.Group(extra), g.Text(value))
}

// block renders a multi-line field.
func (o Options) block(tag, path, value, class string, extra ...g.Node) g.Node {
	return g.El(tag, o.fieldAttrs(path, class, true), g.Group(extra), g.Text(value))
}

// markdown renders value as sanitized inline Markdown. While editing, the raw source rides
// along in data-source so the browser can swap it in on focus.
func (o Options) markdown(tag, path, value, class string) g.Node {
	nodes := []g.Node{o.fieldAttrs(path, class, true)}
	if o.Editing {
		nodes = append(nodes, g.Attr(AttrSource, value))
	}
	nodes = append(nodes, g.Raw(markup.Inline(value)))
	return g.El(tag, nodes...)
}

func (o Options) fieldAttrs(path, class string, multiline bool) g.Node {
	if !o.Editing {
		if class == "" {
			return nil
		}
		return Class(class)
	}
	nodes := []g.Node{
		Class(joinClass(class, "outline-none focus:ring-2 focus:ring-blue-400/60 rounded-sm cursor-text")),
		g.Attr(AttrField, path),
		g.Attr("contenteditable", "true"),
	}
	if multiline {
		nodes = append(nodes, g.Attr(AttrMultiline, "true"))
	}
	return g.Group(nodes)
}

func joinClass(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}

func style(css string) g.Node {
	if css == "" {
		return nil
	}
	return g.Attr("style", css)
}

func bgColor(c string) g.Node { return style("background-color: " + c + ";") }

func fgColor(c string) g.Node { return style("color: " + c + ";") }

func editorOnly() g.Node { return g.Attr(AttrEditorOnly, "true") }

func mapIndex[T any](ts []T, cb func(int, T) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(ts))
	for i, t := range ts {
		nodes = append(nodes, cb(i, t))
	}
	return nodes
}
