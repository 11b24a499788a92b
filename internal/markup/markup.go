// Package markup renders the small Markdown fragments users type into FAQ answers and the
// footer blurb.
package markup

import (
	"bytes"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
	policy = sync.OnceValue(newInlinePolicy)
)

func newInlinePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong", "em", "del", "code", "ul", "ol", "li")
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Inline converts src to sanitized HTML. A single wrapping paragraph is dropped so the result
// can sit inside an existing <p>.
func Inline(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return policy().Sanitize(src)
	}
	out := strings.TrimSpace(policy().Sanitize(buf.String()))
	if strings.Count(out, "<p>") == 1 && strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out
}

var strict = sync.OnceValue(bluemonday.StrictPolicy)

// Plain renders src and strips every tag, for places that only take text such as JSON-LD.
func Plain(src string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(strings.TrimSpace(src)), &buf); err != nil {
		return strings.TrimSpace(strict().Sanitize(src))
	}
	return html.UnescapeString(strings.Join(strings.Fields(strict().Sanitize(buf.String())), " "))
}
