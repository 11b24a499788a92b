// Package export turns rendered page markup into a standalone, downloadable zip.
package export

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/oliveiraclick/criadorLP/internal/format"
	"github.com/oliveiraclick/criadorLP/internal/seo"
)

var ErrNoContent = errors.New("export: markup has no <main> region")

const (
	IndexFile  = "index.html"
	ReadmeFile = "README.txt"

	readmeText = "Gerado por Landing Factory.\nAbra index.html para visualizar."

	// chrome selects editor-only elements dropped from the capture.
	chrome = "[data-editor-only], .exclude-from-export"
)

var editingAttrs = []string{"data-field", "contenteditable", "data-multiline", "data-source", "spellcheck"}

var tracer = otel.Tracer("github.com/oliveiraclick/criadorLP/internal/export")

// Input is the rendered page plus what the document head needs.
type Input struct {
	Markup       []byte
	BusinessName string
	SEO          seo.Meta
}

// Archive is a packaged zip ready to be downloaded.
type Archive struct {
	Filename string
	Data     []byte
	// Key is where the sink kept a copy. Empty for NopSink.
	Key string
}

// Packager builds archives and hands them to a Sink.
type Packager struct {
	sink    Sink
	outline bool
	logger  *zap.Logger
	now     func() time.Time
	observe func(result string, size int)
}

type Option func(*Packager)

func WithSink(s Sink) Option {
	return func(p *Packager) {
		if s != nil {
			p.sink = s
		}
	}
}

// WithOutline appends a Markdown outline of the page to README.txt.
func WithOutline(enabled bool) Option {
	return func(p *Packager) { p.outline = enabled }
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Packager) {
		if l != nil {
			p.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Packager) {
		if now != nil {
			p.now = now
		}
	}
}

// WithObserver receives "ok" or "error" and the archive size after every Package call.
func WithObserver(fn func(result string, size int)) Option {
	return func(p *Packager) { p.observe = fn }
}

func New(opts ...Option) *Packager {
	p := &Packager{
		sink:   NopSink{},
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Package strips editor chrome from in.Markup, wraps the <main> contents in a standalone
// document and zips it with a README.
func (p *Packager) Package(ctx context.Context, in Input) (Archive, error) {
	ctx, span := tracer.Start(ctx, "export.Package")
	defer span.End()

	a, err := p.build(ctx, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.report("error", 0)
		p.logger.Warn("export failed", zap.String("business", in.BusinessName), zap.Error(err))
		return Archive{}, err
	}
	span.SetAttributes(
		attribute.String("export.filename", a.Filename),
		attribute.Int("export.bytes", len(a.Data)),
		attribute.String("export.key", a.Key),
	)
	p.report("ok", len(a.Data))
	p.logger.Info("export packaged",
		zap.String("filename", a.Filename),
		zap.Int("bytes", len(a.Data)),
		zap.String("key", a.Key),
	)
	return a, nil
}

func (p *Packager) build(ctx context.Context, in Input) (Archive, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(in.Markup))
	if err != nil {
		return Archive{}, fmt.Errorf("export: parse markup: %w", err)
	}
	region := doc.Find("main").First()
	if region.Length() == 0 {
		return Archive{}, ErrNoContent
	}
	region.Find(chrome).Remove()
	for _, attr := range editingAttrs {
		region.Find("[" + attr + "]").RemoveAttr(attr)
	}
	body, err := region.Html()
	if err != nil {
		return Archive{}, fmt.Errorf("export: capture main: %w", err)
	}

	index, err := renderShell(in, strings.TrimSpace(body))
	if err != nil {
		return Archive{}, err
	}

	readme := readmeText
	if p.outline {
		md, err := outline(region.Get(0))
		if err != nil {
			p.logger.Warn("export outline skipped", zap.Error(err))
		} else if md != "" {
			readme += "\n\nConteúdo da página:\n\n" + md + "\n"
		}
	}

	data, err := p.zip([]file{{IndexFile, index}, {ReadmeFile, []byte(readme)}})
	if err != nil {
		return Archive{}, err
	}
	a := Archive{
		Filename: Filename(in.BusinessName),
		Data:     data,
	}
	key, err := p.sink.Keep(ctx, a)
	if err != nil {
		return Archive{}, fmt.Errorf("export: keep archive: %w", err)
	}
	a.Key = key
	return a, nil
}

// Filename is the archive name for a business: lp-<slug>.zip.
func Filename(businessName string) string {
	return "lp-" + format.Slug(businessName) + ".zip"
}

type file struct {
	name string
	data []byte
}

func (p *Packager) zip(files []file) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	modified := p.now()
	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, fmt.Errorf("export: zip %s: %w", f.name, err)
		}
		if _, err := w.Write(f.data); err != nil {
			return nil, fmt.Errorf("export: zip %s: %w", f.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("export: zip: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *Packager) report(result string, size int) {
	if p.observe != nil {
		p.observe(result, size)
	}
}

var shell = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
{{- with .Meta.Description}}
<meta name="description" content="{{.}}">
{{- end}}
<meta property="og:title" content="{{.Title}}">
{{- with .Meta.OG.Description}}
<meta property="og:description" content="{{.}}">
{{- end}}
<meta property="og:type" content="{{or .Meta.OG.Type "website"}}">
{{- with .Meta.OG.Image}}
<meta property="og:image" content="{{.}}">
{{- end}}
<meta name="twitter:card" content="{{or .Meta.Twitter.Card "summary"}}">
{{- with .Meta.Twitter.Image}}
<meta name="twitter:image" content="{{.}}">
{{- end}}
<script src="https://cdn.tailwindcss.com"></script>
<style>body { font-family: system-ui, sans-serif; }</style>
{{- range .JSONLD}}
<script type="application/ld+json">{{.}}</script>
{{- end}}
</head>
<body class="bg-white">
{{.Body}}
</body>
</html>
`))

type shellData struct {
	Title  string
	Meta   seo.Meta
	JSONLD []template.JS
	Body   template.HTML
}

func renderShell(in Input, body string) ([]byte, error) {
	title := strings.TrimSpace(in.SEO.Title)
	if title == "" {
		title = strings.TrimSpace(in.BusinessName) + " - Landing Page"
	}
	data := shellData{
		Title: title,
		Meta:  in.SEO,
		Body:  template.HTML(body),
	}
	for _, ld := range in.SEO.JSONLD {
		if ld != "" {
			data.JSONLD = append(data.JSONLD, template.JS(ld))
		}
	}
	var buf bytes.Buffer
	if err := shell.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("export: render shell: %w", err)
	}
	return buf.Bytes(), nil
}
