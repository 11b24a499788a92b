package export

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oliveiraclick/criadorLP/internal/editor"
	"github.com/oliveiraclick/criadorLP/internal/sections"
	"github.com/oliveiraclick/criadorLP/internal/testutil"
)

func renderEditing(t *testing.T, name string) (*editor.State, []byte) {
	t.Helper()
	s := editor.New(url.Values{"name": {name}, "industry": {"health"}})
	s.Editing = true
	var buf bytes.Buffer
	require.NoError(t, sections.Page(s.PageModel("")).Render(&buf))
	return s, buf.Bytes()
}

func unzip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	files := map[string]string{}
	for _, f := range zr.File {
		require.Equal(t, zip.Deflate, f.Method)
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = string(b)
	}
	return files
}

func TestPackageStripsEditorChrome(t *testing.T) {
	t.Parallel()

	s, markup := renderEditing(t, "Clínica Vida")
	original := append([]byte(nil), markup...)
	require.Contains(t, string(markup), "contenteditable")

	a, err := New().Package(context.Background(), Input{
		Markup:       markup,
		BusinessName: s.Global.BusinessName,
		SEO:          s.Meta(""),
	})
	require.NoError(t, err)
	require.Equal(t, "lp-clinica-vida.zip", a.Filename)
	require.Empty(t, a.Key)
	require.Equal(t, original, markup)

	files := unzip(t, a.Data)
	require.Len(t, files, 2)
	index := files[IndexFile]
	require.True(t, strings.HasPrefix(index, "<!DOCTYPE html>\n<html lang=\"pt-BR\">"))
	require.Contains(t, index, `<script src="https://cdn.tailwindcss.com"></script>`)
	require.Contains(t, index, "system-ui, sans-serif")

	doc := testutil.ParseHTML(t, []byte(index))
	require.Equal(t, s.SEO.Title, doc.Find("title").Text())
	require.Equal(t, 0, doc.Find("main").Length())
	require.Equal(t, 6, doc.Find("body [data-section]").Length())
	require.Equal(t, 0, doc.Find("[data-editor-only], .exclude-from-export, form").Length())
	require.Equal(t, 0, doc.Find("[contenteditable], [data-field], [data-source], [data-multiline]").Length())
	require.Contains(t, doc.Find("body").Text(), s.Hero.Headline)
	require.Equal(t, 3, doc.Find(`script[type="application/ld+json"]`).Length())
	require.Equal(t, "bg-white", doc.Find("body").AttrOr("class", ""))

	require.True(t, strings.HasPrefix(files[ReadmeFile], readmeText))
}

func TestPackageWithoutMainFails(t *testing.T) {
	t.Parallel()

	var results []string
	p := New(WithObserver(func(result string, _ int) { results = append(results, result) }))
	_, err := p.Package(context.Background(), Input{Markup: []byte("<div>nada</div>"), BusinessName: "X"})
	require.True(t, errors.Is(err, ErrNoContent))
	require.Equal(t, []string{"error"}, results)
}

func TestPackageTitleFallsBackToBusinessName(t *testing.T) {
	t.Parallel()

	a, err := New().Package(context.Background(), Input{
		Markup:       []byte(`<main id="page"><section data-section="hero">Oi</section></main>`),
		BusinessName: "Padaria Pão",
	})
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, []byte(unzip(t, a.Data)[IndexFile]))
	require.Equal(t, "Padaria Pão - Landing Page", doc.Find("title").Text())
	require.Equal(t, "summary", doc.Find(`meta[name="twitter:card"]`).AttrOr("content", ""))
}

func TestPackageOutline(t *testing.T) {
	t.Parallel()

	a, err := New(WithOutline(true)).Package(context.Background(), Input{
		Markup:       []byte(`<main><section><h1>Bem-vindo</h1><p>Texto <strong>forte</strong></p><form class="exclude-from-export"><h2>Barra</h2></form></section></main>`),
		BusinessName: "Loja",
	})
	require.NoError(t, err)
	readme := unzip(t, a.Data)[ReadmeFile]
	require.Contains(t, readme, "Conteúdo da página:")
	require.Contains(t, readme, "# Bem-vindo")
	require.Contains(t, readme, "**forte**")
	require.NotContains(t, readme, "Barra")
}

func TestFilename(t *testing.T) {
	t.Parallel()

	require.Equal(t, "lp-sua-empresa.zip", Filename("Sua Empresa"))
	require.Equal(t, "lp-pagina.zip", Filename("  !!! "))
	require.Equal(t, "lp-acai-da-joana.zip", Filename("Açaí da Joana"))
}

func TestDirSinkKeepsArchive(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var sizes []int
	p := New(
		WithSink(DirSink{Root: root}),
		WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }),
		WithObserver(func(_ string, size int) { sizes = append(sizes, size) }),
	)
	a, err := p.Package(context.Background(), Input{Markup: []byte("<main>oi</main>"), BusinessName: "Loja"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(a.Key, "exports/"))
	require.True(t, strings.HasSuffix(a.Key, "/lp-loja.zip"))

	kept, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(a.Key)))
	require.NoError(t, err)
	require.Equal(t, a.Data, kept)
	require.Equal(t, []int{len(a.Data)}, sizes)
}

func TestDirSinkRequiresRoot(t *testing.T) {
	t.Parallel()

	_, err := DirSink{}.Keep(context.Background(), Archive{Filename: "lp-x.zip"})
	require.Error(t, err)
}

func TestNewGCSSinkValidates(t *testing.T) {
	t.Parallel()

	_, err := NewGCSSink(nil, "bucket")
	require.Error(t, err)
}

func TestObjectKey(t *testing.T) {
	t.Parallel()

	a, b := ObjectKey("lp-x.zip"), ObjectKey("lp-x.zip")
	require.NotEqual(t, a, b)
	parts := strings.Split(a, "/")
	require.Len(t, parts, 3)
	require.Equal(t, "exports", parts[0])
	require.Len(t, parts[1], 26)
	require.Equal(t, "lp-x.zip", parts[2])
}
