package background

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeWithoutMediaIsInactive(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	cfg.Gradient = GradientRadial
	cfg.Texture = TextureDots
	got := Compose(cfg)
	require.False(t, got.Active)
	require.Nil(t, got.Overlay)
	require.Nil(t, got.Texture)
}

func TestComposeAlphaMatchesOpacity(t *testing.T) {
	t.Parallel()

	for op := 0; op <= 100; op++ {
		cfg := Defaults()
		cfg.Image = "https://example.com/a.jpg"
		cfg.OverlayOpacity = op
		cfg.TextureOpacity = op
		cfg.Texture = TextureGrid
		got := Compose(cfg)
		require.True(t, got.Active)
		require.Equal(t, float64(op)/100, got.Alpha)
		require.Equal(t, float64(op)/100, got.Texture.Opacity)
	}
}

func TestComposeClampsOpacity(t *testing.T) {
	t.Parallel()

	cfg := Config{Image: "a.jpg", OverlayOpacity: 140, TextureOpacity: -3, Texture: TextureDots}
	got := Compose(cfg)
	require.Equal(t, 1.0, got.Alpha)
	require.Equal(t, 0.0, got.TextureAlpha)
}

func TestComposeVideoWinsOverImage(t *testing.T) {
	t.Parallel()

	got := Compose(Config{Image: "a.jpg", Video: "b.mp4"})
	require.Equal(t, Media{Kind: MediaVideo, Src: "b.mp4"}, got.Media)
}

func TestOverlayGradients(t *testing.T) {
	t.Parallel()

	base := Config{Image: "a.jpg", OverlayColor: "#f00", OverlayOpacity: 50}

	cases := map[Gradient]string{
		GradientNone:     "background-color: rgba(255, 0, 0, 0.5);",
		GradientToBottom: "background: linear-gradient(to bottom, rgba(255, 0, 0, 0.5), rgba(255, 0, 0, 1));",
		GradientToRight:  "background: linear-gradient(to right, rgba(255, 0, 0, 0.5), transparent);",
		GradientRadial:   "background: radial-gradient(circle, transparent 20%, rgba(255, 0, 0, 0.5) 100%);",
		"diagonal":       "background-color: rgba(255, 0, 0, 0.5);",
	}
	for grad, want := range cases {
		cfg := base
		cfg.Gradient = grad
		require.Equal(t, want, Compose(cfg).Overlay.Style, grad)
	}
}

func TestTextureDependsOnlyOnID(t *testing.T) {
	t.Parallel()

	a := Compose(Config{Image: "a.jpg", Texture: TextureLines, TextureOpacity: 30, OverlayColor: "#123456"})
	b := Compose(Config{Video: "b.mp4", Texture: TextureLines, TextureOpacity: 30, OverlayColor: "#abcdef"})
	require.Equal(t, a.Texture, b.Texture)
	require.Contains(t, a.Texture.Style, "repeating-linear-gradient(45deg")

	require.Nil(t, Compose(Config{Image: "a.jpg", Texture: "sparkles"}).Texture)
}

func TestParseHexFallsBackToBlack(t *testing.T) {
	t.Parallel()

	r, g, b := ParseHex("#2563eb")
	require.Equal(t, [3]uint8{0x25, 0x63, 0xeb}, [3]uint8{r, g, b})
	r, g, b = ParseHex("blue")
	require.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})

	require.Equal(t, "#ffaa00", NormalizeHex("#fa0", "#000000"))
	require.Equal(t, "#000000", NormalizeHex("#zzz", "#000000"))
}

func TestParsers(t *testing.T) {
	t.Parallel()

	require.Equal(t, GradientRadial, ParseGradient("radial"))
	require.Equal(t, GradientNone, ParseGradient("spiral"))
	require.Equal(t, TextureMesh, ParseTexture(" mesh "))
	require.Equal(t, TextureNone, ParseTexture(""))
}
