// Package background composes the layered backdrop of a page section: base media, a color or
// gradient overlay and a procedural texture, bottom to top.
package background

import (
	"fmt"
	"strconv"
	"strings"
)

// Gradient selects how the overlay color is spread over the media.
type Gradient string

const (
	GradientNone     Gradient = "none"
	GradientToBottom Gradient = "to_bottom"
	GradientToRight  Gradient = "to_right"
	GradientRadial   Gradient = "radial"
)

// Gradients lists the overlay modes offered by the background panel.
var Gradients = []Gradient{GradientNone, GradientToBottom, GradientToRight, GradientRadial}

// ParseGradient falls back to GradientNone for unknown values.
func ParseGradient(raw string) Gradient {
	g := Gradient(strings.TrimSpace(raw))
	switch g {
	case GradientNone, GradientToBottom, GradientToRight, GradientRadial:
		return g
	default:
		return GradientNone
	}
}

// Texture is a procedural pattern drawn over the overlay.
type Texture string

const (
	TextureNone  Texture = "none"
	TextureDots  Texture = "dots"
	TextureGrid  Texture = "grid"
	TextureLines Texture = "lines"
	TextureMesh  Texture = "mesh"
	TextureNoise Texture = "noise"
)

// Textures lists the texture presets offered by the background panel.
var Textures = []Texture{TextureNone, TextureDots, TextureGrid, TextureLines, TextureMesh, TextureNoise}

// ParseTexture falls back to TextureNone for unknown values.
func ParseTexture(raw string) Texture {
	t := Texture(strings.TrimSpace(raw))
	switch t {
	case TextureNone, TextureDots, TextureGrid, TextureLines, TextureMesh, TextureNoise:
		return t
	default:
		return TextureNone
	}
}

// Default opacities used when a section has no explicit value.
const (
	DefaultOverlayOpacity = 80
	DefaultTextureOpacity = 30
	DefaultOverlayColor   = "#000000"
)

// Config is the background part of a section configuration.
type Config struct {
	Image          string   `json:"bgImage,omitempty"`
	Video          string   `json:"bgVideo,omitempty"`
	OverlayColor   string   `json:"overlayColor"`
	OverlayOpacity int      `json:"overlayOpacity"`
	Gradient       Gradient `json:"gradient"`
	Texture        Texture  `json:"texture"`
	TextureOpacity int      `json:"textureOpacity"`
}

// Defaults returns the configuration of a section with no media.
func Defaults() Config {
	return Config{
		OverlayColor:   DefaultOverlayColor,
		OverlayOpacity: DefaultOverlayOpacity,
		Gradient:       GradientNone,
		Texture:        TextureNone,
		TextureOpacity: DefaultTextureOpacity,
	}
}

// MediaKind identifies the base layer.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Media is the bottom layer.
type Media struct {
	Kind MediaKind
	Src  string
}

// Layer is a full-bleed block painted with Style at Opacity (already applied for overlays).
type Layer struct {
	Style   string
	Opacity float64
}

// Composite is the computed stack. When Active is false no layer is set and the section keeps
// its theme background.
type Composite struct {
	Active  bool
	Media   Media
	Overlay *Layer
	Texture *Layer
	// Alpha is the overlay alpha, TextureAlpha the texture alpha.
	Alpha        float64
	TextureAlpha float64
}

// Compose computes the ordered layers for c. Video wins over image.
func Compose(c Config) Composite {
	var out Composite
	switch {
	case strings.TrimSpace(c.Video) != "":
		out.Media = Media{Kind: MediaVideo, Src: strings.TrimSpace(c.Video)}
	case strings.TrimSpace(c.Image) != "":
		out.Media = Media{Kind: MediaImage, Src: strings.TrimSpace(c.Image)}
	default:
		return out
	}
	out.Active = true
	out.Alpha = Alpha(c.OverlayOpacity)
	out.TextureAlpha = Alpha(c.TextureOpacity)

	r, g, b := ParseHex(c.OverlayColor)
	out.Overlay = &Layer{Style: overlayStyle(ParseGradient(string(c.Gradient)), r, g, b, out.Alpha), Opacity: 1}

	if tex := ParseTexture(string(c.Texture)); tex != TextureNone {
		out.Texture = &Layer{Style: textureStyle(tex), Opacity: out.TextureAlpha}
	}
	return out
}

// ClampOpacity bounds v to [0,100].
func ClampOpacity(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// Alpha converts a 0..100 opacity into a 0..1 alpha after clamping.
func Alpha(opacity int) float64 {
	return float64(ClampOpacity(opacity)) / 100
}

// ParseHex reads #rgb or #rrggbb and falls back to black.
func ParseHex(s string) (r, g, b uint8) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// NormalizeHex returns s as #rrggbb, or fallback when s is not a hex color.
func NormalizeHex(s, fallback string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(trimmed) != 3 && len(trimmed) != 6 {
		return fallback
	}
	if _, err := strconv.ParseUint(trimmed, 16, 32); err != nil {
		return fallback
	}
	r, g, b := ParseHex(trimmed)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func rgba(r, g, b uint8, a float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(a, 'f', -1, 64))
}

func overlayStyle(grad Gradient, r, g, b uint8, alpha float64) string {
	c := rgba(r, g, b, alpha)
	solid := rgba(r, g, b, 1)
	switch grad {
	case GradientToBottom:
		return fmt.Sprintf("background: linear-gradient(to bottom, %s, %s);", c, solid)
	case GradientToRight:
		return fmt.Sprintf("background: linear-gradient(to right, %s, transparent);", c)
	case GradientRadial:
		return fmt.Sprintf("background: radial-gradient(circle, transparent 20%%, %s 100%%);", c)
	case GradientNone:
		return fmt.Sprintf("background-color: %s;", c)
	}
	return fmt.Sprintf("background-color: %s;", c)
}

const noiseSVG = `url("data:image/svg+xml,%3Csvg viewBox='0 0 200 200' xmlns='http://www.w3.org/2000/svg'%3E%3Cfilter id='n'%3E%3CfeTurbulence type='fractalNoise' baseFrequency='0.65' numOctaves='3' stitchTiles='stitch'/%3E%3C/filter%3E%3Crect width='100%25' height='100%25' filter='url(%23n)'/%3E%3C/svg%3E")`

func textureStyle(t Texture) string {
	switch t {
	case TextureDots:
		return "background-image: radial-gradient(rgba(255, 255, 255, 0.8) 1px, transparent 1px); background-size: 20px 20px;"
	case TextureGrid:
		return "background-image: linear-gradient(rgba(255, 255, 255, 0.5) 1px, transparent 1px), linear-gradient(90deg, rgba(255, 255, 255, 0.5) 1px, transparent 1px); background-size: 30px 30px;"
	case TextureLines:
		return "background-image: repeating-linear-gradient(45deg, rgba(255, 255, 255, 0.5) 0, rgba(255, 255, 255, 0.5) 1px, transparent 0, transparent 50%); background-size: 10px 10px;"
	case TextureMesh:
		return "background-image: radial-gradient(at 40% 20%, hsla(28, 100%, 74%, 1) 0px, transparent 50%), radial-gradient(at 80% 0%, hsla(189, 100%, 56%, 1) 0px, transparent 50%), radial-gradient(at 0% 50%, hsla(355, 100%, 93%, 1) 0px, transparent 50%);"
	case TextureNoise:
		return "background-image: " + noiseSVG + ";"
	case TextureNone:
		return ""
	}
	return ""
}
