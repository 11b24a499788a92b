package editor

import (
	"strings"

	"github.com/oliveiraclick/criadorLP/internal/sections"
)

// Visual styles offered by the wizard.
const (
	StyleMinimal   = "Limpo & Minimalista"
	StyleBold      = "Ousado & Escuro"
	StyleCreative  = "Criativo / 3D"
	StyleCorporate = "Corporativo / Confiança"
)

// Styles lists the wizard choices.
var Styles = []string{StyleCorporate, StyleMinimal, StyleBold, StyleCreative}

// ForStyle maps a wizard style to the hero layout and theme it implies.
func ForStyle(style string) (sections.HeroVariant, sections.Theme) {
	switch strings.TrimSpace(style) {
	case StyleMinimal:
		return sections.HeroClassicCentered, sections.ThemeMinimal
	case StyleBold:
		return sections.HeroImpactFull, sections.ThemeBold
	case StyleCreative:
		return sections.HeroImpactBigType, sections.ThemeBold
	default:
		return sections.HeroSplitRight, sections.ThemeTrust
	}
}
