package content

// Icons is the set offered by the feature icon picker.
var Icons = []string{
	"Zap", "Shield", "Headphones", "Heart", "Award", "Smile", "Cpu", "Cloud", "Lock",
	"PiggyBank", "BarChart", "BookOpen", "GraduationCap", "Users", "Target", "Megaphone",
	"TrendingUp", "Music", "Mic", "ShoppingBag", "Globe", "Laptop", "Wrench", "Clock",
	"Star", "Check", "Rocket", "Settings",
}

var iconGlyphs = map[string]string{
	"Zap":           "⚡",
	"Shield":        "🛡️",
	"Headphones":    "🎧",
	"Heart":         "❤️",
	"Award":         "🏆",
	"Smile":         "😊",
	"Cpu":           "💻",
	"Cloud":         "☁️",
	"Lock":          "🔒",
	"PiggyBank":     "🐷",
	"BarChart":      "📊",
	"BookOpen":      "📖",
	"GraduationCap": "🎓",
	"Users":         "👥",
	"Target":        "🎯",
	"Megaphone":     "📣",
	"TrendingUp":    "📈",
	"Music":         "🎵",
	"Mic":           "🎤",
	"ShoppingBag":   "🛍️",
	"Globe":         "🌎",
	"Laptop":        "💻",
	"Wrench":        "🔧",
	"Clock":         "⏰",
	"Star":          "⭐",
	"Check":         "✅",
	"Rocket":        "🚀",
	"Settings":      "⚙️",
}

// IconGlyph returns the glyph drawn for icon name; unknown names get the settings glyph.
func IconGlyph(name string) string {
	if g, ok := iconGlyphs[name]; ok {
		return g
	}
	return iconGlyphs["Settings"]
}
