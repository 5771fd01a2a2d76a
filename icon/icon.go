// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/appecho/alpha/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

// Get retrieves the visual representation for the receiver Def based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}

// Icon identifies a UI symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Resolver
	Video
	Audio
	Gallery
	Download
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "\uf00c",
		plain:   "✓",
		kaomoji: "(ᵔᵕᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "\uf00d",
		plain:   "✗",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "\uf110",
		plain:   "…",
		kaomoji: "(・_・)",
		squares: "🟨",
	},
	Resolver: {
		emoji:   "🔌",
		nerd:    "\uf1e6",
		plain:   "*",
		kaomoji: "(⌐■_■)",
		squares: "🟦",
	},
	Video: {
		emoji:   "🎬",
		nerd:    "\uf03d",
		plain:   "V",
		kaomoji: "(▭▭)",
		squares: "🟪",
	},
	Audio: {
		emoji:   "🎵",
		nerd:    "\uf001",
		plain:   "A",
		kaomoji: "(♪)",
		squares: "🟧",
	},
	Gallery: {
		emoji:   "🖼",
		nerd:    "\uf03e",
		plain:   "G",
		kaomoji: "(◕‿◕)",
		squares: "🟫",
	},
	Download: {
		emoji:   "📥",
		nerd:    "\uf019",
		plain:   "↓",
		kaomoji: "(っ˘ω˘ς)",
		squares: "⬛",
	},
}
