// Package icon renders status symbols in the configured variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/prism-cli/prism/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported variant name.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Lua Icon = iota + 1
	Success
	Fail
	Warn
	Question
	Palette
)

// iconDef holds one symbol in every variant.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Lua:      {emoji: "🌙", nerd: "", plain: "lua", kaomoji: "(=^･ω･^=)", squares: "▣"},
	Success:  {emoji: "🎉", nerd: "", plain: "ok", kaomoji: "(ᵔ◡ᵔ)", squares: "■"},
	Fail:     {emoji: "💀", nerd: "", plain: "fail", kaomoji: "(╥﹏╥)", squares: "□"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "warn", kaomoji: "(°ロ°)", squares: "◩"},
	Question: {emoji: "🤔", nerd: "", plain: "?", kaomoji: "(・_・ヾ", squares: "◫"},
	Palette:  {emoji: "🎨", nerd: "", plain: "*", kaomoji: "ヽ(・∀・)ﾉ", squares: "▦"},
}

// Get returns d in the configured variant, or an empty string for an unknown variant.
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

// Get returns i in the configured variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}
