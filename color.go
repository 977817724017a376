package ggbutton

import "github.com/gogpu/gg"

// Color is an optional paint colour. The zero value is unset, meaning
// "use the widget's native colour" for backgrounds and text.
type Color struct {
	RGBA  gg.RGBA
	Valid bool
}

// C wraps a gg colour as a set Color.
func C(c gg.RGBA) Color {
	return Color{RGBA: c, Valid: true}
}

// Hex parses a hex colour ("RGB", "RGBA", "RRGGBB", "RRGGBBAA", optional
// leading '#') as a set Color. An empty string yields an unset Color.
func Hex(s string) Color {
	if s == "" {
		return Color{}
	}
	return C(gg.Hex(s))
}

// Unset is the "defer to the widget" colour.
var Unset Color

// Transparent is an explicitly set, fully transparent colour.
var Transparent = C(gg.Transparent)

// TransparentWhite is what every fully transparent colour resolves to, so
// blending downstream never sees transparent black.
var TransparentWhite = gg.RGBA{R: 1, G: 1, B: 1, A: 0}

// Named colours used by DefaultStyle.
var (
	Black      = C(gg.Black)
	Blue       = C(gg.Blue)
	DarkGray   = Hex("A9A9A9")
	LightGray  = Hex("D3D3D3")
	Gray       = Hex("808080")
	GhostWhite = Hex("F8F8FF")
)

// normalize maps any fully transparent colour to TransparentWhite.
func normalize(c gg.RGBA) gg.RGBA {
	if c.A == 0 {
		return TransparentWhite
	}
	return c
}

// isTransparent reports whether c has no coverage at all.
func isTransparent(c gg.RGBA) bool {
	return c.A == 0
}
