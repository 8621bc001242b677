package ui

import "hummus/internal/symbols"

// Single-width glyphs so member columns stay aligned.
const (
	glyphUser    = "●"
	glyphGroup   = "◎"
	glyphClass   = "▣"
	glyphAlert   = "!"
	glyphUnknown = "?"
)

// IconGlyph returns the glyph drawn for an icon kind.
// Undeclared kinds get glyphUnknown.
func IconGlyph(kind symbols.IconKind) string {
	switch kind {
	case symbols.IconUser:
		return glyphUser
	case symbols.IconGroup:
		return glyphGroup
	case symbols.IconClass:
		return glyphClass
	case symbols.IconAlert:
		return glyphAlert
	default:
		return glyphUnknown
	}
}
