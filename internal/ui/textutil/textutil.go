// Package textutil provides unicode-aware width helpers for laying out todo
// rows in a fixed-width terminal column.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks a truncated title.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis when
// anything was cut. Wide runes (CJK, emoji) are never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// Fit truncates or right-pads s to exactly width columns.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Truncate(s, width), width)
}
