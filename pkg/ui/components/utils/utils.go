// Package utils holds the cell-width helpers shared by the dashboard panels.
// Widths are terminal cells, so ₹, box glyphs and CJK client names measure
// correctly.
package utils

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text. It is one cell wide.
const Ellipsis = "…"

// TruncateToWidth shortens plain text to width cells, ending in Ellipsis
// when anything was cut.
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return TrimToWidth(text, width)
	}
	return TrimToWidth(text, width-1) + Ellipsis
}

// TrimToWidth trims string to width without ellipsis
func TrimToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	currentWidth := 0
	for _, r := range text {
		runeWidth := runewidth.RuneWidth(r)
		if currentWidth+runeWidth > width {
			break
		}
		sb.WriteRune(r)
		currentWidth += runeWidth
	}
	return sb.String()
}

// Fit makes plain text exactly width cells: truncated with an ellipsis when
// too long, space-padded when short. Table-like rows (nav items, chart
// labels, product lines) use it to keep columns aligned.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = TruncateToWidth(text, width)
	return text + strings.Repeat(" ", width-runewidth.StringWidth(text))
}

// PadStyled pads text with spaces to width, ignoring ANSI styling.
func PadStyled(text string, width int) string {
	if width <= 0 {
		return text
	}
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return text + strings.Repeat(" ", width-textWidth)
}
