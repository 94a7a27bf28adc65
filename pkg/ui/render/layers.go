// Package render composites floating panels over the dashboard.
package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Rect is a region of the screen in cells.
type Rect struct {
	X, Y, W, H int
}

// CenterRect returns a panelW x panelH rectangle centered on the screen.
// The panel is shrunk to fit when it is larger than the screen.
func CenterRect(panelW, panelH, screenW, screenH int) Rect {
	screenW, screenH = max(screenW, 0), max(screenH, 0)
	w := min(max(panelW, 0), screenW)
	h := min(max(panelH, 0), screenH)
	return Rect{X: (screenW - w) / 2, Y: (screenH - h) / 2, W: w, H: h}.Clamp(screenW, screenH)
}

// Clamp keeps r inside a screenW x screenH screen.
func (r Rect) Clamp(screenW, screenH int) Rect {
	screenW, screenH = max(screenW, 0), max(screenH, 0)
	r.X = min(max(r.X, 0), screenW)
	r.Y = min(max(r.Y, 0), screenH)
	r.W = max(min(max(r.W, 0), screenW-r.X), 0)
	r.H = max(min(max(r.H, 0), screenH-r.Y), 0)
	return r
}

// Overlay draws panel centered over background. Cells outside the panel
// keep the background.
func Overlay(background, panel string, screenW, screenH int) string {
	if panel == "" {
		return background
	}
	bg := strings.Split(background, "\n")
	fg := strings.Split(panel, "\n")

	panelW := 0
	for _, line := range fg {
		panelW = max(panelW, ansi.StringWidth(line))
	}
	r := CenterRect(panelW, len(fg), screenW, screenH)

	for len(bg) < screenH {
		bg = append(bg, "")
	}
	for i := 0; i < r.H; i++ {
		row := r.Y + i
		bg[row] = splice(bg[row], fg[i], r.X, r.W, screenW)
	}
	return strings.Join(bg, "\n")
}

// splice replaces cells [x, x+w) of line with mid.
func splice(line, mid string, x, w, screenW int) string {
	left := padTo(ansi.Truncate(line, x, ""), x)
	mid = padTo(ansi.Truncate(mid, w, ""), w)
	right := ""
	if x+w < screenW {
		right = ansi.Cut(line, x+w, screenW)
	}
	return left + ansi.ResetStyle + mid + ansi.ResetStyle + right
}

func padTo(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
