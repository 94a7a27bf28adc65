package ui

import (
	"strings"

	"vectorprime/pkg/ui/components/nav"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	// below this width the navigation column is dropped
	navMinWidth  = 80
	chatMinWidth = 32
	chatMaxWidth = 48
	mainMinWidth = 20
	statusHeight = 1
)

// Layout splits the screen into navigation, main content and the chat
// sidebar, with the status bar underneath.
type Layout struct {
	Width  int
	Height int

	NavWidth   int
	MainWidth  int
	ChatWidth  int
	BodyHeight int
}

// ComputeLayout sizes the columns for a width x height terminal.
func ComputeLayout(width, height int, chatVisible bool) Layout {
	l := Layout{
		Width:      width,
		Height:     height,
		BodyHeight: max(height-statusHeight, 1),
	}
	if width >= navMinWidth {
		l.NavWidth = nav.Width
	}
	if chatVisible {
		l.ChatWidth = min(chatMaxWidth, max(chatMinWidth, width/3))
		if width-l.NavWidth-l.ChatWidth < mainMinWidth {
			l.NavWidth = 0
		}
		l.ChatWidth = min(l.ChatWidth, max(width-mainMinWidth, 0))
	}
	l.MainWidth = max(width-l.NavWidth-l.ChatWidth, 1)
	return l
}

// RenderBody joins the columns side by side.
func (l Layout) RenderBody(navView, mainView, chatView string) string {
	cols := make([]string, 0, 3)
	if l.NavWidth > 0 {
		cols = append(cols, navView)
	}
	cols = append(cols, Frame(mainView, l.MainWidth, l.BodyHeight))
	if l.ChatWidth > 0 && chatView != "" {
		cols = append(cols, chatView)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// RenderLayout stacks the body and the status bar.
func (l Layout) RenderLayout(body, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}

// Frame clips or pads content to exactly width x height cells.
func Frame(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		line = ansi.Truncate(line, width, "")
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		lines[i] = line
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}
