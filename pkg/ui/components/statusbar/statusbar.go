package statusbar

import (
	"strings"

	"vectorprime/pkg/ui/styles"

	"github.com/charmbracelet/x/ansi"
)

const (
	brandLabel  = "VECTOR PRIME"
	agentsLabel = "● Agents Online"
	separator   = " │ "
)

// StatusBar is the single line at the bottom of the dashboard.
type StatusBar struct {
	section  string
	message  string
	revision string
	analyzer string
	typing   bool
	width    int
}

// New creates a status bar with a default width of 80.
func New() *StatusBar {
	return &StatusBar{width: 80}
}

// SetSection names the active tab.
func (s *StatusBar) SetSection(name string) { s.section = name }

// SetMessage shows a transient message in place of the key hints.
func (s *StatusBar) SetMessage(msg string) { s.message = strings.TrimSpace(msg) }

// SetRevision sets the checkout label shown on the right. Empty hides it.
func (s *StatusBar) SetRevision(label string) { s.revision = strings.TrimSpace(label) }

// SetAnalyzer sets the analysis service host shown on the right.
func (s *StatusBar) SetAnalyzer(host string) { s.analyzer = strings.TrimSpace(host) }

// SetTyping toggles the assistant typing hint.
func (s *StatusBar) SetTyping(typing bool) { s.typing = typing }

// SetWidth updates the width for rendering
func (s *StatusBar) SetWidth(width int) { s.width = width }

// Render returns the styled bar, exactly width cells wide.
func (s *StatusBar) Render() string {
	left := brandLabel
	if s.section != "" {
		left += separator + s.section
	}
	switch {
	case s.message != "":
		left += separator + s.message
	case s.typing:
		left += separator + "assistant typing…"
	default:
		left += separator + "1/2/3 Tabs | Ctrl+T Chat | Ctrl+C Quit"
	}

	right := []string{agentsLabel}
	if s.analyzer != "" {
		right = append(right, s.analyzer)
	}
	if s.revision != "" {
		right = append(right, "⎇ "+s.revision)
	}
	rightText := strings.Join(right, separator)

	inner := max(s.width-2, 0)
	rightWidth := ansi.StringWidth(rightText)
	if rightWidth+2 > inner {
		rightText = ""
		rightWidth = 0
	}

	leftRoom := inner - rightWidth
	if rightWidth > 0 {
		leftRoom -= 2
	}
	if ansi.StringWidth(left) > leftRoom {
		left = ansi.Truncate(left, max(leftRoom, 0), "…")
	}

	gap := max(inner-ansi.StringWidth(left)-rightWidth, 0)
	content := left + strings.Repeat(" ", gap) + rightText
	return statusStyle.Width(max(s.width, 0)).Render(content)
}

var statusStyle = styles.StatusBarStyle
