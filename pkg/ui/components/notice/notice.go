// Package notice is a modal alert that blocks the dashboard until dismissed.
package notice

import (
	"strings"

	"vectorprime/pkg/ui/components/utils"
	"vectorprime/pkg/ui/styles"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const maxWidth = 60

// ClosedMsg is sent when the notice is dismissed.
type ClosedMsg struct{}

// Notice holds at most one message at a time.
type Notice struct {
	title   string
	body    string
	visible bool
	width   int
	height  int
}

// New returns a hidden notice.
func New() *Notice {
	return &Notice{}
}

// Show displays title and body, replacing any notice already shown.
func (n *Notice) Show(title, body string) {
	n.title = title
	n.body = body
	n.visible = true
}

// Hide dismisses the notice.
func (n *Notice) Hide() {
	n.visible = false
}

// IsVisible reports whether the notice is up.
func (n *Notice) IsVisible() bool {
	return n.visible
}

// Body returns the current message.
func (n *Notice) Body() string {
	return n.body
}

// SetSize sets the area the notice is centered in.
func (n *Notice) SetSize(width, height int) {
	n.width = width
	n.height = height
}

// Update dismisses the notice on Enter, Esc, q or Space. Every other key is
// swallowed while it is visible.
func (n *Notice) Update(msg tea.KeyPressMsg) tea.Cmd {
	if !n.visible {
		return nil
	}
	switch msg.String() {
	case "enter", "esc", "q", "space":
		n.Hide()
		return func() tea.Msg { return ClosedMsg{} }
	}
	return nil
}

// View renders the alert box, or "" when hidden.
func (n *Notice) View() string {
	if !n.visible {
		return ""
	}

	boxWidth := min(maxWidth, max(n.width-4, 20))
	contentWidth := max(boxWidth-6, 1)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(utils.TruncateToWidth("⚠ "+n.title, contentWidth)))
	sb.WriteString("\n\n")
	sb.WriteString(bodyStyle.Width(contentWidth).Render(n.body))
	sb.WriteString("\n\n")
	sb.WriteString(styles.FooterStyle.Render("Enter OK"))

	return boxStyle.Width(boxWidth).Render(sb.String())
}

var (
	boxStyle = styles.BoxStyle.BorderForeground(styles.ColorWarning)

	titleStyle = lipgloss.NewStyle().
			Foreground(styles.ColorWarning).
			Bold(true)

	bodyStyle = styles.TextStyle
)
