// Package nav renders the dashboard's left-hand navigation column.
package nav

import (
	"fmt"
	"strings"

	"vectorprime/pkg/ui/components/utils"
	"vectorprime/pkg/ui/styles"
	"vectorprime/pkg/version"

	"charm.land/lipgloss/v2"
)

// Width is the fixed width of the column including its border.
const Width = 24

// Item is one navigation entry.
type Item struct {
	Key   string
	Label string
}

// Nav shows the brand, the tabs and the system status.
type Nav struct {
	items  []Item
	active int
	height int
}

// New creates a navigation column for items.
func New(items []Item) *Nav {
	return &Nav{items: items}
}

// SetActive highlights item i.
func (n *Nav) SetActive(i int) {
	if i >= 0 && i < len(n.items) {
		n.active = i
	}
}

// Active returns the highlighted index.
func (n *Nav) Active() int {
	return n.active
}

// SetHeight sets the column height including its border.
func (n *Nav) SetHeight(height int) {
	n.height = height
}

// View renders the column.
func (n *Nav) View() string {
	inner := Width - 4

	var lines []string
	lines = append(lines, brandStyle.Render("◆ Vector Prime"))
	lines = append(lines, styles.TextMutedStyle.Render("RFP Automation"))
	lines = append(lines, "")

	for i, item := range n.items {
		label := utils.TruncateToWidth(fmt.Sprintf("%s  %s", item.Key, item.Label), inner-2)
		if i == n.active {
			lines = append(lines, activeStyle.Render("▸ "+utils.Fit(label, inner-2)))
		} else {
			lines = append(lines, itemStyle.Render("  "+label))
		}
	}

	footer := []string{
		headerStyle.Render("SYSTEM STATUS"),
		onlineStyle.Render("● Agents Online"),
		styles.WelcomeVersionStyle.Render(utils.TruncateToWidth(version.Summary(), inner)),
	}

	bodyHeight := max(n.height-2, len(lines)+len(footer))
	for len(lines) < bodyHeight-len(footer) {
		lines = append(lines, "")
	}
	lines = append(lines, footer...)

	return boxStyle.Width(Width).Render(strings.Join(lines, "\n"))
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.ColorBorderMuted).
			Padding(0, 1)

	brandStyle = styles.WelcomeTitleStyle

	itemStyle = styles.TextStyle

	activeStyle = styles.SelectedStyle

	headerStyle = styles.WelcomeHeaderStyle.Bold(true)

	onlineStyle = lipgloss.NewStyle().Foreground(styles.ColorSuccess)
)
