// Package analytics renders the performance tab: headline cards and two
// horizontal bar charts.
package analytics

import (
	"fmt"
	"strings"

	"vectorprime/pkg/dashboard"
	"vectorprime/pkg/ui/components/utils"
	"vectorprime/pkg/ui/styles"

	"charm.land/lipgloss/v2"
)

const (
	cardWidth  = 20
	labelWidth = 14

	aiGlyph     = "█"
	manualGlyph = "▒"
)

// Analytics shows the impact metrics.
type Analytics struct {
	metrics []dashboard.Metric
	winRate []dashboard.WinRatePoint
	hours   []dashboard.ProcessingTime
	width   int
}

// New creates the tab from the dashboard data.
func New() *Analytics {
	return &Analytics{
		metrics: dashboard.Metrics(),
		winRate: dashboard.WinRate(),
		hours:   dashboard.ProcessingTimes(),
	}
}

// SetWidth sets the available width.
func (a *Analytics) SetWidth(width int) {
	a.width = width
}

// View renders the tab.
func (a *Analytics) View() string {
	var sb strings.Builder
	sb.WriteString(styles.TitleStyle.Render("Performance Analytics"))
	sb.WriteString("\n")
	sb.WriteString(styles.TextMutedStyle.Render("Impact metrics since deployment"))
	sb.WriteString("\n\n")
	sb.WriteString(a.cards())
	sb.WriteString("\n\n")
	sb.WriteString(a.winRateChart())
	sb.WriteString("\n\n")
	sb.WriteString(a.hoursChart())
	return sb.String()
}

// cards lays the metrics out two per row when the tab is narrow.
func (a *Analytics) cards() string {
	perRow := len(a.metrics)
	if a.width > 0 {
		perRow = max(1, min(perRow, a.width/(cardWidth+1)))
	}

	var rows []string
	for start := 0; start < len(a.metrics); start += perRow {
		end := min(start+perRow, len(a.metrics))
		var boxes []string
		for _, m := range a.metrics[start:end] {
			boxes = append(boxes, card(m))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func card(m dashboard.Metric) string {
	inner := cardWidth - 4
	body := strings.Join([]string{
		styles.TextMutedStyle.Render(utils.TruncateToWidth(m.Title, inner)),
		valueStyle.Render(utils.TruncateToWidth(m.Value, inner)),
		changeStyle(m.Change).Render(utils.TruncateToWidth(m.Change, inner)),
	}, "\n")
	return cardStyle.Width(cardWidth).Render(body)
}

func changeStyle(change string) lipgloss.Style {
	switch {
	case strings.HasPrefix(change, "+"), strings.HasPrefix(change, "-"):
		return upStyle
	default:
		return styles.TextMutedStyle
	}
}

func (a *Analytics) barWidth() int {
	if a.width <= 0 {
		return 40
	}
	return max(10, a.width-labelWidth-8)
}

func (a *Analytics) winRateChart() string {
	lines := []string{styles.TextBoldStyle.Render("Win Rate Transformation")}
	width := a.barWidth()
	for _, p := range a.winRate {
		lines = append(lines,
			Bar(p.Month+" AI", p.AI, 100, width, aiGlyph, aiBarStyle)+fmt.Sprintf(" %d%%", p.AI),
			Bar(p.Month+" Manual", p.Manual, 100, width, manualGlyph, manualBarStyle)+fmt.Sprintf(" %d%%", p.Manual),
		)
	}
	lines = append(lines, styles.FooterStyle.Render("█ With AI Agent  ▒ Manual Process"))
	return strings.Join(lines, "\n")
}

func (a *Analytics) hoursChart() string {
	lines := []string{styles.TextBoldStyle.Render("Time Savings per RFP (Hours)")}
	peak := 0
	for _, h := range a.hours {
		peak = max(peak, h.Hours)
	}
	width := a.barWidth()
	for i, h := range a.hours {
		glyph, style := manualGlyph, manualBarStyle
		if i == len(a.hours)-1 {
			glyph, style = aiGlyph, aiBarStyle
		}
		lines = append(lines, Bar(h.Name, h.Hours, peak, width, glyph, style)+fmt.Sprintf(" %d", h.Hours))
	}
	return strings.Join(lines, "\n")
}

// Bar renders "label ████" scaled so that peak fills width cells. Any
// non-zero value gets at least one cell.
func Bar(label string, value, peak, width int, glyph string, style lipgloss.Style) string {
	cells := 0
	if peak > 0 && value > 0 {
		cells = max(1, value*width/peak)
	}
	head := utils.Fit(label, labelWidth)
	return styles.TextStyle.Render(head) + " " + style.Render(strings.Repeat(glyph, cells))
}

var (
	cardStyle  = styles.CardStyle
	valueStyle = styles.FigureStyle
	upStyle    = styles.PositiveStyle

	aiBarStyle     = styles.ChipStyle
	manualBarStyle = lipgloss.NewStyle().Foreground(styles.ColorTextMuted)
)
