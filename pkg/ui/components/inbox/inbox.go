// Package inbox renders the RFP inbox tab.
package inbox

import (
	"strings"

	"vectorprime/pkg/dashboard"
	"vectorprime/pkg/ui/components/utils"
	"vectorprime/pkg/ui/styles"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

const (
	title   = "RFP Inbox"
	barCols = 10
)

var headers = []string{"RFP ID / Client", "Value", "Status", "Match Score", "Action"}

// Inbox is a read-only table of incoming RFPs.
type Inbox struct {
	rows  []dashboard.RFP
	width int
}

// New creates an inbox over rows.
func New(rows []dashboard.RFP) *Inbox {
	return &Inbox{rows: rows}
}

// SetWidth sets the available width.
func (i *Inbox) SetWidth(width int) {
	i.width = width
}

// View renders the header and the table.
func (i *Inbox) View() string {
	var sb strings.Builder
	sb.WriteString(styles.TitleStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(styles.TextMutedStyle.Render(utils.TruncateToWidth(dashboard.InboxSubtitle, max(i.width, 1))))
	sb.WriteString("\n\n")
	sb.WriteString(i.table())
	return sb.String()
}

func (i *Inbox) table() string {
	rows := make([][]string, 0, len(i.rows))
	for _, r := range i.rows {
		rows = append(rows, []string{
			r.ID + "\n" + r.Client,
			r.Value,
			string(r.Status),
			MatchBar(r),
			"Review →",
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.ColorBorderMuted)).
		BorderRow(true).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(i.rows) {
				return cellStyle
			}
			switch col {
			case 2:
				return StatusStyle(i.rows[row].Status)
			case 3:
				if i.rows[row].Strong() {
					return strongStyle
				}
				return cellStyle
			case 4:
				return actionStyle
			}
			return cellStyle
		})
	if i.width > 0 {
		t = t.Width(i.width)
	}
	return t.String()
}

// MatchBar draws a ten-cell bar followed by the match text. Pending
// matches get an empty bar.
func MatchBar(r dashboard.RFP) string {
	pct, ok := r.MatchPercent()
	if !ok {
		return strings.Repeat("░", barCols) + " " + r.Match
	}
	filled := min(barCols, (pct*barCols+50)/100)
	return strings.Repeat("█", filled) + strings.Repeat("░", barCols-filled) + " " + r.Match
}

// StatusStyle colors a status badge.
func StatusStyle(s dashboard.Status) lipgloss.Style {
	switch s {
	case dashboard.StatusQualified:
		return cellStyle.Foreground(styles.ColorQualified)
	case dashboard.StatusProcessing:
		return cellStyle.Foreground(styles.ColorProcessing)
	case dashboard.StatusActionRequired:
		return cellStyle.Foreground(styles.ColorActionRequired)
	case dashboard.StatusRejected:
		return cellStyle.Foreground(styles.ColorRejected)
	}
	return cellStyle
}

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(styles.ColorText)
	headerStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(styles.ColorTextMuted)
	strongStyle = cellStyle.Inherit(styles.PositiveStyle)
	actionStyle = cellStyle.Foreground(styles.ColorAccent)
)
