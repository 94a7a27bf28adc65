package welcome

import (
	"fmt"
	"strings"

	"vectorprime/pkg/ui/components/utils"
	"vectorprime/pkg/ui/styles"
	"vectorprime/pkg/version"

	"github.com/mattn/go-runewidth"
)

const boxWidth = 53

// Command is a line-mode command shown in the banner.
type Command struct {
	Name string
	Desc string
}

// LineModeCommands are the commands understood by the plain chat loop.
var LineModeCommands = []Command{
	{"/inbox", "List active RFPs"},
	{"/analytics", "Show win-rate and processing metrics"},
	{"/analyze <file>", "Upload an RFP document for analysis"},
	{"/help", "Show available commands"},
	{"/quit", "Exit"},
}

// Banner returns the boxed greeting printed when the dashboard runs without
// a terminal UI.
func Banner() string {
	row := func(content string, visible int) string {
		pad := max(boxWidth-visible, 0)
		return styles.WelcomeBorderStyle.Render("│") + content + strings.Repeat(" ", pad) + styles.WelcomeBorderStyle.Render("│")
	}
	centered := func(text string, style func(...string) string) string {
		w := runewidth.StringWidth(text)
		left := (boxWidth - w) / 2
		return row(strings.Repeat(" ", left)+style(text), left+w)
	}

	lines := []string{
		"",
		styles.WelcomeBorderStyle.Render("╭" + strings.Repeat("─", boxWidth) + "╮"),
		centered("◆ Vector Prime RFP Assistant ◆", styles.WelcomeTitleStyle.Render),
		row("", 0),
		row(styles.WelcomeHeaderStyle.Render("  Commands:"), 11),
	}

	for _, c := range LineModeCommands {
		key := fmt.Sprintf("    %-17s", c.Name)
		desc := utils.TruncateToWidth(c.Desc, boxWidth-runewidth.StringWidth(key))
		lines = append(lines, row(
			styles.WelcomeKeyStyle.Render(key)+styles.TextStyle.Render(desc),
			runewidth.StringWidth(key)+runewidth.StringWidth(desc),
		))
	}

	lines = append(lines,
		row(styles.TextMutedStyle.Render("  Anything else is sent to the assistant."), 41),
		row("", 0),
		centered(utils.TruncateToWidth(version.Summary(), boxWidth-4), styles.WelcomeVersionStyle.Render),
		styles.WelcomeBorderStyle.Render("╰"+strings.Repeat("─", boxWidth)+"╯"),
		"",
	)

	return strings.Join(lines, "\n") + "\n"
}
