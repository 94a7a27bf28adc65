package assistant

import (
	"strings"

	"vectorprime/pkg/ui/styles"

	"github.com/mattn/go-runewidth"
)

// The assistant's replies use a small markdown subset: **bold** runs, hard
// line breaks and "- " bullets.

const bulletIndent = "  "

type span struct {
	text string
	bold bool
}

func renderMarkdown(content string, width int) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = sanitize(content)

	var out []string
	for _, raw := range strings.Split(content, "\n") {
		raw = strings.ReplaceAll(raw, "\t", "    ")
		trimmed := strings.TrimSpace(raw)
		switch {
		case trimmed == "":
			out = append(out, "")
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "• "):
			body := strings.TrimSpace(trimmed[strings.Index(trimmed, " ")+1:])
			wrapped := wrapSpans(splitBold(body), width-runewidth.StringWidth(bulletIndent))
			for i, line := range wrapped {
				lead := bulletIndent
				if i == 0 {
					lead = "• "
				}
				out = append(out, textStyle.Render(lead)+line)
			}
		default:
			out = append(out, wrapSpans(splitBold(trimmed), width)...)
		}
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}

// splitBold breaks a line into words, toggling bold at every "**".
func splitBold(line string) []span {
	var spans []span
	bold := false
	for i, part := range strings.Split(line, "**") {
		if i > 0 {
			bold = !bold
		}
		for _, word := range strings.Fields(part) {
			spans = append(spans, span{text: word, bold: bold})
		}
	}
	return spans
}

func wrapSpans(spans []span, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var current []span
	used := 0

	flush := func() {
		lines = append(lines, renderSpans(current))
		current = nil
		used = 0
	}

	for _, s := range spans {
		for _, piece := range hardWrap(s.text, width) {
			w := runewidth.StringWidth(piece)
			if used > 0 && used+1+w > width {
				flush()
			}
			if used > 0 {
				used++
			}
			current = append(current, span{text: piece, bold: s.bold})
			used += w
		}
	}
	if len(current) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// hardWrap splits a single word that is wider than width.
func hardWrap(word string, width int) []string {
	if runewidth.StringWidth(word) <= width {
		return []string{word}
	}
	var parts []string
	var sb strings.Builder
	w := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && w > 0 {
			parts = append(parts, sb.String())
			sb.Reset()
			w = 0
		}
		sb.WriteRune(r)
		w += rw
	}
	return append(parts, sb.String())
}

func renderSpans(spans []span) string {
	var sb strings.Builder
	for i, s := range spans {
		if i > 0 {
			sb.WriteString(textStyle.Render(" "))
		}
		if s.bold {
			sb.WriteString(boldStyle.Render(s.text))
		} else {
			sb.WriteString(textStyle.Render(s.text))
		}
	}
	return sb.String()
}

// plainText strips markup for the clipboard.
func plainText(content string) string {
	return strings.ReplaceAll(content, "**", "")
}

func sanitize(content string) string {
	var sb strings.Builder
	sb.Grow(len(content))
	for _, r := range content {
		if r == '\n' || r == '\t' || (r >= 0x20 && r != 0x7f) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

var (
	textStyle = styles.TextStyle
	boldStyle = styles.TextBoldStyle
)
