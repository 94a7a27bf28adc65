package ui

import (
	"strings"
	"testing"

	"vectorprime/pkg/ui/components/nav"

	"github.com/charmbracelet/x/ansi"
)

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		chat        bool
		wantNav     int
		wantChatMin int
	}{
		{"wide with chat", 140, true, nav.Width, 32},
		{"wide without chat", 140, false, nav.Width, 0},
		{"narrow drops nav", 70, false, 0, 0},
		{"narrow with chat", 60, true, 0, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ComputeLayout(tt.width, 30, tt.chat)
			if l.NavWidth != tt.wantNav {
				t.Errorf("Expected nav width %d, got %d", tt.wantNav, l.NavWidth)
			}
			if tt.chat && l.ChatWidth < tt.wantChatMin {
				t.Errorf("Expected chat width >= %d, got %d", tt.wantChatMin, l.ChatWidth)
			}
			if !tt.chat && l.ChatWidth != 0 {
				t.Errorf("Expected no chat column, got %d", l.ChatWidth)
			}
			if got := l.NavWidth + l.MainWidth + l.ChatWidth; got != tt.width {
				t.Errorf("Expected columns to fill %d, got %d", tt.width, got)
			}
			if l.BodyHeight != 29 {
				t.Errorf("Expected body height 29, got %d", l.BodyHeight)
			}
		})
	}
}

func TestFrame(t *testing.T) {
	out := Frame("abc\n\x1b[1mtoolong\x1b[0m", 4, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 4 {
			t.Errorf("Line %d: expected width 4, got %d", i, w)
		}
	}
	if ansi.Strip(lines[1]) != "tool" {
		t.Errorf("Expected truncated line, got %q", ansi.Strip(lines[1]))
	}
}
