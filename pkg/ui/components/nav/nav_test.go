package nav

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func testItems() []Item {
	return []Item{
		{Key: "1", Label: "RFP Inbox"},
		{Key: "2", Label: "Analyze RFP"},
		{Key: "3", Label: "Analytics"},
	}
}

func TestNav_ShowsItemsAndStatus(t *testing.T) {
	n := New(testItems())
	n.SetHeight(20)
	n.SetActive(1)

	view := ansi.Strip(n.View())
	for _, want := range []string{"Vector Prime", "RFP Inbox", "Analyze RFP", "Analytics", "SYSTEM STATUS", "Agents Online"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in nav, got:\n%s", want, view)
		}
	}
	if !strings.Contains(view, "▸ 2  Analyze RFP") {
		t.Errorf("Expected active marker on Analyze RFP, got:\n%s", view)
	}
}

func TestNav_SetActiveIgnoresOutOfRange(t *testing.T) {
	n := New(testItems())
	n.SetActive(2)
	n.SetActive(7)
	if n.Active() != 2 {
		t.Errorf("Expected active 2, got %d", n.Active())
	}
}

func TestNav_FillsHeight(t *testing.T) {
	n := New(testItems())
	n.SetHeight(18)
	lines := strings.Split(n.View(), "\n")
	if len(lines) != 18 {
		t.Errorf("Expected 18 lines, got %d", len(lines))
	}
}
