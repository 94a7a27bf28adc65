package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vectorprime/pkg/analysis"
	"vectorprime/pkg/chat"
	"vectorprime/pkg/config"
	"vectorprime/pkg/ui/components/analyze"
	"vectorprime/pkg/ui/components/assistant"
	"vectorprime/pkg/ui/components/testutils"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

type stubAnalyzer struct {
	result *analysis.Result
	err    error
}

func (s stubAnalyzer) AnalyzeFile(context.Context, string) (*analysis.Result, error) {
	return s.result, s.err
}

func newTestModel(t *testing.T, a analyze.Analyzer) (Model, *chat.ManualClock) {
	t.Helper()
	clock := chat.NewManualClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	cfg := config.Default()
	cfg.StatusBar.ShowGitBranch = false
	m := NewModel(Options{
		Config:       cfg,
		Analyzer:     a,
		Clock:        clock,
		ClipboardOut: &bytes.Buffer{},
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return updated.(Model), clock
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func typeInto(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = send(t, m, testutils.NewTextKeyPressMsg(string(r)))
	}
	return m
}

func TestModel_DefaultsToAnalyzeTab(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if m.tab != TabAnalyze {
		t.Fatalf("Expected Analyze tab, got %s", m.tab)
	}
	view := ansi.Strip(m.render())
	for _, want := range []string{"Vector Prime", "Start New Analysis", "Vector Prime Assistant", "VECTOR PRIME", "Analyze New"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestModel_InitializingBeforeResize(t *testing.T) {
	m := NewModel(Options{Config: config.Default(), ClipboardOut: &bytes.Buffer{}})
	if got := m.render(); got != "Initializing..." {
		t.Errorf("Expected placeholder before first resize, got %q", got)
	}
}

func TestModel_ViewFillsScreen(t *testing.T) {
	m, _ := newTestModel(t, nil)
	lines := strings.Split(m.render(), "\n")
	if len(lines) != 40 {
		t.Fatalf("Expected 40 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 140 {
			t.Errorf("Line %d is %d cells wide", i, w)
		}
	}
}

func TestModel_TabSwitching(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = send(t, m, testutils.TestKeyTab)
	if m.tab != TabAnalytics {
		t.Fatalf("Expected Tab to move to Analytics, got %s", m.tab)
	}
	if !strings.Contains(ansi.Strip(m.render()), "Performance Analytics") {
		t.Error("Expected analytics view")
	}

	m, _ = send(t, m, testutils.NewTextKeyPressMsg("1"))
	if m.tab != TabInbox {
		t.Fatalf("Expected 1 to select the inbox, got %s", m.tab)
	}
	if !strings.Contains(ansi.Strip(m.render()), "RFP-2025-001") {
		t.Error("Expected inbox rows")
	}
}

func TestModel_DigitsTypeIntoPathInput(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = send(t, m, testutils.NewTextKeyPressMsg("3"))
	if m.tab != TabAnalyze {
		t.Fatal("Expected digits to go into the path input on the Analyze tab")
	}
}

func TestModel_ChatReplyAfterDelay(t *testing.T) {
	m, clock := newTestModel(t, nil)

	m, _ = send(t, m, testutils.TestKeyShiftTab)
	if m.focus != focusChat {
		t.Fatal("Expected Shift+Tab to focus the chat")
	}
	m = typeInto(t, m, "what is the price?")
	m, cmd := send(t, m, testutils.TestKeyEnter)
	if cmd == nil {
		t.Fatal("Expected reply timer")
	}
	if !m.sched.Conversation().Pending() {
		t.Fatal("Expected pending reply")
	}
	if !strings.Contains(ansi.Strip(m.render()), "typing") {
		t.Error("Expected typing hint while reply is pending")
	}

	clock.Advance(chat.DefaultReplyDelay)
	m, _ = send(t, m, assistant.ReplyDueMsg{At: clock.Now()})

	conv := m.sched.Conversation()
	if conv.Len() != 3 {
		t.Fatalf("Expected greeting, question and reply, got %d messages", conv.Len())
	}
	if conv.Last().FromUser() {
		t.Error("Expected last message to be the bot reply")
	}
	if conv.Pending() {
		t.Error("Expected no pending reply after delivery")
	}
}

func TestModel_CtrlTTogglesChat(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = send(t, m, testutils.TestKeyCtrlT)
	if m.assistant.IsVisible() {
		t.Fatal("Expected Ctrl+T to hide the chat")
	}
	if m.layout.ChatWidth != 0 {
		t.Errorf("Expected no chat column, got %d", m.layout.ChatWidth)
	}
	if strings.Contains(ansi.Strip(m.render()), "Vector Prime Assistant") {
		t.Error("Expected chat to be gone from the view")
	}

	m, _ = send(t, m, testutils.TestKeyCtrlT)
	if !m.assistant.IsVisible() || m.focus != focusChat {
		t.Error("Expected Ctrl+T to reopen and focus the chat")
	}
}

func TestModel_UploadFailureShowsNotice(t *testing.T) {
	m, _ := newTestModel(t, stubAnalyzer{err: errors.New("dial tcp: connection refused")})

	m = typeInto(t, m, "tender.pdf")
	m, cmd := send(t, m, testutils.TestKeyEnter)
	if cmd == nil {
		t.Fatal("Expected upload command")
	}
	m, _ = send(t, m, cmd())

	if !m.notice.IsVisible() {
		t.Fatal("Expected blocking notice")
	}
	if m.notice.Body() != analysis.FailureNotice {
		t.Errorf("Unexpected notice %q", m.notice.Body())
	}
	if !strings.Contains(ansi.Strip(m.render()), "Backend not reachable") {
		t.Error("Expected notice in view")
	}

	// Keys other than dismiss are swallowed.
	m, _ = send(t, m, testutils.TestKeyTab)
	if m.tab != TabAnalyze {
		t.Error("Expected notice to block tab switching")
	}

	m, cmd = send(t, m, testutils.TestKeyEnter)
	if m.notice.IsVisible() {
		t.Error("Expected Enter to dismiss the notice")
	}
	if cmd == nil {
		t.Error("Expected close message command")
	}
	if m.analyze.Workflow().Loading() {
		t.Error("Expected loading to be cleared")
	}
}

func TestModel_UploadSuccessShowsResult(t *testing.T) {
	res := &analysis.Result{
		Summary:      "Facade repaint.",
		Requirements: []string{"weatherproof"},
		RecommendedProducts: []analysis.Product{
			{Name: "Apex Ultima", SKUID: "AP-01", MatchScore: 98, UnitPrice: 620},
		},
		TotalEstimatedCost: 310000,
	}
	m, _ := newTestModel(t, stubAnalyzer{result: res})

	m = typeInto(t, m, "tender.pdf")
	m, cmd := send(t, m, testutils.TestKeyEnter)
	if !strings.Contains(ansi.Strip(m.render()), "Analyzing tender.pdf") {
		t.Error("Expected status bar to show the upload")
	}
	m, _ = send(t, m, cmd())

	view := ansi.Strip(m.render())
	for _, want := range []string{"Analysis Results", "Apex Ultima", "₹3,10,000"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected result view to contain %q", want)
		}
	}
	if m.notice.IsVisible() {
		t.Error("Expected no notice on success")
	}
}

func TestModel_CtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, nil)
	_, cmd := send(t, m, testutils.TestKeyCtrlC)
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

func TestAnalyzerHost(t *testing.T) {
	tests := map[string]string{
		"http://localhost:8000/analyze-rfp": "localhost:8000",
		"https://bids.example.com/analyze":  "bids.example.com",
		"not a url":                         "",
		"":                                  "",
	}
	for in, want := range tests {
		if got := analyzerHost(in); got != want {
			t.Errorf("analyzerHost(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestModel_ReplyLandsWhileChatHidden(t *testing.T) {
	m, clock := newTestModel(t, nil)

	m, _ = send(t, m, testutils.TestKeyShiftTab)
	m = typeInto(t, m, "any open RFPs?")
	m, _ = send(t, m, testutils.TestKeyEnter)
	m, _ = send(t, m, testutils.TestKeyCtrlT)
	if m.assistant.IsVisible() {
		t.Fatal("Expected chat hidden")
	}

	clock.Advance(chat.DefaultReplyDelay)
	m, _ = send(t, m, assistant.ReplyDueMsg{At: clock.Now()})
	if got := m.sched.Conversation().Len(); got != 3 {
		t.Errorf("Expected reply appended while hidden, got %d messages", got)
	}
}

func TestModel_CursorKeepsBlinking(t *testing.T) {
	m, _ := newTestModel(t, stubAnalyzer{})
	blink := m.Init()
	if blink == nil {
		t.Skip("cursor blinking disabled")
	}

	_, next := send(t, m, blink())
	if next == nil {
		t.Error("Expected unhandled input messages to reach the focused input")
	}
}
