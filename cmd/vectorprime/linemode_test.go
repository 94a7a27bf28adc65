package main

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
)

type stubAnalyzer struct {
	result *analysis.Result
	err    error
}

func (s stubAnalyzer) AnalyzeFile(context.Context, string) (*analysis.Result, error) {
	return s.result, s.err
}

func runSession(t *testing.T, analyzer stubAnalyzer, input string) (string, *chat.ManualClock) {
	t.Helper()
	clock := chat.NewManualClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	var out bytes.Buffer
	s := newLineSession(config.Default(), clock, analyzer, &out, clock.Advance)
	if err := s.run(strings.NewReader(input)); err != nil {
		t.Fatalf("Expected clean exit, got %v", err)
	}
	return out.String(), clock
}

func TestLineMode_GreetingAndReply(t *testing.T) {
	out, clock := runSession(t, stubAnalyzer{}, "how many RFPs?\n/quit\n")

	if !strings.Contains(out, "Vector Prime RFP Assistant") {
		t.Error("Expected banner")
	}
	if !strings.Contains(out, "Vector Prime: Hi! I'm the Vector Prime assistant.") {
		t.Errorf("Expected greeting without bold markers, got:\n%s", out)
	}
	if !strings.Contains(out, "Vector Prime is typing…") {
		t.Error("Expected typing line before the reply")
	}
	if !strings.Contains(out, "342 RFPs") {
		t.Errorf("Expected totals reply, got:\n%s", out)
	}
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if got := clock.Now().Sub(start); got != chat.DefaultReplyDelay {
		t.Errorf("Expected the reply to wait %v, waited %v", chat.DefaultReplyDelay, got)
	}
}

func TestLineMode_BlankLinesIgnored(t *testing.T) {
	out, _ := runSession(t, stubAnalyzer{}, "   \n\n/quit\n")
	if strings.Contains(out, "typing") {
		t.Error("Expected no reply for blank input")
	}
}

func TestLineMode_EOFEnds(t *testing.T) {
	out, _ := runSession(t, stubAnalyzer{}, "")
	if !strings.HasSuffix(out, "> \n") {
		t.Errorf("Expected prompt then newline at EOF, got %q", out[max(0, len(out)-20):])
	}
}

func TestLineMode_Inbox(t *testing.T) {
	out, _ := runSession(t, stubAnalyzer{}, "/inbox\n/quit\n")
	for _, want := range []string{"RFP Inbox", "RFP-2025-003", "City Hospital Ext"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected inbox output to contain %q", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Expected plain output without escape codes")
	}
}

func TestLineMode_Analytics(t *testing.T) {
	out, _ := runSession(t, stubAnalyzer{}, "/analytics\n/quit\n")
	if !strings.Contains(out, "Performance Analytics") {
		t.Error("Expected analytics output")
	}
}

func TestLineMode_AnalyzeSuccess(t *testing.T) {
	res := &analysis.Result{
		Summary:            "Facade repaint.",
		TotalEstimatedCost: 960000,
	}
	out, _ := runSession(t, stubAnalyzer{result: res}, "/analyze tender.pdf\n/quit\n")
	if !strings.Contains(out, "Total Estimated Value: ₹9,60,000") {
		t.Errorf("Expected report, got:\n%s", out)
	}
}

func TestLineMode_AnalyzeFailure(t *testing.T) {
	out, _ := runSession(t, stubAnalyzer{err: errors.New("refused")}, "/analyze tender.pdf\n/quit\n")
	if strings.Count(out, analysis.FailureNotice) != 1 {
		t.Errorf("Expected failure notice once, got:\n%s", out)
	}
}

func TestLineMode_UnknownCommand(t *testing.T) {
	out, _ := runSession(t, stubAnalyzer{}, "/bogus\n/exit\n")
	if !strings.Contains(out, "Unknown command: /bogus") {
		t.Error("Expected unknown command message")
	}
	if strings.Contains(out, "typing") {
		t.Error("Expected commands not to reach the assistant")
	}
}

func TestLineMode_AnalyzeUsage(t *testing.T) {
	out, _ := runSession(t, stubAnalyzer{}, "/analyze\n/quit\n")
	if !strings.Contains(out, "Usage: /analyze <file>") {
		t.Error("Expected usage line")
	}
}
