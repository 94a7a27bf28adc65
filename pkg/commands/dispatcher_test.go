package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vectorprime/pkg/analysis"
)

type stubAnalyzer struct {
	result *analysis.Result
	err    error
	path   string
}

func (s *stubAnalyzer) AnalyzeFile(_ context.Context, path string) (*analysis.Result, error) {
	s.path = path
	return s.result, s.err
}

func TestNewDispatcher(t *testing.T) {
	d := NewDispatcher()

	for _, cmd := range []string{"/inbox", "/analytics", "/analyze", "/quit", "/exit", "/help"} {
		if _, ok := d.GetHandler(cmd); !ok {
			t.Errorf("Expected handler for %s to be registered", cmd)
		}
	}
}

func TestDispatcher_Dispatch_UnknownCommand(t *testing.T) {
	d := NewDispatcher()
	result := d.Dispatch("/unknown", NewContext(nil, "", nil))

	if result == nil {
		t.Fatal("Expected result for unknown command")
	}
	if !strings.Contains(result.Content, "Unknown command: /unknown") {
		t.Errorf("Unexpected content %q", result.Content)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantArgs string
		wantOK   bool
	}{
		{"/inbox", "/inbox", "", true},
		{"  /Analyze  my tender.pdf ", "/analyze", "my tender.pdf", true},
		{"what's the price?", "", "", false},
		{"/", "", "", false},
	}
	for _, tt := range tests {
		name, args, ok := Parse(tt.line)
		if name != tt.wantName || args != tt.wantArgs || ok != tt.wantOK {
			t.Errorf("Parse(%q) = %q, %q, %v", tt.line, name, args, ok)
		}
	}
}

func TestInboxHandler(t *testing.T) {
	res := NewDispatcher().Dispatch("/inbox", NewContext(nil, "", nil))
	if !strings.Contains(res.Content, "Metro Rail Corp") {
		t.Errorf("Expected inbox rows, got:\n%s", res.Content)
	}
	if strings.Contains(res.Content, "\x1b[") {
		t.Error("Expected plain text output")
	}
}

func TestAnalyticsHandler(t *testing.T) {
	res := NewDispatcher().Dispatch("/analytics", NewContext(nil, "", nil))
	if !strings.Contains(res.Content, "Win Rate Transformation") {
		t.Errorf("Expected analytics charts, got:\n%s", res.Content)
	}
}

func TestAnalyzeHandler(t *testing.T) {
	t.Run("usage", func(t *testing.T) {
		res := NewDispatcher().Dispatch("/analyze", NewContext(nil, "", nil))
		if res.Content != "Usage: /analyze <file>" {
			t.Errorf("Unexpected content %q", res.Content)
		}
	})

	t.Run("success", func(t *testing.T) {
		a := &stubAnalyzer{result: &analysis.Result{Summary: "ok", TotalEstimatedCost: 960000}}
		res := NewDispatcher().Dispatch("/analyze", NewContext(nil, `"tender.pdf"`, a))
		if a.path != "tender.pdf" {
			t.Errorf("Expected quotes to be stripped, got %q", a.path)
		}
		if res.Error != nil || !strings.Contains(res.Content, "₹9,60,000") {
			t.Errorf("Unexpected result %+v", res)
		}
	})

	t.Run("failure", func(t *testing.T) {
		a := &stubAnalyzer{err: errors.New("refused")}
		res := NewDispatcher().Dispatch("/analyze", NewContext(nil, "tender.pdf", a))
		if res.Content != analysis.FailureNotice || res.Error == nil {
			t.Errorf("Expected failure notice, got %+v", res)
		}
	})

	t.Run("no analyzer", func(t *testing.T) {
		res := NewDispatcher().Dispatch("/analyze", NewContext(nil, "tender.pdf", nil))
		if !errors.Is(res.Error, ErrNoAnalyzer) {
			t.Errorf("Expected ErrNoAnalyzer, got %v", res.Error)
		}
	})
}

func TestQuitHandler(t *testing.T) {
	d := NewDispatcher()
	for _, name := range []string{"/quit", "/exit"} {
		if res := d.Dispatch(name, NewContext(nil, "", nil)); !res.Quit {
			t.Errorf("Expected %s to quit", name)
		}
	}
}

func TestHelpHandler(t *testing.T) {
	res := NewDispatcher().Dispatch("/help", NewContext(nil, "", nil))
	for _, want := range []string{"/analyze", "/inbox", "/quit", "Show available commands"} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("Expected help to list %q", want)
		}
	}
}
