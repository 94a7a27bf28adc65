package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"vectorprime/pkg/analysis"
	"vectorprime/pkg/dashboard"
	"vectorprime/pkg/ui/components/analytics"
	"vectorprime/pkg/ui/components/analyze"
	"vectorprime/pkg/ui/components/inbox"

	"github.com/charmbracelet/x/ansi"
)

// ErrNoAnalyzer is returned by /analyze when no service is configured.
var ErrNoAnalyzer = errors.New("no analyzer configured")

// InboxHandler handles the /inbox command
type InboxHandler struct{}

func (h *InboxHandler) Name() string        { return "/inbox" }
func (h *InboxHandler) Description() string { return "List active RFPs" }

func (h *InboxHandler) Execute(ctx *Context) *Result {
	view := inbox.New(dashboard.Inbox())
	view.SetWidth(ctx.Width)
	return &Result{Title: "RFP Inbox", Content: ansi.Strip(view.View())}
}

// AnalyticsHandler handles the /analytics command
type AnalyticsHandler struct{}

func (h *AnalyticsHandler) Name() string        { return "/analytics" }
func (h *AnalyticsHandler) Description() string { return "Show win-rate and processing metrics" }

func (h *AnalyticsHandler) Execute(ctx *Context) *Result {
	view := analytics.New()
	view.SetWidth(ctx.Width)
	return &Result{Title: "Analytics", Content: ansi.Strip(view.View())}
}

// AnalyzeHandler handles the /analyze command
type AnalyzeHandler struct{}

func (h *AnalyzeHandler) Name() string        { return "/analyze" }
func (h *AnalyzeHandler) Description() string { return "Upload an RFP document for analysis" }

func (h *AnalyzeHandler) Execute(ctx *Context) *Result {
	path := strings.Trim(strings.TrimSpace(ctx.Args), `"'`)
	if path == "" {
		return &Result{Title: "Analyze", Content: "Usage: /analyze <file>"}
	}
	if ctx.Analyzer == nil {
		return failed(path, ErrNoAnalyzer)
	}

	res, err := ctx.Analyzer.AnalyzeFile(ctx.Ctx, path)
	if err == nil && res == nil {
		err = errors.New("empty analysis result")
	}
	if err != nil {
		return failed(path, err)
	}
	slog.Info("analysis_completed", "file", path, "products", len(res.RecommendedProducts))
	return &Result{Title: "Analysis Results", Content: analyze.Report(res)}
}

func failed(path string, err error) *Result {
	slog.Error("analysis_failed", "file", path, "error", err)
	return &Result{
		Title:   "Analysis failed",
		Content: analysis.FailureNotice,
		Error:   err,
	}
}

// QuitHandler ends the session. It is registered as /quit and /exit.
type QuitHandler struct {
	name string
}

func (h *QuitHandler) Name() string        { return h.name }
func (h *QuitHandler) Description() string { return "Exit" }

func (h *QuitHandler) Execute(ctx *Context) *Result {
	return &Result{Quit: true}
}

// HelpHandler handles the /help command
type HelpHandler struct {
	dispatcher *Dispatcher
}

func (h *HelpHandler) Name() string        { return "/help" }
func (h *HelpHandler) Description() string { return "Show available commands" }

func (h *HelpHandler) Execute(ctx *Context) *Result {
	var sb strings.Builder
	sb.WriteString("Commands:\n")
	for _, handler := range h.dispatcher.Handlers() {
		fmt.Fprintf(&sb, "  %-12s %s\n", handler.Name(), handler.Description())
	}
	sb.WriteString("Anything else is sent to the assistant.")
	return &Result{Title: "Help", Content: sb.String()}
}
