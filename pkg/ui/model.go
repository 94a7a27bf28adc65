// Package ui is the Vector Prime dashboard: three tabs, the assistant
// sidebar and a status bar, composed into one Bubble Tea model.
package ui

import (
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"time"

	"vectorprime/pkg/chat"
	"vectorprime/pkg/config"
	"vectorprime/pkg/dashboard"
	"vectorprime/pkg/ui/components/analytics"
	"vectorprime/pkg/ui/components/analyze"
	"vectorprime/pkg/ui/components/assistant"
	"vectorprime/pkg/ui/components/inbox"
	"vectorprime/pkg/ui/components/nav"
	"vectorprime/pkg/ui/components/notice"
	"vectorprime/pkg/ui/components/statusbar"
	"vectorprime/pkg/ui/render"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Tab is one of the dashboard sections.
type Tab int

const (
	TabInbox Tab = iota
	TabAnalyze
	TabAnalytics
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabInbox:
		return "RFP Inbox"
	case TabAnalyze:
		return "Analyze New"
	case TabAnalytics:
		return "Analytics"
	}
	return "?"
}

type focusArea int

const (
	focusMain focusArea = iota
	focusChat
)

const noticeTitle = "Analysis failed"

var mainStyle = lipgloss.NewStyle().Padding(0, 1)

// Options wire the model to its collaborators.
type Options struct {
	Config   config.Config
	Analyzer analyze.Analyzer
	// Clock drives the chat. Defaults to the system clock.
	Clock chat.Clock
	// WorkDir is used for the git revision in the status bar.
	WorkDir string
	// ClipboardOut receives OSC 52 copy sequences.
	ClipboardOut io.Writer
}

// Model represents the Bubble Tea application state
type Model struct {
	nav       *nav.Nav
	inbox     *inbox.Inbox
	analytics *analytics.Analytics
	analyze   *analyze.Panel
	assistant *assistant.Panel
	sched     *chat.Scheduler
	notice    *notice.Notice
	statusBar *statusbar.StatusBar

	tab    Tab
	focus  focusArea
	layout Layout

	width  int
	height int
	ready  bool
}

// NewModel creates the dashboard on the Analyze tab.
func NewModel(opts Options) Model {
	cfg := opts.Config
	clock := opts.Clock
	if clock == nil {
		clock = chat.SystemClock()
	}

	greeting := cfg.Chat.Greeting
	if greeting == "" {
		greeting = chat.Greeting
	}
	conv := chat.NewConversation(clock, greeting)
	delay := time.Duration(cfg.Chat.ReplyDelayMS) * time.Millisecond
	sched := chat.NewScheduler(conv, chat.DefaultMatcher(), clock, delay)

	side := assistant.New(sched, assistant.Options{
		BlockWhilePending: cfg.Chat.BlockWhilePending,
		ClipboardOut:      opts.ClipboardOut,
	})
	side.Blur()

	status := statusbar.New()
	status.SetAnalyzer(analyzerHost(cfg.Analyzer.Endpoint))
	if cfg.StatusBar.ShowGitBranch && opts.WorkDir != "" {
		status.SetRevision(statusbar.ResolveRevision(opts.WorkDir).Label())
	}

	m := Model{
		nav: nav.New([]nav.Item{
			{Key: "1", Label: TabInbox.String()},
			{Key: "2", Label: TabAnalyze.String()},
			{Key: "3", Label: TabAnalytics.String()},
		}),
		inbox:     inbox.New(dashboard.Inbox()),
		analytics: analytics.New(),
		analyze:   analyze.New(opts.Analyzer),
		assistant: side,
		sched:     sched,
		notice:    notice.New(),
		statusBar: status,
		width:     80,
		height:    24,
	}
	m.setTab(TabAnalyze)
	m.relayout()
	return m
}

// Init focuses the analyze input.
func (m Model) Init() tea.Cmd {
	return m.analyze.Focus()
}

// Update handles messages and updates model state (Bubble Tea lifecycle method)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.relayout()
		return m, nil

	case assistant.ReplyDueMsg:
		return m, m.assistant.Update(msg)

	case analyze.DoneMsg:
		cmd := m.analyze.Update(msg)
		if body, ok := m.analyze.TakeNotice(); ok {
			m.notice.Show(noticeTitle, body)
		}
		return m, cmd

	case notice.ClosedMsg:
		return m, nil

	case tea.PasteMsg:
		if m.notice.IsVisible() {
			return m, nil
		}
		if m.focus == focusChat {
			return m, m.assistant.Update(msg)
		}
		if m.tab == TabAnalyze {
			return m, m.analyze.Update(msg)
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Anything else (cursor blinks mostly) belongs to the inputs; each one
	// ignores messages addressed to the other.
	return m, tea.Batch(m.analyze.Update(msg), m.assistant.Update(msg))
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// The notice is modal.
	if m.notice.IsVisible() {
		return m, m.notice.Update(msg)
	}

	switch key {
	case "ctrl+t":
		m.assistant.Toggle()
		if m.assistant.IsVisible() {
			m.focusChat()
		} else {
			m.focusMain()
		}
		m.relayout()
		return m, nil
	case "shift+tab":
		return m, m.cycleFocus()
	case "tab":
		m.setTab((m.tab + 1) % tabCount)
		return m, nil
	}

	if m.focus == focusChat && m.assistant.ShouldHandleKey(msg) {
		return m, m.assistant.Update(msg)
	}

	if m.focus == focusMain && !m.analyzeTyping() {
		switch key {
		case "1":
			m.setTab(TabInbox)
			return m, nil
		case "2":
			m.setTab(TabAnalyze)
			return m, nil
		case "3":
			m.setTab(TabAnalytics)
			return m, nil
		}
	}

	if m.focus == focusMain && m.tab == TabAnalyze {
		return m, m.analyze.Update(msg)
	}
	return m, nil
}

func (m Model) analyzeTyping() bool {
	return m.tab == TabAnalyze && m.analyze.Typing()
}

// cycleFocus walks main → chat input → chat transcript → main.
func (m *Model) cycleFocus() tea.Cmd {
	if !m.assistant.IsVisible() {
		return nil
	}
	switch {
	case m.focus == focusMain:
		m.focusChat()
	case m.assistant.IsFocusedOnInput():
		m.assistant.ToggleFocus()
	default:
		m.focusMain()
		if m.tab == TabAnalyze {
			return m.analyze.Focus()
		}
	}
	return nil
}

func (m *Model) focusChat() {
	m.focus = focusChat
	m.analyze.Blur()
	m.assistant.FocusInput()
}

func (m *Model) focusMain() {
	m.focus = focusMain
	m.assistant.Blur()
}

func (m *Model) setTab(t Tab) {
	m.tab = t
	m.nav.SetActive(int(t))
	m.statusBar.SetSection(t.String())
	if t == TabAnalyze && m.focus == focusMain {
		m.analyze.Focus()
	} else {
		m.analyze.Blur()
	}
}

func (m *Model) relayout() {
	m.layout = ComputeLayout(m.width, m.height, m.assistant.IsVisible())
	l := m.layout

	m.nav.SetHeight(l.BodyHeight)
	m.inbox.SetWidth(l.MainWidth - 2)
	m.analytics.SetWidth(l.MainWidth - 2)
	m.analyze.SetWidth(l.MainWidth - 2)
	m.assistant.SetSize(l.ChatWidth, l.BodyHeight)
	m.notice.SetSize(m.width, m.height)
	m.statusBar.SetWidth(m.width)
}

// View renders the UI (Bubble Tea lifecycle method)
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	if !m.ready {
		return "Initializing..."
	}

	l := m.layout
	main := mainStyle.Render(m.tabView())

	var side string
	if l.ChatWidth > 0 {
		side = m.assistant.View()
	}

	m.statusBar.SetTyping(m.sched.Conversation().Pending())
	m.statusBar.SetMessage(m.statusMessage())

	body := l.RenderBody(m.nav.View(), main, side)
	screen := l.RenderLayout(body, m.statusBar.Render())
	if m.notice.IsVisible() {
		screen = render.Overlay(screen, m.notice.View(), m.width, m.height)
	}
	return screen
}

func (m Model) tabView() string {
	switch m.tab {
	case TabInbox:
		return m.inbox.View()
	case TabAnalytics:
		return m.analytics.View()
	default:
		return m.analyze.View()
	}
}

func (m Model) statusMessage() string {
	flow := m.analyze.Workflow()
	if flow.Loading() {
		return "Analyzing " + filepath.Base(flow.File()) + "…"
	}
	return ""
}

// analyzerHost trims an endpoint URL to host:port for the status bar.
func analyzerHost(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		if endpoint != "" {
			slog.Debug("analyzer_endpoint_unparsed", "endpoint", endpoint)
		}
		return ""
	}
	return u.Host
}
