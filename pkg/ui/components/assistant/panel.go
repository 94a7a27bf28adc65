// Package assistant is the dashboard's chat widget: a scrolling transcript
// of the conversation, a typing indicator and an input box.
package assistant

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"vectorprime/pkg/chat"
	"vectorprime/pkg/ui/components/utils"
	"vectorprime/pkg/ui/styles"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

const (
	panelBorderSize = 1
	panelPaddingH   = 1
	panelPaddingV   = 0
	inputHeight     = 3
	// title, separator and typing line
	chromeLines = 3

	panelTitle      = "Vector Prime Assistant"
	typingIndicator = "Vector Prime is typing…"
	inputFooter     = "Enter Send | Shift+Tab Scroll | Ctrl+T Hide"
	viewportFooter  = "Up/Down Scroll | y Copy | Shift+Tab Next"
)

// FocusTarget indicates which part of the panel has focus.
type FocusTarget int

const (
	FocusInput FocusTarget = iota
	FocusTranscript
)

// ReplyDueMsg fires when a scheduled reply should be delivered.
type ReplyDueMsg struct {
	At time.Time
}

// Options configure a Panel.
type Options struct {
	// BlockWhilePending refuses new input while a reply is on its way.
	BlockWhilePending bool
	// ClipboardOut receives OSC 52 sequences. Defaults to os.Stdout.
	ClipboardOut io.Writer
}

// Panel renders a chat.Conversation and feeds user input to a
// chat.Scheduler.
type Panel struct {
	sched *chat.Scheduler
	conv  *chat.Conversation
	opts  Options

	visible bool
	width   int
	height  int
	scrollY int
	lines   []string
	follow  bool
	dirty   bool

	input   textarea.Model
	focused FocusTarget
}

// New creates a visible panel bound to sched's conversation.
func New(sched *chat.Scheduler, opts Options) *Panel {
	if opts.ClipboardOut == nil {
		opts.ClipboardOut = os.Stdout
	}

	input := textarea.New()
	input.Placeholder = "Ask about RFPs, pricing, warranty…"
	input.ShowLineNumbers = false
	input.SetHeight(inputHeight)
	input.Focus()

	p := &Panel{
		sched:   sched,
		conv:    sched.Conversation(),
		opts:    opts,
		visible: true,
		follow:  true,
		dirty:   true,
		input:   input,
		focused: FocusInput,
	}
	p.conv.Subscribe(func(chat.Message) {
		p.dirty = true
	})
	return p
}

// Toggle shows or hides the panel.
func (p *Panel) Toggle() {
	p.visible = !p.visible
}

// Show makes the panel visible and focuses the input.
func (p *Panel) Show() {
	p.visible = true
	p.FocusInput()
}

// Hide hides the panel.
func (p *Panel) Hide() {
	p.visible = false
}

// IsVisible returns whether the panel is visible.
func (p *Panel) IsVisible() bool {
	return p.visible
}

// SetSize sets the panel dimensions including its border.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.dirty = true
}

// ToggleFocus switches focus between transcript and input.
func (p *Panel) ToggleFocus() {
	if p.focused == FocusInput {
		p.focused = FocusTranscript
		p.input.Blur()
	} else {
		p.FocusInput()
	}
}

// FocusInput switches focus to the text input.
func (p *Panel) FocusInput() {
	p.focused = FocusInput
	p.input.Focus()
}

// Blur hides the input cursor while another part of the screen has focus.
func (p *Panel) Blur() {
	p.input.Blur()
}

// IsFocusedOnInput returns true if the text input is focused.
func (p *Panel) IsFocusedOnInput() bool {
	return p.focused == FocusInput
}

// InputValue returns the current draft.
func (p *Panel) InputValue() string {
	return p.input.Value()
}

// ShouldHandleKey returns true when the panel should intercept the key.
func (p *Panel) ShouldHandleKey(msg tea.KeyPressMsg) bool {
	if !p.visible {
		return false
	}

	if p.focused == FocusInput {
		switch msg.String() {
		case "enter", "up", "down", "pgup", "pgdown", "backspace", "delete",
			"left", "right", "home", "end", "ctrl+a", "ctrl+e", "ctrl+k", "ctrl+u":
			return true
		}
		return msg.Key().Text != ""
	}

	switch msg.String() {
	case "up", "down", "pgup", "pgdown", "home", "end", "y":
		return true
	}
	return false
}

// Update handles keyboard input and reply timers.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ReplyDueMsg:
		p.sched.FlushDue()
		// Re-arm for whatever is still queued; a tick may fire early.
		if wait, ok := p.sched.NextDelay(); ok {
			return ScheduleReply(wait)
		}
		return nil
	case tea.PasteMsg:
		if p.visible && p.focused == FocusInput {
			p.input.InsertString(msg.Content)
		}
		return nil
	case tea.KeyPressMsg:
		return p.handleKey(msg)
	}

	// Cursor blinks and other input-internal messages.
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *Panel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if !p.visible {
		return nil
	}

	key := msg.String()
	if p.focused == FocusInput {
		switch key {
		case "enter":
			return p.submit()
		case "up", "down", "pgup", "pgdown":
			p.scroll(key)
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	switch key {
	case "up", "down", "pgup", "pgdown", "home", "end":
		p.scroll(key)
	case "y":
		return p.copyTranscript()
	}
	return nil
}

// submit hands the draft to the scheduler and arms a timer for the reply.
func (p *Panel) submit() tea.Cmd {
	if p.opts.BlockWhilePending && p.conv.Pending() {
		return nil
	}
	draft := p.input.Value()
	if _, ok := p.sched.Submit(draft); !ok {
		return nil
	}
	p.input.Reset()
	p.follow = true
	return ScheduleReply(p.sched.Delay())
}

// ScheduleReply returns a command that delivers ReplyDueMsg after delay.
func ScheduleReply(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ReplyDueMsg{At: t}
	})
}

func (p *Panel) scroll(key string) {
	p.reflow()
	maxScroll := p.maxScroll()
	switch key {
	case "up":
		p.scrollY--
	case "down":
		p.scrollY++
	case "pgup":
		p.scrollY -= p.transcriptHeight()
	case "pgdown":
		p.scrollY += p.transcriptHeight()
	case "home":
		p.scrollY = 0
	case "end":
		p.scrollY = maxScroll
	}
	p.scrollY = max(0, min(p.scrollY, maxScroll))
	p.follow = p.scrollY >= maxScroll
}

func (p *Panel) copyTranscript() tea.Cmd {
	text := plainText(Transcript(p.conv.Messages()))
	out := p.opts.ClipboardOut
	return func() tea.Msg {
		_, _ = fmt.Fprint(out, osc52.New(text))
		return nil
	}
}

// Transcript renders messages as markdown with speaker labels.
func Transcript(messages []chat.Message) string {
	var sb strings.Builder
	for i, m := range messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if m.FromUser() {
			sb.WriteString("**You:** ")
		} else {
			sb.WriteString("**Vector Prime:** ")
		}
		sb.WriteString(m.Text)
	}
	return sb.String()
}

func (p *Panel) reflow() {
	if !p.dirty {
		return
	}
	p.dirty = false
	p.lines = renderMarkdown(Transcript(p.conv.Messages()), p.contentWidth())
	if p.follow {
		p.scrollY = p.maxScroll()
	}
	p.scrollY = max(0, min(p.scrollY, p.maxScroll()))
}

// View renders the panel.
func (p *Panel) View() string {
	if !p.visible {
		return ""
	}
	p.reflow()

	width := p.contentWidth()
	height := p.contentHeight()
	lines := make([]string, 0, height)

	lines = append(lines, utils.PadStyled(titleStyle.Render(utils.TruncateToWidth(panelTitle, width)), width))

	bodyHeight := p.transcriptHeight()
	end := min(p.scrollY+bodyHeight, len(p.lines))
	for i := p.scrollY; i < end; i++ {
		lines = append(lines, utils.PadStyled(p.lines[i], width))
	}
	for len(lines) < 1+bodyHeight {
		lines = append(lines, strings.Repeat(" ", width))
	}

	typing := ""
	if p.conv.Pending() {
		typing = typingStyle.Render(utils.TruncateToWidth(typingIndicator, width))
	}
	lines = append(lines, utils.PadStyled(typing, width))
	lines = append(lines, separatorStyle.Render(strings.Repeat("─", width)))

	p.input.SetWidth(width)
	for i, line := range strings.Split(p.input.View(), "\n") {
		if i >= inputHeight {
			break
		}
		lines = append(lines, utils.PadStyled(line, width))
	}

	footer := inputFooter
	if p.focused == FocusTranscript {
		footer = viewportFooter
	}
	lines = append(lines, utils.PadStyled(footerStyle.Render(utils.TruncateToWidth(footer, width)), width))

	return boxStyle.
		Width(max(p.width, 1)).
		Padding(panelPaddingV, panelPaddingH).
		Render(strings.Join(lines, "\n"))
}

func (p *Panel) contentWidth() int {
	return max(p.width-2*(panelBorderSize+panelPaddingH), 1)
}

func (p *Panel) contentHeight() int {
	return max(p.height-2*(panelBorderSize+panelPaddingV), 1)
}

// transcriptHeight is what is left after the title, typing line,
// separator, input and footer.
func (p *Panel) transcriptHeight() int {
	return max(p.contentHeight()-chromeLines-inputHeight-1, 1)
}

func (p *Panel) maxScroll() int {
	return max(len(p.lines)-p.transcriptHeight(), 0)
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.ColorBorder)

	titleStyle     = styles.TitleStyle
	typingStyle    = styles.TextMutedStyle
	footerStyle    = styles.FooterStyle
	separatorStyle = lipgloss.NewStyle().Foreground(styles.ColorBorderMuted)
)
