// Package analyze is the "Analyze New" tab: pick a tender document, upload
// it to the analysis service and show the recommendation.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"vectorprime/pkg/analysis"
	"vectorprime/pkg/dashboard"
	"vectorprime/pkg/ui/components/utils"
	"vectorprime/pkg/ui/styles"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Margin is the verified margin shown under every result.
const Margin = "22% Verified"

// Analyzer uploads a document and returns the analysis.
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*analysis.Result, error)
}

// DoneMsg carries the outcome of one upload.
type DoneMsg struct {
	File   string
	Result *analysis.Result
	Err    error
}

// Panel drives an analysis.Workflow from keyboard input.
type Panel struct {
	analyzer Analyzer
	flow     *analysis.Workflow
	input    textinput.Model
	width    int
	focused  bool
}

// New creates an idle panel uploading through analyzer.
func New(analyzer Analyzer) *Panel {
	ti := textinput.New()
	ti.Placeholder = "path/to/tender.pdf"
	ti.Prompt = "› "
	ti.CharLimit = 1024

	return &Panel{
		analyzer: analyzer,
		flow:     analysis.NewWorkflow(),
		input:    ti,
	}
}

// Workflow exposes the upload state.
func (p *Panel) Workflow() *analysis.Workflow {
	return p.flow
}

// SetWidth sets the available width.
func (p *Panel) SetWidth(width int) {
	p.width = width
	p.input.SetWidth(max(width-6, 10))
}

// Focus gives the path input the cursor.
func (p *Panel) Focus() tea.Cmd {
	p.focused = true
	return p.input.Focus()
}

// Blur removes focus from the path input.
func (p *Panel) Blur() {
	p.focused = false
	p.input.Blur()
}

// Focused reports whether the panel takes key input.
func (p *Panel) Focused() bool {
	return p.focused
}

// Typing reports whether keys are going into the path input, so global
// single-letter shortcuts must not fire.
func (p *Panel) Typing() bool {
	return p.focused && p.flow.State() == analysis.StateIdle
}

// Update handles keys, pasted paths and upload results.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case DoneMsg:
		if msg.Err != nil {
			p.flow.Fail(msg.Err)
		} else {
			p.flow.Complete(msg.Result)
		}
		return nil

	case tea.PasteMsg:
		if p.flow.State() != analysis.StateIdle {
			return nil
		}
		p.input.SetValue(p.input.Value() + strings.TrimSpace(msg.Content))
		p.input.CursorEnd()
		return nil

	case tea.KeyPressMsg:
		return p.handleKey(msg)
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *Panel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch p.flow.State() {
	case analysis.StateLoading:
		return nil

	case analysis.StateDone:
		switch msg.String() {
		case "r", "enter":
			p.flow.Reset()
			p.input.SetValue("")
		}
		return nil
	}

	if msg.String() == "enter" {
		return p.Submit(p.input.Value())
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// Submit starts uploading path. It returns nil when the path is blank or
// an upload is already running.
func (p *Panel) Submit(path string) tea.Cmd {
	path = strings.Trim(strings.TrimSpace(path), `"'`)
	if path == "" {
		return nil
	}
	if !p.flow.Start(path) {
		return nil
	}
	slog.Info("analysis_started", "file", path)

	analyzer := p.analyzer
	return func() tea.Msg {
		if analyzer == nil {
			return DoneMsg{File: path, Err: fmt.Errorf("no analyzer configured")}
		}
		res, err := analyzer.AnalyzeFile(context.Background(), path)
		return DoneMsg{File: path, Result: res, Err: err}
	}
}

// TakeNotice returns the failure notice raised by the last upload, once.
func (p *Panel) TakeNotice() (string, bool) {
	return p.flow.TakeNotice()
}

// View renders the state the workflow is in.
func (p *Panel) View() string {
	switch p.flow.State() {
	case analysis.StateLoading:
		return p.loadingView()
	case analysis.StateDone:
		if res := p.flow.Result(); res != nil {
			return p.resultView(res)
		}
	}
	return p.idleView()
}

func (p *Panel) contentWidth() int {
	if p.width <= 0 {
		return 60
	}
	return p.width
}

func (p *Panel) idleView() string {
	inner := max(p.contentWidth()-4, 10)
	lines := []string{
		styles.TitleStyle.Render("Start New Analysis"),
		styles.TextMutedStyle.Render(utils.TruncateToWidth("Upload a Tender Document (PDF) to initiate the swarm.", inner)),
		"",
		styles.LabelStyle.Render("Upload RFP PDF"),
		p.input.View(),
		"",
		styles.FooterStyle.Render("AI Auto-Extraction & Matching · Enter Upload"),
	}
	return dropStyle.Width(p.contentWidth()).Render(strings.Join(lines, "\n"))
}

func (p *Panel) loadingView() string {
	name := filepath.Base(p.flow.File())
	lines := []string{
		busyStyle.Render("◌ Swarm Agents Active"),
		styles.TextMutedStyle.Render("Extracting Specs • Querying Vector DB • Calculating Margins"),
		"",
		styles.TextStyle.Render(utils.TruncateToWidth(name, max(p.contentWidth()-4, 10))),
	}
	return dropStyle.Width(p.contentWidth()).Render(strings.Join(lines, "\n"))
}

func (p *Panel) resultView(res *analysis.Result) string {
	width := p.contentWidth()
	inner := max(width-4, 10)

	var sb strings.Builder
	header := styles.TitleStyle.Render("Analysis Results")
	action := styles.FooterStyle.Render("[r] Start Over")
	gap := max(1, width-lipgloss.Width(header)-lipgloss.Width(action))
	sb.WriteString(header + strings.Repeat(" ", gap) + action)
	sb.WriteString("\n\n")

	summary := []string{
		styles.TextBoldStyle.Render("Executive Summary"),
		styles.TextStyle.Width(inner).Render(res.Summary),
	}
	if tags := Tags(res.Requirements); tags != "" {
		summary = append(summary, "", tagStyle.Width(inner).Render(tags))
	}
	sb.WriteString(sectionStyle.Width(width).Render(strings.Join(summary, "\n")))
	sb.WriteString("\n")

	var products []string
	for i, prod := range res.RecommendedProducts {
		products = append(products, ProductLine(i+1, prod, inner))
	}
	if len(products) == 0 {
		products = append(products, styles.TextMutedStyle.Render("No catalog products matched."))
	}
	sb.WriteString(sectionStyle.Width(width).Render(strings.Join(products, "\n")))
	sb.WriteString("\n")

	totals := strings.Join([]string{
		styles.LabelStyle.Render("Total Estimated Value ") + totalStyle.Render(dashboard.FormatRupees(res.TotalEstimatedCost)),
		styles.LabelStyle.Render("Margin ") + marginStyle.Render(Margin),
	}, "\n")
	sb.WriteString(sectionStyle.Width(width).Render(totals))

	return sb.String()
}

// Tags renders requirements as upper-case chips.
func Tags(reqs []string) string {
	var chips []string
	for _, r := range reqs {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		chips = append(chips, "["+strings.ToUpper(r)+"]")
	}
	return strings.Join(chips, " ")
}

// ProductLine renders one ranked recommendation.
func ProductLine(rank int, prod analysis.Product, width int) string {
	left := fmt.Sprintf("%d. %s  %s", rank, prod.Name, prod.SKUID)
	right := fmt.Sprintf("%s Match  %s/unit", prod.MatchScore, dashboard.FormatRupees(prod.UnitPrice))
	avail := max(width-lipgloss.Width(right)-1, 8)
	left = utils.Fit(left, avail)
	return styles.TextStyle.Render(left) + " " + matchStyle.Render(right)
}

var (
	dropStyle    = styles.DropZoneStyle
	sectionStyle = styles.SectionStyle

	busyStyle   = styles.ChipStyle.Bold(true)
	tagStyle    = styles.ChipStyle
	matchStyle  = styles.PositiveStyle
	totalStyle  = styles.FigureStyle
	marginStyle = styles.PositiveStyle
)

// Report renders res as plain text for line mode.
func Report(res *analysis.Result) string {
	var sb strings.Builder
	sb.WriteString("Analysis Results\n")
	fmt.Fprintf(&sb, "Executive Summary: %s\n", strings.TrimSpace(res.Summary))
	if tags := Tags(res.Requirements); tags != "" {
		fmt.Fprintf(&sb, "Requirements: %s\n", tags)
	}
	sb.WriteString("Recommended Products:\n")
	if len(res.RecommendedProducts) == 0 {
		sb.WriteString("  none\n")
	}
	for i, prod := range res.RecommendedProducts {
		fmt.Fprintf(&sb, "  %d. %s (%s) %s Match, %s/unit\n",
			i+1, prod.Name, prod.SKUID, prod.MatchScore, dashboard.FormatRupees(prod.UnitPrice))
	}
	fmt.Fprintf(&sb, "Total Estimated Value: %s\n", dashboard.FormatRupees(res.TotalEstimatedCost))
	fmt.Fprintf(&sb, "Margin: %s\n", Margin)
	return sb.String()
}
