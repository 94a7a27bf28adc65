// Package styles is the shared color palette and base styles of the dashboard.
// Components style their own layout; colors and recurring surfaces live here.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Color palette - ANSI 256 colors, plus the brand navy as hex
var (
	// Primary accent color (purple)
	ColorAccent = lipgloss.Color("141")

	// Brand navy, used behind the status bar
	ColorBrand = lipgloss.Color("#1E3A8A")

	// Text colors
	ColorText       = lipgloss.Color("252") // Primary text
	ColorTextMuted  = lipgloss.Color("245") // Secondary/muted text
	ColorTextBright = lipgloss.Color("15")  // Bright/highlighted text

	// Semantic colors
	ColorError   = lipgloss.Color("196")
	ColorWarning = lipgloss.Color("214")
	ColorSuccess = lipgloss.Color("42")

	// Border colors
	ColorBorder      = lipgloss.Color("141") // Default border (matches accent)
	ColorBorderMuted = lipgloss.Color("62")  // Muted border
)

// RFP status badges
var (
	ColorQualified      = ColorSuccess
	ColorProcessing     = ColorAccent
	ColorActionRequired = ColorWarning
	ColorRejected       = ColorError
)

// Panel/Box styles
var (
	// BoxStyle is the default rounded box for overlays and panels
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	// CardStyle frames one analytics metric; cards sit side by side.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderMuted).
			Padding(0, 1).
			MarginRight(1)

	// DropZoneStyle frames the document path input.
	DropZoneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderMuted).
			Padding(0, 1)

	// SectionStyle frames a block of the analysis result.
	SectionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorderMuted).
			Padding(0, 1)
)

// Text styles
var (
	// TitleStyle for panel/section titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// TextStyle for normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// TextMutedStyle for secondary/helper text
	TextMutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TextBoldStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	// FigureStyle for headline numbers: metric values, totals.
	FigureStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(20)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Selection and highlighting
var (
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorAccent).
			Bold(true)

	// PositiveStyle marks good news: strong matches, upward trends, margins.
	PositiveStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ChipStyle for requirement tags and AI-series bars.
	ChipStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)
)

// StatusBarStyle is the bottom bar: white on brand navy.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(ColorBrand).
	Padding(0, 1).
	Bold(true)

// Welcome message styles
var (
	WelcomeBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("99"))

	WelcomeTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("219")).
				Bold(true)

	// WelcomeKeyStyle for keyboard shortcut keys
	WelcomeKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")).
			Bold(true)

	WelcomeHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("248"))

	// WelcomeVersionStyle for version info (dimmed)
	WelcomeVersionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))
)
