package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")
	colorPurple = lipgloss.Color("#bc8cff")
	colorCyan   = lipgloss.Color("#76e3ea")
	colorOrange = lipgloss.Color("#f0883e")
	colorPink   = lipgloss.Color("#f778ba")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// ownerPalette colors timeline bars, one color per distinct owner in
// order of first appearance.
var ownerPalette = []lipgloss.Color{
	colorBlue, colorGreen, colorPurple, colorYellow,
	colorCyan, colorOrange, colorPink, colorRed,
}

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{
			Top:    "─",
			Bottom: "",
			Left:   "",
			Right:  "",
		}).
		BorderForeground(colorDivider)

	sidebarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{
			Top:   "─",
			Right: "│",
		}).
		BorderForeground(colorDivider)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	panelCaptionStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted).
				Italic(true)
)

// Sidebar form
var (
	formLabelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	formLabelActiveStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	formInputStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface)

	formInputActiveStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorHighlight)

	formPlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted).
				Background(colorBgSurface)

	formCursorStyle = lipgloss.NewStyle().
			Background(colorBlue).
			Foreground(colorBg)

	formSectionStyle = lipgloss.NewStyle().
				Foreground(colorDivider)
)

// Agenda table
var (
	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	tableRowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	tableRowAltStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)

	tableRuleStyle = lipgloss.NewStyle().
			Foreground(colorDivider)
)

// Timeline chart
var (
	timelineLabelStyle = lipgloss.NewStyle().
				Foreground(colorText)

	timelineAxisStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)

	timelineTrackStyle = lipgloss.NewStyle().
				Foreground(colorDivider)
)

// Banners and summary
var (
	infoBannerStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Padding(0, 1)

	summaryStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			Padding(0, 1)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(1, 2)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	statusWarnStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Background(colorBgSurface).
			Bold(true).
			Padding(0, 1)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Background(colorBgSurface).
			Bold(true).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)
