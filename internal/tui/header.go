package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/agenda/internal/export"
	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	AGENDA  |  Coordination meeting  |  19/10/2026  |  09:00 – 10:10
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("AGENDA")
	sep := headerSepStyle.Render(" │ ")

	title := m.meeting.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled meeting"
	}

	parts := []string{
		brand,
		sep, headerMetaStyle.Render(truncate(title, 40)),
		sep, headerMetaStyle.Render(timeutil.FormatDate(m.meeting.Date)),
		sep, headerMetaStyle.Render(
			timeutil.FormatClock(m.plan.Start) + " – " + timeutil.FormatClock(m.plan.End)),
	}

	return headerBarStyle.Width(m.width).Render(strings.Join(parts, ""))
}

// renderSummary produces the meeting summary line above the footer.
func renderSummary(m *Model) string {
	return summaryStyle.Width(m.width).Render(truncate(export.Summary(m.plan), m.width-2))
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left string
	if m.statusMsg != "" {
		switch m.statusKind {
		case statusWarn:
			left = statusWarnStyle.Render(m.statusMsg)
		case statusError:
			left = statusErrStyle.Render(m.statusMsg)
		default:
			left = statusStyle.Render(m.statusMsg)
		}
	}

	hints := []hint{
		{"tab", "field"},
		{"enter", "add"},
		{"+/-", "duration"},
		{"ctrl+l", "clear"},
		{"ctrl+e", "csv"},
		{"ctrl+o", "ics"},
		{"esc", "quit"},
	}
	if m.focus < FieldTopic {
		hints[1] = hint{"enter", "apply"}
	}
	right := renderHints(hints)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
