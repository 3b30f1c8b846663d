package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"
	"github.com/charmbracelet/lipgloss"
)

// renderTimeline draws one horizontal bar per item, first item on top.
// Bars are placed proportionally over the meeting span and colored by
// owner.
func renderTimeline(m *Model, width, height int) string {
	title := panelTitleStyle.Render("Timeline")

	rows := m.plan.Rows
	if len(rows) == 0 || m.plan.Total == 0 {
		return title + "\n\n" +
			emptyStateStyle.Render("Add at least one item to see the timeline.")
	}

	labelWidth := clamp(width/4, 10, 28)
	barWidth := width - labelWidth - 1
	if barWidth < 10 {
		barWidth = 10
	}

	colors := ownerColors(rows)
	total := m.plan.Total

	var lines []string
	lines = append(lines, title+traceDim(fmt.Sprintf("  %s", timeutil.FormatMinutes(total))))
	lines = append(lines, "")

	// Leave room for the title, the axis and the legend.
	maxBars := height - 5
	if maxBars < 1 {
		maxBars = 1
	}

	for i, r := range rows {
		if i >= maxBars {
			lines = append(lines, traceDim(fmt.Sprintf("  … %d more", len(rows)-i)))
			break
		}

		offset := int(r.Start.Sub(m.plan.Start).Minutes())
		from := barWidth * offset / total
		to := barWidth * (offset + r.DurationMin) / total
		to = clamp(to, from+1, barWidth)

		bar := timelineTrackStyle.Render(strings.Repeat("·", from)) +
			lipgloss.NewStyle().Foreground(colors[r.Owner]).Render(strings.Repeat("█", to-from)) +
			timelineTrackStyle.Render(strings.Repeat("·", barWidth-to))

		lines = append(lines, timelineLabelStyle.Render(fit(r.Topic, labelWidth))+" "+bar)
	}

	// Axis: start and end times under the bars.
	startLabel := timeutil.FormatClock(m.plan.Start)
	endLabel := timeutil.FormatClock(m.plan.End)
	gap := barWidth - len(startLabel) - len(endLabel)
	if gap < 1 {
		gap = 1
	}
	axis := strings.Repeat(" ", labelWidth+1) + startLabel + strings.Repeat(" ", gap) + endLabel
	lines = append(lines, timelineAxisStyle.Render(axis))

	lines = append(lines, renderLegend(m, colors))

	return strings.Join(lines, "\n")
}

// renderLegend lists owners with their bar color.
func renderLegend(m *Model, colors map[string]lipgloss.Color) string {
	var parts []string
	seen := make(map[string]bool)
	for _, r := range m.plan.Rows {
		if seen[r.Owner] {
			continue
		}
		seen[r.Owner] = true

		name := r.Owner
		if name == "" {
			name = "(no owner)"
		}
		parts = append(parts,
			lipgloss.NewStyle().Foreground(colors[r.Owner]).Render("■")+" "+traceDim(name))
	}
	return strings.Join(parts, "  ")
}

func traceDim(s string) string {
	return timelineAxisStyle.Render(s)
}

// renderTimelinePanel wraps the timeline in a styled panel.
func renderTimelinePanel(m *Model, width, height int) string {
	content := renderTimeline(m, width-4, height-1)
	return panelStyle.Width(width).Height(height - 1).Render(content)
}
