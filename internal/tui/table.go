package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/agenda/internal/export"
)

// Fixed column widths; Topic and Owner share what is left.
const (
	colOrder    = 5
	colClock    = 6
	colDuration = 14
	colGaps     = 5
)

// renderTable renders the detailed agenda table.
func renderTable(m *Model, width, height int) string {
	var lines []string

	lines = append(lines, panelTitleStyle.Render("Detailed agenda"))
	lines = append(lines, panelCaptionStyle.Render(
		"Edit from the sidebar. Order follows the sequence items were added."))

	if m.plan.IsExample {
		lines = append(lines, infoBannerStyle.Render(
			"No items yet. Showing an example agenda."))
	}

	if len(m.plan.Rows) == 0 {
		lines = append(lines, emptyStateStyle.Render("No agenda items."))
		return strings.Join(lines, "\n")
	}

	flex := width - colOrder - 2*colClock - colDuration - colGaps
	if flex < 12 {
		flex = 12
	}
	colTopic := flex * 60 / 100
	colOwner := flex - colTopic

	widths := []int{colOrder, colTopic, colOwner, colClock, colClock, colDuration}
	rightAligned := []bool{true, false, false, false, false, true}

	lines = append(lines, tableHeaderStyle.Render(renderCells(export.Columns, widths, rightAligned)))
	lines = append(lines, tableRuleStyle.Render(strings.Repeat("─", minWidth(width, sum(widths)+colGaps))))

	for i, r := range m.plan.Rows {
		style := tableRowStyle
		if i%2 == 1 {
			style = tableRowAltStyle
		}
		lines = append(lines, style.Render(renderCells(export.Record(r), widths, rightAligned)))
	}

	if len(lines) > max(height, 1) {
		lines = lines[:max(height, 1)]
	}
	return strings.Join(lines, "\n")
}

func renderCells(cells []string, widths []int, right []bool) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if right[i] {
			out[i] = fitRight(c, widths[i])
		} else {
			out[i] = fit(c, widths[i])
		}
	}
	return strings.Join(out, " ")
}

// renderTablePanel wraps the table in a styled panel.
func renderTablePanel(m *Model, width, height int) string {
	content := renderTable(m, width-4, height-1)
	return panelStyle.Width(width).Height(height - 1).Render(content)
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func minWidth(a, b int) int {
	if a < b {
		return a
	}
	return b
}
