package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Owner colors
// ────────────────────────────────────────────────────────────

// ownerColors assigns palette colors to owners in order of first
// appearance, so the same owner keeps its color across renders.
func ownerColors(rows []agenda.ScheduledItem) map[string]lipgloss.Color {
	colors := make(map[string]lipgloss.Color)
	for _, r := range rows {
		if _, ok := colors[r.Owner]; ok {
			continue
		}
		colors[r.Owner] = ownerPalette[len(colors)%len(ownerPalette)]
	}
	return colors
}

// ────────────────────────────────────────────────────────────
// String helpers
// ────────────────────────────────────────────────────────────

// truncate cuts a string to maxLen runes and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	s = truncate(s, width)
	if gap := width - lipgloss.Width(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// fitRight is fit with the padding on the left.
func fitRight(s string, width int) string {
	s = truncate(s, width)
	if gap := width - lipgloss.Width(s); gap > 0 {
		s = strings.Repeat(" ", gap) + s
	}
	return s
}

// dropLastRune removes the final rune of s.
func dropLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}

// clamp restricts val to [lo, hi]. When lo > hi, hi wins.
func clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}
