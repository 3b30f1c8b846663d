// Package tui implements the agenda builder terminal user interface.
//
// Built with Charmbracelet's BubbleTea and Lipgloss.
//
// Component architecture:
//
//	model.go    — root model, message routing, Init/Update/View
//	theme.go    — centralized color + style definitions
//	header.go   — top bar, summary line, footer with keyboard hints
//	form.go     — sidebar form: meeting settings + add-item fields
//	table.go    — detailed agenda table
//	timeline.go — proportional timeline chart, one bar per item
//	helpers.go  — padding, truncation, owner colors
package tui
