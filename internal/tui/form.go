package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// fieldSpec describes how a sidebar input is labelled.
type fieldSpec struct {
	label       string
	placeholder string
}

var fieldSpecs = [fieldCount]fieldSpec{
	FieldTitle:    {"Meeting title", ""},
	FieldDate:     {"Date", "DD/MM/YYYY"},
	FieldStart:    {"Start time", "HH:MM"},
	FieldTopic:    {"Topic / activity", "e.g. Welcome and objectives"},
	FieldOwner:    {"Owner", "e.g. Helen"},
	FieldDuration: {"Duration (min)", "1-480"},
}

// renderForm renders the meeting settings and the add-item form.
func renderForm(m *Model, width int) string {
	var lines []string

	lines = append(lines, panelTitleStyle.Render("Meeting settings"))
	lines = append(lines, "")
	for f := FieldTitle; f < FieldTopic; f++ {
		lines = append(lines, renderField(m, f, width)...)
	}

	lines = append(lines, formSectionStyle.Render(strings.Repeat("─", width)))
	lines = append(lines, panelTitleStyle.Render("Add agenda item"))
	lines = append(lines, "")
	for f := FieldTopic; f < fieldCount; f++ {
		lines = append(lines, renderField(m, f, width)...)
	}

	return strings.Join(lines, "\n")
}

// renderField renders a label line and an input line.
func renderField(m *Model, f Field, width int) []string {
	spec := fieldSpecs[f]
	active := m.focus == f

	label := formLabelStyle.Render(spec.label)
	if active {
		label = formLabelActiveStyle.Render("▸ " + spec.label)
	}

	value := m.inputs[f]
	inner := width - 1 // room for the cursor

	var input string
	switch {
	case value == "" && !active:
		input = formPlaceholderStyle.Render(fit(spec.placeholder, width))
	case active:
		// Keep the tail visible while typing past the field width.
		runes := []rune(value)
		if len(runes) > inner {
			value = string(runes[len(runes)-inner:])
		}
		pad := strings.Repeat(" ", clamp(inner-lipgloss.Width(value), 0, inner))
		input = formInputActiveStyle.Render(value) + formCursorStyle.Render(" ") +
			formInputActiveStyle.Render(pad)
	default:
		input = formInputStyle.Render(fit(value, width))
	}

	return []string{label, input, ""}
}

// renderFormPanel wraps the form in the sidebar chrome.
func renderFormPanel(m *Model, width, height int) string {
	content := renderForm(m, width-4)
	return sidebarStyle.Width(width - 1).Height(height - 1).Render(content)
}
