package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"
	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, list agenda.List) Model {
	t.Helper()
	m := NewModel(Options{
		List: list,
		Meeting: agenda.Meeting{
			Title:     "Coordination meeting",
			Date:      time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
			StartTime: timeutil.Clock{Hour: 9},
		},
		ExportDir: t.TempDir(),
		Now:       func() time.Time { return time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC) },
	})
	return run(m, m.Init())
}

// run feeds cmd results back into the model until no command is left.
func run(m Model, cmd tea.Cmd) Model {
	for cmd != nil {
		msg := cmd()
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, cmd := m.Update(k)
		m = run(next.(Model), cmd)
	}
	return m
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab       = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab  = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
	keyClear     = tea.KeyMsg{Type: tea.KeyCtrlL}
)

func TestInitialPlanIsExample(t *testing.T) {
	m := newTestModel(t, agenda.NewSession())

	plan := m.Plan()
	require.True(t, plan.IsExample)
	require.Len(t, plan.Rows, 4)
	require.Equal(t, 70, plan.Total)
	require.Equal(t, FieldTopic, m.Focus())
}

func TestAddItem(t *testing.T) {
	list := agenda.NewSession()
	m := newTestModel(t, list)

	m = press(m,
		typeText("Retro"), keyTab,
		typeText("Kim"), keyTab,
		keyBackspace, keyBackspace, typeText("30"),
		keyEnter,
	)

	require.Equal(t, 1, itemCount(t, list))
	plan := m.Plan()
	require.False(t, plan.IsExample)
	require.Len(t, plan.Rows, 1)
	require.Equal(t, "Retro", plan.Rows[0].Topic)
	require.Equal(t, "Kim", plan.Rows[0].Owner)
	require.Equal(t, 30, plan.Total)
	require.Equal(t, "09:30", timeutil.FormatClock(plan.Rows[0].End))

	// The form resets after a successful submit.
	require.Equal(t, FieldTopic, m.Focus())
	require.Empty(t, m.Input(FieldTopic))
	require.Empty(t, m.Input(FieldOwner))
	require.Equal(t, "10", m.Input(FieldDuration))
}

func TestEmptyTopicIsRejected(t *testing.T) {
	list := agenda.NewSession()
	m := newTestModel(t, list)

	m = press(m, typeText("   "), keyEnter)

	require.Zero(t, itemCount(t, list))
	require.Equal(t, "Please enter a topic.", m.Status())
	require.True(t, m.Plan().IsExample)
}

func TestDurationStepsAndClamps(t *testing.T) {
	m := newTestModel(t, agenda.NewSession())
	m = press(m, keyTab, keyTab) // topic -> owner -> duration
	require.Equal(t, FieldDuration, m.Focus())

	m = press(m, typeText("+"))
	require.Equal(t, "15", m.Input(FieldDuration))

	m = press(m, typeText("abc"))
	require.Equal(t, "15", m.Input(FieldDuration))

	m = press(m, keyBackspace, keyBackspace, typeText("999"), typeText("+"))
	require.Equal(t, "480", m.Input(FieldDuration))

	m = press(m, keyBackspace, keyBackspace, keyBackspace, typeText("1"), typeText("-"))
	require.Equal(t, "1", m.Input(FieldDuration))
}

func TestClearShowsExample(t *testing.T) {
	list := agenda.NewSession(agenda.Item{Topic: "Only", DurationMin: 5})
	m := newTestModel(t, list)
	require.False(t, m.Plan().IsExample)

	m = press(m, keyClear)

	require.Zero(t, itemCount(t, list))
	require.True(t, m.Plan().IsExample)
	require.Equal(t, "Agenda cleared", m.Status())
}

func TestMeetingFieldsReschedule(t *testing.T) {
	m := newTestModel(t, agenda.NewSession())

	// Focus the start time field: topic -> start.
	m = press(m, keyShiftTab)
	require.Equal(t, FieldStart, m.Focus())

	for range 5 {
		m = press(m, keyBackspace)
	}
	m = press(m, typeText("14:15"), keyEnter)
	require.Equal(t, "14:15", timeutil.FormatClock(m.Plan().Start))
	require.Equal(t, "15:25", timeutil.FormatClock(m.Plan().End))

	// An invalid time is reverted with a warning.
	m = press(m, typeText("x"), keyEnter)
	require.Equal(t, "14:15", m.Input(FieldStart))
	require.Contains(t, m.Status(), "Invalid start time")

	// Date field.
	m = press(m, keyShiftTab)
	require.Equal(t, FieldDate, m.Focus())
	for range 10 {
		m = press(m, keyBackspace)
	}
	m = press(m, typeText("24/12/2026"), keyTab)
	require.Equal(t, time.Date(2026, time.December, 24, 14, 15, 0, 0, time.UTC), m.Plan().Start)

	// Title applies as it is typed.
	m = press(m, keyShiftTab, keyShiftTab, typeText("!"))
	require.Equal(t, "Coordination meeting!", m.Plan().Meeting.Title)
}

func TestExportCSVAndICS(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(Options{
		List: agenda.NewSession(),
		Meeting: agenda.Meeting{
			Title:     "Sync",
			Date:      time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
			StartTime: timeutil.Clock{Hour: 9},
		},
		ExportDir: dir,
	})
	m = run(m, m.Init())

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	data, err := os.ReadFile(filepath.Join(dir, "agenda.csv"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "Order,Topic,Owner,Start,End,Duration (min)\n"))
	require.Contains(t, string(data), "4,Next steps,Everyone,09:55,10:10,15")
	require.Contains(t, m.Status(), "agenda.csv")

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	data, err = os.ReadFile(filepath.Join(dir, "agenda.ics"))
	require.NoError(t, err)
	require.Contains(t, string(data), "BEGIN:VCALENDAR")
	require.Equal(t, 4, strings.Count(string(data), "BEGIN:VEVENT"))
}

func TestViewRendersAllSections(t *testing.T) {
	m := newTestModel(t, agenda.NewSession())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m = next.(Model)

	view := m.View()
	require.Contains(t, view, "AGENDA")
	require.Contains(t, view, "Detailed agenda")
	require.Contains(t, view, "Showing an example agenda")
	require.Contains(t, view, "Welcome and objectives")
	require.Contains(t, view, "Timeline")
	require.Contains(t, view, "Estimated total: 70 min")
	require.Contains(t, view, "Add agenda item")
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, agenda.NewSession())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewSurvivesSmallWindows(t *testing.T) {
	sizes := []tea.WindowSizeMsg{
		{Width: 60, Height: 10},
		{Width: 120, Height: 8},
		{Width: 79, Height: 12},
		{Width: 30, Height: 8},
		{Width: 80, Height: 9},
		{Width: 20, Height: 3},
		{Width: 1, Height: 1},
	}

	list := agenda.NewSession(agenda.ExampleItems()...)
	for _, size := range sizes {
		m := newTestModel(t, list)
		next, _ := m.Update(size)
		m = next.(Model)

		require.NotPanics(t, func() { m.View() }, "%dx%d", size.Width, size.Height)
		require.NotEmpty(t, m.View())
	}
}

func TestViewReportsTinyTerminal(t *testing.T) {
	m := newTestModel(t, agenda.NewSession())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 5})
	m = next.(Model)

	require.Contains(t, m.View(), "Terminal too small")
}

func itemCount(t *testing.T, l agenda.List) int {
	t.Helper()
	items, err := l.Items()
	require.NoError(t, err)
	return len(items)
}
