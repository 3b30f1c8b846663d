package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"
	"github.com/Mr-Dark-debug/agenda/internal/export"
	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// ────────────────────────────────────────────────────────────
// Form fields
// ────────────────────────────────────────────────────────────

// Field identifies a sidebar input.
type Field int

const (
	FieldTitle Field = iota
	FieldDate
	FieldStart
	FieldTopic
	FieldOwner
	FieldDuration

	fieldCount
)

// durationStep is how far "+" and "-" move the duration field.
const durationStep = 5

// statusKind selects the footer style of the status message.
type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusError
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Options configures a Model.
type Options struct {
	// List holds the session's agenda items.
	List agenda.List
	// Meeting is the initial meeting configuration.
	Meeting agenda.Meeting
	// ExportDir is where ctrl+e / ctrl+o write their files.
	ExportDir string
	Logger    *zap.Logger
	// Now stamps iCalendar exports. Defaults to time.Now.
	Now func() time.Time
}

// Model is the root BubbleTea model for the agenda builder.
type Model struct {
	list      agenda.List
	logger    *zap.Logger
	exportDir string
	now       func() time.Time

	// Data
	meeting agenda.Meeting
	items   []agenda.Item
	plan    agenda.Plan

	// UI state
	inputs [fieldCount]string
	focus  Field
	width  int
	height int

	// Status
	statusMsg  string
	statusKind statusKind
	err        error
}

// NewModel creates a new TUI model over the given list.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	dir := opts.ExportDir
	if dir == "" {
		dir = "."
	}

	m := Model{
		list:      opts.List,
		logger:    logger,
		exportDir: dir,
		now:       now,
		meeting:   opts.Meeting,
		focus:     FieldTopic,
		statusMsg: "Loading agenda...",
	}
	m.inputs[FieldTitle] = opts.Meeting.Title
	m.inputs[FieldDate] = timeutil.FormatDate(opts.Meeting.Date)
	m.inputs[FieldStart] = opts.Meeting.StartTime.String()
	m.resetItemInputs()
	m.rebuild()
	return m
}

// Plan returns the schedule currently on screen.
func (m Model) Plan() agenda.Plan { return m.plan }

// Focus returns the focused form field.
func (m Model) Focus() Field { return m.focus }

// Input returns the current text of a form field.
func (m Model) Input(f Field) string { return m.inputs[f] }

// Status returns the footer status message.
func (m Model) Status() string { return m.statusMsg }

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type itemsLoadedMsg []agenda.Item
type itemAddedMsg struct{ item agenda.Item }
type clearedMsg struct{}
type exportedMsg struct{ path string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.loadItems()
}

func (m Model) loadItems() tea.Cmd {
	return func() tea.Msg {
		items, err := m.list.Items()
		if err != nil {
			return errMsg{err}
		}
		return itemsLoadedMsg(items)
	}
}

func (m Model) appendItem(item agenda.Item) tea.Cmd {
	return func() tea.Msg {
		if err := m.list.Append(item); err != nil {
			return errMsg{err}
		}
		return itemAddedMsg{item: item}
	}
}

func (m Model) clearItems() tea.Cmd {
	return func() tea.Msg {
		if err := m.list.Clear(); err != nil {
			return errMsg{err}
		}
		return clearedMsg{}
	}
}

func (m Model) exportFile(name string, write func(f *os.File) error) tea.Cmd {
	path := filepath.Join(m.exportDir, name)
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return errMsg{fmt.Errorf("creating %s: %w", path, err)}
		}
		if err := write(f); err != nil {
			f.Close()
			return errMsg{fmt.Errorf("writing %s: %w", path, err)}
		}
		if err := f.Close(); err != nil {
			return errMsg{fmt.Errorf("closing %s: %w", path, err)}
		}
		return exportedMsg{path: path}
	}
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case itemsLoadedMsg:
		m.items = []agenda.Item(msg)
		m.rebuild()
		if m.statusKind == statusInfo && m.statusMsg == "Loading agenda..." {
			m.setStatus(statusInfo, fmt.Sprintf("%d items", len(m.items)))
		}
		return m, nil

	case itemAddedMsg:
		m.logger.Info("agenda item added",
			zap.String("topic", msg.item.Topic),
			zap.String("owner", msg.item.Owner),
			zap.Int("duration_min", msg.item.DurationMin))
		m.resetItemInputs()
		m.focus = FieldTopic
		m.setStatus(statusInfo, fmt.Sprintf("Added %q", msg.item.Topic))
		return m, m.loadItems()

	case clearedMsg:
		m.logger.Info("agenda cleared")
		m.setStatus(statusInfo, "Agenda cleared")
		return m, m.loadItems()

	case exportedMsg:
		m.logger.Info("agenda exported", zap.String("path", msg.path))
		m.setStatus(statusInfo, "Saved "+msg.path)
		return m, nil

	case errMsg:
		m.logger.Error("agenda operation failed", zap.Error(msg.err))
		m.err = msg.err
		m.setStatus(statusError, fmt.Sprintf("Error: %v", msg.err))
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input to the focused field.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyRunes:
		m.typeRunes(msg.Runes)
		return m, nil
	case tea.KeySpace:
		m.typeRunes([]rune{' '})
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		m.commitField()
		m.focus = (m.focus + 1) % fieldCount
		return m, nil

	case "shift+tab", "up":
		m.commitField()
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m, nil

	case "backspace":
		m.inputs[m.focus] = dropLastRune(m.inputs[m.focus])
		if m.focus == FieldTitle {
			m.commitField()
		}
		return m, nil

	case "enter":
		if m.focus < FieldTopic {
			m.commitField()
			return m, nil
		}
		return m.submit()

	case "ctrl+l":
		return m, m.clearItems()

	case "ctrl+e":
		rows := m.plan.Rows
		return m, m.exportFile("agenda.csv", func(f *os.File) error {
			return export.WriteCSV(f, rows)
		})

	case "ctrl+o":
		plan, stamp := m.plan, m.now()
		return m, m.exportFile("agenda.ics", func(f *os.File) error {
			return export.WriteICS(f, plan, stamp)
		})
	}

	return m, nil
}

// typeRunes appends typed text to the focused field. The duration
// field only takes digits; "+" and "-" step it like a number input.
func (m *Model) typeRunes(runes []rune) {
	if m.focus != FieldDuration {
		m.inputs[m.focus] += string(runes)
		if m.focus == FieldTitle {
			m.commitField()
		}
		return
	}

	for _, r := range runes {
		switch {
		case r == '+':
			m.stepDuration(durationStep)
		case r == '-':
			m.stepDuration(-durationStep)
		case r >= '0' && r <= '9' && len(m.inputs[FieldDuration]) < 3:
			m.inputs[FieldDuration] += string(r)
		}
	}
}

func (m *Model) stepDuration(delta int) {
	n, err := strconv.Atoi(m.inputs[FieldDuration])
	if err != nil {
		n = agenda.DefaultDuration
	}
	n = clamp(n+delta, agenda.MinDuration, agenda.MaxDuration)
	m.inputs[FieldDuration] = strconv.Itoa(n)
}

// commitField applies a meeting field to the meeting configuration.
// Invalid dates and times are reported and reverted.
func (m *Model) commitField() {
	switch m.focus {
	case FieldTitle:
		m.meeting.Title = m.inputs[FieldTitle]

	case FieldDate:
		d, err := timeutil.ParseDate(m.inputs[FieldDate], m.meeting.Date.Location())
		if err != nil {
			m.setStatus(statusWarn, "Invalid date, use DD/MM/YYYY.")
			m.inputs[FieldDate] = timeutil.FormatDate(m.meeting.Date)
			return
		}
		m.meeting.Date = d

	case FieldStart:
		c, err := timeutil.ParseClock(m.inputs[FieldStart])
		if err != nil {
			m.setStatus(statusWarn, "Invalid start time, use HH:MM.")
			m.inputs[FieldStart] = m.meeting.StartTime.String()
			return
		}
		m.meeting.StartTime = c
		m.inputs[FieldStart] = c.String()

	default:
		return
	}
	m.rebuild()
}

// submit validates the add-item fields and appends the item. An empty
// topic is rejected with a warning and the list is left unchanged.
func (m Model) submit() (tea.Model, tea.Cmd) {
	minutes, err := strconv.Atoi(m.inputs[FieldDuration])
	if err != nil {
		minutes = 0
	}
	minutes = clamp(minutes, agenda.MinDuration, agenda.MaxDuration)

	item, err := agenda.NewItem(m.inputs[FieldTopic], m.inputs[FieldOwner], minutes)
	switch {
	case errors.Is(err, agenda.ErrEmptyTopic):
		m.setStatus(statusWarn, "Please enter a topic.")
		m.focus = FieldTopic
		return m, nil
	case err != nil:
		m.setStatus(statusWarn, err.Error())
		return m, nil
	}

	return m, m.appendItem(item)
}

func (m *Model) resetItemInputs() {
	m.inputs[FieldTopic] = ""
	m.inputs[FieldOwner] = ""
	m.inputs[FieldDuration] = strconv.Itoa(agenda.DefaultDuration)
}

// rebuild recomputes the schedule from the cached items.
func (m *Model) rebuild() {
	plan, err := agenda.NewPlan(m.meeting, m.items)
	if err != nil {
		m.err = err
		m.setStatus(statusError, fmt.Sprintf("Error: %v", err))
		return
	}
	m.plan = plan
}

func (m *Model) setStatus(kind statusKind, msg string) {
	m.statusKind = kind
	m.statusMsg = msg
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

// sidebarWidth is the fixed width of the form column.
const sidebarWidth = 34

// Below this size the layout cannot hold the form and the table.
const (
	minViewWidth  = 30
	minViewHeight = 8
)

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.width < minViewWidth || m.height < minViewHeight {
		return statusWarnStyle.Render(truncate(
			fmt.Sprintf("Terminal too small (%dx%d), need %dx%d.",
				m.width, m.height, minViewWidth, minViewHeight),
			max(m.width, 1)))
	}

	header := renderHeader(&m)
	summary := renderSummary(&m)
	footer := renderFooter(&m)

	bodyHeight := m.height - 3 // header + summary + footer

	var body string
	if m.width < 80 {
		body = m.renderCompactLayout(bodyHeight)
	} else {
		body = m.renderMainLayout(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, summary, footer)
}

// renderMainLayout puts the form on the left, table above timeline on the right.
func (m Model) renderMainLayout(totalHeight int) string {
	mainWidth := m.width - sidebarWidth
	tableHeight := len(m.plan.Rows) + 5
	if m.plan.IsExample {
		tableHeight++
	}
	tableHeight = clamp(tableHeight, 6, totalHeight*60/100)
	chartHeight := totalHeight - tableHeight

	form := renderFormPanel(&m, sidebarWidth, totalHeight)
	table := renderTablePanel(&m, mainWidth, tableHeight)
	chart := renderTimelinePanel(&m, mainWidth, chartHeight)

	right := lipgloss.JoinVertical(lipgloss.Left, table, chart)
	return lipgloss.JoinHorizontal(lipgloss.Top, form, right)
}

// renderCompactLayout stacks the form over the table on narrow terminals.
func (m Model) renderCompactLayout(totalHeight int) string {
	formHeight := clamp(totalHeight/2, 10, totalHeight-3)
	form := renderFormPanel(&m, m.width, formHeight)
	table := renderTablePanel(&m, m.width, totalHeight-formHeight)
	return lipgloss.JoinVertical(lipgloss.Left, form, table)
}
