// Package export renders a scheduled agenda for sharing: CSV for
// spreadsheets, iCalendar for calendar apps, JSON for scripts, and the
// one-line meeting summary shown under every view.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"
	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"
)

// Columns is the header shared by the table view and the CSV export.
var Columns = []string{"Order", "Topic", "Owner", "Start", "End", "Duration (min)"}

// Record returns the table cells of one row, times as "HH:MM".
func Record(r agenda.ScheduledItem) []string {
	return []string{
		strconv.Itoa(r.Order),
		r.Topic,
		r.Owner,
		timeutil.FormatClock(r.Start),
		timeutil.FormatClock(r.End),
		strconv.Itoa(r.DurationMin),
	}
}

// WriteCSV writes rows as UTF-8 CSV with a header row. An empty
// schedule still produces the header.
func WriteCSV(w io.Writer, rows []agenda.ScheduledItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(Record(r)); err != nil {
			return fmt.Errorf("writing csv row %d: %w", r.Order, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
