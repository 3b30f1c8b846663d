package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"
	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"
	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/require"
)

func examplePlan(t *testing.T) agenda.Plan {
	t.Helper()
	plan, err := agenda.NewPlan(agenda.Meeting{
		Title:     "Coordination meeting",
		Date:      time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
		StartTime: timeutil.Clock{Hour: 9},
	}, nil)
	require.NoError(t, err)
	return plan
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, examplePlan(t).Rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	require.Equal(t, Columns, records[0])
	require.Equal(t, []string{"1", "Welcome and objectives", "Helen", "09:00", "09:10", "10"}, records[1])
	require.Equal(t, []string{"4", "Next steps", "Everyone", "09:55", "10:10", "15"}, records[4])
}

func TestWriteCSVEmptyHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	require.Equal(t, "Order,Topic,Owner,Start,End,Duration (min)\n", buf.String())
}

func TestWriteCSVQuotesAndUTF8(t *testing.T) {
	rows, err := agenda.Build(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC), []agenda.Item{
		{Topic: "Próximos pasos, cierre", Owner: "Zoë", DurationMin: 5},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))
	require.Contains(t, buf.String(), `1,"Próximos pasos, cierre",Zoë,08:00,08:05,5`)
}

func TestWriteICS(t *testing.T) {
	plan := examplePlan(t)
	stamp := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, plan, stamp))

	cal, err := ical.NewDecoder(strings.NewReader(buf.String())).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 4)

	start, err := events[1].DateTimeStart(time.UTC)
	require.NoError(t, err)
	require.Equal(t, plan.Rows[1].Start, start)

	end, err := events[1].DateTimeEnd(time.UTC)
	require.NoError(t, err)
	require.Equal(t, plan.Rows[1].End, end)

	summary, err := events[1].Props.Text(ical.PropSummary)
	require.NoError(t, err)
	require.Equal(t, "Project status", summary)

	owner, err := events[1].Props.Text(ical.PropDescription)
	require.NoError(t, err)
	require.Equal(t, "Team", owner)

	uids := make(map[string]bool)
	for _, ev := range events {
		uid, err := ev.Props.Text(ical.PropUID)
		require.NoError(t, err)
		uids[uid] = true
	}
	require.Len(t, uids, 4)

	var again bytes.Buffer
	require.NoError(t, WriteICS(&again, plan, stamp))
	require.Equal(t, buf.String(), again.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, examplePlan(t)))

	var decoded struct {
		Total     int  `json:"total_min"`
		IsExample bool `json:"is_example"`
		Rows      []struct {
			Order int    `json:"order"`
			Topic string `json:"topic"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, 70, decoded.Total)
	require.True(t, decoded.IsExample)
	require.Len(t, decoded.Rows, 4)
	require.Equal(t, "Decision block", decoded.Rows[2].Topic)
}

func TestSummary(t *testing.T) {
	require.Equal(t,
		"Coordination meeting · Date: 19/10/2026 · Start: 09:00 · Estimated total: 70 min",
		Summary(examplePlan(t)))
}
