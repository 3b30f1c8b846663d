package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const productID = "-//agenda//Meeting Agenda Builder//EN"

// WriteICS writes the plan as one VCALENDAR with a VEVENT per row.
// UIDs are derived from the meeting and row so re-exports update the
// same events in calendar apps.
func WriteICS(w io.Writer, plan agenda.Plan, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, r := range plan.Rows {
		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, eventUID(plan, r))
		ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeStart, r.Start.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeEnd, r.End.UTC())
		ev.Props.SetText(ical.PropSummary, r.Topic)
		if plan.Meeting.Title != "" {
			ev.Props.SetText(ical.PropCategories, plan.Meeting.Title)
		}
		if r.Owner != "" {
			ev.Props.SetText(ical.PropDescription, r.Owner)
		}
		cal.Children = append(cal.Children, ev.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}

func eventUID(plan agenda.Plan, r agenda.ScheduledItem) string {
	name := plan.Meeting.Title + "|" + plan.Start.Format(time.RFC3339) + "|" + strconv.Itoa(r.Order)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}
