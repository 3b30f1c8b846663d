package export

import (
	"fmt"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"
	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"
)

// Summary renders the meeting line shown under the agenda:
//
//	Coordination meeting · Date: 19/10/2026 · Start: 09:00 · Estimated total: 70 min
func Summary(plan agenda.Plan) string {
	return fmt.Sprintf("%s · Date: %s · Start: %s · Estimated total: %d min",
		plan.Meeting.Title,
		timeutil.FormatDate(plan.Meeting.Date),
		plan.Meeting.StartTime,
		plan.Total)
}
