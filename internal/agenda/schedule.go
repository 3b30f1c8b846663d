package agenda

import (
	"fmt"
	"iter"
	"time"
)

// Interval is a half-open [Start, End) slot on the meeting timeline.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Intervals lays out durations (in minutes) back to back from start.
// All durations are checked before the sequence is returned; the
// sequence itself yields (index, interval) pairs lazily, each one
// starting exactly where the previous one ended.
func Intervals(start time.Time, minutes []int) (iter.Seq2[int, Interval], error) {
	for i, m := range minutes {
		if m <= 0 {
			return nil, fmt.Errorf("item %d: %w (got %d)", i+1, ErrInvalidDuration, m)
		}
	}

	return func(yield func(int, Interval) bool) {
		cursor := start
		for i, m := range minutes {
			end := cursor.Add(time.Duration(m) * time.Minute)
			if !yield(i, Interval{Start: cursor, End: end}) {
				return
			}
			cursor = end
		}
	}, nil
}

// Build places items on the timeline starting at start.
func Build(start time.Time, items []Item) ([]ScheduledItem, error) {
	minutes := make([]int, len(items))
	for i, it := range items {
		minutes[i] = it.DurationMin
	}

	seq, err := Intervals(start, minutes)
	if err != nil {
		return nil, err
	}

	rows := make([]ScheduledItem, 0, len(items))
	for i, iv := range seq {
		it := items[i]
		rows = append(rows, ScheduledItem{
			Order:       i + 1,
			Topic:       it.Topic,
			Owner:       it.Owner,
			Start:       iv.Start,
			End:         iv.End,
			DurationMin: it.DurationMin,
		})
	}
	return rows, nil
}

// TotalMinutes sums the durations of a schedule.
func TotalMinutes(rows []ScheduledItem) int {
	total := 0
	for _, r := range rows {
		total += r.DurationMin
	}
	return total
}

// End returns when the last item finishes, or start for an empty schedule.
func End(start time.Time, rows []ScheduledItem) time.Time {
	if len(rows) == 0 {
		return start
	}
	return rows[len(rows)-1].End
}
