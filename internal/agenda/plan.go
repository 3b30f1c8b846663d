package agenda

import "time"

// Plan is everything a front end needs to render one agenda.
type Plan struct {
	Meeting   Meeting         `json:"meeting"`
	Start     time.Time       `json:"start"`
	End       time.Time       `json:"end"`
	Rows      []ScheduledItem `json:"rows"`
	Total     int             `json:"total_min"`
	IsExample bool            `json:"is_example"`
}

// NewPlan schedules items for the meeting, substituting the example
// agenda when items is empty.
func NewPlan(m Meeting, items []Item) (Plan, error) {
	effective, isExample := Effective(items)
	start := m.Start()

	rows, err := Build(start, effective)
	if err != nil {
		return Plan{}, err
	}

	return Plan{
		Meeting:   m,
		Start:     start,
		End:       End(start, rows),
		Rows:      rows,
		Total:     TotalMinutes(rows),
		IsExample: isExample,
	}, nil
}

// LoadPlan reads the current items from l and schedules them.
func LoadPlan(m Meeting, l List) (Plan, error) {
	items, err := l.Items()
	if err != nil {
		return Plan{}, err
	}
	return NewPlan(m, items)
}
