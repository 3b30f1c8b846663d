package agenda

import (
	"fmt"
	"io"
	"time"

	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"
	"gopkg.in/yaml.v3"
)

// File is the YAML layout read by "agenda render":
//
//	title: Coordination meeting
//	date: 19/10/2026
//	start: "09:00"
//	items:
//	  - topic: Welcome and objectives
//	    owner: Helen
//	    duration_min: 10
type File struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	Start string `yaml:"start"`
	Items []Item `yaml:"items"`
}

// ReadFile decodes an agenda file. Missing fields fall back to
// defaults; a missing date means today in loc. Every item is validated
// the same way as interactive input.
func ReadFile(r io.Reader, defaults Meeting, loc *time.Location) (Meeting, []Item, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return Meeting{}, nil, fmt.Errorf("decoding agenda file: %w", err)
	}

	m := defaults
	if f.Title != "" {
		m.Title = f.Title
	}
	if f.Date != "" {
		date, err := timeutil.ParseDate(f.Date, loc)
		if err != nil {
			return Meeting{}, nil, err
		}
		m.Date = date
	} else if m.Date.IsZero() {
		m.Date = timeutil.Today(loc)
	}
	if f.Start != "" {
		clock, err := timeutil.ParseClock(f.Start)
		if err != nil {
			return Meeting{}, nil, err
		}
		m.StartTime = clock
	}

	items := make([]Item, 0, len(f.Items))
	for i, raw := range f.Items {
		item, err := NewItem(raw.Topic, raw.Owner, raw.DurationMin)
		if err != nil {
			return Meeting{}, nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return m, items, nil
}
