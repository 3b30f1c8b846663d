// Package agenda holds the meeting agenda domain: agenda items, the
// meeting they belong to, and the contiguous schedule derived from them.
package agenda

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"
)

// Bounds accepted for a single item's duration.
const (
	MinDuration     = 1
	MaxDuration     = 480
	DefaultDuration = 10
)

// Item is one row of the meeting plan, in insertion order.
type Item struct {
	Topic       string `json:"topic" yaml:"topic"`
	Owner       string `json:"owner,omitempty" yaml:"owner"`
	DurationMin int    `json:"duration_min" yaml:"duration_min"`
}

// NewItem trims and validates user input for an agenda item.
func NewItem(topic, owner string, minutes int) (Item, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Item{}, ErrEmptyTopic
	}
	if minutes < MinDuration || minutes > MaxDuration {
		return Item{}, fmt.Errorf("%w: %d not in %d..%d",
			ErrInvalidDuration, minutes, MinDuration, MaxDuration)
	}
	return Item{
		Topic:       topic,
		Owner:       strings.TrimSpace(owner),
		DurationMin: minutes,
	}, nil
}

// ScheduledItem is an Item placed on the meeting timeline.
type ScheduledItem struct {
	Order       int       `json:"order"`
	Topic       string    `json:"topic"`
	Owner       string    `json:"owner"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	DurationMin int       `json:"duration_min"`
}

// Meeting is the free-standing meeting configuration.
type Meeting struct {
	Title     string         `json:"title"`
	Date      time.Time      `json:"date"`
	StartTime timeutil.Clock `json:"-"`
}

// Start combines the meeting date and start time into one instant.
func (m Meeting) Start() time.Time {
	return timeutil.Combine(m.Date, m.StartTime)
}
