package model

import (
	"time"

	"github.com/kilianp07/taskplan/core/calendar"
)

// Task is a unit of work to be placed on the calendar. Effort is the
// estimated number of hours the task consumes; every other field is
// opaque to the planner and carried through unchanged.
type Task struct {
	ID     string            `json:"id" yaml:"id"`
	Name   string            `json:"name" yaml:"name"`
	Effort float64           `json:"effort" yaml:"effort"`
	Tags   map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ScheduledTask is a Task augmented with the dates the planner assigned
// to it. Start and End are day-granularity values; both always fall on
// working days.
type ScheduledTask struct {
	Task  `yaml:",inline"`
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// SpanDays returns the number of calendar days between Start and End,
// inclusive. The count is by calendar day, so a DST transition inside
// the span does not shorten it.
func (s ScheduledTask) SpanDays() int {
	return calendar.DaysBetween(s.Start, s.End) + 1
}
