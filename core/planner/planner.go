package planner

import (
	"errors"
	"math"
	"time"

	"github.com/kilianp07/taskplan/core/calendar"
	"github.com/kilianp07/taskplan/core/model"
)

// cursor is the allocator's position: the day currently being filled and
// the hours already billed to it. It is threaded through the task list as
// an explicit accumulator; its threading order is the scheduling order.
type cursor struct {
	day      time.Time
	used     float64
	hours    float64
	holidays calendar.HolidaySet
	weekends bool
}

// newCursor positions the cursor on the first working day at or after
// the configured start date.
func newCursor(cfg Config) (*cursor, error) {
	c := &cursor{
		day:      calendar.StartOfDay(cfg.StartDate),
		hours:    cfg.WorkHoursPerDay,
		holidays: cfg.holidaySet(),
		weekends: cfg.IncludeWeekends,
	}
	if !calendar.IsWorkingDay(c.day, c.holidays, c.weekends) {
		if err := c.roll(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// roll advances the cursor to the next working day with a fresh capacity.
func (c *cursor) roll() error {
	day, err := calendar.NextWorkingDay(c.day, c.holidays, c.weekends)
	if err != nil {
		return err
	}
	c.day = day
	c.used = 0
	return nil
}

// place assigns start and end dates to a single task, consuming capacity
// from the cursor. Tasks without billable effort are pinned to the
// current day and leave the cursor untouched.
func (c *cursor) place(t model.Task) (model.ScheduledTask, error) {
	out := model.ScheduledTask{Task: t}

	remaining := t.Effort
	if math.IsNaN(remaining) || math.IsInf(remaining, 0) || remaining <= 0 {
		out.Start = c.day
		out.End = c.day
		return out, nil
	}

	out.Start = c.day
	for remaining > 0 {
		if c.used >= c.hours {
			if err := c.roll(); err != nil {
				return model.ScheduledTask{}, err
			}
		}
		available := c.hours - c.used
		billed := math.Min(remaining, available)
		remaining -= billed
		c.used += billed
	}
	out.End = c.day

	// Roll eagerly once the day is exactly full so the next task starts
	// from a fresh day instead of rediscovering fullness on entry. An
	// exhausted calendar is not fatal here: the task is already placed,
	// and a later task that needs capacity fails on its own loop entry.
	if c.used >= c.hours {
		if err := c.roll(); err != nil && !errors.Is(err, calendar.ErrNoWorkingDay) {
			return model.ScheduledTask{}, err
		}
	}
	return out, nil
}

// Schedule assigns start and end dates to every task, in input order,
// honoring the working-day calendar and the per-day hour budget. Several
// tasks may share one day; a task too large for the remaining capacity
// spills onto the following working days.
//
// The returned slice has the same length and order as tasks; every field
// other than the assigned dates passes through unchanged. On error no
// partial schedule is returned: a failed run yields nil.
func Schedule(tasks []model.Task, cfg Config) ([]model.ScheduledTask, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cur, err := newCursor(cfg)
	if err != nil {
		return nil, err
	}
	out := make([]model.ScheduledTask, 0, len(tasks))
	for _, t := range tasks {
		st, err := cur.place(t)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}
