package planner

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/kilianp07/taskplan/core/calendar"
)

// ErrInvalidConfig is wrapped by every validation failure so callers can
// test for the class with errors.Is while still surfacing the specific
// message to the end user.
var ErrInvalidConfig = errors.New("invalid planner configuration")

// Config defines one scheduling run. It is immutable for the duration of
// the run.
type Config struct {
	// StartDate is the first day the plan may bill hours to. Only the
	// calendar day matters; any time-of-day is truncated.
	StartDate time.Time
	// Holidays lists non-working days at day granularity.
	Holidays []time.Time
	// IncludeWeekends makes Saturday and Sunday billable. Holidays stay
	// blocked either way.
	IncludeWeekends bool
	// WorkHoursPerDay is the capacity shared by all tasks on one day.
	WorkHoursPerDay float64
}

// Validate checks the two invariants the planner depends on. It runs
// before any task is processed so an invalid run produces no partial
// schedule.
func (c Config) Validate() error {
	if math.IsNaN(c.WorkHoursPerDay) || c.WorkHoursPerDay <= 0 {
		return fmt.Errorf("%w: work hours per day must be greater than 0", ErrInvalidConfig)
	}
	if c.StartDate.IsZero() {
		return fmt.Errorf("%w: project start date is not valid", ErrInvalidConfig)
	}
	return nil
}

// holidaySet builds the day-granularity set consumed by the calendar
// package. Duplicate entries in Holidays are harmless.
func (c Config) holidaySet() calendar.HolidaySet {
	return calendar.NewHolidaySet(c.Holidays...)
}
