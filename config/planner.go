package config

import (
	"fmt"
	"time"

	"github.com/kilianp07/taskplan/core/planner"
)

// dateLayout is the day-granularity format used for all configured dates.
const dateLayout = "2006-01-02"

// PlannerConfig defines the scheduling parameters as they appear in the
// configuration file. Dates are day-granularity strings.
type PlannerConfig struct {
	// StartDate is the first candidate working day, formatted 2006-01-02.
	StartDate string `json:"start_date"`
	// Holidays lists non-working days, formatted 2006-01-02.
	Holidays []string `json:"holidays"`
	// IncludeWeekends makes Saturday and Sunday billable.
	IncludeWeekends bool `json:"include_weekends"`
	// WorkHoursPerDay is the daily capacity shared by all tasks.
	WorkHoursPerDay float64 `json:"work_hours_per_day"`
}

// SetDefaults applies sane defaults.
func (c *PlannerConfig) SetDefaults() {
	if c.WorkHoursPerDay == 0 {
		c.WorkHoursPerDay = 8
	}
}

// Planner parses the raw configuration into a planner.Config. Malformed
// dates are rejected here so the planner only ever sees valid ones.
func (c PlannerConfig) Planner() (planner.Config, error) {
	cfg := planner.Config{
		IncludeWeekends: c.IncludeWeekends,
		WorkHoursPerDay: c.WorkHoursPerDay,
	}
	if c.StartDate != "" {
		start, err := time.Parse(dateLayout, c.StartDate)
		if err != nil {
			return planner.Config{}, fmt.Errorf("start_date %q: %w", c.StartDate, err)
		}
		cfg.StartDate = start
	}
	for _, h := range c.Holidays {
		d, err := time.Parse(dateLayout, h)
		if err != nil {
			return planner.Config{}, fmt.Errorf("holiday %q: %w", h, err)
		}
		cfg.Holidays = append(cfg.Holidays, d)
	}
	return cfg, nil
}
