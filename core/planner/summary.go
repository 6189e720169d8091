package planner

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/taskplan/core/calendar"
	"github.com/kilianp07/taskplan/core/model"
)

// Summary aggregates a finished schedule for reporting.
type Summary struct {
	Tasks       int       `json:"tasks"`
	TotalEffort float64   `json:"total_effort"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	// WorkingDays counts the working days between Start and End inclusive.
	WorkingDays int `json:"working_days"`
	// MeanSpanDays and StdDevSpanDays describe the distribution of
	// per-task calendar spans.
	MeanSpanDays   float64 `json:"mean_span_days"`
	StdDevSpanDays float64 `json:"stddev_span_days"`
	// Utilization is total effort over the capacity of the working days
	// the plan covers. 1.0 means every covered day is fully billed.
	Utilization float64 `json:"utilization"`
}

// Summarize computes plan-level statistics. An empty schedule yields the
// zero Summary.
func Summarize(sched []model.ScheduledTask, cfg Config) Summary {
	if len(sched) == 0 {
		return Summary{}
	}

	efforts := make([]float64, len(sched))
	spans := make([]float64, len(sched))
	for i, s := range sched {
		if s.Effort > 0 {
			efforts[i] = s.Effort
		}
		spans[i] = float64(s.SpanDays())
	}

	sum := Summary{
		Tasks:       len(sched),
		TotalEffort: floats.Sum(efforts),
		Start:       sched[0].Start,
		End:         sched[len(sched)-1].End,
	}
	if len(spans) < 2 {
		sum.MeanSpanDays = spans[0]
	} else {
		sum.MeanSpanDays, sum.StdDevSpanDays = stat.MeanStdDev(spans, nil)
	}

	holidays := cfg.holidaySet()
	for day := sum.Start; !day.After(sum.End); day = day.AddDate(0, 0, 1) {
		if calendar.IsWorkingDay(day, holidays, cfg.IncludeWeekends) {
			sum.WorkingDays++
		}
	}
	if capacity := float64(sum.WorkingDays) * cfg.WorkHoursPerDay; capacity > 0 {
		sum.Utilization = sum.TotalEffort / capacity
	}
	return sum
}
