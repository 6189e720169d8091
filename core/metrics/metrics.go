package metrics

import "time"

// PlanEvent summarizes one completed scheduling run.
type PlanEvent struct {
	PlanID      string
	Tasks       int
	TotalEffort float64
	Start       time.Time
	End         time.Time
	// Elapsed is the wall-clock duration of the run itself.
	Elapsed time.Duration
}

// TaskScheduleEvent records the dates assigned to a single task.
type TaskScheduleEvent struct {
	PlanID   string
	TaskID   string
	Name     string
	Effort   float64
	Start    time.Time
	End      time.Time
	SpanDays int
}

// MetricsSink records scheduling results for observability purposes.
type MetricsSink interface {
	RecordPlan(ev PlanEvent) error
	RecordTasks(evs []TaskScheduleEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlan(PlanEvent) error            { return nil }
func (NopSink) RecordTasks([]TaskScheduleEvent) error { return nil }

// MultiSink fans events out to several sinks, returning the first error
// encountered after all sinks have been called.
type MultiSink struct {
	sinks []MetricsSink
}

// NewMultiSink combines sinks into one.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordPlan(ev PlanEvent) error {
	var first error
	for _, s := range m.sinks {
		if err := s.RecordPlan(ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m *MultiSink) RecordTasks(evs []TaskScheduleEvent) error {
	var first error
	for _, s := range m.sinks {
		if err := s.RecordTasks(evs); err != nil && first == nil {
			first = err
		}
	}
	return first
}
