package metrics

import (
	"github.com/kilianp07/taskplan/core/calendar"
	coremetrics "github.com/kilianp07/taskplan/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records scheduling events in Prometheus metrics.
type PromSink struct {
	tasks   *prometheus.CounterVec
	span    prometheus.Histogram
	horizon prometheus.Gauge
}

// NewPromSink registers plan metrics on the default Prometheus registerer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	tasks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taskplan_tasks_scheduled_total",
		Help: "Total number of tasks placed on the calendar",
	}, []string{"plan_id"})
	span := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "taskplan_task_span_days",
		Help:    "Calendar days covered by a single task",
		Buckets: []float64{1, 2, 3, 5, 10, 20, 40, 80},
	})
	horizon := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "taskplan_plan_horizon_days",
		Help: "Calendar days between the first start and the last end of the latest plan",
	})

	if err := reg.Register(tasks); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			tasks = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(span); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			span = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(horizon); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			horizon = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{tasks: tasks, span: span, horizon: horizon}, nil
}

// RecordPlan sets the horizon gauge for the finished run.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	if !ev.End.Before(ev.Start) {
		s.horizon.Set(float64(calendar.DaysBetween(ev.Start, ev.End) + 1))
	}
	return nil
}

// RecordTasks counts scheduled tasks and observes their calendar spans.
func (s *PromSink) RecordTasks(evs []coremetrics.TaskScheduleEvent) error {
	for _, ev := range evs {
		s.tasks.WithLabelValues(ev.PlanID).Inc()
		s.span.Observe(float64(ev.SpanDays))
	}
	return nil
}
