package metrics

// Package metrics defines the events emitted after a scheduling run and
// the sink interface that records them. Sinks like PromSink and
// InfluxSink live in infra/metrics and register themselves with the
// factory; multiple configured sinks are combined with NewMultiSink.
