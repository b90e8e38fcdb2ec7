package measure

import "time"

// Measure collects one Metric per step.
type Measure interface {
	AddMetric(name string, concurrent int) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric holds the timings of a step and the shape of the last table it produced.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AddTransportDuration(inputStepName string, elapsed time.Duration)
	AVGDuration() time.Duration
	AVGTransportDuration() map[string]time.Duration
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
	SetShape(rows, cols int)
	Shape() (rows, cols int, ok bool)
	Count() int64
}

// Shaper is implemented by step outputs exposing their dimensions, such as tables.
type Shaper interface {
	Shape() (rows, cols int)
}
