package model

// StepType is the role of a step in the pipeline.
type StepType string

const (
	RootStepType     StepType = "root"
	NormalStepType   StepType = "step"
	SplitterStepType StepType = "splitter"
	SinkStepType     StepType = "sink"
)

// StepInfo describes a step.
type StepInfo struct {
	Type       StepType
	Name       string
	Concurrent int
}

var (
	// StartStep is the virtual parent of every root step.
	StartStep = &StepInfo{Name: "start"}
	// EndStep is the virtual child of every sink.
	EndStep = &StepInfo{Name: "end"}
)

// Step is the output end of a step. The next step reads from Output.
type Step[O any] struct {
	Output  chan O
	Details *StepInfo
}
