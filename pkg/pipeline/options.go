package pipeline

import "github.com/askiada/go-dataprep/pkg/pipeline/model"

// StepOption configures a step when it is added.
type StepOption func(s *model.StepInfo)

// StepConcurrency sets the number of workers of a step. Values below 1 mean 1.
func StepConcurrency(concurrent int) StepOption {
	return func(s *model.StepInfo) {
		s.Concurrent = concurrent
	}
}
