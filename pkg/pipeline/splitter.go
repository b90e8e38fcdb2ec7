package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-dataprep/pkg/pipeline/model"
)

var ErrSplitterTotal = errors.New("splitter total must be greater than 0")

// Splitter broadcasts every input of a step to several branches. Branches
// receive the same value, so it must not be modified downstream.
type Splitter[I any] struct {
	mu            sync.Mutex
	currIdx       int
	mainStep      *model.Step[I]
	splittedSteps []*model.Step[I]
	bufferSize    int
	Total         int
}

// SplitterOption configures a splitter when it is added.
type SplitterOption[I any] func(s *Splitter[I])

// SplitterBufferSize sets how many inputs each branch can lag behind.
func SplitterBufferSize[I any](size int) SplitterOption[I] {
	return func(s *Splitter[I]) {
		s.bufferSize = size
	}
}

// Get returns the next branch of the splitter, or false once every branch
// has been handed out.
func (s *Splitter[I]) Get() (*model.Step[I], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currIdx >= len(s.splittedSteps) {
		return nil, false
	}
	step := s.splittedSteps[s.currIdx]
	s.currIdx++

	return step, true
}

// AddSplitter adds a splitter with total branches reading from input.
func AddSplitter[I any](p *Pipeline, name string, input *model.Step[I], total int, opts ...SplitterOption[I]) (*Splitter[I], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}
	if input == nil {
		return nil, ErrInputMustBeSet
	}
	if total < 1 {
		return nil, ErrSplitterTotal
	}
	splitter := &Splitter[I]{
		Total: total,
		mainStep: &model.Step[I]{
			Details: &model.StepInfo{
				Type:       model.SplitterStepType,
				Name:       name,
				Concurrent: 1,
			},
		},
	}
	for _, opt := range opts {
		opt(splitter)
	}
	if splitter.bufferSize < 1 {
		splitter.bufferSize = 1
	}

	for _, opt := range p.opts {
		err := opt.PrepareStep(input.Details, splitter.mainStep.Details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run prepare splitter function")
		}
	}

	splitter.splittedSteps = make([]*model.Step[I], total)
	for i := range splitter.splittedSteps {
		splitter.splittedSteps[i] = &model.Step[I]{
			Details: splitter.mainStep.Details,
			Output:  make(chan I, splitter.bufferSize),
		}
	}

	errC := make(chan error, 1)
	p.register(name, errC, func(ctx context.Context) {
		defer func() {
			for _, step := range splitter.splittedSteps {
				close(step.Output)
			}
			close(errC)
		}()
		err := runSplitter(ctx, p, input, splitter)
		if err != nil {
			errC <- err
		}
	})

	return splitter, nil
}

func runSplitter[I any](ctx context.Context, p *Pipeline, input *model.Step[I], splitter *Splitter[I]) error {
	for {
		startIter := time.Now()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case entry, ok := <-input.Output:
			if !ok {
				return nil
			}
			startFn := time.Now()
			for _, step := range splitter.splittedSteps {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case step.Output <- entry:
				}
			}
			endFn := time.Since(startFn)

			for _, opt := range p.opts {
				err := opt.OnStepOutput(input.Details, splitter.mainStep.Details, entry, startFn.Sub(startIter), endFn)
				if err != nil {
					return errors.Wrap(err, "unable to run on splitter output function")
				}
			}
		}
	}
}
