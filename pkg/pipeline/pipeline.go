package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-dataprep/pkg/pipeline/model"
)

// Pipeline is a pipeline of steps.
type Pipeline struct {
	errcList  *errorChans
	opts      []model.PipelineOption
	startTime time.Time

	mu   sync.Mutex
	goFn []func(ctx context.Context)
	ran  bool
}

// New creates a new pipeline.
func New(opts ...model.PipelineOption) (*Pipeline, error) {
	pipe := &Pipeline{
		errcList:  &errorChans{},
		startTime: time.Now(),
		opts:      opts,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

func (p *Pipeline) register(name string, errC <-chan error, fn func(ctx context.Context)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.goFn = append(p.goFn, fn)
	p.errcList.add(newErrorChan(name, errC))
}

// waitForPipeline waits for results from all error channels.
// It returns early on the first error.
func waitForPipeline(errs ...*errorChan) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}

	return nil
}

// Run starts every step and waits for the pipeline to finish. It returns the
// first error raised by a step, prefixed with the step name, and cancels the
// other steps. A pipeline can only run once.
func (p *Pipeline) Run(ctx context.Context) error {
	p.mu.Lock()
	if p.ran {
		p.mu.Unlock()

		return ErrAlreadyRun
	}
	p.ran = true
	goFn := p.goFn
	p.mu.Unlock()

	dCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.startTime = time.Now()
	for _, fn := range goFn {
		go fn(dCtx)
	}

	// Wait for all steps to finish.
	err := waitForPipeline(p.errcList.list...)
	if err != nil {
		return err
	}

	return p.finishRun()
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
