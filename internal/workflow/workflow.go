// Package workflow runs the preparation stages over a table as a pipeline:
// cleaning, encoding, scaling and feature selection, in that order.
package workflow

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askiada/go-dataprep/internal/config"
	"github.com/askiada/go-dataprep/internal/report"
	"github.com/askiada/go-dataprep/pkg/pipeline"
	"github.com/askiada/go-dataprep/pkg/pipeline/drawer"
	"github.com/askiada/go-dataprep/pkg/pipeline/measure"
	"github.com/askiada/go-dataprep/pkg/pipeline/model"
	"github.com/askiada/go-dataprep/pkg/prep"
	"github.com/askiada/go-dataprep/pkg/table"
)

// Stage names, also used as step names.
const (
	StageLoad    = "load"
	StageClean   = "clean"
	StageEncode  = "encode"
	StageScale   = "scale"
	StageSelect  = "select"
	StageFanOut  = "fan out"
	StageReport  = "report"
	StageCollect = "collect"
)

// Result holds every intermediate table and the fitted state of each stage.
type Result struct {
	Original *table.Table
	Cleaned  *table.Table
	Encoded  *table.Table
	Scaled   *table.Table
	// Features is the scaled table restricted to the selected columns.
	Features *table.Table

	// Median imputed in the cleaning stage.
	Median   float64
	Encoders map[string]*prep.LabelEncoder
	Scaler   *prep.StandardScaler
	Selector *prep.KBestSelector
}

// Selected returns the selected feature names in column order.
func (r *Result) Selected() []string {
	return r.Selector.Selected()
}

// frame is the value flowing between stages.
type frame struct {
	table  *table.Table
	result *Result
}

func (f *frame) Shape() (rows, cols int) {
	return f.table.Shape()
}

type Option func(w *Workflow)

// WithGraph writes the DOT graph of the stages, annotated with timings, to path.
func WithGraph(path string) Option {
	return func(w *Workflow) {
		w.graphPath = path
	}
}

// Workflow prepares tables according to a configuration.
type Workflow struct {
	cfg       config.Config
	logger    *zap.Logger
	reporter  *report.Reporter
	graphPath string
}

func New(cfg config.Config, logger *zap.Logger, reporter *report.Reporter, opts ...Option) *Workflow {
	w := &Workflow{
		cfg:      cfg,
		logger:   logger,
		reporter: reporter,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

type stageFn func(ctx context.Context, logger *zap.Logger, f *frame) (*table.Table, error)

// stage turns fn into a pipeline step logging the shape of the produced table.
// The table is reported under title unless title is empty.
func (w *Workflow) stage(name, title string, fn stageFn) func(ctx context.Context, f *frame) (*frame, error) {
	logger := w.logger.With(zap.String("stage", name))

	return func(ctx context.Context, f *frame) (*frame, error) {
		out, err := fn(ctx, logger, f)
		if err != nil {
			return nil, err
		}
		rows, cols := out.Shape()
		logger.Debug("stage done", zap.Int("rows", rows), zap.Int("columns", cols))

		if title != "" {
			err = w.reporter.Table(title, out)
			if err != nil {
				return nil, err
			}
		}

		return &frame{table: out, result: f.result}, nil
	}
}

// Run prepares input. It stops on the first failing stage, and the error
// names that stage.
func (w *Workflow) Run(ctx context.Context, input *table.Table) (*Result, error) {
	msr := measure.NewDefaultMeasure()
	opts := []model.PipelineOption{measure.PipelineMeasure(msr)}
	if w.graphPath != "" {
		opts = append(opts, drawer.PipelineDrawer(drawer.NewDOTDrawer(w.graphPath), msr))
	}

	pipe, err := pipeline.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create pipeline")
	}

	root, err := pipeline.AddRootStep(pipe, StageLoad, func(ctx context.Context, rootChan chan<- *frame) error {
		err := w.reporter.Table("Original data", input)
		if err != nil {
			return err
		}
		f := &frame{table: input, result: &Result{Original: input}}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case rootChan <- f:
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to add root step")
	}

	step := root
	stages := []struct {
		name, title string
		fn          stageFn
	}{
		{StageClean, "After cleaning", w.clean},
		{StageEncode, "After encoding", w.encode},
		{StageScale, "After scaling", w.scale},
		{StageSelect, "", w.selectFeatures},
	}
	for _, s := range stages {
		step, err = pipeline.AddStepOneToOne(pipe, s.name, step, w.stage(s.name, s.title, s.fn))
		if err != nil {
			return nil, errors.Wrapf(err, "unable to add step %s", s.name)
		}
	}

	splitter, err := pipeline.AddSplitter(pipe, StageFanOut, step, 2)
	if err != nil {
		return nil, errors.Wrap(err, "unable to add splitter")
	}
	reportBranch, _ := splitter.Get()
	collectBranch, _ := splitter.Get()

	err = pipeline.AddSink(pipe, StageReport, reportBranch, func(ctx context.Context, f *frame) error {
		sel := f.result.Selector
		err := w.reporter.Scores(sel.Features(), sel.Scores(), sel.PValues(), sel.Support())
		if err != nil {
			return err
		}

		return w.reporter.Features("Selected features", sel.Selected())
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to add report sink")
	}

	var result *Result
	err = pipeline.AddSink(pipe, StageCollect, collectBranch, func(ctx context.Context, f *frame) error {
		result = f.result

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to add collect sink")
	}

	w.logger.Info("preparation started", zap.Int("rows", input.Rows()), zap.Strings("columns", input.Names()))
	start := time.Now()
	err = pipe.Run(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errors.New("pipeline produced no result")
	}

	w.logMetrics(msr)
	w.logger.Info("preparation finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Strings("selected", result.Selected()),
	)

	return result, nil
}

func (w *Workflow) logMetrics(msr measure.Measure) {
	for _, name := range []string{StageClean, StageEncode, StageScale, StageSelect} {
		mt := msr.GetMetric(name)
		if mt == nil {
			continue
		}
		w.logger.Debug("stage metrics",
			zap.String("stage", name),
			zap.Duration("computation", mt.AVGDuration()),
			zap.Int64("outputs", mt.Count()),
		)
	}
}
