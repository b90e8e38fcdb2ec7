package workflow

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askiada/go-dataprep/pkg/prep"
	"github.com/askiada/go-dataprep/pkg/table"
)

// clean imputes over every row before removing any, so the median is taken
// over the full table.
func (w *Workflow) clean(_ context.Context, logger *zap.Logger, f *frame) (*table.Table, error) {
	c := w.cfg.Clean

	t, median, err := prep.ImputeMedian(f.table, c.ImputeColumn)
	if err != nil {
		return nil, errors.Wrap(err, "impute median")
	}
	f.result.Median = median
	logger.Debug("median imputed", zap.String("column", c.ImputeColumn), zap.Float64("median", median))

	t, err = prep.DropMissing(t, c.DropMissing)
	if err != nil {
		return nil, errors.Wrap(err, "drop missing")
	}

	t, err = prep.FilterLess(t, c.OutlierColumn, c.OutlierThreshold)
	if err != nil {
		return nil, errors.Wrap(err, "filter outliers")
	}

	t, err = prep.Regroup(t, c.RegroupColumn, c.Regroup)
	if err != nil {
		return nil, errors.Wrap(err, "regroup")
	}
	f.result.Cleaned = t

	return t, nil
}

func (w *Workflow) encode(_ context.Context, logger *zap.Logger, f *frame) (*table.Table, error) {
	c := w.cfg.Encode

	t := f.table
	var err error
	for _, column := range c.OneHot {
		t, err = prep.OneHot(t, column, c.DropFirst)
		if err != nil {
			return nil, errors.Wrap(err, "one hot")
		}
	}

	encoders := make(map[string]*prep.LabelEncoder, len(c.Label))
	for _, column := range c.Label {
		var enc *prep.LabelEncoder
		t, enc, err = prep.LabelEncode(t, column)
		if err != nil {
			return nil, errors.Wrap(err, "label encode")
		}
		encoders[column] = enc
		logger.Debug("label encoded", zap.String("column", column), zap.Strings("classes", enc.Classes()))
	}
	f.result.Encoders = encoders
	f.result.Encoded = t

	return t, nil
}

func (w *Workflow) scale(_ context.Context, logger *zap.Logger, f *frame) (*table.Table, error) {
	scaler := prep.NewStandardScaler(w.cfg.Scale.Columns...)
	t, err := scaler.FitTransform(f.table)
	if err != nil {
		return nil, errors.Wrap(err, "standard scale")
	}
	for _, column := range scaler.Columns() {
		mean, std, err := scaler.Stats(column)
		if err != nil {
			return nil, err
		}
		logger.Debug("column scaled", zap.String("column", column), zap.Float64("mean", mean), zap.Float64("std", std))
	}
	f.result.Scaler = scaler
	f.result.Scaled = t

	return t, nil
}

func (w *Workflow) selectFeatures(_ context.Context, logger *zap.Logger, f *frame) (*table.Table, error) {
	c := w.cfg.Select

	selector := prep.NewKBestSelector(c.K)
	err := selector.Fit(f.table, c.Target, c.Exclude...)
	if err != nil {
		return nil, errors.Wrap(err, "k best")
	}
	scores, pvalues := selector.Scores(), selector.PValues()
	for i, name := range selector.Features() {
		logger.Debug("feature scored", zap.String("column", name), zap.Float64("score", scores[i]), zap.Float64("pvalue", pvalues[i]))
	}

	t, err := selector.Transform(f.table)
	if err != nil {
		return nil, errors.Wrap(err, "k best")
	}
	f.result.Selector = selector
	f.result.Features = t

	return t, nil
}
