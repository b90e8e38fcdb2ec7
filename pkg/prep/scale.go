package prep

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/askiada/go-dataprep/pkg/table"
)

// StandardScaler rescales numeric columns to zero mean and unit variance.
// Each column is scaled with its own mean and population standard deviation.
type StandardScaler struct {
	columns []string
	means   []float64
	stds    []float64
}

// NewStandardScaler creates a scaler for the named columns.
func NewStandardScaler(columns ...string) *StandardScaler {
	cols := make([]string, len(columns))
	copy(cols, columns)

	return &StandardScaler{columns: cols}
}

// Columns returns the names of the scaled columns.
func (s *StandardScaler) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)

	return out
}

func scaledValues(t *table.Table, name string) ([]float64, error) {
	col, err := numericColumn(t, name)
	if err != nil {
		return nil, err
	}
	if col.MissingCount() > 0 {
		return nil, errors.Wrapf(ErrMissingValue, "column %q has %d missing cells", name, col.MissingCount())
	}

	return col.Floats(), nil
}

// Fit learns the mean and standard deviation of every column over the rows of t.
func (s *StandardScaler) Fit(t *table.Table) error {
	if t.Rows() < 2 {
		return errors.Wrapf(ErrDegenerate, "standard scaling needs at least 2 rows, got %d", t.Rows())
	}

	means := make([]float64, len(s.columns))
	stds := make([]float64, len(s.columns))
	for i, name := range s.columns {
		values, err := scaledValues(t, name)
		if err != nil {
			return err
		}
		means[i], stds[i] = stat.PopMeanStdDev(values, nil)
		// a constant column is only centered
		if stds[i] == 0 {
			stds[i] = 1
		}
	}
	s.means, s.stds = means, stds

	return nil
}

// Stats returns the fitted mean and standard deviation of a column.
func (s *StandardScaler) Stats(column string) (mean, std float64, err error) {
	if s.means == nil {
		return 0, 0, ErrNotFitted
	}
	for i, name := range s.columns {
		if name == column {
			return s.means[i], s.stds[i], nil
		}
	}

	return 0, 0, errors.Wrapf(ErrColumnNotFound, "column %q is not scaled", column)
}

func (s *StandardScaler) apply(t *table.Table, fn func(values []float64, mean, std float64)) (*table.Table, error) {
	if s.means == nil {
		return nil, ErrNotFitted
	}

	out := t
	for i, name := range s.columns {
		values, err := scaledValues(out, name)
		if err != nil {
			return nil, err
		}
		fn(values, s.means[i], s.stds[i])
		out, err = out.Replace(name, table.NewNumeric(name, values))
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Transform returns t with every column replaced by (value - mean) / std.
func (s *StandardScaler) Transform(t *table.Table) (*table.Table, error) {
	return s.apply(t, func(values []float64, mean, std float64) {
		floats.AddConst(-mean, values)
		floats.Scale(1/std, values)
	})
}

// FitTransform fits the scaler on t and transforms it.
func (s *StandardScaler) FitTransform(t *table.Table) (*table.Table, error) {
	if err := s.Fit(t); err != nil {
		return nil, err
	}

	return s.Transform(t)
}

// Inverse undoes Transform.
func (s *StandardScaler) Inverse(t *table.Table) (*table.Table, error) {
	return s.apply(t, func(values []float64, mean, std float64) {
		floats.Scale(std, values)
		floats.AddConst(mean, values)
	})
}
