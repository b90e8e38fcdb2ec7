package prep

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-dataprep/pkg/table"
)

var (
	// ErrColumnNotFound is returned when a referenced column is absent.
	ErrColumnNotFound = table.ErrColumnNotFound
	// ErrTypeMismatch is returned when a column kind does not fit the operation.
	ErrTypeMismatch = table.ErrTypeMismatch
	// ErrNoValues is returned when a statistic has no valid value to work from.
	ErrNoValues = errors.New("no valid values")
	// ErrMissingValue is returned when an operation meets a missing cell it cannot handle.
	ErrMissingValue = errors.New("missing value")
	// ErrDegenerate is returned when there are too few rows or columns.
	ErrDegenerate = errors.New("degenerate input")
	// ErrNotFitted is returned when a transformer is used before Fit.
	ErrNotFitted = errors.New("transformer not fitted")
	// ErrUnknownLabel is returned when a label was not seen at fit time.
	ErrUnknownLabel = errors.New("unknown label")
)

func numericColumn(t *table.Table, name string) (*table.Column, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if !col.Kind().IsNumeric() {
		return nil, errors.Wrapf(ErrTypeMismatch, "column %q is %s, expected a numeric column", name, col.Kind())
	}

	return col, nil
}

func categoricalColumn(t *table.Table, name string) (*table.Column, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	return col, checkCategorical(col)
}

func checkCategorical(col *table.Column) error {
	if col.Kind() != table.Categorical {
		return errors.Wrapf(ErrTypeMismatch, "column %q is %s, expected a categorical column", col.Name(), col.Kind())
	}

	return nil
}
