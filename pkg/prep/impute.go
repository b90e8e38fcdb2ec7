package prep

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/askiada/go-dataprep/pkg/table"
)

// Median returns the median of the non-missing values of a numeric column.
// For an even count it is the mean of the two middle values.
func Median(col *table.Column) (float64, error) {
	if !col.Kind().IsNumeric() {
		return 0, errors.Wrapf(ErrTypeMismatch, "column %q is %s, expected a numeric column", col.Name(), col.Kind())
	}
	values := col.ValidFloats()
	if len(values) == 0 {
		return 0, errors.Wrapf(ErrNoValues, "column %q", col.Name())
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid], nil
	}

	return (values[mid-1] + values[mid]) / 2, nil
}

// ImputeMedian fills every missing cell of the named numeric column with the
// median of the values present in t. It returns the new table and the median.
func ImputeMedian(t *table.Table, column string) (*table.Table, float64, error) {
	col, err := numericColumn(t, column)
	if err != nil {
		return nil, 0, err
	}
	median, err := Median(col)
	if err != nil {
		return nil, 0, err
	}

	filled := col.Clone()
	for row := 0; row < filled.Len(); row++ {
		if filled.IsMissing(row) {
			filled.SetFloat(row, median)
		}
	}
	out, err := t.Replace(column, filled)
	if err != nil {
		return nil, 0, err
	}

	return out, median, nil
}
