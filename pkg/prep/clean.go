package prep

import (
	"github.com/askiada/go-dataprep/pkg/table"
)

// DropMissing removes every row whose cell in the named column is missing.
func DropMissing(t *table.Table, column string) (*table.Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	return t.Filter(func(row int) bool {
		return !col.IsMissing(row)
	}), nil
}

// FilterLess keeps the rows whose value in the named numeric column is
// strictly less than threshold. Missing cells never satisfy the predicate.
func FilterLess(t *table.Table, column string, threshold float64) (*table.Table, error) {
	col, err := numericColumn(t, column)
	if err != nil {
		return nil, err
	}

	return t.Filter(func(row int) bool {
		return !col.IsMissing(row) && col.Float(row) < threshold
	}), nil
}

// Regroup replaces the values of a categorical column found in mapping with
// their replacement label. Other values and missing cells are left as they are.
func Regroup(t *table.Table, column string, mapping map[string]string) (*table.Table, error) {
	col, err := categoricalColumn(t, column)
	if err != nil {
		return nil, err
	}

	out := col.Clone()
	for row := 0; row < out.Len(); row++ {
		if out.IsMissing(row) {
			continue
		}
		if label, ok := mapping[out.Value(row)]; ok {
			out.SetValue(row, label)
		}
	}

	return t.Replace(column, out)
}
