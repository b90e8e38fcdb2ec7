package prep

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/askiada/go-dataprep/pkg/table"
)

// distinct returns the sorted distinct non-missing values of a categorical column.
func distinct(col *table.Column) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for row := 0; row < col.Len(); row++ {
		if col.IsMissing(row) {
			continue
		}
		v := col.Value(row)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)

	return values
}

// OneHotName is the name of the indicator column of value in column.
func OneHotName(column, value string) string {
	return column + "_" + value
}

// OneHot replaces a categorical column with one Bool indicator column per
// distinct value, named after OneHotName and appended at the end of the table.
// Values are taken in sorted order; when dropFirst is set the first one is
// the reference category and gets no column. Missing cells set no indicator.
func OneHot(t *table.Table, column string, dropFirst bool) (*table.Table, error) {
	col, err := categoricalColumn(t, column)
	if err != nil {
		return nil, err
	}

	categories := distinct(col)
	if dropFirst && len(categories) > 0 {
		categories = categories[1:]
	}

	indicators := make([]*table.Column, 0, len(categories))
	for _, category := range categories {
		values := make([]bool, col.Len())
		for row := range values {
			values[row] = !col.IsMissing(row) && col.Value(row) == category
		}
		indicators = append(indicators, table.NewBool(OneHotName(column, category), values))
	}

	out, err := t.Drop(column)
	if err != nil {
		return nil, err
	}

	return out.Append(indicators...)
}

// LabelEncoder maps the distinct values of a categorical column to integer
// codes. Codes follow the sorted order of the values seen by Fit.
type LabelEncoder struct {
	classes []string
	codes   map[string]int
}

// Fit learns the classes of col.
func (e *LabelEncoder) Fit(col *table.Column) error {
	if err := checkCategorical(col); err != nil {
		return err
	}
	for row := 0; row < col.Len(); row++ {
		if col.IsMissing(row) {
			return errors.Wrapf(ErrMissingValue, "column %q row %d", col.Name(), row)
		}
	}

	e.classes = distinct(col)
	e.codes = make(map[string]int, len(e.classes))
	for code, class := range e.classes {
		e.codes[class] = code
	}

	return nil
}

// Classes returns the fitted classes; the code of a class is its index.
func (e *LabelEncoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)

	return out
}

// Transform returns an Integer column holding the code of each value of col.
func (e *LabelEncoder) Transform(col *table.Column) (*table.Column, error) {
	if e.codes == nil {
		return nil, ErrNotFitted
	}
	if err := checkCategorical(col); err != nil {
		return nil, err
	}

	codes := make([]int, col.Len())
	for row := range codes {
		if col.IsMissing(row) {
			return nil, errors.Wrapf(ErrMissingValue, "column %q row %d", col.Name(), row)
		}
		code, ok := e.codes[col.Value(row)]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownLabel, "column %q: %q", col.Name(), col.Value(row))
		}
		codes[row] = code
	}

	return table.NewInteger(col.Name(), codes), nil
}

// FitTransform fits the encoder on col and transforms it.
func (e *LabelEncoder) FitTransform(col *table.Column) (*table.Column, error) {
	if err := e.Fit(col); err != nil {
		return nil, err
	}

	return e.Transform(col)
}

// Inverse maps an Integer column of codes back to a categorical column.
func (e *LabelEncoder) Inverse(col *table.Column) (*table.Column, error) {
	if e.codes == nil {
		return nil, ErrNotFitted
	}
	if col.Kind() != table.Integer {
		return nil, errors.Wrapf(ErrTypeMismatch, "column %q is %s, expected an int column", col.Name(), col.Kind())
	}

	values := make([]string, col.Len())
	for row := range values {
		if col.IsMissing(row) {
			return nil, errors.Wrapf(ErrMissingValue, "column %q row %d", col.Name(), row)
		}
		code := int(col.Float(row))
		if code < 0 || code >= len(e.classes) {
			return nil, errors.Wrapf(ErrUnknownLabel, "column %q: code %d", col.Name(), code)
		}
		values[row] = e.classes[code]
	}

	return table.NewCategorical(col.Name(), values), nil
}

// LabelEncode fits a LabelEncoder on the named column and replaces the column,
// at the same position, with its codes.
func LabelEncode(t *table.Table, column string) (*table.Table, *LabelEncoder, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, nil, err
	}

	enc := &LabelEncoder{}
	codes, err := enc.FitTransform(col)
	if err != nil {
		return nil, nil, err
	}
	out, err := t.Replace(column, codes)
	if err != nil {
		return nil, nil, err
	}

	return out, enc, nil
}
