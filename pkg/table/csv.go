package table

import (
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// MissingMarkers are the raw CSV values read as missing cells.
var MissingMarkers = []string{"", "NA", "NaN", "nan", "<nil>"}

// ReadCSV loads a table from CSV data with a header row. Column kinds are
// detected from the values: integer and float columns become Numeric, boolean
// columns Bool and everything else Categorical. A column without any value is
// Numeric with every cell missing.
func ReadCSV(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(MissingMarkers),
	)
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "unable to read csv")
	}

	cols := make([]*Column, 0, df.Ncol())
	for _, name := range df.Names() {
		col, err := fromSeries(df.Col(name))
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", name)
		}
		cols = append(cols, col)
	}

	return New(cols...)
}

func fromSeries(s series.Series) (*Column, error) {
	var col *Column
	switch s.Type() {
	case series.Int, series.Float:
		col = NewNumeric(s.Name, s.Float())
	case series.Bool:
		values := make([]bool, s.Len())
		for i := range values {
			elem := s.Elem(i)
			if elem.IsNA() {
				continue
			}
			v, err := elem.Bool()
			if err != nil {
				return nil, errors.Wrapf(ErrTypeMismatch, "row %d: %v", i, err)
			}
			values[i] = v
		}
		col = NewBool(s.Name, values)
	default:
		if allMissing(s) {
			col = NewNumeric(s.Name, s.Float())
			break
		}
		col = NewCategorical(s.Name, s.Records())
	}
	for i, missing := range s.IsNaN() {
		if missing {
			col.SetMissing(i)
		}
	}

	return col, nil
}

func allMissing(s series.Series) bool {
	for _, missing := range s.IsNaN() {
		if !missing {
			return false
		}
	}

	return s.Len() > 0
}
