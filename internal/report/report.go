// Package report prints tables and feature selections for humans.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"github.com/askiada/go-dataprep/pkg/table"
)

func seriesType(kind table.Kind) series.Type {
	switch kind {
	case table.Numeric:
		return series.Float
	case table.Integer:
		return series.Int
	case table.Bool:
		return series.Bool
	default:
		return series.String
	}
}

// Frame converts t to a gota DataFrame. Missing cells become NaN elements.
func Frame(t *table.Table) (dataframe.DataFrame, error) {
	columns := t.Columns()
	if len(columns) == 0 {
		return dataframe.DataFrame{}, errors.New("table has no columns")
	}

	all := make([]series.Series, len(columns))
	for i, col := range columns {
		values := make([]string, col.Len())
		for row := range values {
			values[row] = col.Format(row)
		}
		all[i] = series.New(values, seriesType(col.Kind()), col.Name())
	}
	df := dataframe.New(all...)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(df.Err, "unable to build data frame")
	}

	return df, nil
}

// Reporter writes reports to an output.
type Reporter struct {
	w io.Writer
}

func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Table writes the title, the shape and every row of t, one column per field.
func (r *Reporter) Table(title string, t *table.Table) error {
	rows, cols := t.Shape()
	if cols == 0 {
		_, err := fmt.Fprintf(r.w, "%s: empty table [%dx0]\n\n", title, rows)

		return errors.Wrap(err, "unable to write report")
	}

	df, err := Frame(t)
	if err != nil {
		return err
	}
	records := df.Records()

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s: [%dx%d]\n", title, rows, cols)

	types := df.Types()
	header := make([]string, len(types))
	for i, typ := range types {
		header[i] = "<" + string(typ) + ">"
	}
	fmt.Fprintf(tw, "\t%s\n", strings.Join(records[0], "\t"))
	fmt.Fprintf(tw, "\t%s\n", strings.Join(header, "\t"))
	for i, record := range records[1:] {
		fmt.Fprintf(tw, "%d:\t%s\n", i, strings.Join(record, "\t"))
	}
	fmt.Fprintln(tw)

	return errors.Wrap(tw.Flush(), "unable to write report")
}

// Features writes the names of the selected features.
func (r *Reporter) Features(title string, names []string) error {
	_, err := fmt.Fprintf(r.w, "%s: %s\n", title, "["+strings.Join(names, " ")+"]")

	return errors.Wrap(err, "unable to write report")
}

// Scores writes the F score, p-value and selection flag of every candidate.
func (r *Reporter) Scores(features []string, scores, pvalues []float64, support []bool) error {
	if len(scores) != len(features) || len(pvalues) != len(features) || len(support) != len(features) {
		return errors.Errorf("%d features but %d scores, %d p-values and %d flags", len(features), len(scores), len(pvalues), len(support))
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "feature\tscore\tp-value\tselected")
	for i, name := range features {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%t\n", name, scores[i], pvalues[i], support[i])
	}
	fmt.Fprintln(tw)

	return errors.Wrap(tw.Flush(), "unable to write report")
}
