package prep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/askiada/go-dataprep/pkg/prep"
	"github.com/askiada/go-dataprep/pkg/table"
)

func scalingTable(t *testing.T) *table.Table {
	t.Helper()

	return table.MustNew(
		table.NewCategorical("Brand", []string{"Toyota", "BMW", "Other"}),
		table.NewNumeric("Mileage", []float64{15000, 30000, 25000}),
		table.NewNumeric("EngineSize", []float64{1.8, 3.0, 2.0}),
		table.NewInteger("Transmission", []int{1, 0, 0}),
	)
}

func TestStandardScaler(t *testing.T) {
	t.Parallel()

	tbl := scalingTable(t)
	scaler := prep.NewStandardScaler("Mileage", "EngineSize")
	out, err := scaler.FitTransform(tbl)
	require.NoError(t, err)

	for _, name := range scaler.Columns() {
		mean, std := stat.PopMeanStdDev(column(t, out, name).Floats(), nil)
		assert.InDelta(t, 0, mean, 1e-9, name)
		assert.InDelta(t, 1, std, 1e-9, name)
		assert.Equal(t, table.Numeric, column(t, out, name).Kind())
	}

	mean, std, err := scaler.Stats("Mileage")
	require.NoError(t, err)
	assert.InDelta(t, 23333.333333, mean, 1e-4)
	assert.InDelta(t, math.Sqrt(350e6/9), std, 1e-6)

	// unscaled columns are untouched
	assert.Equal(t, []float64{1, 0, 0}, column(t, out, "Transmission").Floats())
	assert.Equal(t, tbl.Names(), out.Names())
}

func TestStandardScalerInverse(t *testing.T) {
	t.Parallel()

	tbl := scalingTable(t)
	scaler := prep.NewStandardScaler("Mileage", "EngineSize")
	out, err := scaler.FitTransform(tbl)
	require.NoError(t, err)

	back, err := scaler.Inverse(out)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{15000, 30000, 25000}, column(t, back, "Mileage").Floats(), 1e-6)
	assert.InDeltaSlice(t, []float64{1.8, 3.0, 2.0}, column(t, back, "EngineSize").Floats(), 1e-9)
}

func TestStandardScalerConstantColumn(t *testing.T) {
	t.Parallel()

	tbl := table.MustNew(table.NewNumeric("a", []float64{4, 4, 4}))
	out, err := prep.NewStandardScaler("a").FitTransform(tbl)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, column(t, out, "a").Floats())
}

func TestStandardScalerErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		tbl     *table.Table
		columns []string
		err     error
	}{
		"one row": {
			tbl:     table.MustNew(table.NewNumeric("a", []float64{1})),
			columns: []string{"a"},
			err:     prep.ErrDegenerate,
		},
		"categorical": {
			tbl:     scalingTable(t),
			columns: []string{"Brand"},
			err:     prep.ErrTypeMismatch,
		},
		"unknown column": {
			tbl:     scalingTable(t),
			columns: []string{"Price"},
			err:     prep.ErrColumnNotFound,
		},
		"missing cell": {
			tbl:     table.MustNew(table.NewNumeric("a", []float64{1, 2, 3}).WithMissing(1)),
			columns: []string{"a"},
			err:     prep.ErrMissingValue,
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := prep.NewStandardScaler(tc.columns...).FitTransform(tc.tbl)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestStandardScalerNotFitted(t *testing.T) {
	t.Parallel()

	scaler := prep.NewStandardScaler("Mileage")
	_, err := scaler.Transform(scalingTable(t))
	assert.ErrorIs(t, err, prep.ErrNotFitted)
	_, _, err = scaler.Stats("Mileage")
	assert.ErrorIs(t, err, prep.ErrNotFitted)
}
