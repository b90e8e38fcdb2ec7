package prep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dataprep/pkg/prep"
	"github.com/askiada/go-dataprep/pkg/table"
)

func TestMedian(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		col      *table.Column
		expected float64
		err      error
	}{
		"odd": {
			col:      table.NewNumeric("a", []float64{3, 1, 2}),
			expected: 2,
		},
		"even": {
			col:      table.NewNumeric("a", []float64{1.8, 3.0, 2.0, 1.6}),
			expected: 1.9,
		},
		"ignores missing": {
			col:      table.NewNumeric("a", []float64{10, 1, 3}).WithMissing(0),
			expected: 2,
		},
		"all missing": {
			col: table.NewNumeric("a", []float64{1, 2}).WithMissing(0, 1),
			err: prep.ErrNoValues,
		},
		"categorical": {
			col: table.NewCategorical("a", []string{"x"}),
			err: prep.ErrTypeMismatch,
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := prep.Median(tc.col)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)

				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, 1e-12)
		})
	}
}

func TestImputeMedian(t *testing.T) {
	t.Parallel()

	tbl := cars(t)
	out, median, err := prep.ImputeMedian(tbl, "EngineSize")
	require.NoError(t, err)
	assert.InDelta(t, 1.9, median, 1e-12)

	engine := column(t, out, "EngineSize")
	assert.Equal(t, 0, engine.MissingCount())
	assert.InDelta(t, 1.9, engine.Float(2), 1e-12)
	assert.InDelta(t, 1.8, engine.Float(0), 1e-12)

	// the input table keeps its missing cell
	assert.Equal(t, 1, column(t, tbl, "EngineSize").MissingCount())
	assert.Equal(t, tbl.Names(), out.Names())
}

func TestImputeMedianErrors(t *testing.T) {
	t.Parallel()

	tbl := cars(t)
	_, _, err := prep.ImputeMedian(tbl, "Horsepower")
	assert.ErrorIs(t, err, prep.ErrColumnNotFound)

	_, _, err = prep.ImputeMedian(tbl, "Brand")
	assert.ErrorIs(t, err, prep.ErrTypeMismatch)

	empty := table.MustNew(table.NewNumeric("a", []float64{0}).WithMissing(0))
	_, _, err = prep.ImputeMedian(empty, "a")
	assert.ErrorIs(t, err, prep.ErrNoValues)
}
