package table_test

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dataprep/pkg/table"
)

func sample(t *testing.T) *table.Table {
	t.Helper()

	tbl, err := table.New(
		table.NewCategorical("Brand", []string{"Toyota", "BMW", ""}).WithMissing(2),
		table.NewNumeric("Mileage", []float64{15000, 30000, 900000}),
		table.NewInteger("Code", []int{1, 0, 1}),
		table.NewBool("Flag", []bool{true, false, false}),
	)
	require.NoError(t, err)

	return tbl
}

func TestNewRejectsInvalidColumns(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		columns []*table.Column
		err     error
	}{
		"duplicate": {
			columns: []*table.Column{table.NewNumeric("a", []float64{1}), table.NewNumeric("a", []float64{2})},
			err:     table.ErrDuplicateColumn,
		},
		"length": {
			columns: []*table.Column{table.NewNumeric("a", []float64{1}), table.NewNumeric("b", []float64{1, 2})},
			err:     table.ErrLengthMismatch,
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := table.New(tc.columns...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestShapeAndNames(t *testing.T) {
	t.Parallel()

	tbl := sample(t)
	rows, cols := tbl.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, []string{"Brand", "Mileage", "Code", "Flag"}, tbl.Names())
	assert.Equal(t, 1, tbl.Index("Mileage"))
	assert.Equal(t, -1, tbl.Index("Price"))
}

func TestColumnNotFound(t *testing.T) {
	t.Parallel()

	tbl := sample(t)
	_, err := tbl.Column("Price")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
	_, err = tbl.Drop("Price")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
	_, err = tbl.Replace("Price")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
	_, err = tbl.Select("Brand", "Price")
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

func TestMissingCells(t *testing.T) {
	t.Parallel()

	tbl := sample(t)
	brand, err := tbl.Column("Brand")
	require.NoError(t, err)
	assert.True(t, brand.IsMissing(2))
	assert.False(t, brand.IsMissing(0))
	assert.Equal(t, 1, brand.MissingCount())
	assert.Equal(t, "NaN", brand.Format(2))
	assert.Equal(t, "", brand.Value(2))
	assert.True(t, math.IsNaN(brand.Float(0)))

	mileage, err := tbl.Column("Mileage")
	require.NoError(t, err)
	mileage = mileage.Clone().WithMissing(1)
	assert.True(t, math.IsNaN(mileage.Floats()[1]))
	assert.Equal(t, []float64{15000, 900000}, mileage.ValidFloats())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tbl := sample(t)
	got := make([]string, 0, 4)
	for _, col := range tbl.Columns() {
		got = append(got, col.Format(0))
	}
	assert.Equal(t, []string{"Toyota", "15000", "1", "true"}, got)
}

func TestFilterKeepsOrderAndLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	tbl := sample(t)
	filtered := tbl.Filter(func(row int) bool { return row != 1 })

	assert.Equal(t, 2, filtered.Rows())
	assert.Equal(t, 3, tbl.Rows())

	brand, err := filtered.Column("Brand")
	require.NoError(t, err)
	assert.Equal(t, "Toyota", brand.Value(0))
	assert.True(t, brand.IsMissing(1))
}

func TestReplaceKeepsPosition(t *testing.T) {
	t.Parallel()

	tbl := sample(t)
	out, err := tbl.Replace("Mileage",
		table.NewNumeric("A", []float64{1, 2, 3}),
		table.NewNumeric("B", []float64{1, 2, 3}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"Brand", "A", "B", "Code", "Flag"}, out.Names())
	assert.Equal(t, []string{"Brand", "Mileage", "Code", "Flag"}, tbl.Names())

	_, err = tbl.Replace("Mileage", table.NewNumeric("Brand", []float64{1, 2, 3}))
	assert.ErrorIs(t, err, table.ErrDuplicateColumn)
}

func TestAppendDropSelect(t *testing.T) {
	t.Parallel()

	tbl := sample(t)
	out, err := tbl.Append(table.NewNumeric("Price", []float64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, "Price", out.Names()[4])

	_, err = tbl.Append(table.NewNumeric("Price", []float64{1}))
	assert.ErrorIs(t, err, table.ErrLengthMismatch)

	out, err = out.Drop("Brand", "Flag")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mileage", "Code", "Price"}, out.Names())

	out, err = out.Select("Price", "Mileage")
	require.NoError(t, err)
	assert.Equal(t, []string{"Price", "Mileage"}, out.Names())
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	tbl := sample(t)
	clone := tbl.Clone()
	col, err := clone.Column("Mileage")
	require.NoError(t, err)
	col.SetFloat(0, 1)

	orig, err := tbl.Column("Mileage")
	require.NoError(t, err)
	assert.Equal(t, 15000.0, orig.Float(0))
}

func TestAsNumeric(t *testing.T) {
	t.Parallel()

	col := table.NewInteger("Code", []int{1, 2})
	assert.Equal(t, table.Numeric, col.AsNumeric().Kind())
	assert.Equal(t, table.Integer, col.Kind())
	assert.Equal(t, table.Categorical, table.NewCategorical("c", []string{"a"}).AsNumeric().Kind())
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	data := `Brand,Mileage,EngineSize,Price
Toyota,15000,1.8,20000
BMW,30000,,35000
,25000,2.0,15000
`
	tbl, err := table.ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, []string{"Brand", "Mileage", "EngineSize", "Price"}, tbl.Names())

	brand, err := tbl.Column("Brand")
	require.NoError(t, err)
	assert.Equal(t, table.Categorical, brand.Kind())
	assert.True(t, brand.IsMissing(2))

	engine, err := tbl.Column("EngineSize")
	require.NoError(t, err)
	assert.Equal(t, table.Numeric, engine.Kind())
	assert.True(t, engine.IsMissing(1))
	assert.InDelta(t, 1.8, engine.Float(0), 1e-9)

	mileage, err := tbl.Column("Mileage")
	require.NoError(t, err)
	assert.Equal(t, table.Numeric, mileage.Kind())
	assert.Equal(t, 0, mileage.MissingCount())
}

func TestReadCSVEmptyColumnIsNumeric(t *testing.T) {
	t.Parallel()

	data := `Brand,EngineSize,Price
Toyota,,20000
BMW,NA,35000
`
	tbl, err := table.ReadCSV(strings.NewReader(data))
	require.NoError(t, err)

	engine, err := tbl.Column("EngineSize")
	require.NoError(t, err)
	assert.Equal(t, table.Numeric, engine.Kind())
	assert.Equal(t, 2, engine.MissingCount())
}

func TestReadCSVError(t *testing.T) {
	t.Parallel()

	_, err := table.ReadCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.False(t, errors.Is(err, table.ErrColumnNotFound))
}
