package cars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dataprep/internal/cars"
)

func TestTable(t *testing.T) {
	t.Parallel()

	tbl := cars.Table()
	rows, cols := tbl.Shape()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 6, cols)
	assert.Equal(t, []string{"Brand", "FuelType", "Mileage", "EngineSize", "Transmission", "Price"}, tbl.Names())

	brand, err := tbl.Column("Brand")
	require.NoError(t, err)
	assert.True(t, brand.IsMissing(4))
	engine, err := tbl.Column("EngineSize")
	require.NoError(t, err)
	assert.True(t, engine.IsMissing(2))
}

func TestTableIsFresh(t *testing.T) {
	t.Parallel()

	first := cars.Table()
	col, err := first.Column("Mileage")
	require.NoError(t, err)
	col.SetFloat(0, 1)

	second, err := cars.Table().Column("Mileage")
	require.NoError(t, err)
	assert.Equal(t, 15000.0, second.Float(0))
}
