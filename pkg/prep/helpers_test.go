package prep_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dataprep/pkg/table"
)

// cars builds the five row reference table.
func cars(t *testing.T) *table.Table {
	t.Helper()

	tbl, err := table.New(
		table.NewCategorical("Brand", []string{"Toyota", "BMW", "Ford", "Daewoo", ""}).WithMissing(4),
		table.NewCategorical("FuelType", []string{"Petrol", "Diesel", "CNG", "Diesel", "Petrol"}),
		table.NewNumeric("Mileage", []float64{15000, 30000, 900000, 25000, 27000}),
		table.NewNumeric("EngineSize", []float64{1.8, 3.0, 0, 2.0, 1.6}).WithMissing(2),
		table.NewCategorical("Transmission", []string{"Manual", "Automatic", "Manual", "Automatic", "Manual"}),
		table.NewNumeric("Price", []float64{20000, 35000, 5000, 15000, 18000}),
	)
	require.NoError(t, err)

	return tbl
}

func column(t *testing.T, tbl *table.Table, name string) *table.Column {
	t.Helper()

	col, err := tbl.Column(name)
	require.NoError(t, err)

	return col
}
