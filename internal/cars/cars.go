// Package cars holds the reference car dataset.
package cars

import (
	"github.com/askiada/go-dataprep/pkg/table"
)

// Table returns a fresh copy of the five row car table. Brand is missing on
// the last row and EngineSize on the third one.
func Table() *table.Table {
	return table.MustNew(
		table.NewCategorical("Brand", []string{"Toyota", "BMW", "Ford", "Daewoo", ""}).WithMissing(4),
		table.NewCategorical("FuelType", []string{"Petrol", "Diesel", "CNG", "Diesel", "Petrol"}),
		table.NewNumeric("Mileage", []float64{15000, 30000, 900000, 25000, 27000}),
		table.NewNumeric("EngineSize", []float64{1.8, 3.0, 0, 2.0, 1.6}).WithMissing(2),
		table.NewCategorical("Transmission", []string{"Manual", "Automatic", "Manual", "Automatic", "Manual"}),
		table.NewNumeric("Price", []float64{20000, 35000, 5000, 15000, 18000}),
	)
}
