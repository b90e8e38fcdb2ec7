package prep

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/askiada/go-dataprep/pkg/table"
)

// FRegression scores the linear association between a feature x and a target
// y with the univariate regression F statistic:
//
//	r = pearson(x, y)
//	F = r² / (1 - r²) * (n - 2)
//
// and its p-value under F(1, n-2). A constant feature or target scores 0 with
// p-value 1, a perfect correlation scores math.MaxFloat64 with p-value 0.
func FRegression(x, y []float64) (score, pvalue float64, err error) {
	if len(x) != len(y) {
		return 0, 0, errors.Wrapf(ErrDegenerate, "feature has %d values, target has %d", len(x), len(y))
	}
	n := len(x)
	if n < 3 {
		return 0, 0, errors.Wrapf(ErrDegenerate, "f regression needs at least 3 rows, got %d", n)
	}
	if floats.Max(x) == floats.Min(x) || floats.Max(y) == floats.Min(y) {
		return 0, 1, nil
	}

	r := stat.Correlation(x, y, nil)
	r2 := r * r
	if r2 >= 1 {
		return math.MaxFloat64, 0, nil
	}

	dof := float64(n - 2)
	score = r2 / (1 - r2) * dof
	pvalue = distuv.F{D1: 1, D2: dof}.Survival(score)

	return score, pvalue, nil
}

// SplitTarget separates t into the feature table, every column but the target
// and the excluded ones, and the target column.
func SplitTarget(t *table.Table, target string, exclude ...string) (*table.Table, *table.Column, error) {
	y, err := numericColumn(t, target)
	if err != nil {
		return nil, nil, errors.Wrap(err, "target")
	}

	drop := append([]string{target}, exclude...)
	features, err := t.Drop(drop...)
	if err != nil {
		return nil, nil, err
	}

	return features, y, nil
}

// KBestSelector keeps the K features scoring highest with FRegression against
// a target column. Ties are won by the earlier column.
type KBestSelector struct {
	k        int
	features []string
	scores   []float64
	pvalues  []float64
	support  []bool
}

// NewKBestSelector creates a selector retaining k features.
func NewKBestSelector(k int) *KBestSelector {
	return &KBestSelector{k: k}
}

// Fit scores every column of t except the target and the excluded ones.
// Candidate columns must be numeric and free of missing cells.
func (s *KBestSelector) Fit(t *table.Table, target string, exclude ...string) error {
	features, y, err := SplitTarget(t, target, exclude...)
	if err != nil {
		return err
	}
	_, nFeatures := features.Shape()
	if s.k < 1 || s.k > nFeatures {
		return errors.Wrapf(ErrDegenerate, "cannot select %d features out of %d", s.k, nFeatures)
	}
	if y.MissingCount() > 0 {
		return errors.Wrapf(ErrMissingValue, "target %q has %d missing cells", target, y.MissingCount())
	}

	target64 := y.Floats()
	names := features.Names()
	scores := make([]float64, len(names))
	pvalues := make([]float64, len(names))
	for i, name := range names {
		values, err := scaledValues(features, name)
		if err != nil {
			return err
		}
		scores[i], pvalues[i], err = FRegression(values, target64)
		if err != nil {
			return errors.Wrapf(err, "column %q", name)
		}
	}

	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := scores[order[i]], scores[order[j]]
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}

		return a > b
	})

	support := make([]bool, len(names))
	for _, idx := range order[:s.k] {
		support[idx] = true
	}
	s.features, s.scores, s.pvalues, s.support = names, scores, pvalues, support

	return nil
}

// Features returns the candidate features in column order.
func (s *KBestSelector) Features() []string {
	return append([]string(nil), s.features...)
}

// Scores returns the F score of each candidate, aligned with Features.
func (s *KBestSelector) Scores() []float64 {
	return append([]float64(nil), s.scores...)
}

// PValues returns the p-value of each candidate, aligned with Features.
func (s *KBestSelector) PValues() []float64 {
	return append([]float64(nil), s.pvalues...)
}

// Support reports which candidates are selected, aligned with Features.
func (s *KBestSelector) Support() []bool {
	return append([]bool(nil), s.support...)
}

// Selected returns the names of the selected features in column order.
func (s *KBestSelector) Selected() []string {
	out := make([]string, 0, s.k)
	for i, name := range s.features {
		if s.support[i] {
			out = append(out, name)
		}
	}

	return out
}

// Transform returns the selected columns of t, in column order.
func (s *KBestSelector) Transform(t *table.Table) (*table.Table, error) {
	if s.support == nil {
		return nil, ErrNotFitted
	}

	return t.Select(s.Selected()...)
}
