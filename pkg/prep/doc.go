// Package prep implements the table preparation stages: median imputation,
// missing row removal, outlier filtering, categorical regrouping, one-hot and
// label encoding, standard scaling and univariate feature selection.
//
// Every function takes a *table.Table and returns a new one; the input is never
// modified. Failures are reported with the sentinel errors of this package and
// of the table package, wrapped with the name of the offending column.
package prep
