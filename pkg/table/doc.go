// Package table provides the in-memory tabular data model used by the
// preparation stages: an ordered set of named, typed columns sharing one row
// count, where any cell can be marked as missing.
//
// Tables are treated as values. Every operation returns a new Table and leaves
// its receiver untouched, so a stage that receives a Table owns the result it
// hands to the next stage.
package table
