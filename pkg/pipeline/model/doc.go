// Package model provides the data structures shared by the pipeline package and
// its options: step metadata, the typed output end of a step, and the hooks a
// pipeline option receives while steps are added and run.
package model
