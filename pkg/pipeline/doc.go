// Package pipeline provides a pipeline for processing data.
//
// A pipeline is made of a root step feeding inputs, steps transforming them and
// sinks consuming the results. Steps are linked by unbuffered channels: an
// input is owned by exactly one step at a time, and handing it to the next
// step transfers that ownership.
//
// Every step runs in its own goroutine once Run is called. The pipeline stops
// on the first error: Run returns it, prefixed with the name of the step that
// raised it, and cancels the context given to every other step.
//
// Options (see the model package) observe the pipeline while it is built and
// run. The measure package records timings and the drawer package renders the
// step graph.
package pipeline
