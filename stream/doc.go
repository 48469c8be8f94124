// Package stream filters a sequence of lines by position.
//
// [Run] numbers lines from a [Supplier] starting at 1 and forwards those
// selected by a [selector.Set] to a [Sink], in input order and at most once
// each. It holds a single line at a time and stops as soon as the input ends
// or no later line can be selected.
//
// [NewReader] and [NewWriter] adapt an [io.Reader] and [io.Writer] to the
// newline-delimited text format used on the command line.
package stream
