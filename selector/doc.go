// Package selector parses line selector expressions and tests line positions
// for membership.
//
// # Syntax
//
// A selector expression is a comma-separated list of terms. Each term is one
// of:
//
//	n      the single line at position n
//	a..b   lines a through b, excluding b
//	a..=b  lines a through b, including b
//
// Positions are 1-based decimal integers. Ranges must not be reversed
// (a <= b). An exclusive range with equal bounds is valid and selects nothing.
//
//	5          line 5
//	1,6,7      lines 1, 6 and 7
//	5..7       lines 5 and 6
//	5..=7      lines 5, 6 and 7
//	8,1..3     lines 1, 2 and 8
//
// # Membership
//
// A [Set] keeps its terms in expression order but answers membership against
// the union of all terms, so a position matched by several terms is reported
// once. Use [Set.Contains] for random access, or a [Cursor] when positions are
// visited in ascending order as they are when streaming input.
//
// # Errors
//
// [Parse] returns a [*ParseError] describing the first term that failed. Use
// [errors.Is] with [ErrSelector] to match any parse failure, or with
// [ErrInvalidNumber], [ErrInvalidRange] or [ErrEmptyTerm] to match a
// specific kind.
package selector
