package selector

//go:generate go tool stringer --linecomment --type Kind,ErrorKind --output kind_string.go

import "strconv"

// Kind identifies the variant of a [Term].
type Kind int

const (
	KindSingle Kind = iota // single
	KindRange              // range
)

// Term is one comma-separated component of a selector expression.
//
// The zero value is not a valid term; terms are created by [Parse] or by the
// [Single] and [Range] constructors.
type Term struct {
	kind      Kind
	start     uint64
	end       uint64
	inclusive bool
}

// Single returns a term matching exactly the given position.
func Single(position uint64) Term {
	return Term{kind: KindSingle, start: position, end: position, inclusive: true}
}

// Range returns a term matching positions from start up to end, including end
// only if inclusive is set.
func Range(start, end uint64, inclusive bool) Term {
	return Term{kind: KindRange, start: start, end: end, inclusive: inclusive}
}

// Kind returns the variant of t.
func (t Term) Kind() Kind { return t.kind }

// Start returns the first position of t. For a single term, this is its
// position.
func (t Term) Start() uint64 { return t.start }

// End returns the upper bound of t as written. For a single term, this is its
// position.
func (t Term) End() uint64 { return t.end }

// Inclusive reports whether [Term.End] is itself selected.
func (t Term) Inclusive() bool { return t.inclusive }

// Contains reports whether position p is selected by t.
func (t Term) Contains(p uint64) bool {
	lo, hi, ok := t.bounds()

	return ok && lo <= p && p <= hi
}

// Empty reports whether t selects no position at all.
func (t Term) Empty() bool {
	_, _, ok := t.bounds()

	return !ok
}

// bounds returns the closed interval [lo, hi] selected by t.
// ok is false if the interval is empty.
func (t Term) bounds() (lo, hi uint64, ok bool) {
	lo, hi = t.start, t.end

	if !t.inclusive {
		if hi == 0 {
			return 0, 0, false
		}

		hi--
	}

	return lo, hi, lo >= 1 && lo <= hi
}

// String returns t in selector expression syntax.
func (t Term) String() string {
	switch t.kind {
	case KindSingle:
		return strconv.FormatUint(t.start, 10)

	case KindRange:
		delim := exclusiveDelim
		if t.inclusive {
			delim = inclusiveDelim
		}

		return strconv.FormatUint(t.start, 10) + delim +
			strconv.FormatUint(t.end, 10)

	default:
		return t.kind.String()
	}
}
