package selector

import (
	"cmp"
	"math"
	"slices"
	"sort"
	"strings"
)

// span is a closed, non-empty interval of positions.
type span struct {
	lo, hi uint64
}

// Set is an immutable, ordered sequence of terms.
//
// Alongside the terms, a Set holds their union as sorted, disjoint spans,
// which is what membership tests consult.
type Set struct {
	terms []Term
	spans []span
}

func newSet(terms []Term) Set {
	spans := make([]span, 0, len(terms))

	for _, t := range terms {
		if lo, hi, ok := t.bounds(); ok {
			spans = append(spans, span{lo, hi})
		}
	}

	return Set{terms: terms, spans: merge(spans)}
}

// merge sorts spans in place and coalesces overlapping or adjacent spans.
func merge(spans []span) []span {
	if len(spans) == 0 {
		return nil
	}

	slices.SortFunc(spans, func(a, b span) int { return cmp.Compare(a.lo, b.lo) })

	out := spans[:1]

	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if last.hi == math.MaxUint64 || s.lo <= last.hi+1 {
			last.hi = max(last.hi, s.hi)

			continue
		}

		out = append(out, s)
	}

	return slices.Clip(out)
}

// Terms returns a copy of the terms of s in expression order.
func (s Set) Terms() []Term { return slices.Clone(s.terms) }

// Len returns the number of terms in s.
func (s Set) Len() int { return len(s.terms) }

// Contains reports whether position p is selected by at least one term.
func (s Set) Contains(p uint64) bool {
	i := sort.Search(len(s.spans), func(i int) bool { return s.spans[i].hi >= p })

	return i < len(s.spans) && s.spans[i].lo <= p
}

// Last returns the greatest position selected by s.
// ok is false if s selects nothing.
func (s Set) Last() (last uint64, ok bool) {
	if len(s.spans) == 0 {
		return 0, false
	}

	return s.spans[len(s.spans)-1].hi, true
}

// String returns s in selector expression syntax.
func (s Set) String() string {
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.String()
	}

	return strings.Join(parts, termSeparator)
}

// Cursor returns a [Cursor] positioned before the first span of s.
func (s Set) Cursor() *Cursor {
	return &Cursor{spans: s.spans}
}

// Cursor tests membership for positions visited in non-decreasing order.
//
// Each span is passed over at most once, so a full pass over any input costs
// O(lines + terms). Positions given out of order yield undefined results.
type Cursor struct {
	spans []span
	next  int
}

// advance skips spans that end before p.
func (c *Cursor) advance(p uint64) {
	for c.next < len(c.spans) && c.spans[c.next].hi < p {
		c.next++
	}
}

// Match reports whether position p is selected.
func (c *Cursor) Match(p uint64) bool {
	c.advance(p)

	return c.next < len(c.spans) && c.spans[c.next].lo <= p
}

// Done reports whether no position at or after p is selected.
func (c *Cursor) Done(p uint64) bool {
	c.advance(p)

	return c.next >= len(c.spans)
}
