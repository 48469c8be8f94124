package selector

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	termSeparator  = ","
	inclusiveDelim = "..="
	exclusiveDelim = ".."
)

// Parse parses a selector expression into a [Set].
//
// Terms are parsed in order and the first failure is returned as a
// [*ParseError]. An empty expression is an [EmptyTerm] error.
func Parse(expr string) (Set, error) {
	fields := strings.Split(expr, termSeparator)
	terms := make([]Term, 0, len(fields))

	for i, field := range fields {
		term, err := parseTerm(field)
		if err != nil {
			return Set{}, err.at(i, field)
		}

		terms = append(terms, term)
	}

	return newSet(terms), nil
}

// MustParse is like [Parse] but panics if the expression cannot be parsed.
func MustParse(expr string) Set {
	set, err := Parse(expr)
	if err != nil {
		panic(fmt.Sprintf("selector: Parse(%q): %v", expr, err))
	}

	return set
}

func parseTerm(s string) (Term, *ParseError) {
	// "..=" contains "..", so it must be tried first.
	if start, end, ok := strings.Cut(s, inclusiveDelim); ok {
		return parseRange(start, end, true)
	}

	if start, end, ok := strings.Cut(s, exclusiveDelim); ok {
		return parseRange(start, end, false)
	}

	if s == "" {
		return Term{}, newParseError(EmptyTerm, nil)
	}

	pos, err := parsePosition(s)
	if err != nil {
		return Term{}, newParseError(InvalidNumber, err)
	}

	return Single(pos), nil
}

func parseRange(start, end string, inclusive bool) (Term, *ParseError) {
	lo, err := parsePosition(start)
	if err != nil {
		return Term{}, newParseError(InvalidRange, fmt.Errorf("start: %w", err))
	}

	hi, err := parsePosition(end)
	if err != nil {
		return Term{}, newParseError(InvalidRange, fmt.Errorf("end: %w", err))
	}

	if lo > hi {
		return Term{}, newParseError(InvalidRange,
			fmt.Errorf("%w (%d > %d)", errReversed, lo, hi))
	}

	return Range(lo, hi, inclusive), nil
}

// parsePosition parses a 1-based line position made only of decimal digits.
func parsePosition(s string) (uint64, error) {
	if s == "" {
		return 0, errMissingNumber
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%q is not a decimal number", s)
		}
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		// Only a range error is possible here.
		return 0, fmt.Errorf("%q is too large", s)
	}

	if n == 0 {
		return 0, errZeroPosition
	}

	return n, nil
}
