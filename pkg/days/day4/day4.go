// Package day4 compares pairs of section assignments.
package day4

import (
	"strconv"
	"strings"

	apperr "github.com/matzehuels/aoc2022/pkg/errors"
	"github.com/matzehuels/aoc2022/pkg/puzzle"
)

// Day registers both parts.
var Day = &puzzle.Day{
	Number: 4,
	Title:  "Camp Cleanup",
	Part1:  func(in string) (string, error) { return count(in, Pair.Nested) },
	Part2:  func(in string) (string, error) { return count(in, Pair.Overlapping) },
}

// Range is an inclusive section range.
type Range struct {
	Start, End int
}

// Contains reports whether o lies entirely inside r.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && r.End >= o.End
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Pair is one line of the input: two elves' assignments.
type Pair struct {
	First, Second Range
}

// Nested reports whether one range contains the other.
func (p Pair) Nested() bool {
	return p.First.Contains(p.Second) || p.Second.Contains(p.First)
}

// Overlapping reports whether the ranges overlap at all.
func (p Pair) Overlapping() bool {
	return p.First.Overlaps(p.Second)
}

// ParsePair parses "a-b,c-d".
func ParsePair(line string) (Pair, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(line), ",")
	if !ok {
		return Pair{}, apperr.New(apperr.ErrCodeParse, "expected \"a-b,c-d\", got %q", line)
	}
	first, err := parseRange(left)
	if err != nil {
		return Pair{}, err
	}
	second, err := parseRange(right)
	if err != nil {
		return Pair{}, err
	}
	return Pair{First: first, Second: second}, nil
}

func parseRange(s string) (Range, error) {
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, apperr.New(apperr.ErrCodeParse, "expected \"a-b\", got %q", s)
	}
	start, err1 := strconv.Atoi(a)
	end, err2 := strconv.Atoi(b)
	if err1 != nil || err2 != nil {
		return Range{}, apperr.New(apperr.ErrCodeParse, "range %q is not numeric", s)
	}
	return Range{Start: start, End: end}, nil
}

// Count returns how many pairs satisfy pred. The first malformed line fails
// the whole count.
func Count(input string, pred func(Pair) bool) (int, error) {
	n := 0
	for i, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := ParsePair(line)
		if err != nil {
			return 0, apperr.New(apperr.ErrCodeParse, "line %d: %s", i+1, apperr.UserMessage(err))
		}
		if pred(p) {
			n++
		}
	}
	return n, nil
}

func count(input string, pred func(Pair) bool) (string, error) {
	n, err := Count(input, pred)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
