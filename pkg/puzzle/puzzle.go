// Package puzzle defines the contract shared by all day solvers and a
// registry for looking them up by number.
//
// A [Day] bundles the two parts of one puzzle. Each part is a [Solver]: a pure
// function from the raw input text to a printable answer. Solvers hold no
// state between calls and never read anything but their argument.
//
//	reg, _ := puzzle.NewRegistry(day1.Day, day5.Day)
//	d, _ := reg.Lookup(5)
//	solve, _ := d.Part(1)
//	answer, err := solve(input)
package puzzle

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	apperr "github.com/matzehuels/aoc2022/pkg/errors"
)

// Solver computes the answer for one part of a puzzle.
type Solver func(input string) (string, error)

// Day describes one puzzle day.
type Day struct {
	Number int
	Title  string
	Part1  Solver
	Part2  Solver
}

// Name returns the short name used for input files and cache keys, e.g. "day5".
func (d *Day) Name() string {
	return fmt.Sprintf("day%d", d.Number)
}

// Part returns the solver for part 1 or 2.
func (d *Day) Part(n int) (Solver, error) {
	if err := apperr.ValidatePart(n); err != nil {
		return nil, err
	}
	s := d.Part1
	if n == 2 {
		s = d.Part2
	}
	if s == nil {
		return nil, apperr.New(apperr.ErrCodeUnsupported, "%s part %d is not implemented", d.Name(), n)
	}
	return s, nil
}

// Registry indexes days by number.
type Registry struct {
	days map[int]*Day
}

// NewRegistry builds a registry, rejecting invalid or duplicate day numbers.
func NewRegistry(days ...*Day) (*Registry, error) {
	r := &Registry{days: make(map[int]*Day, len(days))}
	for _, d := range days {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a day.
func (r *Registry) Register(d *Day) error {
	if d == nil {
		return apperr.New(apperr.ErrCodeInternal, "cannot register nil day")
	}
	if err := apperr.ValidateDay(d.Number); err != nil {
		return err
	}
	if _, dup := r.days[d.Number]; dup {
		return apperr.New(apperr.ErrCodeInternal, "%s registered twice", d.Name())
	}
	r.days[d.Number] = d
	return nil
}

// Lookup returns the day with the given number.
func (r *Registry) Lookup(n int) (*Day, error) {
	if err := apperr.ValidateDay(n); err != nil {
		return nil, err
	}
	d, ok := r.days[n]
	if !ok {
		return nil, apperr.New(apperr.ErrCodeNotFound, "day %d is not solved yet (available: %v)", n, r.Numbers())
	}
	return d, nil
}

// Numbers returns the registered day numbers in ascending order.
func (r *Registry) Numbers() []int {
	return slices.Sorted(maps.Keys(r.days))
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []*Day {
	days := slices.Collect(maps.Values(r.days))
	slices.SortFunc(days, func(a, b *Day) int { return cmp.Compare(a.Number, b.Number) })
	return days
}
