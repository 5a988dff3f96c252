// Package days collects every solved puzzle day.
package days

import (
	"github.com/matzehuels/aoc2022/pkg/crane"
	"github.com/matzehuels/aoc2022/pkg/days/day1"
	"github.com/matzehuels/aoc2022/pkg/days/day2"
	"github.com/matzehuels/aoc2022/pkg/days/day3"
	"github.com/matzehuels/aoc2022/pkg/days/day4"
	"github.com/matzehuels/aoc2022/pkg/days/day5"
	"github.com/matzehuels/aoc2022/pkg/days/day6"
	"github.com/matzehuels/aoc2022/pkg/puzzle"
)

// Registry returns a registry of all days. Day 5 reads its diagram with
// layout.
func Registry(layout crane.Layout) (*puzzle.Registry, error) {
	return puzzle.NewRegistry(
		day1.Day,
		day2.Day,
		day3.Day,
		day4.Day,
		day5.New(layout),
		day6.Day,
	)
}
