// Package day5 wires the crate simulator into the puzzle registry.
package day5

import (
	"github.com/matzehuels/aoc2022/pkg/crane"
	"github.com/matzehuels/aoc2022/pkg/puzzle"
)

// Day registers both parts with the default diagram layout.
var Day = New(crane.DefaultLayout)

// New returns day 5 for diagrams drawn with layout l. Part 1 moves crates one
// at a time and part 2 moves them as a block.
func New(l crane.Layout) *puzzle.Day {
	return &puzzle.Day{
		Number: 5,
		Title:  "Supply Stacks",
		Part1:  Solver(l, crane.SingleCrate),
		Part2:  Solver(l, crane.BlockMove),
	}
}

// Solver returns a solver that runs the crane under policy.
func Solver(l crane.Layout, policy crane.Policy) puzzle.Solver {
	return func(input string) (string, error) {
		return crane.Solve(input, l, policy)
	}
}
