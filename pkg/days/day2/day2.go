// Package day2 scores a rock-paper-scissors strategy guide.
package day2

import (
	"strconv"
	"strings"

	"github.com/matzehuels/aoc2022/pkg/puzzle"
)

// Day registers both parts.
var Day = &puzzle.Day{
	Number: 2,
	Title:  "Rock Paper Scissors",
	Part1:  func(in string) (string, error) { return strconv.Itoa(Score(in, ReadShape)), nil },
	Part2:  func(in string) (string, error) { return strconv.Itoa(Score(in, ReadOutcome)), nil },
}

// Shape is a hand shape.
type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

// Outcome is the result of a round from our side.
type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

// Round is one line of the guide.
type Round struct {
	Theirs Shape
	Ours   Shape
}

// Score returns the shape score (1, 2, 3) plus the outcome score (0, 3, 6).
func (r Round) Score() int {
	return int(r.Ours) + 1 + 3*int(play(r.Theirs, r.Ours))
}

func play(theirs, ours Shape) Outcome {
	switch (int(ours) - int(theirs) + 3) % 3 {
	case 0:
		return Draw
	case 1:
		return Win
	default:
		return Lose
	}
}

// counter returns the shape that yields outcome o against theirs.
func counter(theirs Shape, o Outcome) Shape {
	return Shape((int(theirs) + int(o) + 2) % 3)
}

// Reader decides our shape from their shape and the second column (0, 1, 2
// for X, Y, Z).
type Reader func(theirs Shape, column int) Shape

// ReadShape reads the second column as our shape.
func ReadShape(_ Shape, column int) Shape { return Shape(column) }

// ReadOutcome reads the second column as the outcome we need.
func ReadOutcome(theirs Shape, column int) Shape { return counter(theirs, Outcome(column)) }

// ParseRound parses "A X" style lines.
func ParseRound(line string, read Reader) (Round, bool) {
	f := strings.Fields(line)
	if len(f) != 2 || len(f[0]) != 1 || len(f[1]) != 1 {
		return Round{}, false
	}
	a, x := int(f[0][0]-'A'), int(f[1][0]-'X')
	if a < 0 || a > 2 || x < 0 || x > 2 {
		return Round{}, false
	}
	theirs := Shape(a)
	return Round{Theirs: theirs, Ours: read(theirs, x)}, true
}

// Score totals all rounds. Lines that are not rounds are skipped.
func Score(input string, read Reader) int {
	total := 0
	for _, line := range strings.Split(input, "\n") {
		if r, ok := ParseRound(line, read); ok {
			total += r.Score()
		}
	}
	return total
}
