// Package day1 totals the calories carried by each elf.
//
// Input is one number per line, with a blank line between elves.
package day1

import (
	"slices"
	"strconv"
	"strings"

	apperr "github.com/matzehuels/aoc2022/pkg/errors"
	"github.com/matzehuels/aoc2022/pkg/puzzle"
)

// Day registers both parts.
var Day = &puzzle.Day{
	Number: 1,
	Title:  "Calorie Counting",
	Part1:  func(in string) (string, error) { return itoa(MaxCalories(in)) },
	Part2:  func(in string) (string, error) { return itoa(TopCalories(in, 3)) },
}

// Totals returns the calorie total of every elf, in input order.
func Totals(input string) ([]int, error) {
	var totals []int
	sum, open := 0, false
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if open {
				totals = append(totals, sum)
			}
			sum, open = 0, false
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, apperr.New(apperr.ErrCodeParse, "line %d: %q is not a calorie count", i+1, line)
		}
		sum += n
		open = true
	}
	if open {
		totals = append(totals, sum)
	}
	return totals, nil
}

// MaxCalories returns the largest elf total, or 0 for empty input.
func MaxCalories(input string) (int, error) {
	return TopCalories(input, 1)
}

// TopCalories sums the k largest elf totals. With fewer than k elves it sums
// all of them.
func TopCalories(input string, k int) (int, error) {
	totals, err := Totals(input)
	if err != nil {
		return 0, err
	}
	slices.Sort(totals)
	slices.Reverse(totals)

	sum := 0
	for _, t := range totals[:min(k, len(totals))] {
		sum += t
	}
	return sum, nil
}

func itoa(n int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
