// Package day3 finds misplaced items in rucksacks.
package day3

import (
	"strconv"
	"strings"

	"github.com/matzehuels/aoc2022/pkg/puzzle"
)

// Day registers both parts.
var Day = &puzzle.Day{
	Number: 3,
	Title:  "Rucksack Reorganization",
	Part1:  func(in string) (string, error) { return strconv.Itoa(CompartmentPriorities(in)), nil },
	Part2:  func(in string) (string, error) { return strconv.Itoa(BadgePriorities(in)), nil },
}

// Priority maps a-z to 1-26 and A-Z to 27-52.
func Priority(item byte) (int, bool) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, true
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, true
	}
	return 0, false
}

// Common returns the first byte of the first set that appears in every other set.
func Common(first string, rest ...string) (byte, bool) {
	for i := 0; i < len(first); i++ {
		c := first[i]
		found := true
		for _, r := range rest {
			if strings.IndexByte(r, c) < 0 {
				found = false
				break
			}
		}
		if found {
			return c, true
		}
	}
	return 0, false
}

// CompartmentPriorities sums the priority of the item found in both halves of
// each rucksack. Rucksacks without a shared prioritised item count zero.
func CompartmentPriorities(input string) int {
	total := 0
	for _, line := range lines(input) {
		half := len(line) / 2
		if c, ok := Common(line[:half], line[half:]); ok {
			total += priority(c)
		}
	}
	return total
}

// BadgePriorities sums the priority of the badge shared by each group of
// three rucksacks. A trailing incomplete group is ignored.
func BadgePriorities(input string) int {
	ls := lines(input)
	total := 0
	for i := 0; i+2 < len(ls); i += 3 {
		if c, ok := Common(ls[i], ls[i+1], ls[i+2]); ok {
			total += priority(c)
		}
	}
	return total
}

func priority(c byte) int {
	p, _ := Priority(c)
	return p
}

func lines(input string) []string {
	var out []string
	for _, l := range strings.Split(input, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
