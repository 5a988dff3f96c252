// Package day6 locates start-of-packet and start-of-message markers in a
// datastream.
package day6

import (
	"strconv"
	"strings"

	apperr "github.com/matzehuels/aoc2022/pkg/errors"
	"github.com/matzehuels/aoc2022/pkg/puzzle"
)

// Marker lengths.
const (
	PacketMarker  = 4
	MessageMarker = 14
)

// Day registers both parts.
var Day = &puzzle.Day{
	Number: 6,
	Title:  "Tuning Trouble",
	Part1:  solver(PacketMarker),
	Part2:  solver(MessageMarker),
}

// FindMarker returns the number of bytes read once the last n bytes are all
// distinct. The window slides over the stream once, keeping per-byte counts.
func FindMarker(stream string, n int) (int, error) {
	if n < 1 {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "marker length must be positive, got %d", n)
	}

	var counts [256]int
	distinct := 0
	for i := 0; i < len(stream); i++ {
		if counts[stream[i]] == 0 {
			distinct++
		}
		counts[stream[i]]++

		if i >= n {
			old := stream[i-n]
			counts[old]--
			if counts[old] == 0 {
				distinct--
			}
		}
		if distinct == n {
			return i + 1, nil
		}
	}
	return 0, apperr.New(apperr.ErrCodeParse, "no run of %d distinct characters in %d-byte stream", n, len(stream))
}

func solver(n int) puzzle.Solver {
	return func(input string) (string, error) {
		pos, err := FindMarker(strings.TrimSpace(input), n)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(pos), nil
	}
}
