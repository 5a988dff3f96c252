package crane

import (
	"strings"
)

// Input is a parsed puzzle: the starting stacks and the moves to apply.
type Input struct {
	Stacks Stacks
	Moves  []Move
}

// Parse splits input at its first blank line and parses the diagram above it
// with l and the moves below it. Input without a blank line is all diagram.
func Parse(input string, l Layout) (*Input, error) {
	diagram, moves := split(input)

	stacks, err := ParseStacks(diagram, l)
	if err != nil {
		return nil, err
	}
	ms, err := ParseMoves(moves)
	if err != nil {
		return nil, err
	}
	return &Input{Stacks: stacks, Moves: ms}, nil
}

// Solve parses input, runs every move under policy, and returns the top
// crates. On failure no partial answer is returned.
func Solve(input string, l Layout, policy Policy) (string, error) {
	in, err := Parse(input, l)
	if err != nil {
		return "", err
	}
	c := New(in.Stacks, policy)
	if err := c.Run(in.Moves); err != nil {
		return "", err
	}
	return c.Tops(), nil
}

func split(input string) (diagram, moves string) {
	lines := strings.SplitAfter(input, "\n")
	offset := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" && offset < len(input) {
			return input[:offset], input[offset+len(line):]
		}
		offset += len(line)
	}
	return input, ""
}
