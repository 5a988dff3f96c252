package crane

import (
	"fmt"
	"strconv"
	"strings"

	apperr "github.com/matzehuels/aoc2022/pkg/errors"
)

// Move relocates Amount crates from stack From to stack To.
// Indices are zero-based; the text form is one-based.
type Move struct {
	Amount int
	From   int
	To     int
}

// String renders the move in its input form.
func (m Move) String() string {
	return fmt.Sprintf("move %d from %d to %d", m.Amount, m.From+1, m.To+1)
}

// ParseMove parses one "move <amount> from <source> to <destination>" line.
func ParseMove(line string) (Move, error) {
	f := strings.Fields(line)
	if len(f) != 6 || f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return Move{}, apperr.New(apperr.ErrCodeParse, "expected \"move N from A to B\", got %q", line)
	}

	amount, err := positive(f[1], "amount")
	if err != nil {
		return Move{}, err
	}
	from, err := positive(f[3], "source")
	if err != nil {
		return Move{}, err
	}
	to, err := positive(f[5], "destination")
	if err != nil {
		return Move{}, err
	}

	return Move{Amount: amount, From: from - 1, To: to - 1}, nil
}

// ParseMoves parses one move per line, in order. Trailing blank lines are
// ignored; any other line that does not parse fails the whole block.
func ParseMoves(block string) ([]Move, error) {
	lines := splitLines(block)
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	moves := make([]Move, 0, len(lines))
	for i, line := range lines {
		m, err := ParseMove(line)
		if err != nil {
			return nil, apperr.New(apperr.ErrCodeParse, "move line %d: %s", i+1, apperr.UserMessage(err))
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// positive parses an unsigned decimal of at least 1. Signs are rejected.
func positive(s, what string) (int, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, apperr.New(apperr.ErrCodeParse, "%s %q is not a number", what, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.New(apperr.ErrCodeParse, "%s %q is not a number", what, s)
	}
	if n < 1 {
		return 0, apperr.New(apperr.ErrCodeParse, "%s must be at least 1, got %d", what, n)
	}
	return n, nil
}
