package crane

import (
	"slices"
	"strconv"
	"strings"

	apperr "github.com/matzehuels/aoc2022/pkg/errors"
)

// Layout describes how crates are drawn in the stack diagram.
//
// Each column occupies SlotWidth characters of a row. A crate is drawn as
// Open, label, Close with the label at LabelOffset inside the slot; every
// other character of the slot is a space. Labels may be any single character,
// including multibyte ones. The last slot of a row may be cut short
// by the end of the line.
type Layout struct {
	SlotWidth   int
	LabelOffset int
	Open        rune
	Close       rune
}

// DefaultLayout matches diagrams drawn as "[A] [B] [C]".
var DefaultLayout = Layout{SlotWidth: 4, LabelOffset: 1, Open: '[', Close: ']'}

// Validate checks that the brackets fit inside a slot.
func (l Layout) Validate() error {
	if l.LabelOffset < 1 {
		return apperr.New(apperr.ErrCodeParse, "label offset must be at least 1, got %d", l.LabelOffset)
	}
	if l.SlotWidth < l.LabelOffset+2 {
		return apperr.New(apperr.ErrCodeParse, "slot width %d too small for label offset %d", l.SlotWidth, l.LabelOffset)
	}
	return nil
}

// ParseStacks parses a stack diagram into bottom-to-top stacks.
//
// The diagram's last line is the footer; its rightmost numeric label gives the
// column count. Without a usable footer the result is zero stacks and no error,
// since there is nothing to track.
func ParseStacks(diagram string, l Layout) (Stacks, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	lines := splitLines(diagram)
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Stacks{}, nil
	}

	footer, rows := lines[len(lines)-1], lines[:len(lines)-1]
	n := columnCount(footer)
	if n == 0 {
		return Stacks{}, nil
	}

	stacks := make(Stacks, n)
	for i := range stacks {
		stacks[i] = Stack{}
	}
	for r, row := range rows {
		if err := l.parseRow(row, r+1, stacks); err != nil {
			return nil, err
		}
	}

	// Rows were read top-down; flip each stack so the top crate comes last.
	for _, st := range stacks {
		slices.Reverse(st)
	}
	return stacks, nil
}

// columnCount returns the footer's rightmost label, or 0 if it is not a
// positive integer.
func columnCount(footer string) int {
	fields := strings.Fields(footer)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseRow pushes the crates found in row onto stacks. Slots are measured in
// characters, not bytes.
func (l Layout) parseRow(row string, lineNo int, stacks Stacks) error {
	chars := []rune(row)
	for col, start := 0, 0; start < len(chars); col, start = col+1, start+l.SlotWidth {
		cell := chars[start:min(start+l.SlotWidth, len(chars))]
		if isBlank(string(cell)) {
			continue
		}
		label, ok := l.label(cell)
		if !ok {
			return apperr.New(apperr.ErrCodeParse, "diagram row %d, column %d: malformed slot %q", lineNo, col+1, string(cell))
		}
		if col >= len(stacks) {
			return apperr.New(apperr.ErrCodeParse, "diagram row %d: crate %q in column %d, but the footer numbers only %d columns", lineNo, label, col+1, len(stacks))
		}
		stacks[col] = append(stacks[col], label)
	}
	return nil
}

// label extracts the crate label from a non-blank slot.
func (l Layout) label(cell []rune) (rune, bool) {
	lo, at, hi := l.LabelOffset-1, l.LabelOffset, l.LabelOffset+1
	if len(cell) <= hi || cell[lo] != l.Open || cell[hi] != l.Close {
		return 0, false
	}
	for i, r := range cell {
		if i >= lo && i <= hi {
			continue
		}
		if r != ' ' {
			return 0, false
		}
	}
	return cell[at], true
}

func isBlank(cell string) bool {
	return strings.Trim(cell, " ") == ""
}

// splitLines splits text on newlines and drops carriage returns.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
