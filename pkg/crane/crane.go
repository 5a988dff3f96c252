package crane

import (
	"fmt"
	"strings"

	apperr "github.com/matzehuels/aoc2022/pkg/errors"
)

// Policy selects how a crane lifts a group of crates.
type Policy int

const (
	// SingleCrate lifts one crate at a time; a moved group lands reversed.
	SingleCrate Policy = iota
	// BlockMove lifts the whole group at once; its order is kept.
	BlockMove
)

// String returns the policy name accepted by [ParsePolicy].
func (p Policy) String() string {
	switch p {
	case SingleCrate:
		return "single"
	case BlockMove:
		return "block"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses a policy name. The crane model numbers 9000 and 9001
// are accepted as aliases for single and block.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "9000":
		return SingleCrate, nil
	case "block", "9001":
		return BlockMove, nil
	}
	return 0, apperr.New(apperr.ErrCodeInvalidInput, "unknown crane policy %q (available: single, block)", s)
}

// Crane applies moves to the stacks it owns.
type Crane struct {
	stacks Stacks
	policy Policy
}

// New returns a crane that takes ownership of stacks. The caller must not
// use stacks afterwards; use [Crane.Stacks] to inspect the state.
func New(stacks Stacks, policy Policy) *Crane {
	return &Crane{stacks: stacks, policy: policy}
}

// Policy returns the crane's move policy.
func (c *Crane) Policy() Policy { return c.policy }

// Stacks returns a copy of the current stacks.
func (c *Crane) Stacks() Stacks { return c.stacks.Clone() }

// Tops returns the top crate of every non-empty stack.
func (c *Crane) Tops() string { return c.stacks.Tops() }

// Apply performs a single move. The move is checked in full before any crate
// is lifted, so a failed move leaves the stacks untouched.
func (c *Crane) Apply(m Move) error {
	if err := c.check(m); err != nil {
		return err
	}
	if m.From == m.To {
		return nil
	}

	src, dst := c.stacks[m.From], c.stacks[m.To]
	switch c.policy {
	case SingleCrate:
		for range m.Amount {
			top := src[len(src)-1]
			src = src[:len(src)-1]
			dst = append(dst, top)
		}
	case BlockMove:
		cut := len(src) - m.Amount
		dst = append(dst, src[cut:]...)
		src = src[:cut]
	default:
		return apperr.New(apperr.ErrCodeInternal, "unsupported crane policy %v", c.policy)
	}
	c.stacks[m.From], c.stacks[m.To] = src, dst
	return nil
}

// Run applies moves in order and stops at the first failure. The error names
// the 1-based position of the failing move; the stacks must then be discarded.
func (c *Crane) Run(moves []Move) error {
	for i, m := range moves {
		if err := c.Apply(m); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
	}
	return nil
}

func (c *Crane) check(m Move) error {
	n := len(c.stacks)
	if m.From < 0 || m.From >= n {
		return apperr.New(apperr.ErrCodeMalformedState, "source stack %d does not exist (%d stacks)", m.From+1, n)
	}
	if m.To < 0 || m.To >= n {
		return apperr.New(apperr.ErrCodeMalformedState, "destination stack %d does not exist (%d stacks)", m.To+1, n)
	}
	if m.Amount < 1 {
		return apperr.New(apperr.ErrCodeMalformedState, "amount must be positive, got %d", m.Amount)
	}
	if m.From == m.To {
		return nil
	}
	if have := len(c.stacks[m.From]); have < m.Amount {
		return apperr.New(apperr.ErrCodeMalformedState, "cannot take %d crates from stack %d holding %d", m.Amount, m.From+1, have)
	}
	return nil
}
