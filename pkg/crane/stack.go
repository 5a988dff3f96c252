package crane

import (
	"slices"
	"strings"
)

// Stack holds crate labels from bottom to top. The last element is the top.
type Stack []rune

// Top returns the topmost crate and whether the stack is non-empty.
func (s Stack) Top() (rune, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// String renders the stack bottom-to-top, e.g. "ZN".
func (s Stack) String() string {
	return string(s)
}

// Stacks is an ordered collection of stacks. Index i holds diagram column i+1.
type Stacks []Stack

// Clone returns a deep copy. Empty stacks stay non-nil so that clones compare
// equal to their source.
func (s Stacks) Clone() Stacks {
	out := make(Stacks, len(s))
	for i, st := range s {
		out[i] = append(Stack{}, st...)
	}
	return out
}

// Equal reports whether both collections hold the same crates in the same order.
func (s Stacks) Equal(other Stacks) bool {
	return slices.EqualFunc(s, other, func(a, b Stack) bool {
		return slices.Equal(a, b)
	})
}

// Height returns the total number of crates across all stacks.
func (s Stacks) Height() int {
	n := 0
	for _, st := range s {
		n += len(st)
	}
	return n
}

// Tops concatenates the top crate of every stack in index order.
// Empty stacks contribute nothing.
func (s Stacks) Tops() string {
	var b strings.Builder
	for _, st := range s {
		if c, ok := st.Top(); ok {
			b.WriteRune(c)
		}
	}
	return b.String()
}
