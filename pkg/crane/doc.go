// Package crane simulates a cargo crane rearranging stacks of crates.
//
// # Overview
//
// The puzzle input has two blocks separated by a blank line. The first is a
// drawing of the starting stacks, one crate per fixed-width slot, closed by a
// footer row that numbers the columns:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
// The second block lists move instructions, one per line:
//
//	move 1 from 2 to 1
//	move 3 from 1 to 3
//
// [ParseStacks] turns the drawing into [Stacks] (bottom-to-top per stack),
// [ParseMoves] turns the instruction block into [Move] values, and a [Crane]
// applies the moves under one of two [Policy] values:
//
//   - [SingleCrate]: crates are lifted one at a time, so a moved group lands
//     in reverse order.
//   - [BlockMove]: the whole group is lifted at once and keeps its order.
//
// [Stacks.Tops] reads the answer: the top crate of every non-empty stack.
//
// # Layout
//
// The slot geometry is not hard-coded. A [Layout] describes the slot width,
// the offset of the label inside a slot, and the bracket characters.
// [DefaultLayout] matches the usual "[X] " rendering.
//
// # Errors
//
// Parsing failures carry the PARSE_ERROR code and instructions that cannot be
// applied carry MALFORMED_STATE (see package errors). Both policies reject a
// move that asks for more crates than the source stack holds; the check runs
// before any crate is touched. A move whose source and destination are the
// same stack is a no-op.
//
// # Ownership
//
// A [Crane] owns the Stacks it was built with and mutates them in place.
// [Crane.Stacks] returns a deep copy, so callers never alias live state.
package crane
