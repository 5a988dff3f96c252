package crane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/matzehuels/aoc2022/pkg/errors"
)

const sampleMoves = `move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

var sampleInput = sampleDiagram + "\n\n" + sampleMoves

func sampleStacks() Stacks {
	return Stacks{{'Z', 'N'}, {'M', 'C', 'D'}, {'P'}}
}

func TestSolve_Sample(t *testing.T) {
	tests := []struct {
		policy Policy
		want   string
	}{
		{SingleCrate, "CMZ"},
		{BlockMove, "MCD"},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			got, err := Solve(sampleInput, DefaultLayout, tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolve_EmptyDiagram(t *testing.T) {
	for _, input := range []string{"", "\n", "\n\n"} {
		got, err := Solve(input, DefaultLayout, SingleCrate)
		require.NoError(t, err, "an empty diagram is not a parse error")
		assert.Empty(t, got)
	}
}

func TestSolve_MovesWithoutStacks(t *testing.T) {
	_, err := Solve("\nmove 1 from 1 to 2\n", DefaultLayout, BlockMove)
	require.Error(t, err)
	assert.True(t, apperr.IsMalformedState(err))
}

func TestSolve_ParseErrorGivesNoAnswer(t *testing.T) {
	got, err := Solve(sampleDiagram+"\n\nmove 1 from 2 to 1\nlift 2 from 1 to 3\n", DefaultLayout, SingleCrate)
	require.Error(t, err)
	assert.True(t, apperr.IsParse(err))
	assert.Empty(t, got)
}

func TestParse_ZeroMovesRoundTrip(t *testing.T) {
	in, err := Parse(sampleDiagram+"\n\n", DefaultLayout)
	require.NoError(t, err)
	require.Empty(t, in.Moves)

	parsed := in.Stacks.Clone()
	c := New(in.Stacks, SingleCrate)
	require.NoError(t, c.Run(in.Moves))
	assert.True(t, parsed.Equal(c.Stacks()))
}

func TestCrane_SingleCrateSteps(t *testing.T) {
	c := New(sampleStacks(), SingleCrate)
	moves, err := ParseMoves(sampleMoves)
	require.NoError(t, err)

	want := []Stacks{
		{{'Z', 'N', 'D'}, {'M', 'C'}, {'P'}},
		{{}, {'M', 'C'}, {'P', 'D', 'N', 'Z'}},
		{{'C', 'M'}, {}, {'P', 'D', 'N', 'Z'}},
		{{'C'}, {'M'}, {'P', 'D', 'N', 'Z'}},
	}
	for i, m := range moves {
		require.NoError(t, c.Apply(m))
		assert.True(t, want[i].Equal(c.Stacks()), "after %s: got %v, want %v", m, c.Stacks(), want[i])
	}
	assert.Equal(t, "CMZ", c.Tops())
}

func TestCrane_BlockMoveSteps(t *testing.T) {
	c := New(sampleStacks(), BlockMove)
	moves, err := ParseMoves(sampleMoves)
	require.NoError(t, err)

	want := []Stacks{
		{{'Z', 'N', 'D'}, {'M', 'C'}, {'P'}},
		{{}, {'M', 'C'}, {'P', 'Z', 'N', 'D'}},
		{{'M', 'C'}, {}, {'P', 'Z', 'N', 'D'}},
		{{'M'}, {'C'}, {'P', 'Z', 'N', 'D'}},
	}
	for i, m := range moves {
		require.NoError(t, c.Apply(m))
		assert.True(t, want[i].Equal(c.Stacks()), "after %s: got %v, want %v", m, c.Stacks(), want[i])
	}
	assert.Equal(t, "MCD", c.Tops())
}

func TestCrane_MovedGroupOrder(t *testing.T) {
	tests := []struct {
		policy Policy
		want   Stack
	}{
		{SingleCrate, Stack{'X', 'D', 'C', 'B'}},
		{BlockMove, Stack{'X', 'B', 'C', 'D'}},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			c := New(Stacks{{'A', 'B', 'C', 'D'}, {'X'}}, tt.policy)
			require.NoError(t, c.Apply(Move{Amount: 3, From: 0, To: 1}))

			got := c.Stacks()
			assert.Equal(t, Stack{'A'}, got[0])
			assert.Equal(t, tt.want, got[1])
		})
	}
}

func TestCrane_RepeatedMoveChangesState(t *testing.T) {
	for _, p := range []Policy{SingleCrate, BlockMove} {
		t.Run(p.String(), func(t *testing.T) {
			m := Move{Amount: 1, From: 0, To: 1}

			once := New(Stacks{{'A', 'B'}, {}}, p)
			require.NoError(t, once.Apply(m))

			twice := New(Stacks{{'A', 'B'}, {}}, p)
			require.NoError(t, twice.Apply(m))
			require.NoError(t, twice.Apply(m))

			assert.False(t, once.Stacks().Equal(twice.Stacks()))
			assert.Equal(t, 2, twice.Stacks().Height(), "moves never create or destroy crates")
		})
	}
}

func TestCrane_TooFewCrates(t *testing.T) {
	for _, p := range []Policy{SingleCrate, BlockMove} {
		t.Run(p.String(), func(t *testing.T) {
			start := Stacks{{'A'}, {'B'}}
			c := New(start.Clone(), p)

			err := c.Apply(Move{Amount: 2, From: 0, To: 1})
			require.Error(t, err)
			assert.True(t, apperr.IsMalformedState(err), "want MALFORMED_STATE, got %v", err)
			assert.True(t, start.Equal(c.Stacks()), "a rejected move must not touch the stacks")
		})
	}
}

func TestCrane_EmptySource(t *testing.T) {
	c := New(Stacks{{'A'}, {}}, SingleCrate)
	err := c.Apply(Move{Amount: 1, From: 1, To: 0})
	require.Error(t, err)
	assert.True(t, apperr.IsMalformedState(err))
}

func TestCrane_UnknownStack(t *testing.T) {
	tests := []struct {
		name string
		move Move
	}{
		{"source", Move{Amount: 1, From: 3, To: 0}},
		{"destination", Move{Amount: 1, From: 0, To: 7}},
		{"negative", Move{Amount: 1, From: -1, To: 0}},
		{"zero amount", Move{Amount: 0, From: 0, To: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Stacks{{'A'}, {'B'}}, BlockMove)
			err := c.Apply(tt.move)
			require.Error(t, err)
			assert.True(t, apperr.IsMalformedState(err))
		})
	}
}

func TestCrane_SelfMoveIsNoop(t *testing.T) {
	for _, p := range []Policy{SingleCrate, BlockMove} {
		t.Run(p.String(), func(t *testing.T) {
			c := New(Stacks{{'A', 'B'}, {'C'}}, p)
			require.NoError(t, c.Apply(Move{Amount: 2, From: 0, To: 0}))
			require.NoError(t, c.Apply(Move{Amount: 5, From: 1, To: 1}))
			assert.True(t, Stacks{{'A', 'B'}, {'C'}}.Equal(c.Stacks()))
		})
	}
}

func TestCrane_RunStopsAtFirstFailure(t *testing.T) {
	c := New(Stacks{{'A'}, {}}, SingleCrate)
	err := c.Run([]Move{
		{Amount: 1, From: 0, To: 1},
		{Amount: 1, From: 0, To: 1},
		{Amount: 1, From: 1, To: 0},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsMalformedState(err))
	assert.Contains(t, err.Error(), "move 2 (move 1 from 1 to 2)")
}

func TestCrane_StacksReturnsCopy(t *testing.T) {
	c := New(Stacks{{'A'}}, SingleCrate)
	got := c.Stacks()
	got[0][0] = 'Z'
	assert.Equal(t, "A", c.Tops())
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"single", SingleCrate, false},
		{"9000", SingleCrate, false},
		{"Block", BlockMove, false},
		{"9001", BlockMove, false},
		{"stack", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParsePolicy(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParsePolicy(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestStacks_Tops(t *testing.T) {
	assert.Equal(t, "NDP", sampleStacks().Tops())
	assert.Equal(t, "B", Stacks{{}, {'A', 'B'}, {}}.Tops(), "empty stacks contribute nothing")
	assert.Empty(t, Stacks{}.Tops())
}
