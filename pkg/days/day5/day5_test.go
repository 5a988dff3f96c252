package day5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/aoc2022/pkg/crane"
	apperr "github.com/matzehuels/aoc2022/pkg/errors"
)

const sample = "    [D]    \n" +
	"[N] [C]    \n" +
	"[Z] [M] [P]\n" +
	" 1   2   3 \n" +
	"\n" +
	"move 1 from 2 to 1\n" +
	"move 3 from 1 to 3\n" +
	"move 2 from 2 to 1\n" +
	"move 1 from 1 to 2\n"

func TestParts(t *testing.T) {
	got, err := Day.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", got)

	got, err = Day.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, "MCD", got)
}

func TestPart1_ImpossibleMove(t *testing.T) {
	_, err := Day.Part1(sample + "move 9 from 1 to 2\n")
	require.Error(t, err)
	assert.True(t, apperr.IsMalformedState(err))
}

func TestNew_CustomLayout(t *testing.T) {
	l := crane.Layout{SlotWidth: 3, LabelOffset: 1, Open: '<', Close: '>'}
	d := New(l)
	input := "<A>   \n<B><C>\n 1  2 \n\nmove 2 from 1 to 2\n"

	got, err := d.Part1(input)
	require.NoError(t, err)
	assert.Equal(t, "B", got)

	got, err = d.Part2(input)
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}
