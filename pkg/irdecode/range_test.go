package irdecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRangeSet_ClassifiesWithinWindow(t *testing.T) {
	rs, err := NewRangeSet([]Tolerance{
		{NominalUS: 1000, PercentTol: 10},
		{NominalUS: 2000, PercentTol: 10},
	}, 1_000_000)
	require.NoError(t, err)

	sym, ok := rs.Classify(1000)
	require.True(t, ok)
	assert.Equal(t, SymbolID(0), sym)

	sym, ok = rs.Classify(2000)
	require.True(t, ok)
	assert.Equal(t, SymbolID(1), sym)

	_, ok = rs.Classify(1500)
	assert.False(t, ok)
}

func TestNewRangeSet_RejectsOverlappingWindows(t *testing.T) {
	_, err := NewRangeSet([]Tolerance{
		{NominalUS: 1000, PercentTol: 50},
		{NominalUS: 1200, PercentTol: 50},
	}, 1_000_000)
	assert.ErrorIs(t, err, ErrDegenerateRange)
}

func TestNewRangeSet_RejectsEmptyOrOversizedTable(t *testing.T) {
	_, err := NewRangeSet(nil, 1_000_000)
	assert.Error(t, err)

	tooMany := make([]Tolerance, 7)
	for i := range tooMany {
		tooMany[i] = Tolerance{NominalUS: uint32(1000 * (i + 1)), PercentTol: 1}
	}
	_, err = NewRangeSet(tooMany, 1_000_000)
	assert.Error(t, err)
}

func TestRangeSet_BoundsAreInclusive(t *testing.T) {
	rs, err := NewRangeSet([]Tolerance{{NominalUS: 1000, PercentTol: 10}}, 1_000_000)
	require.NoError(t, err)

	_, ok := rs.Classify(900)
	assert.True(t, ok)
	_, ok = rs.Classify(1100)
	assert.True(t, ok)
	_, ok = rs.Classify(899)
	assert.False(t, ok)
	_, ok = rs.Classify(1101)
	assert.False(t, ok)
}
