package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandomInsertion_InvalidBounds(t *testing.T) {
	_, err := NewRandomInsertion(20, 10)
	require.ErrorIs(t, err, ErrConfig)

	_, err = NewRandomInsertion(0, -3)
	require.ErrorIs(t, err, ErrConfig)
}

func TestRandomInsertion_ShapeInvariance(t *testing.T) {
	x := randomBatch(t, 8, 4, 200)
	ins, err := NewRandomInsertion(0, 20)
	require.NoError(t, err)

	out, err := ins.Apply(NewRNG(1), x)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(x.Shape()), "shape changed: %v", out.Shape())
	assertOneHot(t, out)
}

func TestRandomInsertion_ZeroBounds(t *testing.T) {
	x := randomBatch(t, 4, 4, 30)
	ins, _ := NewRandomInsertion(0, 0)

	out, err := ins.Apply(NewRNG(1), x)
	require.NoError(t, err)
	assert.True(t, out.Equal(x), "zero-bound insertion must be an identity")
}

func TestRandomInsertion_MaxEqualsLength(t *testing.T) {
	// Extreme case: every output position comes from the fragment.
	x := randomBatch(t, 3, 4, 16)
	ins, _ := NewRandomInsertion(16, 16)

	out, err := ins.Apply(NewRNG(1), x)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(x.Shape()))
	assertOneHot(t, out)
}

func TestRandomInsertion_MaxExceedsLength(t *testing.T) {
	x := randomBatch(t, 2, 4, 10)
	ins, _ := NewRandomInsertion(0, 11)

	_, err := ins.Apply(NewRNG(1), x)
	require.ErrorIs(t, err, ErrConfig)
}

func TestRandomInsertion_InputNotMutated(t *testing.T) {
	x := randomBatch(t, 4, 4, 50)
	before := x.Clone()

	ins, _ := NewRandomInsertion(5, 10)
	_, err := ins.Apply(NewRNG(1), x)
	require.NoError(t, err)
	assert.True(t, x.Equal(before), "input batch was mutated")
}

func TestRandomInsertion_SingleFragmentFeedsInsertAndPadding(t *testing.T) {
	// Replay the draw order and verify the three fragment slices
	// (front pad, inserted stretch, back pad) all come from the one
	// fragment drawn per example.
	const (
		seed       = 11
		n, a, l    = 2, 4, 30
		iMin, iMax = 3, 9
	)
	x := randomBatch(t, n, a, l)
	ins, _ := NewRandomInsertion(iMin, iMax)

	out, err := ins.Apply(NewRNG(seed), x)
	require.NoError(t, err)

	replay := NewRNG(seed)
	frag, err := RandomOneHot(replay, n, a, iMax)
	require.NoError(t, err)

	kept := l - iMax
	for i := 0; i < n; i++ {
		insertLen := randRange(replay, iMin, iMax)
		insertInd := replay.Intn(kept + 1)
		frontPad := (iMax - insertLen) / 2

		for row := 0; row < a; row++ {
			expected := make([]float32, 0, l)
			expected = append(expected, frag.Row(i, row)[:frontPad]...)
			expected = append(expected, x.Row(i, row)[:insertInd]...)
			expected = append(expected, frag.Row(i, row)[frontPad:frontPad+insertLen]...)
			expected = append(expected, x.Row(i, row)[insertInd:kept]...)
			expected = append(expected, frag.Row(i, row)[frontPad+insertLen:]...)
			require.Equal(t, expected, append([]float32(nil), out.Row(i, row)...),
				"example %d row %d layout mismatch", i, row)
		}
	}
}
