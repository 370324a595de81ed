package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandomInversion_InvalidBounds(t *testing.T) {
	_, err := NewRandomInversion(8, 3)
	require.ErrorIs(t, err, ErrConfig)

	_, err = NewRandomInversion(-1, 3)
	require.ErrorIs(t, err, ErrConfig)
}

func TestRandomInversion_ShapeInvariance(t *testing.T) {
	x := randomBatch(t, 8, 4, 200)
	iv, err := NewRandomInversion(0, 30)
	require.NoError(t, err)

	out, err := iv.Apply(NewRNG(1), x)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(x.Shape()))
	assertOneHot(t, out)
}

func TestRandomInversion_ZeroBounds(t *testing.T) {
	x := randomBatch(t, 4, 4, 30)
	iv, _ := NewRandomInversion(0, 0)

	out, err := iv.Apply(NewRNG(1), x)
	require.NoError(t, err)
	assert.True(t, out.Equal(x), "zero-width inversion must be an identity")
}

func TestRandomInversion_FullWindowIsReverseComplement(t *testing.T) {
	// With the window pinned to the whole sequence, inversion equals the
	// full reverse-complement: both axes flipped.
	x := randomBatch(t, 3, 4, 12)
	iv, _ := NewRandomInversion(12, 12)

	out, err := iv.Apply(NewRNG(1), x)
	require.NoError(t, err)

	n, a, l := x.N(), x.A(), x.L()
	for i := 0; i < n; i++ {
		for row := 0; row < a; row++ {
			for j := 0; j < l; j++ {
				require.Equal(t, x.At(i, a-1-row, l-1-j), out.At(i, row, j),
					"example %d (%d, %d) not reverse-complemented", i, row, j)
			}
		}
	}
}

func TestRandomInversion_OutsideWindowUntouched(t *testing.T) {
	// Replay the draws to locate each window, then check positions
	// outside it are identical and positions inside are the
	// reverse-complement of the window.
	const (
		seed         = 5
		n, a, l      = 4, 4, 60
		ivMin, ivMax = 6, 14
	)
	x := randomBatch(t, n, a, l)
	iv, _ := NewRandomInversion(ivMin, ivMax)

	out, err := iv.Apply(NewRNG(seed), x)
	require.NoError(t, err)

	replay := NewRNG(seed)
	for i := 0; i < n; i++ {
		invertLen := randRange(replay, ivMin, ivMax)
		invertInd := replay.Intn(l - ivMax + 1)

		for row := 0; row < a; row++ {
			for j := 0; j < l; j++ {
				inside := j >= invertInd && j < invertInd+invertLen
				if inside {
					src := x.At(i, a-1-row, invertInd+invertLen-1-(j-invertInd))
					require.Equal(t, src, out.At(i, row, j),
						"example %d (%d, %d): window not reverse-complemented", i, row, j)
				} else {
					require.Equal(t, x.At(i, row, j), out.At(i, row, j),
						"example %d (%d, %d): outside window changed", i, row, j)
				}
			}
		}
	}
}

func TestRandomInversion_MaxExceedsLength(t *testing.T) {
	x := randomBatch(t, 2, 4, 10)
	iv, _ := NewRandomInversion(0, 11)

	_, err := iv.Apply(NewRNG(1), x)
	require.ErrorIs(t, err, ErrConfig)
}
