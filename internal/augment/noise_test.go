package augment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandomNoise_NegativeStd(t *testing.T) {
	_, err := NewRandomNoise(0, -0.1)
	require.ErrorIs(t, err, ErrConfig)
}

func TestRandomNoise_ShapeInvariance(t *testing.T) {
	x := randomBatch(t, 8, 4, 200)
	ns, err := NewRandomNoise(0, 0.2)
	require.NoError(t, err)

	out, err := ns.Apply(NewRNG(1), x)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(x.Shape()))
}

func TestRandomNoise_ZeroStdZeroMeanIsIdentity(t *testing.T) {
	x := randomBatch(t, 4, 4, 30)
	ns, _ := NewRandomNoise(0, 0)

	out, err := ns.Apply(NewRNG(1), x)
	require.NoError(t, err)
	assert.True(t, out.Equal(x))
}

func TestRandomNoise_Statistics(t *testing.T) {
	// Over a large batch the sample mean and standard deviation of
	// (output - input) should approximate the configured parameters.
	const (
		mean = 0.0
		std  = 0.2
	)
	x := randomBatch(t, 16, 4, 500) // 32000 samples
	ns, _ := NewRandomNoise(mean, std)

	out, err := ns.Apply(NewRNG(1), x)
	require.NoError(t, err)

	deltas := make([]float64, len(x.Data()))
	var sum float64
	for i := range deltas {
		d := float64(out.Data()[i] - x.Data()[i])
		deltas[i] = d
		sum += d
	}
	sampleMean := sum / float64(len(deltas))

	var sq float64
	for _, d := range deltas {
		sq += (d - sampleMean) * (d - sampleMean)
	}
	sampleStd := math.Sqrt(sq / float64(len(deltas)-1))

	assert.InDelta(t, mean, sampleMean, 0.01, "sample mean drifted")
	assert.InDelta(t, std, sampleStd, 0.01, "sample std drifted")
}

func TestRandomNoise_MeanShift(t *testing.T) {
	x := randomBatch(t, 8, 4, 250)
	ns, _ := NewRandomNoise(0.5, 0.1)

	out, err := ns.Apply(NewRNG(1), x)
	require.NoError(t, err)

	var sum float64
	for i := range x.Data() {
		sum += float64(out.Data()[i] - x.Data()[i])
	}
	assert.InDelta(t, 0.5, sum/float64(len(x.Data())), 0.01)
}
