package augment

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/seqaug/internal/tensor"
)

// RandomNoise adds independent Gaussian noise with the configured mean
// and standard deviation to every entry of the batch. No structural
// change is made, but the one-hot property is deliberately destroyed, so
// this augmentation is typically applied last in a pipeline.
type RandomNoise struct {
	noiseMean float64
	noiseStd  float64
}

// NewRandomNoise creates a noise augmentation. Returns ErrConfig if
// noiseStd is negative.
func NewRandomNoise(noiseMean, noiseStd float64) (*RandomNoise, error) {
	if noiseStd < 0 {
		return nil, fmt.Errorf("%w: noise std must be non-negative, got %g", ErrConfig, noiseStd)
	}
	return &RandomNoise{noiseMean: noiseMean, noiseStd: noiseStd}, nil
}

// Name returns "noise".
func (ns *RandomNoise) Name() string { return "noise" }

// Apply adds elementwise Gaussian noise to the whole batch.
func (ns *RandomNoise) Apply(rng *rand.Rand, x *tensor.Batch) (*tensor.Batch, error) {
	out := x.Clone()
	data := out.Data()
	for i := range data {
		data[i] += float32(rng.NormFloat64()*ns.noiseStd + ns.noiseMean)
	}
	return out, nil
}
