package augment

import (
	"math/rand"

	"github.com/born-ml/seqaug/internal/tensor"
)

// RandomTranslocation applies an independent circular shift to each
// sequence in a batch: the sequence is cut at a random point and the two
// pieces swap order. The shift magnitude is uniform over
// [shiftMin, shiftMax] and its sign flips with probability 0.5; a
// positive shift rotates toward higher indices. Length is invariant
// under rotation, so no padding is needed.
type RandomTranslocation struct {
	shiftMin int
	shiftMax int
}

// NewRandomTranslocation creates a translocation augmentation with the
// given shift bounds. Returns ErrConfig if min > max or either bound is
// negative.
func NewRandomTranslocation(shiftMin, shiftMax int) (*RandomTranslocation, error) {
	if err := checkBounds("translocation", shiftMin, shiftMax); err != nil {
		return nil, err
	}
	return &RandomTranslocation{shiftMin: shiftMin, shiftMax: shiftMax}, nil
}

// Name returns "translocate".
func (tr *RandomTranslocation) Name() string { return "translocate" }

// Apply rolls every example along the length axis by its own signed
// random shift.
func (tr *RandomTranslocation) Apply(rng *rand.Rand, x *tensor.Batch) (*tensor.Batch, error) {
	n, a, l := x.N(), x.A(), x.L()
	out, err := tensor.NewBatch(n, a, l)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		shift := randRange(rng, tr.shiftMin, tr.shiftMax)
		if rng.Float64() < 0.5 {
			shift = -shift
		}
		// Normalize so the source index below is always in range.
		shift = ((shift % l) + l) % l

		for row := 0; row < a; row++ {
			src := x.Row(i, row)
			dst := out.Row(i, row)
			for j := 0; j < l; j++ {
				dst[(j+shift)%l] = src[j]
			}
		}
	}
	return out, nil
}
