package augment

import (
	"math/rand"

	"github.com/born-ml/seqaug/internal/tensor"
)

// RandomInversion reverse-complements a contiguous window within each
// sequence: position order inside the window is reversed and the alphabet
// axis is flipped (first symbol swaps with last). The window length is
// uniform over [invertMin, invertMax] and the start index uniform over
// [0, L-invertMax], bounded by the maximum so the window stays in range
// for every draw. Length is invariant; no padding is needed.
//
// The alphabet flip is a literal axis reversal, not a parameterized
// complement map: for an A-C-G-T ordering it exchanges A with T and C
// with G, matching DNA complement pairing.
type RandomInversion struct {
	invertMin int
	invertMax int
}

// NewRandomInversion creates an inversion augmentation with the given
// window bounds. Returns ErrConfig if min > max or either bound is
// negative.
func NewRandomInversion(invertMin, invertMax int) (*RandomInversion, error) {
	if err := checkBounds("inversion", invertMin, invertMax); err != nil {
		return nil, err
	}
	return &RandomInversion{invertMin: invertMin, invertMax: invertMax}, nil
}

// Name returns "invert".
func (iv *RandomInversion) Name() string { return "invert" }

// Apply reverse-complements a random window in every example. Returns
// ErrConfig if invertMax exceeds L.
func (iv *RandomInversion) Apply(rng *rand.Rand, x *tensor.Batch) (*tensor.Batch, error) {
	n, a, l := x.N(), x.A(), x.L()
	if err := checkWindow("inversion", iv.invertMax, l); err != nil {
		return nil, err
	}

	out := x.Clone()
	for i := 0; i < n; i++ {
		invertLen := randRange(rng, iv.invertMin, iv.invertMax)
		invertInd := rng.Intn(l - iv.invertMax + 1)

		for row := 0; row < a; row++ {
			src := x.Row(i, a-1-row)
			dst := out.Row(i, row)
			for j := 0; j < invertLen; j++ {
				dst[invertInd+j] = src[invertInd+invertLen-1-j]
			}
		}
	}
	return out, nil
}
