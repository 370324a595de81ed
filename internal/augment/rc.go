package augment

import (
	"math/rand"

	"github.com/born-ml/seqaug/internal/tensor"
)

// RandomRC reverse-complements whole sequences: for each example
// independently, with probability rcProb both the alphabet axis and the
// length axis are reversed; otherwise the example passes through
// unchanged. Unlike RandomInversion this is all-or-nothing per example,
// modeling the opposite DNA strand read in reverse.
type RandomRC struct {
	rcProb float64
}

// NewRandomRC creates a reverse-complement augmentation. Returns
// ErrConfig if rcProb is outside [0, 1].
func NewRandomRC(rcProb float64) (*RandomRC, error) {
	if err := checkProb("reverse-complement", "rc_prob", rcProb); err != nil {
		return nil, err
	}
	return &RandomRC{rcProb: rcProb}, nil
}

// Name returns "rc".
func (rc *RandomRC) Name() string { return "rc" }

// Apply reverse-complements each selected example in full.
func (rc *RandomRC) Apply(rng *rand.Rand, x *tensor.Batch) (*tensor.Batch, error) {
	n, a, l := x.N(), x.A(), x.L()

	out := x.Clone()
	for i := 0; i < n; i++ {
		if rng.Float64() >= rc.rcProb {
			continue
		}
		for row := 0; row < a; row++ {
			src := x.Row(i, a-1-row)
			dst := out.Row(i, row)
			for j := 0; j < l; j++ {
				dst[j] = src[l-1-j]
			}
		}
	}
	return out, nil
}
