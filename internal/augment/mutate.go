package augment

import (
	"math"
	"math/rand"

	"github.com/born-ml/seqaug/internal/tensor"
)

// RandomMutation overwrites a random subset of positions in each sequence
// with freshly drawn one-hot symbols. mutateFrac is the target fraction of
// positions with a changed symbol; since a uniform draw over a 4-letter
// alphabet lands on the original symbol 1 time in 4, the number of
// positions actually sampled is round(mutateFrac / 0.75 * L), so the
// expected fraction of changed positions approximates mutateFrac.
//
// Positions are selected without replacement, independently per example.
type RandomMutation struct {
	mutateFrac float64
}

// NewRandomMutation creates a mutation augmentation. Returns ErrConfig
// if mutateFrac is outside [0, 1].
func NewRandomMutation(mutateFrac float64) (*RandomMutation, error) {
	if err := checkProb("mutation", "mutate_frac", mutateFrac); err != nil {
		return nil, err
	}
	return &RandomMutation{mutateFrac: mutateFrac}, nil
}

// Name returns "mutate".
func (m *RandomMutation) Name() string { return "mutate" }

// NumMutations returns the number of positions sampled for substitution
// in a sequence of length l.
func (m *RandomMutation) NumMutations(l int) int {
	k := int(math.Round(m.mutateFrac / 0.75 * float64(l)))
	if k > l {
		k = l // cannot sample more distinct positions than the sequence has
	}
	return k
}

// Apply substitutes random one-hot symbols at a without-replacement
// random subset of positions in every example. A substitution may draw
// the original symbol again; the 0.75 compensation in NumMutations
// accounts for that.
func (m *RandomMutation) Apply(rng *rand.Rand, x *tensor.Batch) (*tensor.Batch, error) {
	n, a, l := x.N(), x.A(), x.L()
	k := m.NumMutations(l)

	out := x.Clone()
	if k == 0 {
		return out, nil
	}

	for i := 0; i < n; i++ {
		for _, pos := range rng.Perm(l)[:k] {
			for row := 0; row < a; row++ {
				out.Set(i, row, pos, 0)
			}
			out.Set(i, rng.Intn(a), pos, 1)
		}
	}
	return out, nil
}
