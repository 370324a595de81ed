package augment

import (
	"math/rand"

	"github.com/born-ml/seqaug/internal/tensor"
)

// RandomInsertion splices a contiguous stretch of random one-hot sequence
// into each example. One fragment of length insertMax is drawn per example
// and partitioned into three slices: front padding, the inserted stretch,
// and back padding. Every example therefore gains exactly insertMax
// synthetic positions, and the trailing insertMax positions of the
// original sequence are trimmed, so the output keeps shape (N, A, L).
//
// The insertion length is uniform over [insertMin, insertMax] and the
// insertion index uniform over [0, L-insertMax], inclusive of both ends
// of the retained sequence. The padding split is floor division of the
// unused fragment length.
type RandomInsertion struct {
	insertMin int
	insertMax int
}

// NewRandomInsertion creates an insertion augmentation with the given
// length bounds. Returns ErrConfig if min > max or either bound is negative.
func NewRandomInsertion(insertMin, insertMax int) (*RandomInsertion, error) {
	if err := checkBounds("insertion", insertMin, insertMax); err != nil {
		return nil, err
	}
	return &RandomInsertion{insertMin: insertMin, insertMax: insertMax}, nil
}

// Name returns "insert".
func (in *RandomInsertion) Name() string { return "insert" }

// Apply inserts a random stretch into every example, reusing the same
// fragment for compensating padding. Returns ErrConfig if insertMax
// exceeds L.
func (in *RandomInsertion) Apply(rng *rand.Rand, x *tensor.Batch) (*tensor.Batch, error) {
	n, a, l := x.N(), x.A(), x.L()
	if err := checkWindow("insertion", in.insertMax, l); err != nil {
		return nil, err
	}
	if in.insertMax == 0 {
		return x.Clone(), nil
	}

	frag, err := RandomOneHot(rng, n, a, in.insertMax)
	if err != nil {
		return nil, err
	}
	out, err := tensor.NewBatch(n, a, l)
	if err != nil {
		return nil, err
	}

	kept := l - in.insertMax // retained sequence length per example
	for i := 0; i < n; i++ {
		insertLen := randRange(rng, in.insertMin, in.insertMax)
		insertInd := rng.Intn(kept + 1)
		frontPad := (in.insertMax - insertLen) / 2

		for row := 0; row < a; row++ {
			src := x.Row(i, row)
			fr := frag.Row(i, row)
			dst := out.Row(i, row)

			p := copy(dst, fr[:frontPad])
			p += copy(dst[p:], src[:insertInd])
			p += copy(dst[p:], fr[frontPad:frontPad+insertLen])
			p += copy(dst[p:], src[insertInd:kept])
			copy(dst[p:], fr[frontPad+insertLen:])
		}
	}
	return out, nil
}
