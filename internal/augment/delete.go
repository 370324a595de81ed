package augment

import (
	"math/rand"

	"github.com/born-ml/seqaug/internal/tensor"
)

// RandomDeletion removes a contiguous stretch from each sequence in a batch
// and pads both ends with random one-hot sequence so the output keeps shape
// (N, A, L). A different deletion length and position is drawn per example.
//
// The deletion length is uniform over [deleteMin, deleteMax] and the start
// index uniform over [0, L-deleteMax]: bounding by the maximum rather than
// the realized length keeps the deleted interval in range for every draw.
// The removed symbols are compensated by floor(len/2) random positions at
// the front and the remainder at the back.
//
// Example:
//
//	del, err := augment.NewRandomDeletion(0, 30)
//	out, err := del.Apply(rng, batch) // same shape as batch
type RandomDeletion struct {
	deleteMin int
	deleteMax int
}

// NewRandomDeletion creates a deletion augmentation with the given length
// bounds. Returns ErrConfig if min > max or either bound is negative.
func NewRandomDeletion(deleteMin, deleteMax int) (*RandomDeletion, error) {
	if err := checkBounds("deletion", deleteMin, deleteMax); err != nil {
		return nil, err
	}
	return &RandomDeletion{deleteMin: deleteMin, deleteMax: deleteMax}, nil
}

// Name returns "delete".
func (d *RandomDeletion) Name() string { return "delete" }

// Apply deletes a random stretch from every example and restores length L
// with random padding. Returns ErrConfig if deleteMax exceeds L.
func (d *RandomDeletion) Apply(rng *rand.Rand, x *tensor.Batch) (*tensor.Batch, error) {
	n, a, l := x.N(), x.A(), x.L()
	if err := checkWindow("deletion", d.deleteMax, l); err != nil {
		return nil, err
	}
	if d.deleteMax == 0 {
		// Every realized deletion has zero length; nothing to remove or pad.
		return x.Clone(), nil
	}

	pad, err := RandomOneHot(rng, n, a, d.deleteMax)
	if err != nil {
		return nil, err
	}
	out, err := tensor.NewBatch(n, a, l)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		deleteLen := randRange(rng, d.deleteMin, d.deleteMax)
		deleteInd := rng.Intn(l - d.deleteMax + 1)
		padBegin := deleteLen / 2
		padEnd := deleteLen - padBegin

		for row := 0; row < a; row++ {
			src := x.Row(i, row)
			pr := pad.Row(i, row)
			dst := out.Row(i, row)

			p := copy(dst, pr[:padBegin])
			p += copy(dst[p:], src[:deleteInd])
			p += copy(dst[p:], src[deleteInd+deleteLen:])
			copy(dst[p:], pr[d.deleteMax-padEnd:])
		}
	}
	return out, nil
}
