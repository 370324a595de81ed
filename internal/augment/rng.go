package augment

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/seqaug/internal/tensor"
)

// NewRNG returns a generator for augmentation draws.
// A non-negative seed gives reproducible output; pass -1 for a random seed.
// Note: Uses math/rand (not crypto/rand) - appropriate for data augmentation.
func NewRNG(seed int64) *rand.Rand {
	if seed >= 0 {
		return rand.New(rand.NewSource(seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
	}
	return rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // Caller requested random seed
}

// RandomOneHot draws n independent one-hot fragments of the given length
// over an alphabet of size a, each position sampled uniformly over the a
// symbols. The result has shape (n, a, length) and supplies padding and
// replacement material for the length-changing augmentations.
//
// A zero length is valid and yields a nil batch: no padding material is
// needed. A negative length is the only failure mode.
func RandomOneHot(rng *rand.Rand, n, a, length int) (*tensor.Batch, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative fragment length %d", ErrConfig, length)
	}
	if length == 0 {
		return nil, nil
	}
	frag, err := tensor.NewBatch(n, a, length)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < length; j++ {
			frag.Set(i, rng.Intn(a), j, 1)
		}
	}
	return frag, nil
}
