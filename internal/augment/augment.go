// Package augment implements randomized structural edits for batches of
// one-hot-encoded biological sequences: deletion, insertion, translocation,
// inversion, point mutation, reverse-complement, and additive noise.
//
// Every transform consumes a batch of shape (N, A, L) and returns a new
// batch of the identical shape. Edits that change sequence length (deletion,
// insertion) compensate with synthetic random sequence so the stacked output
// stays a single uniform array. Per-example edit parameters are drawn fresh
// on every call, independently across examples.
package augment

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/born-ml/seqaug/internal/tensor"
)

// Sentinel errors for the two failure classes. Both indicate programming
// or configuration mistakes; neither is transient or retryable.
var (
	// ErrConfig reports an invalid bound: min > max, a negative bound,
	// or a window bound exceeding the sequence length at first use.
	ErrConfig = errors.New("augment: invalid configuration")

	// ErrShape reports a batch whose shape does not match the shape
	// established earlier in the same pipeline call.
	ErrShape = errors.New("augment: shape mismatch")
)

// Augment is a single randomized batch transform.
//
// Apply consumes a batch of shape (N, A, L) and returns a new batch of the
// identical shape; the input is never mutated. The generator is passed in
// as a capability rather than read from hidden global state, so callers
// control reproducibility: inject a seeded *rand.Rand for deterministic
// tests, or use NewRNG(-1) for fresh randomness.
//
// Implementations draw per-example parameters independently, so two
// examples in the same batch receive different edits.
type Augment interface {
	// Name returns the short identifier used in pipeline logs and configs.
	Name() string

	// Apply transforms a batch using rng for all random draws.
	Apply(rng *rand.Rand, x *tensor.Batch) (*tensor.Batch, error)
}

// checkBounds validates a [min, max] integer bound pair at construction.
func checkBounds(op string, min, max int) error {
	if min < 0 || max < 0 {
		return fmt.Errorf("%w: %s bounds must be non-negative, got [%d, %d]", ErrConfig, op, min, max)
	}
	if min > max {
		return fmt.Errorf("%w: %s min %d exceeds max %d", ErrConfig, op, min, max)
	}
	return nil
}

// checkWindow validates a window bound against the sequence length.
// L is only known at call time, so this runs on first use rather than
// at construction.
func checkWindow(op string, max, l int) error {
	if max > l {
		return fmt.Errorf("%w: %s max %d exceeds sequence length %d", ErrConfig, op, max, l)
	}
	return nil
}

// checkProb validates a probability-like parameter.
func checkProb(op, name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: %s %s must be in [0, 1], got %g", ErrConfig, op, name, p)
	}
	return nil
}

// randRange draws an integer uniformly from [min, max], inclusive.
func randRange(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}
