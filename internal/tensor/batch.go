package tensor

import "fmt"

// Batch is a rank-3 float32 tensor of one-hot-encoded sequences with
// shape (N, A, L): N sequences over an alphabet of size A, each of
// length L. Data is stored contiguously in row-major order, so each
// example occupies an A*L block and each alphabet row within an example
// is a contiguous length-L run.
//
// Batch is the unit of work for all augmentations: every transform
// consumes a Batch and produces a new Batch of identical shape.
type Batch struct {
	data   []float32
	shape  Shape // always {N, A, L}
	stride []int
}

// NewBatch creates a zero-filled batch of shape (n, a, l).
func NewBatch(n, a, l int) (*Batch, error) {
	shape := Shape{n, a, l}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid batch shape: %w", err)
	}
	return &Batch{
		data:   make([]float32, shape.NumElements()),
		shape:  shape,
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a batch backed by a copy of data, interpreted in
// row-major order with the given shape. The shape must be rank 3 and
// its element count must match len(data).
func FromSlice(data []float32, shape Shape) (*Batch, error) {
	if len(shape) != 3 {
		return nil, fmt.Errorf("batch shape must be rank 3 (N, A, L), got rank %d", len(shape))
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid batch shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	b := &Batch{
		data:   make([]float32, len(data)),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}
	copy(b.data, data)
	return b, nil
}

// Shape returns the batch's shape {N, A, L}.
func (b *Batch) Shape() Shape {
	return b.shape
}

// N returns the number of examples in the batch.
func (b *Batch) N() int { return b.shape[0] }

// A returns the alphabet size.
func (b *Batch) A() int { return b.shape[1] }

// L returns the sequence length.
func (b *Batch) L() int { return b.shape[2] }

// Data returns the raw backing slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (b *Batch) Data() []float32 {
	return b.data
}

// At returns the element at (n, a, l).
// Panics if any index is out of range.
func (b *Batch) At(n, a, l int) float32 {
	return b.data[b.index(n, a, l)]
}

// Set writes the element at (n, a, l).
// Panics if any index is out of range.
func (b *Batch) Set(n, a, l int, v float32) {
	b.data[b.index(n, a, l)] = v
}

// Example returns the contiguous A*L block for example n as a view.
// Mutating the returned slice mutates the batch.
func (b *Batch) Example(n int) []float32 {
	if n < 0 || n >= b.shape[0] {
		panic(fmt.Sprintf("batch: example index %d out of range [0, %d)", n, b.shape[0]))
	}
	start := n * b.stride[0]
	return b.data[start : start+b.stride[0]]
}

// Row returns the contiguous length-L run for example n, alphabet row a,
// as a view. Mutating the returned slice mutates the batch.
func (b *Batch) Row(n, a int) []float32 {
	if n < 0 || n >= b.shape[0] {
		panic(fmt.Sprintf("batch: example index %d out of range [0, %d)", n, b.shape[0]))
	}
	if a < 0 || a >= b.shape[1] {
		panic(fmt.Sprintf("batch: alphabet index %d out of range [0, %d)", a, b.shape[1]))
	}
	start := n*b.stride[0] + a*b.stride[1]
	return b.data[start : start+b.shape[2]]
}

// Clone returns a deep copy of the batch.
//
// Augmentations follow a copy-then-edit discipline: the input batch is
// never mutated, so Clone is a full copy rather than a shared view.
func (b *Batch) Clone() *Batch {
	c := &Batch{
		data:   make([]float32, len(b.data)),
		shape:  b.shape.Clone(),
		stride: append([]int(nil), b.stride...),
	}
	copy(c.data, b.data)
	return c
}

// Equal reports whether two batches have identical shape and contents.
func (b *Batch) Equal(other *Batch) bool {
	if !b.shape.Equal(other.shape) {
		return false
	}
	for i := range b.data {
		if b.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

func (b *Batch) index(n, a, l int) int {
	if n < 0 || n >= b.shape[0] || a < 0 || a >= b.shape[1] || l < 0 || l >= b.shape[2] {
		panic(fmt.Sprintf("batch: index (%d, %d, %d) out of range for shape %v", n, a, l, b.shape))
	}
	return n*b.stride[0] + a*b.stride[1] + l
}
