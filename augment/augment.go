// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package augment provides the public API for randomized structural
// augmentations over batches of one-hot-encoded biological sequences.
//
// The package exposes seven independent batch transforms — deletion,
// insertion, translocation, inversion, mutation, reverse-complement and
// Gaussian noise — plus a Pipeline that composes them in order. Every
// transform maps a (N, A, L) batch to a new batch of the identical shape.
//
// Example:
//
//	del, _ := augment.NewRandomDeletion(0, 30)
//	rc, _ := augment.NewRandomRC(0.5)
//	p, _ := augment.NewPipeline([]augment.Augment{del, rc},
//		augment.WithSeed(42))
//	out, err := p.Apply(batch) // same (N, A, L) shape as batch
package augment

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/born-ml/seqaug/internal/augment"
	"github.com/born-ml/seqaug/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a batch: {N, A, L}.
type Shape = tensor.Shape

// Batch is a rank-3 float32 array of one-hot sequences, shape (N, A, L).
type Batch = tensor.Batch

// Augment is a single randomized batch transform.
type Augment = augment.Augment

// Pipeline applies an ordered list of augmentations sequentially.
type Pipeline = augment.Pipeline

// PipelineOption customizes a Pipeline at construction.
type PipelineOption = augment.PipelineOption

// Config is a declarative pipeline specification, loadable from YAML.
type Config = augment.Config

// StepConfig describes one augmentation in a Config.
type StepConfig = augment.StepConfig

// The seven augmentation primitives.
type (
	// RandomDeletion deletes a random stretch and pads with random sequence.
	RandomDeletion = augment.RandomDeletion
	// RandomInsertion splices a random stretch in, padding from the same fragment.
	RandomInsertion = augment.RandomInsertion
	// RandomTranslocation circularly shifts each sequence by a signed random amount.
	RandomTranslocation = augment.RandomTranslocation
	// RandomInversion reverse-complements a random window within each sequence.
	RandomInversion = augment.RandomInversion
	// RandomMutation substitutes random symbols at a random subset of positions.
	RandomMutation = augment.RandomMutation
	// RandomRC reverse-complements whole sequences with a per-example probability.
	RandomRC = augment.RandomRC
	// RandomNoise adds elementwise Gaussian noise.
	RandomNoise = augment.RandomNoise
)

// Error sentinels.
var (
	// ErrConfig reports invalid bounds or parameters.
	ErrConfig = augment.ErrConfig
	// ErrShape reports a batch shape mismatch inside a pipeline call.
	ErrShape = augment.ErrShape
)

// Batch construction

// NewBatch creates a zero-filled batch of shape (n, a, l).
func NewBatch(n, a, l int) (*Batch, error) {
	return tensor.NewBatch(n, a, l)
}

// FromSlice creates a batch from row-major data with the given shape.
//
// Example:
//
//	data := make([]float32, 8*4*200)
//	x, err := augment.FromSlice(data, augment.Shape{8, 4, 200})
func FromSlice(data []float32, shape Shape) (*Batch, error) {
	return tensor.FromSlice(data, shape)
}

// Randomness

// NewRNG returns a generator for augmentation draws.
// A non-negative seed gives reproducible output; pass -1 for a random seed.
func NewRNG(seed int64) *rand.Rand {
	return augment.NewRNG(seed)
}

// RandomOneHot draws n independent uniform one-hot fragments of the given
// length over an alphabet of size a, shape (n, a, length).
func RandomOneHot(rng *rand.Rand, n, a, length int) (*Batch, error) {
	return augment.RandomOneHot(rng, n, a, length)
}

// Primitive constructors

// NewRandomDeletion creates a deletion augmentation with length bounds
// [deleteMin, deleteMax].
func NewRandomDeletion(deleteMin, deleteMax int) (*RandomDeletion, error) {
	return augment.NewRandomDeletion(deleteMin, deleteMax)
}

// NewRandomInsertion creates an insertion augmentation with length bounds
// [insertMin, insertMax].
func NewRandomInsertion(insertMin, insertMax int) (*RandomInsertion, error) {
	return augment.NewRandomInsertion(insertMin, insertMax)
}

// NewRandomTranslocation creates a circular-shift augmentation with shift
// bounds [shiftMin, shiftMax].
func NewRandomTranslocation(shiftMin, shiftMax int) (*RandomTranslocation, error) {
	return augment.NewRandomTranslocation(shiftMin, shiftMax)
}

// NewRandomInversion creates an inversion augmentation with window bounds
// [invertMin, invertMax].
func NewRandomInversion(invertMin, invertMax int) (*RandomInversion, error) {
	return augment.NewRandomInversion(invertMin, invertMax)
}

// NewRandomMutation creates a mutation augmentation targeting a changed
// fraction of mutateFrac positions per sequence.
func NewRandomMutation(mutateFrac float64) (*RandomMutation, error) {
	return augment.NewRandomMutation(mutateFrac)
}

// NewRandomRC creates a whole-sequence reverse-complement augmentation
// applied per example with probability rcProb.
func NewRandomRC(rcProb float64) (*RandomRC, error) {
	return augment.NewRandomRC(rcProb)
}

// NewRandomNoise creates an additive Gaussian noise augmentation.
func NewRandomNoise(noiseMean, noiseStd float64) (*RandomNoise, error) {
	return augment.NewRandomNoise(noiseMean, noiseStd)
}

// Pipeline construction

// NewPipeline creates a pipeline over the given steps, applied in order.
func NewPipeline(steps []Augment, opts ...PipelineOption) (*Pipeline, error) {
	return augment.NewPipeline(steps, opts...)
}

// WithLogger attaches a structured logger to a pipeline.
func WithLogger(log *zap.Logger) PipelineOption {
	return augment.WithLogger(log)
}

// WithRand injects the pipeline's random number generator.
func WithRand(rng *rand.Rand) PipelineOption {
	return augment.WithRand(rng)
}

// WithSeed seeds the pipeline's generator; -1 picks a random seed.
func WithSeed(seed int64) PipelineOption {
	return augment.WithSeed(seed)
}

// WithMaxAugsPerCall limits each call to at most k randomly chosen steps.
func WithMaxAugsPerCall(k int) PipelineOption {
	return augment.WithMaxAugsPerCall(k)
}

// DefaultConfig returns the full seven-step pipeline specification with
// conventional defaults.
func DefaultConfig() Config {
	return augment.DefaultConfig()
}

// ParseConfig decodes a YAML pipeline specification.
func ParseConfig(data []byte) (Config, error) {
	return augment.ParseConfig(data)
}
