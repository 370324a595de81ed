package augment

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/seqaug/internal/tensor"
)

// Pipeline applies an ordered list of augmentations sequentially to a
// batch. It is a pure fold: no state is carried between calls beyond the
// random number generator, and the shape established by the input batch
// is enforced after every step.
//
// A Pipeline owns its RNG and is not safe for concurrent use by multiple
// goroutines; use ApplyMany to augment several batches in parallel, each
// under an independently seeded generator.
//
// Example:
//
//	del, _ := augment.NewRandomDeletion(0, 30)
//	ns, _ := augment.NewRandomNoise(0, 0.2)
//	p, _ := augment.NewPipeline([]augment.Augment{del, ns},
//		augment.WithSeed(42))
//	out, err := p.Apply(batch)
type Pipeline struct {
	steps   []Augment
	rng     *rand.Rand
	log     *zap.Logger
	id      string
	maxAugs int // max augmentations applied per call; 0 = all
}

// PipelineOption customizes a Pipeline at construction.
type PipelineOption func(*Pipeline)

// WithLogger attaches a structured logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) PipelineOption {
	return func(p *Pipeline) { p.log = log }
}

// WithRand injects the random number generator used for every draw.
// Overrides WithSeed.
func WithRand(rng *rand.Rand) PipelineOption {
	return func(p *Pipeline) { p.rng = rng }
}

// WithSeed seeds the pipeline's generator for reproducible output.
// Pass -1 (the default) for a random seed.
func WithSeed(seed int64) PipelineOption {
	return func(p *Pipeline) { p.rng = NewRNG(seed) }
}

// WithMaxAugsPerCall limits each Apply to at most k of the configured
// steps, chosen at random per call with their relative order preserved.
// Zero (the default) applies every step.
func WithMaxAugsPerCall(k int) PipelineOption {
	return func(p *Pipeline) { p.maxAugs = k }
}

// NewPipeline creates a pipeline over the given steps, applied in order.
// Returns ErrConfig if a negative step limit is configured.
func NewPipeline(steps []Augment, opts ...PipelineOption) (*Pipeline, error) {
	p := &Pipeline{
		steps: append([]Augment(nil), steps...),
		rng:   NewRNG(-1),
		log:   zap.NewNop(),
		id:    uuid.NewString(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.maxAugs < 0 {
		return nil, fmt.Errorf("%w: max augmentations per call must be non-negative, got %d", ErrConfig, p.maxAugs)
	}

	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	p.log.Info("augmentation pipeline constructed",
		zap.String("pipeline", p.id),
		zap.Strings("steps", names),
		zap.Int("max_augs_per_call", p.maxAugs),
	)
	return p, nil
}

// Steps returns the configured augmentations in application order.
func (p *Pipeline) Steps() []Augment {
	return append([]Augment(nil), p.steps...)
}

// Apply runs the batch through the pipeline and returns a new batch of
// the same shape. The input is never mutated; an empty pipeline returns
// a copy. Any step output deviating from the input shape surfaces as
// ErrShape.
func (p *Pipeline) Apply(x *tensor.Batch) (*tensor.Batch, error) {
	return p.apply(p.rng, x)
}

func (p *Pipeline) apply(rng *rand.Rand, x *tensor.Batch) (*tensor.Batch, error) {
	shape := x.Shape()
	out := x
	for _, s := range p.selectSteps(rng) {
		start := time.Now()
		y, err := s.Apply(rng, out)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		if !y.Shape().Equal(shape) {
			return nil, fmt.Errorf("%w: step %s produced shape %v, want %v", ErrShape, s.Name(), y.Shape(), shape)
		}
		p.log.Debug("augmentation applied",
			zap.String("pipeline", p.id),
			zap.String("op", s.Name()),
			zap.Duration("took", time.Since(start)),
		)
		out = y
	}
	if out == x {
		// No step ran; keep the contract that the result is a fresh batch.
		return x.Clone(), nil
	}
	return out, nil
}

// selectSteps returns the steps to run for one call: all of them, or a
// random subset of maxAugs with configured order preserved.
func (p *Pipeline) selectSteps(rng *rand.Rand) []Augment {
	if p.maxAugs == 0 || p.maxAugs >= len(p.steps) {
		return p.steps
	}
	picked := rng.Perm(len(p.steps))[:p.maxAugs]
	sort.Ints(picked)
	steps := make([]Augment, len(picked))
	for i, idx := range picked {
		steps[i] = p.steps[idx]
	}
	return steps
}

// ApplyMany augments several batches concurrently, one goroutine per
// batch up to GOMAXPROCS. Each batch runs under its own generator seeded
// from the pipeline's RNG before launch, so per-batch randomness stays
// independent and race-free. The first error cancels the remaining work.
func (p *Pipeline) ApplyMany(ctx context.Context, xs []*tensor.Batch) ([]*tensor.Batch, error) {
	out := make([]*tensor.Batch, len(xs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, x := range xs {
		i, x := i, x
		seed := p.rng.Int63() // drawn sequentially, before the goroutine starts
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			y, err := p.apply(NewRNG(seed), x)
			if err != nil {
				return fmt.Errorf("batch %d: %w", i, err)
			}
			out[i] = y
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
