package augment

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StepConfig describes one augmentation in a declarative pipeline spec.
// Only the fields relevant to the op are read: min/max for delete,
// insert, translocate and invert; frac for mutate; prob for rc; mean and
// std for noise.
type StepConfig struct {
	Op   string  `yaml:"op"`
	Min  int     `yaml:"min,omitempty"`
	Max  int     `yaml:"max,omitempty"`
	Frac float64 `yaml:"frac,omitempty"`
	Prob float64 `yaml:"prob,omitempty"`
	Mean float64 `yaml:"mean,omitempty"`
	Std  float64 `yaml:"std,omitempty"`
}

// Config is a declarative pipeline specification, loadable from YAML.
type Config struct {
	// Seed for reproducibility. -1 = random.
	Seed int64 `yaml:"seed"`

	// MaxAugsPerCall limits each call to a random subset of steps.
	// 0 = apply every step.
	MaxAugsPerCall int `yaml:"max_augs_per_call"`

	// Steps lists the augmentations in application order.
	Steps []StepConfig `yaml:"steps"`
}

// DefaultConfig returns the full seven-step pipeline with conventional
// defaults: structural edits first, reverse-complement next, noise last.
func DefaultConfig() Config {
	return Config{
		Seed:           -1,
		MaxAugsPerCall: 0,
		Steps: []StepConfig{
			{Op: "delete", Min: 0, Max: 30},
			{Op: "insert", Min: 0, Max: 30},
			{Op: "translocate", Min: 0, Max: 30},
			{Op: "invert", Min: 0, Max: 30},
			{Op: "mutate", Frac: 0.1},
			{Op: "rc", Prob: 0.5},
			{Op: "noise", Mean: 0.0, Std: 0.2},
		},
	}
}

// ParseConfig decodes a YAML pipeline specification. Omitted top-level
// fields keep their DefaultConfig values; a steps list, when present,
// replaces the default steps entirely.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return cfg, nil
}

// Build constructs the pipeline described by the config. Additional
// options are applied after the config-derived ones, so they win on
// conflict. Returns ErrConfig for an unknown op or invalid parameters.
func (c Config) Build(opts ...PipelineOption) (*Pipeline, error) {
	steps := make([]Augment, 0, len(c.Steps))
	for i, sc := range c.Steps {
		step, err := sc.build()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, step)
	}

	all := append([]PipelineOption{
		WithSeed(c.Seed),
		WithMaxAugsPerCall(c.MaxAugsPerCall),
	}, opts...)
	return NewPipeline(steps, all...)
}

func (sc StepConfig) build() (Augment, error) {
	switch sc.Op {
	case "delete":
		return NewRandomDeletion(sc.Min, sc.Max)
	case "insert":
		return NewRandomInsertion(sc.Min, sc.Max)
	case "translocate":
		return NewRandomTranslocation(sc.Min, sc.Max)
	case "invert":
		return NewRandomInversion(sc.Min, sc.Max)
	case "mutate":
		return NewRandomMutation(sc.Frac)
	case "rc":
		return NewRandomRC(sc.Prob)
	case "noise":
		return NewRandomNoise(sc.Mean, sc.Std)
	default:
		return nil, fmt.Errorf("%w: unknown op %q", ErrConfig, sc.Op)
	}
}
