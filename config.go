package substrate

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/blob-chain/substrate/bounds"
	"github.com/blob-chain/substrate/types"
)

// DimensionConfig caps one electorate dimension. Absent fields mean
// unbounded, matching the option-valued bounds they compile into.
type DimensionConfig struct {
	// Count is the maximum number of elements admitted.
	Count *uint32 `yaml:"count"`

	// Size is the maximum total size admitted, in whatever unit the
	// data provider self-weighs with.
	Size *uint32 `yaml:"size"`
}

func (d DimensionConfig) toBounds() bounds.DataProviderBounds {
	b := bounds.DataProviderBounds{}
	if d.Count != nil {
		count := bounds.CountBound(*d.Count)
		b.Count = &count
	}
	if d.Size != nil {
		size := bounds.SizeBound(*d.Size)
		b.Size = &size
	}

	return b
}

// WeightConfig is an admission limit on predicted solver cost.
type WeightConfig struct {
	RefTime   uint64 `yaml:"refTime"`
	ProofSize uint64 `yaml:"proofSize"`
}

// Config is the YAML-loadable configuration of a Provider.
type Config struct {
	// MaxWinners caps the number of winners. Absent means unbounded.
	MaxWinners *uint32 `yaml:"maxWinners"`

	// Voters bounds the electing-voter dimension of every snapshot.
	Voters DimensionConfig `yaml:"voters"`

	// Targets bounds the electable-target dimension of every snapshot.
	Targets DimensionConfig `yaml:"targets"`

	// MaxWeight rejects snapshots whose predicted solving cost exceeds
	// it. Absent means no admission limit.
	MaxWeight *WeightConfig `yaml:"maxWeight"`
}

// ParseConfig parses and validates a YAML configuration document.
//
// Parameters:
//   - data: Raw YAML bytes
//
// Returns:
//   - *Config: The parsed configuration
//   - error: Non-nil on malformed YAML or invalid values
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks configuration constraints and returns an error for
// invalid values.
func (c *Config) Validate() error {
	if c.MaxWinners != nil && *c.MaxWinners == 0 {
		return fmt.Errorf("maxWinners must be positive when set")
	}

	if c.MaxWeight != nil && c.MaxWeight.RefTime == 0 && c.MaxWeight.ProofSize == 0 {
		return fmt.Errorf("maxWeight must have a positive component when set")
	}

	return nil
}

// ElectionBounds compiles the per-dimension limits into election bounds
// through the builder.
func (c *Config) ElectionBounds() bounds.ElectionBounds {
	voters := c.Voters.toBounds()
	targets := c.Targets.toBounds()

	return bounds.NewBuilder().
		Voters(&voters).
		Targets(&targets).
		Build()
}

// Options renders the configuration as provider options, ready to pass
// to New alongside any programmatic ones.
func (c *Config) Options() []Option {
	opts := []Option{WithBounds(c.ElectionBounds())}
	if c.MaxWinners != nil {
		opts = append(opts, WithMaxWinners(*c.MaxWinners))
	}
	if c.MaxWeight != nil {
		opts = append(opts, WithMaxWeight(types.WeightFromParts(c.MaxWeight.RefTime, c.MaxWeight.ProofSize)))
	}

	return opts
}
