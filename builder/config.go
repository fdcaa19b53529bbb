// SPDX-License-Identifier: MIT
// File: config.go
// Role: builderConfig and its deterministic defaults.

package builder

import "math/rand"

// builderConfig is the resolved, immutable configuration handed to every
// Constructor. It is built once per BuildGraph call.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn func(*rand.Rand) int64

	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"

	// DefaultEdgeWeight is emitted on weighted graphs when no WithWeightFn is given.
	DefaultEdgeWeight = int64(1)

	// CenterVertexID is the hub of Star and Wheel.
	CenterVertexID = "Center"
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    func(*rand.Rand) int64 { return DefaultEdgeWeight },
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// weight picks the weight for the next edge: cfg.weightFn on weighted
// graphs, zero otherwise.
func (cfg builderConfig) weight(weighted bool) int64 {
	if !weighted {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}
