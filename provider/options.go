// SPDX-License-Identifier: MIT

// Package provider - functional options for the mock dataset generators.
//
// Contract:
//   - Options are functional (type Option func(*mockConfig)).
//   - Option constructors validate and panic on meaningless input;
//     generators themselves never panic.
//   - Determinism is explicit: the same seed and options yield the same data.

package provider

import (
	"math"
	"math/rand"
)

const (
	// DefaultSeed seeds the mock generators when no WithSeed/WithRand is given.
	DefaultSeed int64 = 1
	// DefaultNoise is the Gaussian noise sigma added to mock datasets.
	DefaultNoise = 0.0
)

// Option customizes NewMock.
type Option func(*mockConfig)

type mockConfig struct {
	rng   *rand.Rand
	sigma float64
	names []string
}

func newMockConfig(opts ...Option) mockConfig {
	cfg := mockConfig{sigma: DefaultNoise}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// WithSeed makes the generators draw from a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *mockConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit RNG with the generators. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("provider: WithRand(nil)")
	}
	return func(c *mockConfig) {
		c.rng = r
	}
}

// WithNoise adds Gaussian noise of standard deviation sigma to the smooth
// datasets. Panics on negative or non-finite sigma.
func WithNoise(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("provider: WithNoise(sigma) requires a finite sigma >= 0")
	}
	return func(c *mockConfig) {
		c.sigma = sigma
	}
}

// WithDatasets restricts NewMock to the named datasets. An empty list keeps
// all of them.
func WithDatasets(names ...string) Option {
	return func(c *mockConfig) {
		c.names = append([]string(nil), names...)
	}
}
