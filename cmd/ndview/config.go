// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/spf13/pflag"
)

// Config holds the defaults a --config file may set. Command-line flags that
// are given explicitly take precedence over file values.
type Config struct {
	Scale  string  `toml:"scale"`
	Gamma  float64 `toml:"gamma"`
	Extend float64 `toml:"extend"`
	Ticks  int     `toml:"ticks"`
	Axes   int     `toml:"axes"`
	Locked int     `toml:"locked"`
	Seed   int64   `toml:"seed"`
	Noise  float64 `toml:"noise"`
	Width  float64 `toml:"width"`  // render width, inches
	Height float64 `toml:"height"` // render height, inches
}

func defaultConfig() Config {
	return Config{
		Scale:  "linear",
		Gamma:  1,
		Extend: 0,
		Ticks:  10,
		Axes:   2,
		Locked: 0,
		Seed:   1,
		Noise:  0,
		Width:  6,
		Height: 4,
	}
}

// loadConfig reads a TOML file over the defaults; keys absent from the file
// keep their default value.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to load config: %w", err)
	}
	if err = toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("unable to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// configFlags pairs each config-backed flag with the field it overrides.
var configFlags = []struct {
	name string
	copy func(dst, src *Config)
}{
	{"scale", func(d, s *Config) { d.Scale = s.Scale }},
	{"gamma", func(d, s *Config) { d.Gamma = s.Gamma }},
	{"extend", func(d, s *Config) { d.Extend = s.Extend }},
	{"ticks", func(d, s *Config) { d.Ticks = s.Ticks }},
	{"axes", func(d, s *Config) { d.Axes = s.Axes }},
	{"locked", func(d, s *Config) { d.Locked = s.Locked }},
	{"seed", func(d, s *Config) { d.Seed = s.Seed }},
	{"noise", func(d, s *Config) { d.Noise = s.Noise }},
	{"width", func(d, s *Config) { d.Width = s.Width }},
	{"height", func(d, s *Config) { d.Height = s.Height }},
}

// mergeConfig returns flagCfg with every field whose flag was not set
// explicitly replaced by the file value.
func mergeConfig(flags *pflag.FlagSet, flagCfg, fileCfg Config) Config {
	out := flagCfg
	for _, f := range configFlags {
		if flags.Lookup(f.name) != nil && flags.Changed(f.name) {
			continue
		}
		f.copy(&out, &fileCfg)
	}

	return out
}

func bindConfigFlags(flags *pflag.FlagSet, cfg *Config) {
	def := defaultConfig()
	flags.StringVar(&cfg.Scale, "scale", def.Scale, "Value scale: linear, log, symlog, sqrt, gamma")
	flags.Float64Var(&cfg.Gamma, "gamma", def.Gamma, "Exponent of the gamma scale")
	flags.Float64Var(&cfg.Extend, "extend", def.Extend, "Pad the data domain by this fraction per side")
	flags.IntVar(&cfg.Ticks, "ticks", def.Ticks, "Tick budget per axis")
	flags.IntVar(&cfg.Axes, "axes", def.Axes, "Number of visual axes (0, 1 or 2)")
	flags.IntVar(&cfg.Locked, "locked", def.Locked, "Number of trailing locked dimensions")
	flags.Int64Var(&cfg.Seed, "seed", def.Seed, "Seed of the mock datasets")
	flags.Float64Var(&cfg.Noise, "noise", def.Noise, "Gaussian noise sigma added to the mock datasets")
	flags.Float64Var(&cfg.Width, "width", def.Width, "Render width in inches")
	flags.Float64Var(&cfg.Height, "height", def.Height, "Render height in inches")
}
