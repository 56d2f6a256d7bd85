// SPDX-License-Identifier: MIT

// Command ndview explores the demo datasets from the command line: list
// them, print how a view is sliced, render a view to PNG and export it to
// a spreadsheet.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ndview/domain"
	"github.com/katalvlaran/ndview/explorer"
	"github.com/katalvlaran/ndview/mapping"
	"github.com/katalvlaran/ndview/provider"
)

var errBadFlag = errors.New("invalid flag value")

// cli is the flag state of one command tree.
type cli struct {
	cfg        Config
	configPath string

	slices       []string
	xDim, yDim   int
	minVal       float64
	maxVal       float64
	ignoreErrors bool

	renderOut string
	exportOut string
	format    string

	out io.Writer
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ndview: ")

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	rootCmd := &cobra.Command{
		Use:   "ndview",
		Short: "Explore N-dimensional datasets through 2-D views",
		Long: `ndview slices N-dimensional datasets down to 1-D or 2-D views,
computes scale-safe value domains and renders or exports the result.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	bindConfigFlags(pf, &c.cfg)
	pf.StringVar(&c.configPath, "config", "", "TOML file with default settings")
	pf.StringArrayVar(&c.slices, "slice", nil, "Fix a sliced dimension: dim=index (repeatable)")
	pf.IntVar(&c.xDim, "x", -1, "Dimension shown on the X axis")
	pf.IntVar(&c.yDim, "y", -1, "Dimension shown on the Y axis")
	pf.Float64Var(&c.minVal, "min", 0, "Custom domain minimum")
	pf.Float64Var(&c.maxVal, "max", 0, "Custom domain maximum")
	pf.BoolVar(&c.ignoreErrors, "ignore-errors", false, "Leave error bars out of the data domain")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "List the datasets and their shapes",
			Args:  cobra.NoArgs,
			RunE:  c.runInfo,
		},
		&cobra.Command{
			Use:   "slice DATASET",
			Short: "Print the mapping, selection and domains of a view",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runSlice,
		},
		c.outputCmd(&cobra.Command{
			Use:   "render DATASET",
			Short: "Render a view to PNG (heatmap for 2 axes, line for 1)",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runRender,
		}, &c.renderOut, "view.png"),
		c.outputCmd(&cobra.Command{
			Use:   "export DATASET",
			Short: "Write the projected view to .xlsx or .csv",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runExport,
		}, &c.exportOut, "view.xlsx"),
	)

	return rootCmd
}

func (c *cli) outputCmd(cmd *cobra.Command, out *string, def string) *cobra.Command {
	cmd.Flags().StringVarP(out, "output", "o", def, "Output file path")
	cmd.Flags().StringVar(&c.format, "format", "", "Output format (default: from the file extension)")

	return cmd
}

// resolve merges the --config file under the flags that were not given.
func (c *cli) resolve(cmd *cobra.Command) (Config, error) {
	if c.configPath == "" {
		return c.cfg, nil
	}
	file, err := loadConfig(c.configPath)
	if err != nil {
		return Config{}, err
	}

	return mergeConfig(cmd.Flags(), c.cfg, file), nil
}

func (c *cli) newProvider(cfg Config) (*provider.Memory, error) {
	if !(cfg.Noise >= 0) || math.IsInf(cfg.Noise, 0) {
		return nil, fmt.Errorf("--noise %g: %w", cfg.Noise, errBadFlag)
	}

	return provider.NewMock(provider.WithSeed(cfg.Seed), provider.WithNoise(cfg.Noise))
}

func (c *cli) explorerOptions(cmd *cobra.Command, cfg Config) ([]explorer.Option, error) {
	scale, err := domain.ParseScale(cfg.Scale, cfg.Gamma)
	if err != nil {
		return nil, err
	}
	switch {
	case cfg.Axes < 0 || cfg.Axes > 2:
		return nil, fmt.Errorf("--axes %d: %w", cfg.Axes, errBadFlag)
	case cfg.Locked < 0:
		return nil, fmt.Errorf("--locked %d: %w", cfg.Locked, errBadFlag)
	case !(cfg.Extend >= 0) || math.IsInf(cfg.Extend, 0):
		return nil, fmt.Errorf("--extend %g: %w", cfg.Extend, errBadFlag)
	case cfg.Ticks < 1:
		return nil, fmt.Errorf("--ticks %d: %w", cfg.Ticks, errBadFlag)
	case scale.Type == domain.ScaleGamma && (!(cfg.Gamma > 0) || math.IsInf(cfg.Gamma, 0)):
		return nil, fmt.Errorf("--gamma %g: %w", cfg.Gamma, errBadFlag)
	}

	opts := []explorer.Option{
		explorer.WithScale(scale),
		explorer.WithAxes(cfg.Axes),
		explorer.WithLocked(cfg.Locked),
		explorer.WithExtendFactor(cfg.Extend),
		explorer.WithTickCount(cfg.Ticks),
	}

	flags := cmd.Flags()
	for _, a := range []struct {
		name  string
		dim   int
		entry mapping.Entry
	}{{"y", c.yDim, mapping.Y}, {"x", c.xDim, mapping.X}} {
		if !flags.Changed(a.name) {
			continue
		}
		if a.dim < 0 {
			return nil, fmt.Errorf("--%s %d: %w", a.name, a.dim, errBadFlag)
		}
		opts = append(opts, explorer.WithAxisDim(a.entry, a.dim))
	}
	for _, s := range c.slices {
		dim, idx, err := parseSliceFlag(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, explorer.WithSliceIndex(dim, idx))
	}

	var lo, hi *float64
	if flags.Changed("min") {
		lo = &c.minVal
	}
	if flags.Changed("max") {
		hi = &c.maxVal
	}
	if lo != nil || hi != nil {
		opts = append(opts, explorer.WithCustomDomain(lo, hi))
	}
	if c.ignoreErrors {
		opts = append(opts, explorer.WithIgnoreErrors())
	}

	return opts, nil
}

// parseSliceFlag parses "dim=index".
func parseSliceFlag(s string) (dim, idx int, err error) {
	d, i, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("--slice %q: want dim=index: %w", s, errBadFlag)
	}
	if dim, err = strconv.Atoi(strings.TrimSpace(d)); err != nil || dim < 0 {
		return 0, 0, fmt.Errorf("--slice %q: bad dimension: %w", s, errBadFlag)
	}
	if idx, err = strconv.Atoi(strings.TrimSpace(i)); err != nil {
		return 0, 0, fmt.Errorf("--slice %q: bad index: %w", s, errBadFlag)
	}

	return dim, idx, nil
}

// explore resolves configuration and runs the explorer on path.
func (c *cli) explore(cmd *cobra.Command, path string) (*explorer.View, Config, error) {
	cfg, err := c.resolve(cmd)
	if err != nil {
		return nil, cfg, err
	}
	p, err := c.newProvider(cfg)
	if err != nil {
		return nil, cfg, err
	}
	opts, err := c.explorerOptions(cmd, cfg)
	if err != nil {
		return nil, cfg, err
	}
	v, err := explorer.Explore(cmdContext(cmd), p, path, opts...)
	if err != nil {
		return nil, cfg, err
	}
	for _, msg := range v.DomainErrors.Messages() {
		log.Println("warning:", msg)
	}

	return v, cfg, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func (c *cli) runInfo(cmd *cobra.Command, _ []string) error {
	cfg, err := c.resolve(cmd)
	if err != nil {
		return err
	}
	p, err := c.newProvider(cfg)
	if err != nil {
		return err
	}
	ctx := cmdContext(cmd)
	names, err := p.Datasets(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		shape, err := p.Shape(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%-10s %v\n", name, shape)
	}

	return nil
}

func (c *cli) runSlice(cmd *cobra.Command, args []string) error {
	v, _, err := c.explore(cmd, args[0])
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.out, v.Summary())

	return err
}

func (c *cli) runRender(cmd *cobra.Command, args []string) error {
	v, cfg, err := c.explore(cmd, args[0])
	if err != nil {
		return err
	}
	if err = render(v, cfg, c.renderOut); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	log.Printf("wrote %s", c.renderOut)

	return nil
}

func (c *cli) runExport(cmd *cobra.Command, args []string) error {
	v, _, err := c.explore(cmd, args[0])
	if err != nil {
		return err
	}
	if err = export(v, c.exportOut, c.format); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	log.Printf("wrote %s", c.exportOut)

	return nil
}
