package main

import (
	"fmt"
	"strings"

	"github.com/eth2030/gf64field/gf64"
)

// config holds the resolved CLI configuration for one selftest run.
type config struct {
	Strategy   string
	Arg1, Arg2 int
	PrimPoly   uint64
	RegionSize int
	Iterations int
	Verbosity  int
	ReportPath string
}

// defaultConfig returns the selftest's default configuration: the
// field's own Default strategy, a modest region size, and no report
// file.
func defaultConfig() config {
	return config{
		Strategy:   "default",
		RegionSize: 1 << 16,
		Iterations: 1000,
		Verbosity:  3,
	}
}

// Validate rejects a configuration that multType() or gf64.New would
// reject anyway, so callers get a clear error before any work starts.
func (c config) Validate() error {
	if c.RegionSize <= 0 || c.RegionSize%8 != 0 {
		return fmt.Errorf("region size must be a positive multiple of 8, got %d", c.RegionSize)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if _, err := c.multType(); err != nil {
		return err
	}
	return nil
}

func (c config) multType() (gf64.MultType, error) {
	switch strings.ToLower(c.Strategy) {
	case "default", "":
		return gf64.Default, nil
	case "shift":
		return gf64.Shift, nil
	case "bytwo_p", "bytwop":
		return gf64.BytwoP, nil
	case "bytwo_b", "bytwob":
		return gf64.BytwoB, nil
	case "split", "split_table":
		return gf64.SplitTable, nil
	case "group":
		return gf64.Group, nil
	case "composite":
		return gf64.Composite, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", c.Strategy)
	}
}

// fieldConfig translates the CLI configuration into a gf64.Config.
func (c config) fieldConfig() (gf64.Config, error) {
	mt, err := c.multType()
	if err != nil {
		return gf64.Config{}, err
	}
	return gf64.Config{
		MultType: mt,
		Arg1:     c.Arg1,
		Arg2:     c.Arg2,
		PrimPoly: c.PrimPoly,
	}, nil
}
