// Command gfselftest exercises a gf64.Field outside the library
// itself: it builds a Field for a chosen strategy, checks the
// multiply/inverse round trip over random scalars, runs a region
// multiply over a scratch buffer, and (optionally) writes a
// gzip-compressed JSON report of the run's counters and timings.
//
// Usage:
//
//	gfselftest [flags]
//
// Flags:
//
//	--strategy   Multiplication strategy: default, shift, bytwo_p, bytwo_b, split, group, composite
//	--arg1       Strategy-specific first argument
//	--arg2       Strategy-specific second argument
//	--primpoly   Degree-64 primitive polynomial (0 selects the field's own default)
//	--region     Region buffer size in bytes (default 65536)
//	--iterations Number of random multiply/inverse round trips to check (default 1000)
//	--verbosity  Log level 0-5 (default 3)
//	--report     Path to write a gzip-compressed JSON report (optional)
//	--version    Print version and exit
package main

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/eth2030/gf64field/gf64"
	"github.com/eth2030/gf64field/internal/gflog"
	"github.com/eth2030/gf64field/internal/gfmetrics"
)

var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. It accepts
// CLI arguments (without the program name) so it can be tested in
// isolation.
func run(args []string) int {
	cfg, exit, code := parseFlags(args)
	if exit {
		return code
	}

	log := gflog.New(verbosityToLevel(cfg.Verbosity)).Component("gfselftest")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return 1
	}

	fieldCfg, err := cfg.fieldConfig()
	if err != nil {
		log.Error("invalid field configuration", "error", err)
		return 1
	}

	log.Info("starting selftest",
		"strategy", cfg.Strategy, "arg1", cfg.Arg1, "arg2", cfg.Arg2,
		"region_bytes", cfg.RegionSize, "iterations", cfg.Iterations)

	field, err := gf64.New(fieldCfg)
	if err != nil {
		log.Error("failed to construct field", "error", err)
		return 1
	}

	registry := gfmetrics.NewRegistry()
	if err := runSelftest(field, cfg, registry, log); err != nil {
		log.Error("selftest failed", "error", err)
		return 1
	}

	log.Info("selftest passed", "snapshot", registry.Snapshot())

	if cfg.ReportPath != "" {
		if err := writeReport(cfg.ReportPath, registry); err != nil {
			log.Error("failed to write report", "error", err)
			return 1
		}
		log.Info("wrote report", "path", cfg.ReportPath)
	}
	return 0
}

// runSelftest checks the multiply/inverse round trip over random
// scalars and exercises MultiplyRegion over a scratch buffer, timing
// both into registry.
func runSelftest(field *gf64.Field, cfg config, registry *gfmetrics.Registry, log *gflog.Logger) error {
	roundTrips := registry.Counter("round_trips")
	roundTripTimer := registry.Histogram("round_trip_ms")

	t := gfmetrics.NewTimer(roundTripTimer)
	for i := 0; i < cfg.Iterations; i++ {
		a := randomUint64()
		if a == 0 {
			continue
		}
		inv := field.Inverse(a)
		if inv == gf64.NoInverseValue() {
			return fmt.Errorf("Inverse(%#x) returned the no-inverse sentinel for a nonzero input", a)
		}
		if got := field.Multiply(a, inv); got != 1 {
			return fmt.Errorf("a=%#x: a * Inverse(a) = %#x, want 1", a, got)
		}
		roundTrips.Inc()
	}
	t.Stop()

	regionBytes := registry.Counter("region_bytes")
	regionTimer := registry.Histogram("region_ms")

	src := make([]byte, cfg.RegionSize)
	if _, err := rand.Read(src); err != nil {
		return fmt.Errorf("generating scratch buffer: %w", err)
	}
	dst := make([]byte, cfg.RegionSize)

	rt := gfmetrics.NewTimer(regionTimer)
	field.MultiplyRegion(src, dst, randomUint64(), false)
	rt.Stop()
	regionBytes.Add(int64(cfg.RegionSize))

	log.Debug("region multiply complete", "bytes", cfg.RegionSize)
	return nil
}

// writeReport marshals registry's snapshot as JSON and writes it
// gzip-compressed to path.
func writeReport(path string, registry *gfmetrics.Registry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	enc := json.NewEncoder(gz)
	return enc.Encode(registry.Snapshot())
}

func randomUint64() uint64 {
	n, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 64))
	if err != nil {
		return 0
	}
	return n.Uint64()
}

func verbosityToLevel(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelError + 4
	case v == 1:
		return slog.LevelError
	case v == 2:
		return slog.LevelWarn
	case v <= 4:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// parseFlags parses CLI arguments into a config. Returns the config,
// whether the caller should exit immediately, and the exit code.
func parseFlags(args []string) (config, bool, int) {
	cfg := defaultConfig()
	fs := newFlagSet(&cfg)
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cfg, true, 2
	}
	if *showVersion {
		fmt.Printf("gfselftest %s (commit %s)\n", version, commit)
		return cfg, true, 0
	}
	return cfg, false, 0
}

func newFlagSet(cfg *config) *flagSet {
	fs := newCustomFlagSet("gfselftest")
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "multiplication strategy")
	fs.IntVar(&cfg.Arg1, "arg1", cfg.Arg1, "strategy-specific first argument")
	fs.IntVar(&cfg.Arg2, "arg2", cfg.Arg2, "strategy-specific second argument")
	fs.Uint64Var(&cfg.PrimPoly, "primpoly", cfg.PrimPoly, "degree-64 primitive polynomial (0 = field default)")
	fs.IntVar(&cfg.RegionSize, "region", cfg.RegionSize, "region buffer size in bytes")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "number of random multiply/inverse round trips to check")
	fs.IntVar(&cfg.Verbosity, "verbosity", cfg.Verbosity, "log level 0-5 (0=silent, 5=debug)")
	fs.StringVar(&cfg.ReportPath, "report", cfg.ReportPath, "path to write a gzip-compressed JSON report (optional)")
	return fs
}
