// Command decimate downsamples plain-text time series with anti-alias
// filtering.
//
// Usage:
//
//	decimate [flags] [file ...]
//
// Each input holds one sample per line; '-' or no argument reads stdin.
// Decimated samples are written one per line.
//
// Examples:
//
//	decimate -f 4 trace.txt
//	decimate -D 5,4 -rate 100 -type int32 trace.txt > trace_5hz.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-decimate/dsp/decimate"
)

func main() {
	fs := flag.NewFlagSet("decimate", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: decimate [flags] [file ...]\n\n")
		fmt.Fprintf(os.Stderr, "Decimates plain-text time series (one sample per line).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  decimate -f 4 trace.txt\n")
		fmt.Fprintf(os.Stderr, "  decimate -D 5,4 -rate 100 -type int32 trace.txt\n")
	}

	cfg, err := parseConfig(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	logger := newLogger(cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	out := io.Writer(os.Stdout)
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			logger.Fatal("cannot create output", zap.String("path", cfg.Output), zap.Error(err))
		}
		defer f.Close()
		out = f
	}

	failed := 0
	for _, name := range cfg.Inputs {
		log := logger.With(zap.String("input", name))
		if err := processInput(log, cfg, name, out); err != nil {
			log.Error("processing failed", zap.Error(err))
			failed++
		}
	}
	if failed > 0 {
		logger.Error("inputs failed", zap.Int("failed", failed), zap.Int("total", len(cfg.Inputs)))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func processInput(log *zap.Logger, cfg *config, name string, out io.Writer) error {
	in := io.Reader(os.Stdin)
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	values, err := readSamples(in)
	if err != nil {
		return err
	}
	if len(cfg.Inputs) > 1 {
		if _, err := fmt.Fprintf(out, "# %s\n", name); err != nil {
			return err
		}
	}

	switch cfg.SampleType {
	case "float32":
		return run(log, cfg, convertSamples[float32](values), out, 32)
	case "int32":
		return run(log, cfg, convertSamples[int32](values), out, 0)
	default:
		return run(log, cfg, values, out, 64)
	}
}

func run[T decimate.Sample](log *zap.Logger, cfg *config, samples []T, out io.Writer, bits int) error {
	if len(samples) == 0 {
		return errors.New("no samples")
	}
	tr := &decimate.Trace[T]{Samples: samples, SampleRate: cfg.SampleRate}

	for _, f := range cfg.Factors {
		log.Info("decimating time-series",
			zap.Int("factor", f),
			zap.Float64("rate", tr.SampleRate),
			zap.Float64("newRate", tr.SampleRate/float64(f)),
			zap.Int("samples", len(tr.Samples)),
		)
		if err := tr.Decimate(f); err != nil {
			return fmt.Errorf("factor %d: %w", f, err)
		}
	}
	log.Debug("decimation complete",
		zap.Int("factor", decimate.TotalFactor(cfg.Factors)),
		zap.Int("samples", len(tr.Samples)),
		zap.Float64("rate", tr.SampleRate),
	)
	return writeSamples(out, tr.Samples, bits)
}
