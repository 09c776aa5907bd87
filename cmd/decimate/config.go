package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/cwbudde/algo-decimate/dsp/decimate"
)

type config struct {
	Factors    []int
	SampleType string
	SampleRate float64
	Output     string
	Verbose    bool
	Inputs     []string
}

// parseConfig reads flags from args, falling back to DECIMATE_FACTORS and
// DECIMATE_SAMPLE_RATE when the flags are not given.
func parseConfig(fs *flag.FlagSet, args []string) (*config, error) {
	factorList := fs.String("D", getEnv("DECIMATE_FACTORS", ""), "decimate by each factor in turn (2-7), e.g. 5,4")
	single := fs.Int("f", 0, "single decimation factor (2-7), shorthand for -D f")
	sampleType := fs.String("type", "float64", "sample type: float64, float32 or int32")
	rate := fs.String("rate", getEnv("DECIMATE_SAMPLE_RATE", "1"), "input sample rate in Hz")
	output := fs.String("o", "", "write output to file instead of stdout")
	verbose := fs.Bool("v", false, "verbose development logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config{
		SampleType: *sampleType,
		Output:     *output,
		Verbose:    *verbose,
		Inputs:     fs.Args(),
	}

	factors, err := decimate.ParseFactors(*factorList)
	if err != nil {
		return nil, err
	}
	if *single != 0 {
		if len(factors) > 0 {
			return nil, errors.New("-f and -D are mutually exclusive")
		}
		if _, err := decimate.Lookup(*single); err != nil {
			return nil, err
		}
		factors = []int{*single}
	}
	if len(factors) == 0 {
		return nil, errors.New("no decimation factor given (use -D or -f)")
	}
	cfg.Factors = factors

	cfg.SampleRate, err = strconv.ParseFloat(*rate, 64)
	if err != nil || cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %q", *rate)
	}

	switch cfg.SampleType {
	case "float64", "float32", "int32":
	default:
		return nil, fmt.Errorf("unknown sample type %q", cfg.SampleType)
	}

	if len(cfg.Inputs) == 0 {
		cfg.Inputs = []string{"-"}
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
