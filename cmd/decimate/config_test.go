package main

import (
	"errors"
	"flag"
	"io"
	"slices"
	"testing"

	"github.com/cwbudde/algo-decimate/dsp/decimate"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("decimate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigFactorList(t *testing.T) {
	cfg, err := parseConfig(newFlagSet(), []string{"-D", "5,4", "-rate", "100", "-type", "int32", "a.txt", "b.txt"})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if !slices.Equal(cfg.Factors, []int{5, 4}) {
		t.Fatalf("Factors = %v", cfg.Factors)
	}
	if cfg.SampleRate != 100 || cfg.SampleType != "int32" {
		t.Fatalf("rate %v type %q", cfg.SampleRate, cfg.SampleType)
	}
	if !slices.Equal(cfg.Inputs, []string{"a.txt", "b.txt"}) {
		t.Fatalf("Inputs = %v", cfg.Inputs)
	}
}

func TestParseConfigSingleFactorDefaultsToStdin(t *testing.T) {
	cfg, err := parseConfig(newFlagSet(), []string{"-f", "3"})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if !slices.Equal(cfg.Factors, []int{3}) || !slices.Equal(cfg.Inputs, []string{"-"}) {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.SampleRate != 1 || cfg.SampleType != "float64" {
		t.Fatalf("defaults: rate %v type %q", cfg.SampleRate, cfg.SampleType)
	}
}

func TestParseConfigEnvironment(t *testing.T) {
	t.Setenv("DECIMATE_FACTORS", "2,2")
	t.Setenv("DECIMATE_SAMPLE_RATE", "40")
	cfg, err := parseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if !slices.Equal(cfg.Factors, []int{2, 2}) || cfg.SampleRate != 40 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := [][]string{
		{},
		{"-f", "8"},
		{"-D", "9"},
		{"-D", "2", "-f", "3"},
		{"-f", "2", "-rate", "0"},
		{"-f", "2", "-rate", "fast"},
		{"-f", "2", "-type", "int16"},
	}
	for _, args := range tests {
		if _, err := parseConfig(newFlagSet(), args); err == nil {
			t.Fatalf("parseConfig(%v) expected error", args)
		}
	}
	_, err := parseConfig(newFlagSet(), []string{"-f", "1"})
	if !errors.Is(err, decimate.ErrUnsupportedFactor) {
		t.Fatalf("err = %v, want ErrUnsupportedFactor", err)
	}
}
