// Command firinfo prints properties of the built-in anti-alias filters.
//
// Usage:
//
//	firinfo [flags] [factor ...]
//
// Without arguments it prints info for every built-in factor.
//
// Examples:
//
//	firinfo
//	firinfo 2 5
//	firinfo -coeffs 4
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-decimate/dsp/decimate"
)

func main() {
	coeffs := flag.Bool("coeffs", false, "print the half-filter coefficients instead of the summary")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firinfo [flags] [factor ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of the built-in decimation filters (factors %d-%d).\n\n",
			decimate.MinFactor, decimate.MaxFactor)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  firinfo\n")
		fmt.Fprintf(os.Stderr, "  firinfo 2 5\n")
		fmt.Fprintf(os.Stderr, "  firinfo -coeffs 4\n")
	}
	flag.Parse()

	factors := resolveFactors(flag.Args())
	if len(factors) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching factors\n")
		os.Exit(1)
	}

	if *coeffs {
		printCoefficients(factors)
		return
	}
	printAnalysis(factors)
}

func resolveFactors(args []string) []int {
	if len(args) == 0 {
		return decimate.SupportedFactors()
	}
	var out []int
	for _, a := range args {
		f, err := strconv.Atoi(a)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %q is not a factor\n", a)
			continue
		}
		if _, err := decimate.Lookup(f); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		out = append(out, f)
	}
	return out
}

func printCoefficients(factors []int) {
	for _, f := range factors {
		spec, _ := decimate.Lookup(f)
		fmt.Printf("# factor %d, %d coefficients, %s symmetry\n", f, len(spec.Coefficients), spec.Symmetry)
		for _, c := range spec.Coefficients {
			fmt.Println(strconv.FormatFloat(c, 'e', 8, 64))
		}
	}
}

func printAnalysis(factors []int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Factor\tTaps\tSymmetry\tDC Gain\tPassband Ripple [dB]\tStopband [dB]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t--------\t-------\t--------------------\t-------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, f := range factors {
		spec, _ := decimate.Lookup(f)
		a, err := decimate.Analyze(spec, f)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: factor %d: %v\n", f, err)
			continue
		}
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%s\t%.6f\t%.4f\t%.2f\n",
			f,
			a.Taps,
			spec.Symmetry,
			a.DCGain,
			a.PassbandRippleDB,
			a.StopbandAttenuationDB,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
