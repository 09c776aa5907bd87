package decimate

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxStages is the longest factor list accepted by ParseFactors.
const MaxStages = 8

// ParseFactors parses a comma-separated list of built-in factors such as
// "5,4". Empty elements are rejected.
func ParseFactors(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) > MaxStages {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyStages, len(parts), MaxStages)
	}

	factors := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		f, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFactor, p)
		}
		if f < MinFactor || f > MaxFactor {
			return nil, fmt.Errorf("%w: %d (must be %d-%d)", ErrUnsupportedFactor, f, MinFactor, MaxFactor)
		}
		factors = append(factors, f)
	}
	return factors, nil
}

// TotalFactor returns the product of factors, 1 for an empty list.
func TotalFactor(factors []int) int {
	total := 1
	for _, f := range factors {
		total *= f
	}
	return total
}

// Cascade decimates samples by each factor in turn using the built-in
// filters and returns the final prefix. Every factor is checked before the
// first stage runs, so an unsupported factor leaves samples untouched.
func Cascade[T Sample](samples []T, factors []int) ([]T, error) {
	for _, f := range factors {
		if _, ok := builtin(f); !ok {
			_, err := Lookup(f)
			return samples, err
		}
	}

	out := samples
	for i, f := range factors {
		var err error
		out, err = Apply(out, f)
		if err != nil {
			return out, fmt.Errorf("stage %d (factor %d): %w", i+1, f, err)
		}
	}
	return out, nil
}
